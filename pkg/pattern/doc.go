// Package pattern compiles wildcard templates and matches file names against them.
//
// A template is an ordinary string in which every '*' stands for a substring of
// any length, including the empty one. There is no escaping, no character
// classes and no anchoring syntax: the whole candidate must be covered.
//
// Wildcards are resolved lazily. Each wildcard takes the shortest substring that
// still lets the rest of the template match, so in a run of adjacent wildcards
// every wildcard but the last captures the empty string:
//
//	p := pattern.Compile("some_*_filename.*")
//	p.Extract("some_A_filename.bin") // ["A", "bin"], true
//
//	pattern.Compile("**").Extract("abc") // ["", "abc"], true
//
// A compiled Pattern is immutable and safe for concurrent use.
package pattern
