// Package types defines the interfaces and data structures shared by the
// lister, the batch renamer and the renderers: the FS abstraction, rename
// operations, plans and execution results.
package types
