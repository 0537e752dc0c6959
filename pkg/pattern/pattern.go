package pattern

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/mmv/pkg/errors"
)

// WildcardChar is the marker that matches any substring.
const WildcardChar = '*'

// TokenKind distinguishes literal fragments from wildcard markers.
type TokenKind int

const (
	// Literal is a run of characters matched verbatim.
	Literal TokenKind = iota
	// Wildcard matches any substring, possibly empty.
	Wildcard
)

// String returns the string representation of the kind
func (k TokenKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Wildcard:
		return "wildcard"
	default:
		return "unknown"
	}
}

// Token is one element of a compiled template.
type Token struct {
	Kind TokenKind
	Text string
}

// Pattern is a compiled wildcard template.
//
// A template with k wildcards is stored as k+1 literal fragments with an
// implicit wildcard between each pair. Fragments may be empty: at the
// boundaries, and between two back-to-back wildcards.
type Pattern struct {
	raw      string
	literals []string
}

// Compile parses raw into a Pattern. Every string is a valid template.
func Compile(raw string) *Pattern {
	literals := make([]string, 0, strings.Count(raw, string(WildcardChar))+1)
	start := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == WildcardChar {
			literals = append(literals, raw[start:i])
			start = i + 1
		}
	}
	literals = append(literals, raw[start:])

	return &Pattern{raw: raw, literals: literals}
}

// Raw returns the template the pattern was compiled from.
func (p *Pattern) Raw() string {
	return p.raw
}

// String implements fmt.Stringer
func (p *Pattern) String() string {
	return p.raw
}

// Wildcards returns the number of wildcard markers.
func (p *Pattern) Wildcards() int {
	return len(p.literals) - 1
}

// Literals returns the literal fragments in order, empty ones included.
// There is always exactly one more fragment than there are wildcards.
func (p *Pattern) Literals() []string {
	out := make([]string, len(p.literals))
	copy(out, p.literals)
	return out
}

// Tokens returns the template as an ordered token sequence. Empty literal
// fragments are implicit and do not appear.
func (p *Pattern) Tokens() []Token {
	tokens := make([]Token, 0, 2*len(p.literals))
	for i, lit := range p.literals {
		if i > 0 {
			tokens = append(tokens, Token{Kind: Wildcard})
		}
		if lit != "" {
			tokens = append(tokens, Token{Kind: Literal, Text: lit})
		}
	}
	return tokens
}

// Matches reports whether candidate is covered by the pattern.
func (p *Pattern) Matches(candidate string) bool {
	_, ok := p.split(candidate, false)
	return ok
}

// Extract returns the substrings bound to each wildcard, in template order.
// The second result is false when candidate does not match; no captures are
// returned in that case.
func (p *Pattern) Extract(candidate string) ([]string, bool) {
	return p.split(candidate, true)
}

// split walks the candidate once. The first fragment must be a prefix and the
// last a suffix; every inner fragment is taken at its leftmost occurrence
// inside the region left before the suffix. Taking the leftmost occurrence is
// what makes each wildcard as short as possible, and it never loses a match
// because the wildcard that follows can absorb whatever was skipped.
func (p *Pattern) split(candidate string, capture bool) ([]string, bool) {
	n := len(p.literals)
	if n == 1 {
		if candidate != p.literals[0] {
			return nil, false
		}
		if capture {
			return []string{}, true
		}
		return nil, true
	}

	head, tail := p.literals[0], p.literals[n-1]
	if len(head)+len(tail) > len(candidate) ||
		!strings.HasPrefix(candidate, head) ||
		!strings.HasSuffix(candidate, tail) {
		return nil, false
	}

	var captures []string
	if capture {
		captures = make([]string, 0, n-1)
	}

	pos := len(head)
	end := len(candidate) - len(tail)
	for _, lit := range p.literals[1 : n-1] {
		idx := strings.Index(candidate[pos:end], lit)
		if idx < 0 {
			return nil, false
		}
		if capture {
			captures = append(captures, candidate[pos:pos+idx])
		}
		pos += idx + len(lit)
	}
	if capture {
		captures = append(captures, candidate[pos:end])
	}
	return captures, true
}

// Assemble interleaves the literal fragments with captures. For any candidate
// that matches, Assemble(Extract(candidate)) reproduces the candidate.
func (p *Pattern) Assemble(captures []string) (string, error) {
	if len(captures) != p.Wildcards() {
		return "", errors.Newf(errors.ErrCaptureCount,
			"pattern %q has %d wildcards, got %d captures", p.raw, p.Wildcards(), len(captures)).
			WithDetail("pattern", p.raw).
			WithDetail("captures", len(captures))
	}

	var b strings.Builder
	for i, lit := range p.literals {
		if i > 0 {
			b.WriteString(captures[i-1])
		}
		b.WriteString(lit)
	}
	return b.String(), nil
}

// Expr returns an anchored regular expression with the same semantics: quoted
// literals joined by lazy capture groups. It is not used for matching.
//
// The result always compiles. Bytes of a literal that are not valid UTF-8 are
// written as \x{FFFD}, which the regexp engine matches against any invalid
// byte (or a real U+FFFD), so for such patterns the expression is looser than
// Matches.
func (p *Pattern) Expr() string {
	var b strings.Builder
	b.WriteString(`(?s)^`)
	for i, lit := range p.literals {
		if i > 0 {
			b.WriteString(`(.*?)`)
		}
		b.WriteString(quoteLiteral(lit))
	}
	b.WriteString(`$`)
	return b.String()
}

func quoteLiteral(lit string) string {
	if utf8.ValidString(lit) {
		return regexp.QuoteMeta(lit)
	}
	var b strings.Builder
	for len(lit) > 0 {
		r, size := utf8.DecodeRuneInString(lit)
		if r == utf8.RuneError && size == 1 {
			b.WriteString(`\x{FFFD}`)
		} else {
			b.WriteString(regexp.QuoteMeta(lit[:size]))
		}
		lit = lit[size:]
	}
	return b.String()
}
