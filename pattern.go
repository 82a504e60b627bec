package lineinfile

import "regexp"

// A Pattern selects lines by regular expression. Patterns are matched
// unanchored against each line of a document with its terminator still
// attached, so `$` generally only matches on a document's final, unterminated
// line; match trailing content with an explicit `\n` or a character class
// instead.
//
// The zero Pattern matches nothing; operations that require a pattern treat
// it as "no pattern given".
type Pattern struct {
	re *regexp.Regexp
}

// NewPattern compiles expr as a regular expression. An invalid expression
// yields an error satisfying IsPatternError.
func NewPattern(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, patternError(err)
	}
	return Pattern{re: re}, nil
}

// MustPattern is like NewPattern but panics if expr does not compile. Use for
// patterns known valid at compile time.
func MustPattern(expr string) Pattern {
	p, err := NewPattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// LiteralPattern returns a Pattern matching lines that contain text verbatim.
func LiteralPattern(text string) Pattern {
	return Pattern{re: regexp.MustCompile(regexp.QuoteMeta(text))}
}

// PatternFromRegexp wraps an already-compiled regexp. A nil re yields the
// zero Pattern.
func PatternFromRegexp(re *regexp.Regexp) Pattern {
	return Pattern{re: re}
}

// IsZero reports whether p is the zero Pattern.
func (p Pattern) IsZero() bool { return p.re == nil }

// String returns the source text of p's regular expression, or "" for the
// zero Pattern.
func (p Pattern) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

// search returns the submatch index pairs for the leftmost match of p in
// line, or nil if p does not match (or is zero).
func (p Pattern) search(line string) []int {
	if p.re == nil {
		return nil
	}
	return p.re.FindStringSubmatchIndex(line)
}
