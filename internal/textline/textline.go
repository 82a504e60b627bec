// Package textline splits text into lines that keep their own terminators, so that rejoining the lines always reproduces the input byte for byte.
//
// Only LF, CR, and CRLF count as line terminators. Other vertical-whitespace characters (vertical tab, form feed, NEL, U+2028, and friends) are ordinary content,
// unlike the behavior of splitters that follow the Unicode line-breaking rules.
package textline

import "strings"

// Ending identifies the terminator carried by a single line. The zero value means the line has no terminator, which is legal only for the final line of a document.
type Ending uint8

const (
	EndingNone Ending = iota // unterminated (final line only)
	EndingLF                 // "\n"
	EndingCR                 // "\r"
	EndingCRLF               // "\r\n"
)

// Sequence returns the literal terminator bytes for e: "" for EndingNone.
func (e Ending) Sequence() string {
	switch e {
	case EndingLF:
		return "\n"
	case EndingCR:
		return "\r"
	case EndingCRLF:
		return "\r\n"
	default:
		return ""
	}
}

// Line is one line of a document: its content plus the terminator that followed it in the source text.
type Line struct {
	Content string
	End     Ending
}

// Text returns the line exactly as it appeared in the source, terminator included.
func (ln Line) Text() string { return ln.Content + ln.End.Sequence() }

// FromRaw builds a Line from raw text, separating a single trailing LF, CR, or CRLF from the content. Interior terminators stay in the content untouched.
func FromRaw(raw string) Line {
	switch {
	case strings.HasSuffix(raw, "\r\n"):
		return Line{Content: raw[:len(raw)-2], End: EndingCRLF}
	case strings.HasSuffix(raw, "\n"):
		return Line{Content: raw[:len(raw)-1], End: EndingLF}
	case strings.HasSuffix(raw, "\r"):
		return Line{Content: raw[:len(raw)-1], End: EndingCR}
	default:
		return Line{Content: raw}
	}
}

// Split breaks text into lines. A CR immediately followed by an LF is one CRLF terminator, never two. The final line has EndingNone when text does not end in a
// terminator, and Split("") is empty.
func Split(text string) []Line {
	var lines []Line
	start := 0
	for i := 0; i < len(text); {
		switch text[i] {
		case '\n':
			lines = append(lines, Line{Content: text[start:i], End: EndingLF})
			i++
			start = i
		case '\r':
			end := EndingCR
			width := 1
			if i+1 < len(text) && text[i+1] == '\n' {
				end = EndingCRLF
				width = 2
			}
			lines = append(lines, Line{Content: text[start:i], End: end})
			i += width
			start = i
		default:
			i++
		}
	}
	if start < len(text) {
		lines = append(lines, Line{Content: text[start:], End: EndingNone})
	}
	return lines
}

// Join concatenates lines back into a single string. Join(Split(s)) == s for every s.
func Join(lines []Line) string {
	var b strings.Builder
	for _, ln := range lines {
		b.WriteString(ln.Content)
		b.WriteString(ln.End.Sequence())
	}
	return b.String()
}

// Chomp removes one line terminator from the end of s: a trailing LF is stripped first, then a trailing CR, so "\n", "\r", and "\r\n" are all removed in full
// while "\n\r" loses only the CR.
func Chomp(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// EnsureTerminated appends an LF to s unless it already ends in LF, CR, or CRLF.
func EnsureTerminated(s string) string {
	if strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\r") {
		return s
	}
	return s + "\n"
}
