// Package backref expands backreference templates against a regular-expression match. Templates use backslash references — numbered (`\1`, `\g<2>`), named
// (`\g<name>`), and `\g<0>` for the whole match — rather than the "$name" convention of (*regexp.Regexp).Expand. Character escapes (`\n`, `\t`, octal `\101`, and
// so on) are also honored, and an unknown escape of a non-letter passes through with its backslash intact.
package backref

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// maxOctal is the largest character value an octal escape may name.
const maxOctal = 0o377

// Expand substitutes the backreferences in template with capture groups from a match of re against input, where loc is the pairwise index slice reported by
// (*regexp.Regexp).FindStringSubmatchIndex for that match. It fails when a reference names a group the pattern does not have, when a referenced group did not
// participate in the match, or when the template itself is malformed.
func Expand(template string, re *regexp.Regexp, input string, loc []int) (string, error) {
	if re == nil || len(loc) < 2 {
		return "", errors.New("no match to expand")
	}
	var b strings.Builder
	i := 0
	for i < len(template) {
		c := template[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(template) {
			return "", errors.New("bad escape: lone backslash at end of template")
		}
		esc := template[i+1]
		switch {
		case esc == 'g':
			n, width, err := parseGroupRef(template[i+2:], re)
			if err != nil {
				return "", err
			}
			seg, err := groupText(re, input, loc, n)
			if err != nil {
				return "", err
			}
			b.WriteString(seg)
			i += 2 + width
		case esc == '0':
			// Octal escape: \0 plus up to two more octal digits.
			val := 0
			j := i + 2
			for k := 0; k < 2 && j < len(template) && isOctalDigit(template[j]); k++ {
				val = val*8 + int(template[j]-'0')
				j++
			}
			b.WriteRune(rune(val))
			i = j
		case esc >= '1' && esc <= '9':
			digits := 1
			if i+2 < len(template) && isDigit(template[i+2]) {
				digits = 2
				if isOctalDigit(esc) && isOctalDigit(template[i+2]) && i+3 < len(template) && isOctalDigit(template[i+3]) {
					// Three octal digits are a character escape, not a group reference.
					text := template[i+1 : i+4]
					val := octalValue(text)
					if val > maxOctal {
						return "", fmt.Errorf(`octal escape value \%s outside of range 0-0o377`, text)
					}
					b.WriteRune(rune(val))
					i += 4
					continue
				}
			}
			n, _ := strconv.Atoi(template[i+1 : i+1+digits])
			seg, err := groupText(re, input, loc, n)
			if err != nil {
				return "", err
			}
			b.WriteString(seg)
			i += 1 + digits
		default:
			if repl, ok := charEscapes[esc]; ok {
				b.WriteByte(repl)
				i += 2
				continue
			}
			if isASCIILetter(esc) {
				return "", fmt.Errorf(`bad escape \%c in template`, esc)
			}
			// An unrecognized escape of a non-letter keeps its backslash; the escaped character is copied by the next iterations.
			b.WriteByte('\\')
			i++
		}
	}
	return b.String(), nil
}

var charEscapes = map[byte]byte{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'\\': '\\',
}

// parseGroupRef parses the "<name>" or "<number>" that must follow \g. rest starts just past the "g". It returns the referenced group's index and how many bytes
// of rest were consumed.
func parseGroupRef(rest string, re *regexp.Regexp) (index int, width int, err error) {
	if len(rest) == 0 || rest[0] != '<' {
		return 0, 0, errors.New(`missing "<" after \g`)
	}
	end := strings.IndexByte(rest, '>')
	if end < 0 {
		return 0, 0, errors.New(`unterminated group name in \g<...>`)
	}
	name := rest[1:end]
	if name == "" {
		return 0, 0, errors.New(`missing group name in \g<>`)
	}
	if isAllDigits(name) {
		n, err := strconv.Atoi(name)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid group reference %s", name)
		}
		return n, end + 1, nil
	}
	n := re.SubexpIndex(name)
	if n < 0 {
		return 0, 0, fmt.Errorf("unknown group name %q", name)
	}
	return n, end + 1, nil
}

// groupText returns the text captured by group n, where group 0 is the whole match.
func groupText(re *regexp.Regexp, input string, loc []int, n int) (string, error) {
	if n < 0 || n > re.NumSubexp() {
		return "", fmt.Errorf("invalid group reference %d", n)
	}
	if 2*n+1 >= len(loc) || loc[2*n] < 0 {
		return "", fmt.Errorf("unmatched group %d", n)
	}
	return input[loc[2*n]:loc[2*n+1]], nil
}

func octalValue(digits string) int {
	val := 0
	for i := 0; i < len(digits); i++ {
		val = val*8 + int(digits[i]-'0')
	}
	return val
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isOctalDigit(c byte) bool { return c >= '0' && c <= '7' }

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return len(s) > 0
}
