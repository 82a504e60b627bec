package lineinfile

import (
	"errors"

	"github.com/jwodder/lineinfile/internal/backref"
	"github.com/jwodder/lineinfile/internal/textline"
)

// A Document is a text file's contents parsed into lines for editing. Parse
// with ParseDocument, edit with AddLine and RemoveLines, and serialize with
// String; the round trip is byte-exact for untouched lines.
type Document struct {
	lines []textline.Line
}

// ParseDocument splits s into lines, recognizing LF, CR, and CRLF
// terminators.
func ParseDocument(s string) *Document {
	return &Document{lines: textline.Split(s)}
}

// String reassembles the document, preserving each line's terminator.
func (d *Document) String() string {
	return textline.Join(d.lines)
}

// AddLine ensures line is present in the document and reports whether the
// document was modified.
//
// If opts.Regexp is set and matches a line, that line (the last match, or the
// first under opts.MatchFirst) is replaced. Otherwise, if a line equal to
// line (terminators ignored) exists, that line is rewritten in place, which
// normalizes a CR or CRLF terminator to the one line carries. Otherwise line
// is inserted at the point named by opts.Locator.
//
// With opts.Backrefs, line is a replacement template expanded against the
// regexp match (`\1`, `\g<name>`, and escape sequences); when the regexp
// matches nothing the document is left alone and AddLine reports false.
// Backrefs without a Regexp is a ConfigurationError.
//
// A nil opts behaves as the zero AddOptions: match the last equal line, or
// append at end of document.
func (d *Document) AddLine(line string, opts *AddOptions) (bool, error) {
	if opts == nil {
		opts = &AddOptions{}
	}
	if opts.Backrefs && opts.Regexp.IsZero() {
		return false, configurationError(errors.New("backrefs cannot be set without a regexp"))
	}
	matchIdx := -1
	var matchLoc []int
	if !opts.Regexp.IsZero() {
		for i, ln := range d.lines {
			loc := opts.Regexp.search(ln.Text())
			if loc == nil {
				continue
			}
			matchIdx, matchLoc = i, loc
			if opts.MatchFirst {
				break
			}
		}
	}
	if matchIdx < 0 {
		if opts.Backrefs {
			// The template only makes sense against a regexp match; without
			// one there is nothing to add.
			return false, nil
		}
		want := textline.Chomp(line)
		for i, ln := range d.lines {
			if textline.Chomp(ln.Text()) != want {
				continue
			}
			matchIdx = i
			if opts.MatchFirst {
				break
			}
		}
	}
	if matchIdx >= 0 {
		text := line
		if opts.Backrefs {
			expanded, err := backref.Expand(line, opts.Regexp.re, d.lines[matchIdx].Text(), matchLoc)
			if err != nil {
				return false, backreferenceError(err)
			}
			text = expanded
		}
		repl := textline.FromRaw(textline.EnsureTerminated(text))
		if repl == d.lines[matchIdx] {
			return false, nil
		}
		d.lines[matchIdx] = repl
		return true, nil
	}
	d.insert(textline.FromRaw(textline.EnsureTerminated(line)), opts.Locator)
	return true, nil
}

// insert places ln at the point loc resolves to. Appending after the final
// line first terminates that line if it lacks a terminator, so the new line
// stays distinct.
func (d *Document) insert(ln textline.Line, loc Locator) {
	idx, ok := loc.resolve(d.lines)
	if !ok {
		idx = len(d.lines)
	}
	if idx == len(d.lines) && len(d.lines) > 0 {
		last := &d.lines[len(d.lines)-1]
		if last.End == textline.EndingNone {
			last.End = textline.EndingLF
		}
	}
	d.lines = append(d.lines, textline.Line{})
	copy(d.lines[idx+1:], d.lines[idx:])
	d.lines[idx] = ln
}

// RemoveLines deletes every line matching p and reports whether any were
// deleted. Surviving lines keep their terminators, including a final
// unterminated line. A zero Pattern is a ConfigurationError.
func (d *Document) RemoveLines(p Pattern) (bool, error) {
	if p.IsZero() {
		return false, configurationError(errors.New("no pattern given"))
	}
	var kept []textline.Line
	for _, ln := range d.lines {
		if p.search(ln.Text()) == nil {
			kept = append(kept, ln)
		}
	}
	if len(kept) == len(d.lines) {
		return false, nil
	}
	d.lines = kept
	return true, nil
}
