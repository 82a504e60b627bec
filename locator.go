package lineinfile

import (
	"fmt"

	"github.com/jwodder/lineinfile/internal/textline"
)

type locatorMode uint8

const (
	locateEOF locatorMode = iota // zero value, so the default insertion point is end-of-document
	locateBOF
	locateAfterFirst
	locateAfterLast
	locateBeforeFirst
	locateBeforeLast
)

// A Locator names the point at which AddLine inserts a line when no existing
// line is replaced. The zero Locator (and AtEOF) appends at the end of the
// document. Locators carrying a pattern that matches no line fall back to
// appending at the end.
type Locator struct {
	mode    locatorMode
	pattern Pattern
}

// AtBOF places the line before the first line of the document.
func AtBOF() Locator { return Locator{mode: locateBOF} }

// AtEOF places the line after the last line of the document.
func AtEOF() Locator { return Locator{mode: locateEOF} }

// AfterFirst places the line directly after the first line matching p.
func AfterFirst(p Pattern) Locator { return Locator{mode: locateAfterFirst, pattern: p} }

// AfterLast places the line directly after the last line matching p.
func AfterLast(p Pattern) Locator { return Locator{mode: locateAfterLast, pattern: p} }

// BeforeFirst places the line directly before the first line matching p.
func BeforeFirst(p Pattern) Locator { return Locator{mode: locateBeforeFirst, pattern: p} }

// BeforeLast places the line directly before the last line matching p.
func BeforeLast(p Pattern) Locator { return Locator{mode: locateBeforeLast, pattern: p} }

// String describes the locator for diagnostics.
func (l Locator) String() string {
	switch l.mode {
	case locateEOF:
		return "at-eof"
	case locateBOF:
		return "at-bof"
	case locateAfterFirst:
		return fmt.Sprintf("after-first(%s)", l.pattern)
	case locateAfterLast:
		return fmt.Sprintf("after-last(%s)", l.pattern)
	case locateBeforeFirst:
		return fmt.Sprintf("before-first(%s)", l.pattern)
	case locateBeforeLast:
		return fmt.Sprintf("before-last(%s)", l.pattern)
	default:
		return fmt.Sprintf("locator(%d)", l.mode)
	}
}

// resolve returns the index at which to insert a new line. ok is false when
// the line should be appended after the final line instead; pattern locators
// report that when no line matches.
func (l Locator) resolve(lines []textline.Line) (idx int, ok bool) {
	switch l.mode {
	case locateEOF:
		return 0, false
	case locateBOF:
		return 0, true
	case locateAfterFirst, locateAfterLast, locateBeforeFirst, locateBeforeLast:
		first := l.mode == locateAfterFirst || l.mode == locateBeforeFirst
		found := -1
		for i, ln := range lines {
			if l.pattern.search(ln.Text()) != nil {
				found = i
				if first {
					break
				}
			}
		}
		if found < 0 {
			return 0, false
		}
		if l.mode == locateAfterFirst || l.mode == locateAfterLast {
			return found + 1, true
		}
		return found, true
	default:
		panic(fmt.Sprintf("unknown locator mode %d", l.mode))
	}
}
