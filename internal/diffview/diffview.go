// Package diffview renders a unified diff of a file edit for preview output.
package diffview

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jwodder/lineinfile/internal/textline"
)

// contextSize is the number of unchanged lines shown on each side of a
// change. Two change runs separated by at most 2*contextSize unchanged lines
// are folded into a single hunk.
const contextSize = 3

type opKind uint8

const (
	opEqual opKind = iota
	opDelete
	opInsert
)

type lineOp struct {
	kind opKind
	text string // line content including its terminator
}

// Unified renders a unified diff from before to after, labeling the two
// sides fromName and toName. Equal inputs render as "". With color, hunk
// markers and changed lines carry ANSI color codes.
func Unified(fromName, toName, before, after string, color bool) string {
	if before == after {
		return ""
	}

	const (
		reset    = "\x1b[0m"
		red      = "\x1b[31m"
		green    = "\x1b[32m"
		magenta  = "\x1b[35m"
		cyanBold = "\x1b[1;36m"
	)
	colorize := func(s, code string) string {
		if !color {
			return s
		}
		return code + s + reset
	}

	ops := lineOps(before, after)

	var out []string
	out = append(out, colorize("--- "+fromName, cyanBold))
	out = append(out, colorize("+++ "+toName, cyanBold))

	// 1-based line numbers of the next old/new line at ops[i].
	oldPos, newPos := 1, 1

	i := 0
	for i < len(ops) {
		if ops[i].kind == opEqual {
			oldPos++
			newPos++
			i++
			continue
		}

		// Extend the hunk across change runs bridged by short equal runs.
		start := i
		end := i
		j := i
		for j < len(ops) {
			if ops[j].kind != opEqual {
				j++
				end = j
				continue
			}
			run := j
			for run < len(ops) && ops[run].kind == opEqual {
				run++
			}
			if run < len(ops) && run-j <= 2*contextSize {
				j = run
				continue
			}
			break
		}

		pre := contextSize
		if pre > start {
			pre = start
		}
		post := 0
		for post < contextSize && end+post < len(ops) && ops[end+post].kind == opEqual {
			post++
		}

		hunk := ops[start-pre : end+post]
		oldStart := oldPos - pre
		newStart := newPos - pre
		oldCount, newCount := 0, 0
		for _, op := range hunk {
			switch op.kind {
			case opEqual:
				oldCount++
				newCount++
			case opDelete:
				oldCount++
			case opInsert:
				newCount++
			}
		}

		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", oldStart, oldCount, newStart, newCount)
		out = append(out, colorize(header, magenta))
		for _, op := range hunk {
			text := textline.Chomp(op.text)
			switch op.kind {
			case opEqual:
				out = append(out, " "+text)
			case opDelete:
				out = append(out, colorize("-"+text, red))
			case opInsert:
				out = append(out, colorize("+"+text, green))
			}
		}

		for _, op := range ops[start : end+post] {
			switch op.kind {
			case opEqual:
				oldPos++
				newPos++
			case opDelete:
				oldPos++
			case opInsert:
				newPos++
			}
		}
		i = end + post
	}

	return strings.Join(out, "\n")
}

// lineOps produces a line-level edit script from before to after. Lines keep
// their terminators so mixed-ending inputs round-trip through the diff.
func lineOps(before, after string) []lineOp {
	dmp := diffmatchpatch.New()
	rOld, rNew, lineArray := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffMainRunes(rOld, rNew, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	var ops []lineOp
	decode := func(text string, kind opKind) {
		for _, r := range text {
			idx := int(r)
			if idx < 0 || idx >= len(lineArray) {
				continue
			}
			ops = append(ops, lineOp{kind: kind, text: lineArray[idx]})
		}
	}
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			decode(d.Text, opEqual)
		case diffmatchpatch.DiffDelete:
			decode(d.Text, opDelete)
		case diffmatchpatch.DiffInsert:
			decode(d.Text, opInsert)
		}
	}
	return ops
}
