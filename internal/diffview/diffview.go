// Package diffview computes line-level diffs between a stored snapshot
// and the working file and renders them unified-style.
package diffview

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Kind classifies a diff line.
type Kind int

const (
	KindContext Kind = iota
	KindAdded
	KindRemoved
)

// Line is a single line of a hunk.
type Line struct {
	Kind    Kind
	Content string
}

// Hunk is a contiguous group of changed lines with surrounding context.
type Hunk struct {
	OldStart, OldCount int
	NewStart, NewCount int
	Lines              []Line
}

// contextLines is the number of unchanged lines kept around each change.
const contextLines = 3

// Compute returns the line-level hunks between two texts. Identical
// texts yield no hunks.
func Compute(oldText, newText string) []Hunk {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0

	// Line-level reduction avoids newline boundary artifacts when the
	// diffs are converted back into whole-line operations.
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	return group(toOps(diffs))
}

// op is one whole-line operation with its position in each side.
// oldLine is -1 for additions, newLine is -1 for removals.
type op struct {
	kind    Kind
	oldLine int
	newLine int
	content string
}

func toOps(diffs []diffmatchpatch.Diff) []op {
	var ops []op
	oldLine, newLine := 0, 0

	for _, d := range diffs {
		lines := strings.Split(d.Text, "\n")
		if len(lines) == 1 && lines[0] == "" && d.Type != diffmatchpatch.DiffEqual {
			continue
		}
		// Split leaves a trailing empty element after the final newline.
		if len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}

		for _, line := range lines {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				ops = append(ops, op{KindContext, oldLine, newLine, line})
				oldLine++
				newLine++
			case diffmatchpatch.DiffDelete:
				ops = append(ops, op{KindRemoved, oldLine, -1, line})
				oldLine++
			case diffmatchpatch.DiffInsert:
				ops = append(ops, op{KindAdded, -1, newLine, line})
				newLine++
			}
		}
	}
	return ops
}

func group(ops []op) []Hunk {
	if len(ops) == 0 {
		return nil
	}

	var hunks []Hunk
	var cur *Hunk
	lastChange := -1

	for i, o := range ops {
		if o.kind != KindContext {
			if cur == nil {
				cur = &Hunk{}
				start := i - contextLines
				if start < 0 {
					start = 0
				}
				for j := start; j < i; j++ {
					if ops[j].kind == KindContext {
						cur.Lines = append(cur.Lines, Line{KindContext, ops[j].content})
					}
				}
				cur.OldStart = ops[start].oldLine + 1
				cur.NewStart = ops[start].newLine + 1
				if ops[start].oldLine < 0 {
					cur.OldStart = 0
				}
				if ops[start].newLine < 0 {
					cur.NewStart = 0
				}
			}
			lastChange = i
		}

		if cur == nil {
			continue
		}
		cur.Lines = append(cur.Lines, Line{o.kind, o.content})

		// Close the hunk once enough unchanged lines follow the last
		// change, trimming the overshoot back down to the context size.
		if o.kind == KindContext && i-lastChange > contextLines {
			keep := len(cur.Lines) - (i - lastChange - contextLines)
			if keep > 0 && keep < len(cur.Lines) {
				cur.Lines = cur.Lines[:keep]
			}
			count(cur)
			hunks = append(hunks, *cur)
			cur = nil
		}
	}

	if cur != nil && len(cur.Lines) > 0 {
		count(cur)
		hunks = append(hunks, *cur)
	}
	return hunks
}

func count(h *Hunk) {
	for _, l := range h.Lines {
		if l.Kind != KindAdded {
			h.OldCount++
		}
		if l.Kind != KindRemoved {
			h.NewCount++
		}
	}
}
