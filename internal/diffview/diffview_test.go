package diffview

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/keshon/promptvc/internal/ui"
)

func TestComputeIdenticalTexts(t *testing.T) {
	text := "one\ntwo\nthree\n"
	if hunks := Compute(text, text); len(hunks) != 0 {
		t.Fatalf("identical texts produced %d hunks", len(hunks))
	}
}

func TestComputeSingleChange(t *testing.T) {
	oldText := "one\ntwo\nthree\n"
	newText := "one\n2\nthree\n"

	hunks := Compute(oldText, newText)
	if len(hunks) != 1 {
		t.Fatalf("got %d hunks, want 1", len(hunks))
	}
	h := hunks[0]
	if h.OldStart != 1 || h.NewStart != 1 {
		t.Errorf("hunk starts at -%d +%d, want -1 +1", h.OldStart, h.NewStart)
	}
	if h.OldCount != 3 || h.NewCount != 3 {
		t.Errorf("hunk counts -%d +%d, want -3 +3", h.OldCount, h.NewCount)
	}

	var kinds []Kind
	var contents []string
	for _, l := range h.Lines {
		kinds = append(kinds, l.Kind)
		contents = append(contents, l.Content)
	}
	wantKinds := []Kind{KindContext, KindRemoved, KindAdded, KindContext}
	wantContents := []string{"one", "two", "2", "three"}
	for i := range wantKinds {
		if kinds[i] != wantKinds[i] || contents[i] != wantContents[i] {
			t.Errorf("line %d = (%v, %q), want (%v, %q)",
				i, kinds[i], contents[i], wantKinds[i], wantContents[i])
		}
	}
}

func TestComputeDistantChangesSplitIntoHunks(t *testing.T) {
	var oldB, newB strings.Builder
	for i := 1; i <= 12; i++ {
		oldB.WriteString(fmt.Sprintf("line %d\n", i))
		if i == 1 || i == 12 {
			newB.WriteString(fmt.Sprintf("LINE %d\n", i))
		} else {
			newB.WriteString(fmt.Sprintf("line %d\n", i))
		}
	}

	hunks := Compute(oldB.String(), newB.String())
	if len(hunks) != 2 {
		t.Fatalf("got %d hunks, want 2", len(hunks))
	}
	if hunks[0].OldStart != 1 {
		t.Errorf("first hunk starts at %d, want 1", hunks[0].OldStart)
	}
	if hunks[1].OldStart != 9 {
		t.Errorf("second hunk starts at %d, want 9", hunks[1].OldStart)
	}
}

func TestComputeAdditionOnly(t *testing.T) {
	hunks := Compute("a\nb\n", "a\nb\nc\n")
	if len(hunks) != 1 {
		t.Fatalf("got %d hunks, want 1", len(hunks))
	}
	h := hunks[0]
	if h.OldCount != 2 || h.NewCount != 3 {
		t.Errorf("hunk counts -%d +%d, want -2 +3", h.OldCount, h.NewCount)
	}
	last := h.Lines[len(h.Lines)-1]
	if last.Kind != KindAdded || last.Content != "c" {
		t.Errorf("last line = (%v, %q), want added %q", last.Kind, last.Content, "c")
	}
}

func TestRenderUnifiedShape(t *testing.T) {
	ui.DisableColor()

	var buf bytes.Buffer
	Render(&buf, "v0.1.0", "current", Compute("one\ntwo\nthree\n", "one\n2\nthree\n"))
	out := buf.String()

	for _, want := range []string{
		"--- v0.1.0",
		"+++ current",
		"@@ -1,3 +1,3 @@",
		" one",
		"-two",
		"+2",
		" three",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered diff missing %q:\n%s", want, out)
		}
	}
}

func TestRenderNoDifferences(t *testing.T) {
	ui.DisableColor()

	var buf bytes.Buffer
	Render(&buf, "v0.1.0", "current", nil)
	if !strings.Contains(buf.String(), "No differences.") {
		t.Errorf("output = %q", buf.String())
	}
}
