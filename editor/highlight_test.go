package editor

import (
	"strings"
	"testing"
)

func TestChromaHighlighter_UnknownLanguagePassesThrough(t *testing.T) {
	h := NewChromaHighlighter("monokai")
	code := "plain old text"
	got, err := h.Highlight(code, "no-such-grammar")
	if err != nil {
		t.Fatalf("Highlight: unexpected error %v", err)
	}
	if got != code {
		t.Fatalf("unknown language output: got %q, want %q", got, code)
	}
}

func TestChromaHighlighter_PreservesTextUnderStyling(t *testing.T) {
	h := NewChromaHighlighter("monokai")
	code := "let x=1;"
	got, err := h.Highlight(code, "javascript")
	if err != nil {
		t.Fatalf("Highlight: unexpected error %v", err)
	}
	if got == code {
		t.Fatalf("javascript output carries no styling: %q", got)
	}
	if stripped := stripANSI(got); stripped != code {
		t.Fatalf("stripped output: got %q, want %q", stripped, code)
	}
}

func TestChromaHighlighter_KeepsTrailingNewlineParity(t *testing.T) {
	h := NewChromaHighlighter("monokai")

	got, err := h.Highlight("x=1", "python")
	if err != nil {
		t.Fatalf("Highlight: unexpected error %v", err)
	}
	if strings.HasSuffix(stripANSI(got), "\n") {
		t.Fatalf("output grew a trailing newline: %q", got)
	}

	got, err = h.Highlight("x=1\n", "python")
	if err != nil {
		t.Fatalf("Highlight: unexpected error %v", err)
	}
	if !strings.HasSuffix(stripANSI(got), "\n") {
		t.Fatalf("output lost its trailing newline: %q", got)
	}
}

func TestChromaHighlighter_CachesRenderedOutput(t *testing.T) {
	h := NewChromaHighlighter("monokai")

	first, err := h.Highlight("x=1", "python")
	if err != nil {
		t.Fatalf("Highlight: unexpected error %v", err)
	}
	if got, want := len(h.cache), 1; got != want {
		t.Fatalf("cache size after first render: got %d, want %d", got, want)
	}

	second, err := h.Highlight("x=1", "python")
	if err != nil {
		t.Fatalf("Highlight: unexpected error %v", err)
	}
	if first != second {
		t.Fatalf("cached render differs: %q vs %q", first, second)
	}
	if got, want := len(h.cache), 1; got != want {
		t.Fatalf("cache size after repeat render: got %d, want %d", got, want)
	}
}
