package editor

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter renders source text to ANSI-styled terminal output.
// Implementations must preserve the text itself: stripping escape
// sequences from the result yields the input (modulo a trailing
// newline).
type Highlighter interface {
	Highlight(code, language string) (string, error)
}

// ChromaHighlighter highlights through alecthomas/chroma. The language
// tag selects the lexer; unknown tags pass the text through unstyled.
// Rendered output is cached per (language, theme, code) since hosts
// re-render the same file on every state change.
type ChromaHighlighter struct {
	theme     string
	formatter string

	mu    sync.RWMutex
	cache map[string]string
}

// NewChromaHighlighter builds a highlighter for the named Chroma theme.
// An empty theme falls back to Chroma's default style.
func NewChromaHighlighter(theme string) *ChromaHighlighter {
	return &ChromaHighlighter{
		theme:     theme,
		formatter: "terminal256",
		cache:     make(map[string]string),
	}
}

func (h *ChromaHighlighter) Highlight(code, language string) (string, error) {
	key := language + "\x00" + h.theme + "\x00" + code

	h.mu.RLock()
	if v, ok := h.cache[key]; ok {
		h.mu.RUnlock()
		return v, nil
	}
	h.mu.RUnlock()

	out := h.render(code, language)

	h.mu.Lock()
	h.cache[key] = out
	h.mu.Unlock()
	return out, nil
}

func (h *ChromaHighlighter) render(code, language string) string {
	lex := lexers.Get(language)
	if lex == nil {
		return code
	}
	lex = chroma.Coalesce(lex)

	sty := styles.Get(h.theme)
	if sty == nil {
		sty = styles.Fallback
	}
	fmtr := formatters.Get(h.formatter)
	if fmtr == nil {
		fmtr = formatters.Fallback
	}

	it, err := lex.Tokenise(nil, code)
	if err != nil {
		return code
	}
	var sb strings.Builder
	if err := fmtr.Format(&sb, sty, it); err != nil {
		return code
	}
	// Some lexers force a trailing newline (EnsureNL); drop it so the
	// highlighted text lines up with the raw buffer.
	out := sb.String()
	if !strings.HasSuffix(code, "\n") {
		out = strings.TrimRight(out, "\n")
	}
	return out
}
