package highlight

import (
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// Highlighter renders Java source for the terminal.
type Highlighter struct {
	style   string
	enabled bool
}

// New returns a highlighter using the named chroma style. With enabled false
// the source is written unchanged.
func New(style string, enabled bool) *Highlighter {
	if style == "" {
		style = "monokai"
	}
	return &Highlighter{style: style, enabled: enabled}
}

// Write highlights code to w, falling back to plain text when chroma fails.
func (h *Highlighter) Write(w io.Writer, code string) error {
	if !strings.HasSuffix(code, "\n") {
		code += "\n"
	}
	if h.enabled {
		if err := quick.Highlight(w, code, "java", "terminal256", h.style); err == nil {
			return nil
		}
	}
	_, err := io.WriteString(w, code)
	return err
}
