package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// MarkdownStyle returns the named glamour style with every marker that
// would otherwise leak raw markup (heading hashes, emphasis stars, code
// ticks) removed. Unknown names fall back to the dark style.
func MarkdownStyle(name string) ansi.StyleConfig {
	cfg := styles.DarkStyleConfig
	if named, ok := styles.DefaultStyles[name]; ok && named != nil {
		cfg = *named
	}

	for _, h := range []*ansi.StyleBlock{&cfg.H1, &cfg.H2, &cfg.H3, &cfg.H4, &cfg.H5, &cfg.H6} {
		h.Prefix = ""
	}
	for _, p := range []*ansi.StylePrimitive{&cfg.Emph, &cfg.Strong, &cfg.Strikethrough, &cfg.Code.StylePrimitive} {
		p.BlockPrefix = ""
		p.BlockSuffix = ""
	}
	return cfg
}

// NewMarkdownRenderer builds a renderer for answer text. A width below one
// disables word wrapping.
func NewMarkdownRenderer(style string, width int) (*glamour.TermRenderer, error) {
	if width < 0 {
		width = 0
	}
	return glamour.NewTermRenderer(
		glamour.WithStyles(MarkdownStyle(style)),
		glamour.WithWordWrap(width),
	)
}

// RenderMarkdown renders md, returning it unchanged when r is nil or
// rendering fails.
func RenderMarkdown(r *glamour.TermRenderer, md string) string {
	if r == nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
