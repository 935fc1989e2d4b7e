package tui

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders md for the terminal, wrapped at width columns.
func RenderMarkdown(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
