package render

import (
	"fmt"
	"io"
	"strings"

	"metablob/internal/core"

	"github.com/charmbracelet/lipgloss"
)

// TextOptions controls text rendering of a shape grid.
type TextOptions struct {
	On, Off rune
	// Color styles occupied runs when the writer is a color terminal.
	Color string
}

// DefaultTextOptions draws occupied cells as '#' and empty ones as '.'.
func DefaultTextOptions() TextOptions {
	return TextOptions{On: '#', Off: '.'}
}

// Text writes cells as one line per grid row.
func Text(w io.Writer, cells []uint8, size core.Size, opts TextOptions) error {
	if len(cells) != size.W*size.H {
		return fmt.Errorf("render: %d cells for a %dx%d grid", len(cells), size.W, size.H)
	}
	var style *lipgloss.Style
	if opts.Color != "" {
		s := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color(opts.Color))
		style = &s
	}

	var sb strings.Builder
	for y := 0; y < size.H; y++ {
		row := cells[y*size.W : (y+1)*size.W]
		for x := 0; x < len(row); {
			end := x
			for end < len(row) && (row[end] != 0) == (row[x] != 0) {
				end++
			}
			if row[x] == 0 {
				sb.WriteString(strings.Repeat(string(opts.Off), end-x))
			} else {
				run := strings.Repeat(string(opts.On), end-x)
				if style != nil {
					run = style.Render(run)
				}
				sb.WriteString(run)
			}
			x = end
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
