package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/sumplete/internal/domain"
)

var (
	cellStyle = lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center)
	includedStyle = cellStyle.
			Foreground(lipgloss.Color("2"))
	excludedStyle = cellStyle.
			Foreground(lipgloss.Color("1"))
	cursorStyle = lipgloss.NewStyle().
			Reverse(true)
	targetStyle = lipgloss.NewStyle().
			Bold(true).
			Width(5).
			Align(lipgloss.Center)
)

// RenderGrid draws the grid with its markers (circle for included, X for
// excluded) and the row and column targets. cursor may be nil for
// non-interactive output.
func RenderGrid(g *domain.Grid, cursor *domain.CellCoord) string {
	var b strings.Builder
	n := g.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v, _ := g.Value(r, c)
			st, _ := g.State(r, c)
			var text string
			var style lipgloss.Style
			switch st {
			case domain.Included:
				text = fmt.Sprintf("○%d", v)
				style = includedStyle
			case domain.Excluded:
				text = fmt.Sprintf("✗%d", v)
				style = excludedStyle
			default:
				text = fmt.Sprintf("%d", v)
				style = cellStyle
			}
			if cursor != nil && cursor.Row == r && cursor.Col == c {
				style = style.Inherit(cursorStyle)
			}
			b.WriteString(style.Render(text))
		}
		b.WriteString(targetStyle.Render(fmt.Sprintf("%d", g.RowTarget(r))))
		b.WriteString("\n")
	}
	for c := 0; c < n; c++ {
		b.WriteString(targetStyle.Render(fmt.Sprintf("%d", g.ColTarget(c))))
	}
	b.WriteString("\n")
	return b.String()
}
