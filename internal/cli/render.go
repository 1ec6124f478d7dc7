package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

var (
	tile = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("15"))

	tiles = map[solver.Status]lipgloss.Style{
		solver.Correct:   tile.Background(lipgloss.Color("28")),
		solver.Misplaced: tile.Background(lipgloss.Color("178")),
		solver.Absent:    tile.Background(lipgloss.Color("240")),
	}
)

// RenderFeedback draws fb as a row of colored letter tiles.
func RenderFeedback(fb solver.Feedback) string {
	cells := make([]string, len(fb))
	for i, v := range fb {
		cells[i] = tiles[v.Status].Render(strings.ToUpper(string(v.Letter)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
