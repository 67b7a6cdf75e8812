package console

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oxolabs/oxo-console/internal/entity"
)

var (
	xStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6AFD76")).Bold(true).Render
	oStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5F61FC")).Bold(true).Render
	blankStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5A5A5A")).Render
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DDDA1D")).Bold(true).Render
	winStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FD6A6A")).Bold(true).Render
	drawStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#DDDA1D")).Render
)

// RenderBoard - draws the board as three rows of bracketed cells. Blank
// cells show their 1-based address so the player knows what to type.
func RenderBoard(board entity.Board) string {
	var builder strings.Builder

	for i, cell := range board {
		switch cell {
		case entity.PlayerX:
			builder.WriteString("[" + xStyle(cell) + "]")
		case entity.PlayerO:
			builder.WriteString("[" + oStyle(cell) + "]")
		default:
			builder.WriteString("[" + blankStyle(strconv.Itoa(i+1)) + "]")
		}

		if (i+1)%3 == 0 && i != entity.BoardCells-1 {
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

func renderTitle() string {
	return titleStyle("Noughts and Crosses")
}

// renderResult - the end of game banner.
func renderResult(result string) string {
	if result == entity.ResultDraw {
		return drawStyle("It's a draw")
	}

	return winStyle("Winner is: " + result)
}
