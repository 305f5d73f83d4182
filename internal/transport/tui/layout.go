package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// Screen geometry. Every painted line is at a fixed row so mouse events can
// be mapped back to cells and controls without inspecting the output.
const (
	cellInnerWidth  = 5
	cellInnerHeight = 1
	cellWidth       = cellInnerWidth + 2 // hidden or rounded border
	cellHeight      = cellInnerHeight + 2
	cellGap         = 1

	boardLeft = 2
	boardTop  = 2

	statusRow   = boardTop + entity.BoardSide*cellHeight + 1
	hintRow     = statusRow + 1
	controlsRow = hintRow + 2
	controlsGap = 2
)

type control int

const (
	controlNone control = iota
	controlRestart
	controlTheme
)

const restartLabel = "R Restart"

func themeLabel(theme entity.Theme) string {
	return "T Theme: " + theme.Title()
}

// cellAt returns the board cell under the terminal position x, y.
func cellAt(x, y int) (int, bool) {
	col, ok := span(x-boardLeft, cellWidth, cellGap)
	if !ok {
		return 0, false
	}

	row, ok := span(y-boardTop, cellHeight, 0)
	if !ok {
		return 0, false
	}

	return row*entity.BoardSide + col, true
}

// span maps an offset onto one of BoardSide equally sized segments separated by gap.
func span(offset, size, gap int) (int, bool) {
	if offset < 0 {
		return 0, false
	}

	stride := size + gap
	idx := offset / stride

	if idx >= entity.BoardSide || offset%stride >= size {
		return 0, false
	}

	return idx, true
}

// controlAt returns the control button under x, y for the given button style.
func controlAt(x, y int, button lipgloss.Style, theme entity.Theme) control {
	if y != controlsRow || x < boardLeft {
		return controlNone
	}

	restartEnd := boardLeft + lipgloss.Width(button.Render(restartLabel))
	if x < restartEnd {
		return controlRestart
	}

	themeStart := restartEnd + controlsGap
	themeEnd := themeStart + lipgloss.Width(button.Render(themeLabel(theme)))
	if x >= themeStart && x < themeEnd {
		return controlTheme
	}

	return controlNone
}
