package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const title = "Tic-Tac-Toe"

// Renderer keeps what the game controller last pushed and paints it on demand.
// Bubble Tea calls View after every Update, so painting is pull based.
type Renderer struct {
	view         entity.View
	focus        int
	announcement string
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (that *Renderer) Render(view entity.View) {
	that.view = view
}

func (that *Renderer) Focus(index int) {
	if entity.IsValidCell(index) {
		that.focus = index
	}
}

// Announce records the text for the live status line.
func (that *Renderer) Announce(text string) {
	that.announcement = text
}

func (that *Renderer) Announcement() string {
	return that.announcement
}

func (that *Renderer) FocusedCell() int {
	return that.focus
}

// Paint draws the whole screen. The row layout must match the constants in layout.go.
func (that *Renderer) Paint(theme entity.Theme) string {
	st := newStyles(theme)

	status := that.announcement
	if status == "" {
		status = that.view.StatusLine()
	}

	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		st.button.Render(restartLabel),
		strings.Repeat(" ", controlsGap),
		st.button.Render(themeLabel(theme)),
	)

	screen := lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render(title),
		"",
		that.paintBoard(st),
		"",
		st.status.Render(status),
		st.hint.Render(that.view.HintLine()),
		"",
		controls,
	)

	// the first line is the terminal's row 0
	return st.screen.Render(screen)
}

func (that *Renderer) paintBoard(st styles) string {
	rows := make([]string, 0, entity.BoardSide)
	gap := strings.Repeat(" ", cellGap)

	for row := 0; row < entity.BoardSide; row++ {
		cells := make([]string, 0, entity.BoardSide*2-1)

		for col := 0; col < entity.BoardSide; col++ {
			if col > 0 {
				cells = append(cells, gap)
			}
			cells = append(cells, that.paintCell(st, row*entity.BoardSide+col))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (that *Renderer) paintCell(st styles, index int) string {
	style := st.cell
	if index == that.focus {
		style = st.cellFocus
	}

	background := st.palette.cell
	switch {
	case that.view.IsWinningCell(index):
		background = st.palette.win
	case that.view.IsCellDisabled(index):
		background = st.palette.disabled
	}

	return style.Background(background).Render(st.mark(that.view.Board[index], background))
}
