package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

type palette struct {
	text     lipgloss.Color
	muted    lipgloss.Color
	accent   lipgloss.Color
	markX    lipgloss.Color
	markO    lipgloss.Color
	cell     lipgloss.Color
	disabled lipgloss.Color
	win      lipgloss.Color
	focus    lipgloss.Color
}

var palettes = map[entity.Theme]palette{
	entity.ThemeLight: {
		text:     lipgloss.Color("#1f2328"),
		muted:    lipgloss.Color("#6e7781"),
		accent:   lipgloss.Color("#0969da"),
		markX:    lipgloss.Color("#cf222e"),
		markO:    lipgloss.Color("#0550ae"),
		cell:     lipgloss.Color("#eaeef2"),
		disabled: lipgloss.Color("#d0d7de"),
		win:      lipgloss.Color("#aceebb"),
		focus:    lipgloss.Color("#bf8700"),
	},
	entity.ThemeDark: {
		text:     lipgloss.Color("#e6edf3"),
		muted:    lipgloss.Color("#8b949e"),
		accent:   lipgloss.Color("#58a6ff"),
		markX:    lipgloss.Color("#ff7b72"),
		markO:    lipgloss.Color("#79c0ff"),
		cell:     lipgloss.Color("#21262d"),
		disabled: lipgloss.Color("#161b22"),
		win:      lipgloss.Color("#2ea043"),
		focus:    lipgloss.Color("#d29922"),
	},
}

// styles are the lipgloss styles for one theme.
type styles struct {
	title     lipgloss.Style
	status    lipgloss.Style
	hint      lipgloss.Style
	button    lipgloss.Style
	cell      lipgloss.Style
	cellFocus lipgloss.Style
	markX     lipgloss.Style
	markO     lipgloss.Style
	screen    lipgloss.Style
	palette   palette
}

func newStyles(theme entity.Theme) styles {
	colors := palettes[entity.ParseTheme(string(theme))]

	cell := lipgloss.NewStyle().
		Width(cellInnerWidth).
		Height(cellInnerHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Background(colors.cell).
		Border(lipgloss.HiddenBorder())

	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(colors.accent),
		status:    lipgloss.NewStyle().Bold(true).Foreground(colors.text),
		hint:      lipgloss.NewStyle().Foreground(colors.muted),
		button:    lipgloss.NewStyle().Padding(0, 1).Foreground(colors.text).Background(colors.disabled),
		cell:      cell,
		cellFocus: cell.Border(lipgloss.RoundedBorder()).BorderForeground(colors.focus),
		markX:     lipgloss.NewStyle().Bold(true).Foreground(colors.markX),
		markO:     lipgloss.NewStyle().Bold(true).Foreground(colors.markO),
		screen:    lipgloss.NewStyle().MarginLeft(boardLeft),
		palette:   colors,
	}
}

func (that styles) mark(mark entity.Mark, background lipgloss.Color) string {
	switch mark {
	case entity.MarkX:
		return that.markX.Background(background).Render(string(mark))
	case entity.MarkO:
		return that.markO.Background(background).Render(string(mark))
	default:
		return ""
	}
}
