package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
)

type inputRouter interface {
	HandlePointer(index int)
	HandleFocus(index int)
	HandleKey(ctx context.Context, key string) bool
	Restart()
	ToggleTheme(ctx context.Context)
}

type themeSource interface {
	Current() entity.Theme
}

// Model is the Bubble Tea program model. Bubble Tea delivers every message
// on one goroutine, so the game needs no locking.
type Model struct {
	ctx     context.Context
	logger  *slog.Logger
	timeout time.Duration

	router   inputRouter
	renderer *Renderer
	themes   themeSource
}

func NewModel(ctx context.Context, logger *slog.Logger, timeout time.Duration, router inputRouter, renderer *Renderer, themes themeSource) *Model {
	return &Model{
		ctx:      ctx,
		logger:   logger.With("component", "tui"),
		timeout:  timeout,
		router:   router,
		renderer: renderer,
		themes:   themes,
	}
}

func (that *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(title)
}

func (that *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		return that.handleKey(m)
	case tea.MouseMsg:
		that.handleMouse(m)
	}

	return that, nil
}

func (that *Model) View() string {
	return that.renderer.Paint(that.themes.Current())
}

func (that *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		return that, tea.Quit
	}

	key, ok := translateKey(msg)
	if !ok {
		return that, nil
	}

	ctx, cancel := context.WithTimeout(that.ctx, that.timeout)
	defer cancel()

	if intercepted := that.router.HandleKey(ctx, key); intercepted {
		that.logger.Debug("key handled", "key", key)
	}

	return that, nil
}

func (that *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionMotion:
		if cell, ok := cellAt(msg.X, msg.Y); ok && cell != that.renderer.FocusedCell() {
			// the terminal has no native focus, so hovering moves it
			that.renderer.Focus(cell)
			that.router.HandleFocus(cell)
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		that.handleClick(msg.X, msg.Y)
	}
}

func (that *Model) handleClick(x, y int) {
	if cell, ok := cellAt(x, y); ok {
		that.router.HandlePointer(cell)
		return
	}

	theme := that.themes.Current()

	switch controlAt(x, y, newStyles(theme).button, theme) {
	case controlRestart:
		that.router.Restart()
	case controlTheme:
		ctx, cancel := context.WithTimeout(that.ctx, that.timeout)
		defer cancel()

		that.router.ToggleTheme(ctx)
	case controlNone:
	}
}

// translateKey maps Bubble Tea key names onto the router's key names.
func translateKey(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return usecase.KeyArrowUp, true
	case tea.KeyDown:
		return usecase.KeyArrowDown, true
	case tea.KeyLeft:
		return usecase.KeyArrowLeft, true
	case tea.KeyRight:
		return usecase.KeyArrowRight, true
	case tea.KeyEnter:
		return usecase.KeyEnter, true
	case tea.KeySpace:
		return usecase.KeySpace, true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return string(msg.Runes), true
		}
	}

	return "", false
}
