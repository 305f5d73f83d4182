package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

// Key names follow the DOM KeyboardEvent.key values; matching is case-insensitive.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyEnter      = "Enter"
	KeySpace      = " "
	KeyRestart    = "r"
	KeyTheme      = "t"
)

type gameController interface {
	Reset()
	ApplyMove(index int) bool
	SetFocus(index int) bool
	MoveFocus(direction tictactoe.Direction)
	FocusIndex() int
}

type themeToggler interface {
	Toggle(ctx context.Context) (entity.Theme, error)
}

// InputRouter turns raw pointer and key events into game and theme calls.
// It holds no game data of its own.
type InputRouter struct {
	logger *slog.Logger

	game   gameController
	themes themeToggler
}

func NewInputRouter(logger *slog.Logger, game gameController, themes themeToggler) *InputRouter {
	return &InputRouter{
		logger: logger.With("component", "input_router"),
		game:   game,
		themes: themes,
	}
}

// HandlePointer handles a click or tap on cell index.
func (that *InputRouter) HandlePointer(index int) {
	that.game.ApplyMove(index)
}

// HandleFocus handles a cell receiving focus from the pointer.
func (that *InputRouter) HandleFocus(index int) {
	that.game.SetFocus(index)
}

// HandleKey dispatches a key press. The result tells the caller whether the
// key's default action (scrolling, activating a control) must be suppressed.
func (that *InputRouter) HandleKey(ctx context.Context, key string) bool {
	switch strings.ToLower(key) {
	case KeyRestart:
		that.Restart()
		return false
	case KeyTheme:
		that.ToggleTheme(ctx)
		return false
	case strings.ToLower(KeyEnter), KeySpace:
		that.game.ApplyMove(that.game.FocusIndex())
		return true
	}

	if direction, ok := arrowDirection(key); ok {
		that.game.MoveFocus(direction)
		return true
	}

	return false
}

// Restart handles the restart control.
func (that *InputRouter) Restart() {
	that.game.Reset()
}

// ToggleTheme handles the theme control. A failed save is logged only; the
// new theme is already active.
func (that *InputRouter) ToggleTheme(ctx context.Context) {
	log := that.logger.With("method", "ToggleTheme")

	theme, err := that.themes.Toggle(ctx)
	if err != nil {
		log.Error("failed to persist theme", "theme", theme, "error", err)
		return
	}

	log.Debug("theme toggled", "theme", theme)
}

func arrowDirection(key string) (tictactoe.Direction, bool) {
	switch strings.ToLower(key) {
	case strings.ToLower(KeyArrowUp):
		return tictactoe.DirectionUp, true
	case strings.ToLower(KeyArrowDown):
		return tictactoe.DirectionDown, true
	case strings.ToLower(KeyArrowLeft):
		return tictactoe.DirectionLeft, true
	case strings.ToLower(KeyArrowRight):
		return tictactoe.DirectionRight, true
	default:
		return 0, false
	}
}
