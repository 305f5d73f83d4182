package tictactoe

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// Renderer paints what the controller produces. It is called synchronously
// from the event loop that drives the controller.
type Renderer interface {
	Render(view entity.View)
	Focus(index int)
	Announce(text string)
}

// GameController owns the single game of the session.
type GameController struct {
	logger   *slog.Logger
	renderer Renderer

	game *entity.Game
}

// NewGameController creates a controller with a fresh game. Nothing is
// rendered until Reset is called.
func NewGameController(logger *slog.Logger, renderer Renderer) *GameController {
	return &GameController{
		logger:   logger.With("component", "game_controller"),
		renderer: renderer,
		game:     entity.NewGame(),
	}
}

// Reset replaces the game with a new one and focuses the first cell.
func (that *GameController) Reset() {
	that.game = entity.NewGame()

	view := that.game.View()
	that.renderer.Render(view)
	that.renderer.Focus(view.FocusIndex)
	that.renderer.Announce(entity.TurnAnnouncement(view.Turn))

	that.logger.Debug("game reset")
}

// ApplyMove places the current player's mark on index. Moves on occupied
// cells, out of range cells or after the game ended are ignored.
func (that *GameController) ApplyMove(index int) bool {
	log := that.logger.With("method", "ApplyMove", "cell", index)

	if !entity.IsValidCell(index) {
		log.Debug("move ignored", "reason", "invalid cell")
		return false
	}

	if that.game.IsFinished() {
		log.Debug("move ignored", "reason", "game finished", "status", that.game.Status)
		return false
	}

	if that.game.Board[index] != entity.MarkEmpty {
		log.Debug("move ignored", "reason", "cell occupied")
		return false
	}

	that.game.Board[index] = that.game.Turn
	that.game.UpdateGameState()

	view := that.game.View()
	that.renderer.Render(view)
	that.renderer.Announce(view.StatusLine())

	log.Debug("move applied", "status", view.Status, "turn", view.Turn)

	return true
}

// SetFocus moves the cursor without notifying the renderer.
func (that *GameController) SetFocus(index int) bool {
	if !entity.IsValidCell(index) {
		return false
	}

	that.game.FocusIndex = index

	return true
}

// MoveFocus moves the cursor one cell in direction, wrapping around the edges.
func (that *GameController) MoveFocus(direction Direction) {
	next, ok := Neighbor(that.game.FocusIndex, direction)
	if !ok {
		return
	}

	that.game.FocusIndex = next
	that.renderer.Focus(next)
}

func (that *GameController) FocusIndex() int {
	return that.game.FocusIndex
}

func (that *GameController) View() entity.View {
	return that.game.View()
}
