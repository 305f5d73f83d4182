package tictactoe

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

type recordingRenderer struct {
	views         []entity.View
	focused       []int
	announcements []string
}

func (that *recordingRenderer) Render(view entity.View) {
	that.views = append(that.views, view)
}

func (that *recordingRenderer) Focus(index int) {
	that.focused = append(that.focused, index)
}

func (that *recordingRenderer) Announce(text string) {
	that.announcements = append(that.announcements, text)
}

func (that *recordingRenderer) last() entity.View {
	return that.views[len(that.views)-1]
}

func newTestController(t *testing.T) (*GameController, *recordingRenderer) {
	t.Helper()

	renderer := &recordingRenderer{}
	controller := NewGameController(slog.New(slog.NewTextHandler(io.Discard, nil)), renderer)
	controller.Reset()

	return controller, renderer
}

func play(t *testing.T, controller *GameController, cells ...int) {
	t.Helper()

	for _, cell := range cells {
		require.True(t, controller.ApplyMove(cell), "move on cell %d", cell)
	}
}

func TestGameController_Reset(t *testing.T) {
	t.Run("Reset renders an empty board and announces X", func(t *testing.T) {
		// When: a new controller is reset
		_, renderer := newTestController(t)

		// Then: the renderer got an initial view, focus on cell 0 and the announcement
		require.Len(t, renderer.views, 1)
		view := renderer.last()
		assert.Equal(t, entity.Board{}, view.Board)
		assert.Equal(t, entity.MarkX, view.Turn)
		assert.Equal(t, entity.StatusInProgress, view.Status)
		assert.Equal(t, 0, view.FocusIndex)
		assert.Nil(t, view.WinningLine)
		assert.Equal(t, []int{0}, renderer.focused)
		assert.Equal(t, []string{"Player X's turn"}, renderer.announcements)
	})

	t.Run("Reset after a won game starts over", func(t *testing.T) {
		// Given: a game won by X with focus moved away
		controller, renderer := newTestController(t)
		play(t, controller, 0, 4, 1, 5, 2)
		controller.SetFocus(7)

		// When: resetting
		controller.Reset()

		// Then: everything is back to the initial state
		view := renderer.last()
		assert.Equal(t, entity.Board{}, view.Board)
		assert.Equal(t, entity.MarkX, view.Turn)
		assert.Equal(t, entity.StatusInProgress, view.Status)
		assert.Equal(t, entity.MarkEmpty, view.Winner)
		assert.Nil(t, view.WinningLine)
		assert.Equal(t, 0, controller.FocusIndex())
		assert.Equal(t, "Player X's turn", renderer.announcements[len(renderer.announcements)-1])
	})
}

func TestGameController_ApplyMove(t *testing.T) {
	t.Run("Players alternate until the game ends", func(t *testing.T) {
		// Given: a new game
		controller, _ := newTestController(t)
		expected := entity.MarkX

		// When: playing moves that do not finish the game
		for _, cell := range []int{0, 1, 2, 4, 3, 5} {
			assert.Equal(t, expected, controller.View().Turn)
			require.True(t, controller.ApplyMove(cell))

			// Then: the turn flips after every move
			expected = expected.Opponent()
		}

		board := controller.View().Board
		diff := board.Count(entity.MarkX) - board.Count(entity.MarkO)
		assert.Contains(t, []int{0, 1}, diff)
	})

	t.Run("X wins on the top row", func(t *testing.T) {
		// Given: a new game
		controller, renderer := newTestController(t)

		// When: X completes the top row
		play(t, controller, 0, 4, 1, 5, 2)

		// Then: X wins with line 0,1,2
		view := renderer.last()
		assert.Equal(t, entity.StatusWon, view.Status)
		assert.Equal(t, entity.MarkX, view.Winner)
		require.NotNil(t, view.WinningLine)
		assert.Equal(t, [3]int{0, 1, 2}, *view.WinningLine)
		assert.Equal(t, "Player X wins!", renderer.announcements[len(renderer.announcements)-1])
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a new game
		controller, renderer := newTestController(t)

		// When: the board is filled without a line
		play(t, controller, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// Then: the game is a draw
		view := renderer.last()
		assert.Equal(t, entity.StatusDraw, view.Status)
		assert.Equal(t, entity.MarkEmpty, view.Winner)
		assert.Nil(t, view.WinningLine)
		assert.Equal(t, "Draw game.", renderer.announcements[len(renderer.announcements)-1])
	})

	t.Run("Win on the last cell is not a draw", func(t *testing.T) {
		// Given: a new game
		controller, _ := newTestController(t)

		// When: the ninth move fills the board and completes the 0,4,8 diagonal
		play(t, controller, 0, 1, 2, 3, 4, 5, 7, 6, 8)

		// Then: the win check runs before the draw check
		view := controller.View()
		assert.True(t, view.Board.IsFull())
		assert.Equal(t, entity.StatusWon, view.Status)
		assert.Equal(t, [3]int{0, 4, 8}, *view.WinningLine)
	})

	t.Run("Occupied cell is ignored", func(t *testing.T) {
		// Given: X has played cell 0
		controller, renderer := newTestController(t)
		play(t, controller, 0)
		before := controller.View()
		renders := len(renderer.views)

		// When: O tries the same cell
		ok := controller.ApplyMove(0)

		// Then: nothing changed and nothing was rendered
		assert.False(t, ok)
		assert.Equal(t, before, controller.View())
		assert.Len(t, renderer.views, renders)
	})

	t.Run("Out of range cells are ignored", func(t *testing.T) {
		// Given: a new game
		controller, renderer := newTestController(t)
		before := controller.View()

		// When: invalid cells are played
		assert.False(t, controller.ApplyMove(-1))
		assert.False(t, controller.ApplyMove(9))

		// Then: nothing changed
		assert.Equal(t, before, controller.View())
		assert.Len(t, renderer.views, 1)
	})

	t.Run("Moves after a win do not touch the board", func(t *testing.T) {
		// Given: a game won by X
		controller, renderer := newTestController(t)
		play(t, controller, 0, 4, 1, 5, 2)
		before := controller.View()
		announcements := len(renderer.announcements)

		// When: trying every remaining cell
		for cell := 0; cell < entity.BoardSize; cell++ {
			assert.False(t, controller.ApplyMove(cell))
		}

		// Then: the board is frozen and nothing was announced
		assert.Equal(t, before, controller.View())
		assert.Len(t, renderer.announcements, announcements)
	})

	t.Run("Moves after a draw are ignored", func(t *testing.T) {
		// Given: a drawn game
		controller, _ := newTestController(t)
		play(t, controller, 0, 1, 2, 4, 3, 5, 7, 6, 8)
		before := controller.View()

		// When: trying to move
		ok := controller.ApplyMove(4)

		// Then: nothing changes
		assert.False(t, ok)
		assert.Equal(t, before, controller.View())
	})

	t.Run("Each winning line is reported", func(t *testing.T) {
		// O moves fill cells that never complete a line before X does.
		fillers := map[[3]int][]int{
			{0, 1, 2}: {3, 4},
			{3, 4, 5}: {0, 1},
			{6, 7, 8}: {0, 1},
			{0, 3, 6}: {1, 2},
			{1, 4, 7}: {0, 2},
			{2, 5, 8}: {0, 1},
			{0, 4, 8}: {1, 2},
			{2, 4, 6}: {0, 1},
		}

		for _, combo := range entity.WinCombos {
			// Given: a new game
			controller, _ := newTestController(t)
			filler := fillers[combo]

			// When: X fills the line while O plays elsewhere
			play(t, controller, combo[0], filler[0], combo[1], filler[1], combo[2])

			// Then: X wins with that line
			view := controller.View()
			require.Equal(t, entity.StatusWon, view.Status, "combo %v", combo)
			assert.Equal(t, entity.MarkX, view.Winner)
			assert.Equal(t, combo, *view.WinningLine)
		}
	})
}

func TestGameController_Focus(t *testing.T) {
	t.Run("SetFocus updates the index without rendering", func(t *testing.T) {
		// Given: a new game
		controller, renderer := newTestController(t)

		// When: focus is set on cell 5
		ok := controller.SetFocus(5)

		// Then: the index moved and the renderer was not called
		assert.True(t, ok)
		assert.Equal(t, 5, controller.FocusIndex())
		assert.Equal(t, []int{0}, renderer.focused)
		assert.Len(t, renderer.views, 1)
	})

	t.Run("SetFocus rejects out of range indices", func(t *testing.T) {
		controller, _ := newTestController(t)
		controller.SetFocus(3)

		assert.False(t, controller.SetFocus(-1))
		assert.False(t, controller.SetFocus(9))
		assert.Equal(t, 3, controller.FocusIndex())
	})

	t.Run("Focus moves after the game ended", func(t *testing.T) {
		// Given: a game won by X
		controller, _ := newTestController(t)
		play(t, controller, 0, 4, 1, 5, 2)

		// When: moving focus
		controller.MoveFocus(DirectionDown)

		// Then: focus moved anyway
		assert.Equal(t, 3, controller.FocusIndex())
	})

	t.Run("MoveFocus up from the corner wraps to the bottom row", func(t *testing.T) {
		// Given: focus on cell 0
		controller, renderer := newTestController(t)

		// When: moving up
		controller.MoveFocus(DirectionUp)

		// Then: focus is on cell 6 and the renderer was told
		assert.Equal(t, 6, controller.FocusIndex())
		assert.Equal(t, []int{0, 6}, renderer.focused)
	})

	t.Run("Enter after navigating places on the focused cell", func(t *testing.T) {
		// Given: focus moved right twice
		controller, _ := newTestController(t)
		controller.MoveFocus(DirectionRight)
		controller.MoveFocus(DirectionRight)

		// When: applying a move on the focus
		require.True(t, controller.ApplyMove(controller.FocusIndex()))

		// Then: cell 2 holds X
		assert.Equal(t, entity.MarkX, controller.View().Board[2])
	})
}
