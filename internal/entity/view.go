package entity

import (
	"fmt"

	"github.com/samber/lo"
)

const (
	hintPlaying  = "Mouse/tap to play • Keyboard: Arrow keys to move, Enter/Space to place"
	hintFinished = "Restart to play again • Keyboard: R to restart"
)

// View is the immutable view-model handed to a renderer.
type View struct {
	Board       Board
	Turn        Mark
	Status      Status
	Winner      Mark
	WinningLine *[3]int
	FocusIndex  int
}

// StatusLine is shown above the board and is also the announcement text.
func (that View) StatusLine() string {
	switch that.Status {
	case StatusWon:
		return fmt.Sprintf("Player %s wins!", that.Winner)
	case StatusDraw:
		return "Draw game."
	default:
		return TurnAnnouncement(that.Turn)
	}
}

func (that View) HintLine() string {
	if that.Status == StatusInProgress {
		return hintPlaying
	}
	return hintFinished
}

// IsCellDisabled reports whether a click on the cell can no longer place a mark.
func (that View) IsCellDisabled(index int) bool {
	if !IsValidCell(index) {
		return true
	}
	return that.Status != StatusInProgress || that.Board[index] != MarkEmpty
}

func (that View) IsWinningCell(index int) bool {
	if that.WinningLine == nil {
		return false
	}
	return lo.Contains(that.WinningLine[:], index)
}

func TurnAnnouncement(mark Mark) string {
	return fmt.Sprintf("Player %s's turn", mark)
}
