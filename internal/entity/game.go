package entity

import (
	"github.com/samber/lo"
)

// BoardSize is the number of cells on the board, BoardSide the cells per row.
const (
	BoardSize = 9
	BoardSide = 3
)

type Mark string

const (
	MarkEmpty Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

// Opponent returns the mark that moves after this one.
func (that Mark) Opponent() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

// WinCombos are checked in this order; the first complete line is the one reported.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Board [BoardSize]Mark

// IsFull reports whether no cell is empty.
func (that Board) IsFull() bool {
	return lo.EveryBy(that[:], func(cell Mark) bool {
		return cell != MarkEmpty
	})
}

// Count returns how many cells hold the given mark.
func (that Board) Count(mark Mark) int {
	return lo.Count(that[:], mark)
}

// WinningLine returns the first line in WinCombos held by a single mark.
func (that Board) WinningLine() (Mark, [3]int, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != MarkEmpty && a == b && b == c {
			return a, combo, true
		}
	}

	return MarkEmpty, [3]int{}, false
}

// Game is the whole state of a single local game.
type Game struct {
	Board       Board
	Turn        Mark
	Status      Status
	Winner      Mark
	WinningLine *[3]int
	FocusIndex  int
}

func NewGame() *Game {
	return &Game{
		Turn:   MarkX,
		Status: StatusInProgress,
	}
}

// IsValidCell reports whether index addresses a board cell.
func IsValidCell(index int) bool {
	return index >= 0 && index < BoardSize
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusInProgress
}

// UpdateGameState evaluates the board after a mark was placed by that.Turn.
func (that *Game) UpdateGameState() {
	if winner, line, ok := that.Board.WinningLine(); ok {
		that.Status = StatusWon
		that.Winner = winner
		that.WinningLine = &line
		return
	}

	if that.Board.IsFull() {
		that.Status = StatusDraw
		return
	}

	that.Turn = that.Turn.Opponent()
}

// View returns a snapshot of the game that shares no memory with it.
func (that *Game) View() View {
	view := View{
		Board:      that.Board,
		Turn:       that.Turn,
		Status:     that.Status,
		Winner:     that.Winner,
		FocusIndex: that.FocusIndex,
	}

	if that.WinningLine != nil {
		line := *that.WinningLine
		view.WinningLine = &line
	}

	return view
}
