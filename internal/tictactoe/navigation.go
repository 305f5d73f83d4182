package tictactoe

import "github.com/rocketscienceinc/tictactoe-local/internal/entity"

type Direction int

const (
	DirectionUp Direction = iota + 1
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (that Direction) String() string {
	switch that {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// Neighbor returns the cell next to index in direction on a board whose
// opposite edges are joined.
func Neighbor(index int, direction Direction) (int, bool) {
	if !entity.IsValidCell(index) {
		return index, false
	}

	row, col := index/entity.BoardSide, index%entity.BoardSide

	switch direction {
	case DirectionUp:
		row = wrap(row - 1)
	case DirectionDown:
		row = wrap(row + 1)
	case DirectionLeft:
		col = wrap(col - 1)
	case DirectionRight:
		col = wrap(col + 1)
	default:
		return index, false
	}

	return row*entity.BoardSide + col, true
}

func wrap(n int) int {
	return (n + entity.BoardSide) % entity.BoardSide
}
