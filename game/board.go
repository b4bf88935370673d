package game

import "math"

// Supported board sizes.
const (
	SmallBoard = 8
	LargeBoard = 16
)

type direction struct {
	dRow, dCol int
}

// Forward directions decrease the row index, toward the police's objective.
var forward = []direction{
	{-1, -1},
	{-1, 1},
}

var diagonals = []direction{
	{-1, -1},
	{-1, 1},
	{1, -1},
	{1, 1},
}

// InBounds reports whether pos lies inside a boardSize x boardSize board.
func InBounds(pos Position, boardSize int) bool {
	return pos.Row >= 0 && pos.Row < boardSize && pos.Col >= 0 && pos.Col < boardSize
}

// IsReachable reports whether pos belongs to the color class pieces live on.
func IsReachable(pos Position) bool {
	return (pos.Row+pos.Col)%2 == 0
}

// DiagonalMoves returns the in-bounds diagonal neighbours of pos. With
// forwardOnly set, only the two directions that decrease the row are used.
// Occupancy is not considered.
func DiagonalMoves(pos Position, boardSize int, forwardOnly bool) []Position {
	dirs := diagonals
	if forwardOnly {
		dirs = forward
	}

	moves := make([]Position, 0, len(dirs))
	for _, d := range dirs {
		next := Position{Row: pos.Row + d.dRow, Col: pos.Col + d.dCol}
		if InBounds(next, boardSize) {
			moves = append(moves, next)
		}
	}
	return moves
}

// RetreatMoves returns the in-bounds diagonal neighbours that increase the row.
func RetreatMoves(pos Position, boardSize int) []Position {
	var moves []Position
	for _, m := range DiagonalMoves(pos, boardSize, false) {
		if m.Row > pos.Row {
			moves = append(moves, m)
		}
	}
	return moves
}

// IsDiagonalStep reports whether to is exactly one diagonal step from from.
func IsDiagonalStep(from, to Position) bool {
	return abs(from.Row-to.Row) == 1 && abs(from.Col-to.Col) == 1
}

// HasReachedGoal reports whether a thief at pos stands on the last row.
func HasReachedGoal(pos Position, boardSize int) bool {
	return pos.Row == boardSize-1
}

// CanCapture reports whether a police piece at police has a forward move
// landing on thief.
func CanCapture(police, thief Position, boardSize int) bool {
	for _, m := range DiagonalMoves(police, boardSize, true) {
		if m == thief {
			return true
		}
	}
	return false
}

// HomeColumns returns the reachable columns of row, in ascending order.
func HomeColumns(row, boardSize int) []int {
	cols := make([]int, 0, boardSize/2)
	for col := 0; col < boardSize; col++ {
		if IsReachable(Position{Row: row, Col: col}) {
			cols = append(cols, col)
		}
	}
	return cols
}

// Manhattan returns the L1 distance between a and b.
func Manhattan(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b Position) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
