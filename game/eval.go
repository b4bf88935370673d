package game

import (
	"math"

	"pursuit/meta"
)

// MinPoliceDistance is the smallest forward-only BFS distance from any police
// piece to thief. +Inf when no police piece can reach it.
func MinPoliceDistance(police []Piece, thief Piece, boardSize int) float64 {
	minDist := math.Inf(1)
	for _, cop := range police {
		if d := Distance(cop.Position, thief.Position, boardSize, true); d != Unreachable {
			minDist = math.Min(minDist, float64(d))
		}
	}
	return minDist
}

// TotalPoliceDistance sums the forward-only BFS distances of every police
// piece to thief. A single unreachable piece makes the total +Inf.
func TotalPoliceDistance(police []Piece, thief Piece, boardSize int) float64 {
	total := 0.0
	for _, cop := range police {
		d := Distance(cop.Position, thief.Position, boardSize, true)
		if d == Unreachable {
			return math.Inf(1)
		}
		total += float64(d)
	}
	return total
}

// DistanceToGoal is the number of rows left before thief reaches the last row.
func DistanceToGoal(thief Piece, boardSize int) int {
	return boardSize - 1 - thief.Position.Row
}

// EscapeMoves counts the diagonal moves of thief that no police piece stands
// on. Other thieves are ignored on purpose.
func EscapeMoves(thief Piece, police []Piece, boardSize int) int {
	taken := make(map[Position]bool, len(police))
	for _, cop := range police {
		taken[cop.Position] = true
	}

	count := 0
	for _, m := range DiagonalMoves(thief.Position, boardSize, false) {
		if !taken[m] {
			count++
		}
	}
	return count
}

// PoliceScore evaluates the position for the police; lower is better.
func PoliceScore(boardSize int, pieces Pieces, thief Piece) float64 {
	minDist := MinPoliceDistance(pieces.Police, thief, boardSize)
	toGoal := DistanceToGoal(thief, boardSize)
	escapes := EscapeMoves(thief, pieces.Police, boardSize)

	// Only penalise goal proximity once the thief is close to the last row
	goalPenalty := 0.0
	if toGoal < meta.NearGoalRows {
		goalPenalty = float64(meta.NearGoalRows-toGoal) * meta.PoliceGoalPenalty
	}
	escapePenalty := float64(escapes) * meta.PoliceEscapePenalty

	return minDist + goalPenalty + escapePenalty
}

// ThiefScore evaluates the position for a thief; higher is better.
func ThiefScore(boardSize int, pieces Pieces, thief Piece) float64 {
	toGoal := DistanceToGoal(thief, boardSize)
	minDist := MinPoliceDistance(pieces.Police, thief, boardSize)
	escapes := EscapeMoves(thief, pieces.Police, boardSize)

	goalReward := float64(boardSize-toGoal) * meta.ThiefGoalWeight
	distanceReward := minDist * meta.ThiefDistanceWeight
	escapeReward := float64(escapes) * meta.ThiefEscapeWeight

	return goalReward + distanceReward + escapeReward
}

var (
	_ Evaluate = PoliceScore
	_ Evaluate = ThiefScore
)
