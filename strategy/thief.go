package strategy

import (
	"math"

	"pursuit/game"
	"pursuit/meta"

	"golang.org/x/exp/rand"
)

// RandomThief picks uniformly among the free diagonals.
type RandomThief struct {
	rng *rand.Rand
}

func NewRandomThief(rng *rand.Rand) *RandomThief {
	if rng == nil {
		panic("random thief needs a random generator")
	}
	return &RandomThief{rng: rng}
}

func (r *RandomThief) Choose(boardSize int, pieces game.Pieces, thief game.Piece) (game.Position, bool) {
	free := pieces.FreeThiefMoves(thief, boardSize)
	if len(free) == 0 {
		return game.Position{}, false
	}
	return free[r.rng.Intn(len(free))], true
}

// EscapeThief runs for the goal when it can and otherwise keeps away from the
// police.
type EscapeThief struct{}

func NewEscapeThief() *EscapeThief {
	return &EscapeThief{}
}

func (e *EscapeThief) Choose(boardSize int, pieces game.Pieces, thief game.Piece) (game.Position, bool) {
	free := pieces.FreeThiefMoves(thief, boardSize)
	if len(free) == 0 {
		return game.Position{}, false
	}

	for _, to := range free {
		if game.HasReachedGoal(to, boardSize) {
			return to, true
		}
	}

	best := free[0]
	bestScore := math.Inf(-1)
	for _, to := range free {
		if score := escapeScore(to, pieces.Police, boardSize); score > bestScore {
			bestScore = score
			best = to
		}
	}
	return best, true
}

func escapeScore(to game.Position, police []game.Piece, boardSize int) float64 {
	minDist, totalDist := 0, 0
	for i, cop := range police {
		d := game.Manhattan(to, cop.Position)
		if i == 0 || d < minDist {
			minDist = d
		}
		totalDist += d
	}
	toGoal := boardSize - 1 - to.Row

	return float64(minDist)*meta.EscapeMinDistWeight +
		float64(totalDist)*meta.EscapeSumDistWeight +
		float64(toGoal)*meta.EscapeGoalDistWeight
}
