package strategy

import (
	"math"

	"pursuit/game"
)

// Minimax is a one-ply search over every combination of police moves
// (including standing still), picking the one the evaluation function
// scores lowest. Combinations that share a cell or move pieces into each
// other's cells are skipped. It is exponential in the number of police.
type Minimax struct {
	weights  Weights
	evaluate game.Evaluate
}

func NewMinimax(opts ...Option) *Minimax {
	o := newOptions(opts)
	return &Minimax{weights: o.weights, evaluate: o.evaluate}
}

func (m *Minimax) Plan(boardSize int, pieces game.Pieces, target game.Piece) []Proposal {
	if plan, ok := captureNow(boardSize, pieces.Police, target, m.weights.Capture); ok {
		return plan
	}

	police := pieces.Police
	choices := make([][]game.Position, len(police))
	for i, cop := range police {
		choices[i] = append(policeMoves(cop, boardSize), cop.Position)
	}

	var best map[game.PieceID]game.Position
	bestScore := math.Inf(1)

	current := make(map[game.PieceID]game.Position, len(police))
	used := make(map[game.Position]bool, len(police))

	var generate func(index int)
	generate = func(index int) {
		if index == len(police) {
			if formsRing(police, current) {
				return
			}
			score := m.evaluate(boardSize, pieces.WithPolice(current), target)
			if best == nil || score < bestScore {
				bestScore = score
				best = make(map[game.PieceID]game.Position, len(current))
				for id, pos := range current {
					best[id] = pos
				}
			}
			return
		}

		cop := police[index]
		for _, to := range choices[index] {
			if used[to] {
				continue
			}
			used[to] = true
			current[cop.ID] = to
			generate(index + 1)
			delete(current, cop.ID)
			used[to] = false
		}
	}
	generate(0)

	var plan []Proposal
	for _, cop := range police {
		to, ok := best[cop.ID]
		if !ok || to == cop.Position {
			continue
		}
		plan = append(plan, Proposal{
			PieceID: cop.ID,
			From:    cop.Position,
			To:      to,
			Score:   bestScore,
		})
	}
	return plan
}
