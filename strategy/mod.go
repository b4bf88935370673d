package strategy

import (
	"fmt"

	"pursuit/game"
	"pursuit/meta"

	"golang.org/x/exp/rand"
)

// Proposal is a destination proposed for one piece. Strategies never mutate
// pieces; the engine decides what to commit.
type Proposal struct {
	PieceID game.PieceID
	From    game.Position
	To      game.Position
	Score   float64
}

// Police plans one police step against a single target thief. Proposals are
// returned in priority order, never share a destination and never move
// pieces into each other's cells.
type Police interface {
	Plan(boardSize int, pieces game.Pieces, target game.Piece) []Proposal
}

// Thief picks a destination for one thief. ok is false when the thief has no
// free diagonal, which the engine treats as a deadlock signal.
type Thief interface {
	Choose(boardSize int, pieces game.Pieces, thief game.Piece) (to game.Position, ok bool)
}

// Weights tune the greedy police score.
type Weights struct {
	Capture      float64
	DistanceGain float64
	RowGain      float64
	ColGain      float64
}

var DefaultWeights = Weights{
	Capture:      meta.CaptureScore,
	DistanceGain: meta.DistanceGainWeight,
	RowGain:      meta.RowGainWeight,
	ColGain:      meta.ColGainWeight,
}

type Option func(o *options)

type options struct {
	weights  Weights
	evaluate game.Evaluate
}

func WithWeights(w Weights) Option {
	return func(o *options) {
		o.weights = w
	}
}

// WithEvaluationFn sets the scorer minimax minimises.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(o *options) {
		if evaluate != nil {
			o.evaluate = evaluate
		}
	}
}

func newOptions(opts []Option) options {
	o := options{ // Default values
		weights:  DefaultWeights,
		evaluate: game.PoliceScore,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewPolice returns the police strategy for policy.
func NewPolice(policy game.PolicePolicy, opts ...Option) (Police, error) {
	switch policy {
	case game.PoliceGreedy:
		return NewGreedy(opts...), nil
	case game.PoliceMinimax:
		return NewMinimax(opts...), nil
	default:
		return nil, fmt.Errorf("unknown police policy: %q", policy)
	}
}

// NewThief returns the automatic thief strategy for policy.
func NewThief(policy game.ThiefPolicy, rng *rand.Rand) (Thief, error) {
	switch policy {
	case game.ThiefRandom:
		return NewRandomThief(rng), nil
	case game.ThiefEscape:
		return NewEscapeThief(), nil
	default:
		return nil, fmt.Errorf("unknown thief policy: %q", policy)
	}
}

// SelectTarget returns the thief with the smallest average Manhattan distance
// to the police. Ties go to the earlier thief.
func SelectTarget(pieces game.Pieces) (game.Piece, bool) {
	if len(pieces.Thieves) == 0 {
		return game.Piece{}, false
	}
	if len(pieces.Police) == 0 {
		return pieces.Thieves[0], true
	}

	target := pieces.Thieves[0]
	best := -1.0
	for _, thief := range pieces.Thieves {
		total := 0
		for _, cop := range pieces.Police {
			total += game.Manhattan(cop.Position, thief.Position)
		}
		avg := float64(total) / float64(len(pieces.Police))
		if best < 0 || avg < best {
			best = avg
			target = thief
		}
	}
	return target, true
}

// captureNow returns the single capture proposal if any police piece can
// land on target with a forward move.
func captureNow(boardSize int, police []game.Piece, target game.Piece, score float64) ([]Proposal, bool) {
	for _, cop := range police {
		if game.CanCapture(cop.Position, target.Position, boardSize) {
			return []Proposal{{
				PieceID: cop.ID,
				From:    cop.Position,
				To:      target.Position,
				Score:   score,
			}}, true
		}
	}
	return nil, false
}

// formsRing reports whether some police pieces move into each other's cells in
// a closed loop, such as a swap. Pieces missing from dest stay put.
func formsRing(police []game.Piece, dest map[game.PieceID]game.Position) bool {
	at := make(map[game.Position]game.PieceID, len(police))
	for _, cop := range police {
		at[cop.Position] = cop.ID
	}
	for _, cop := range police {
		id := cop.ID
		for step := 0; step < len(police); step++ {
			to, ok := dest[id]
			if !ok {
				break
			}
			next, ok := at[to]
			if !ok || next == id {
				break
			}
			if next == cop.ID {
				return true
			}
			id = next
		}
	}
	return false
}

// policeMoves is the candidate set of a police piece: its forward moves, or
// its retreat moves when it has none left.
func policeMoves(cop game.Piece, boardSize int) []game.Position {
	moves := game.DiagonalMoves(cop.Position, boardSize, true)
	if len(moves) == 0 {
		moves = game.RetreatMoves(cop.Position, boardSize)
	}
	return moves
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
