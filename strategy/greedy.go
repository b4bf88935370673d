package strategy

import (
	"cmp"

	"pursuit/game"

	"golang.org/x/exp/slices"
)

// Greedy assigns every police piece its best unclaimed candidate move.
type Greedy struct {
	weights Weights
}

func NewGreedy(opts ...Option) *Greedy {
	o := newOptions(opts)
	return &Greedy{weights: o.weights}
}

type candidate struct {
	piece int // index into pieces.Police
	to    game.Position
	score float64
}

func (g *Greedy) Plan(boardSize int, pieces game.Pieces, target game.Piece) []Proposal {
	if plan, ok := captureNow(boardSize, pieces.Police, target, g.weights.Capture); ok {
		return plan
	}

	police := pieces.Police
	candidates := g.candidates(boardSize, police, target)
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(a.score, b.score)
	})

	// Per-piece candidate lists, still in score order
	byPiece := make([][]candidate, len(police))
	for _, c := range candidates {
		byPiece[c.piece] = append(byPiece[c.piece], c)
	}

	a := newAssignment(len(police))

	// Greedy pass over all (piece, move) pairs, best first
	for _, c := range candidates {
		if a.assigned(c.piece) || a.isClaimed(c.to) {
			continue
		}
		a.assign(c)
	}

	// Retry pass for pieces that lost every contest above
	for i := range police {
		if !a.assigned(i) {
			a.retry(i, byPiece[i])
		}
	}

	// Pieces still without a destination hold their cell, and pieces moving
	// into each other's cells in a ring are split up, until neither applies.
	at := make(map[game.Position]int, len(police))
	for i, cop := range police {
		at[cop.Position] = i
	}
	for round := 0; round <= len(candidates); round++ {
		a.holdCells(police, byPiece)
		if !a.breakRing(police, at, byPiece) {
			break
		}
	}

	plan := make([]Proposal, 0, len(police))
	planned := make(map[int]bool, len(police))
	for _, c := range a.order {
		if planned[c.piece] || !a.assigned(c.piece) || a.dest[c.piece] != c {
			continue
		}
		planned[c.piece] = true
		plan = append(plan, Proposal{
			PieceID: police[c.piece].ID,
			From:    police[c.piece].Position,
			To:      c.to,
			Score:   c.score,
		})
	}
	return plan
}

func (g *Greedy) candidates(boardSize int, police []game.Piece, target game.Piece) []candidate {
	var out []candidate
	for i, cop := range police {
		for _, to := range policeMoves(cop, boardSize) {
			out = append(out, candidate{piece: i, to: to, score: g.score(cop.Position, to, target.Position)})
		}
	}
	return out
}

// score is lower-is-better: base Manhattan distance minus weighted gains in
// overall, row and column distance. Landing on the target beats everything.
func (g *Greedy) score(from, to, target game.Position) float64 {
	if to == target {
		return g.weights.Capture
	}
	newDist := game.Manhattan(to, target)
	distGain := game.Manhattan(from, target) - newDist
	rowGain := abs(from.Row-target.Row) - abs(to.Row-target.Row)
	colGain := abs(from.Col-target.Col) - abs(to.Col-target.Col)

	return float64(newDist) -
		float64(distGain)*g.weights.DistanceGain -
		float64(rowGain)*g.weights.RowGain -
		float64(colGain)*g.weights.ColGain
}

type assignment struct {
	dest    map[int]candidate
	claimed map[game.Position]int
	order   []candidate // commit order
}

func newAssignment(n int) *assignment {
	return &assignment{
		dest:    make(map[int]candidate, n),
		claimed: make(map[game.Position]int, n),
	}
}

func (a *assignment) assigned(piece int) bool {
	_, ok := a.dest[piece]
	return ok
}

func (a *assignment) isClaimed(pos game.Position) bool {
	_, ok := a.claimed[pos]
	return ok
}

func (a *assignment) assign(c candidate) {
	a.dest[c.piece] = c
	a.claimed[c.to] = c.piece
	a.order = append(a.order, c)
}

// unassign drops piece's destination; its claim on the cell is handed over
// by the caller.
func (a *assignment) unassign(piece int) {
	delete(a.dest, piece)
}

// holdCells lets every unassigned piece claim its own cell. A holder bumps
// any mover headed to that cell, and the bumped piece re-solves with its
// remaining candidates, until nobody is bumped.
func (a *assignment) holdCells(police []game.Piece, byPiece [][]candidate) {
	for changed := true; changed; {
		changed = false
		for i, cop := range police {
			if a.assigned(i) {
				continue
			}
			owner, taken := a.claimed[cop.Position]
			if taken && owner == i {
				continue
			}
			if taken {
				a.unassign(owner)
				changed = true
			}
			a.claimed[cop.Position] = i
			if taken {
				a.retry(owner, byPiece[owner])
			}
		}
	}
}

// breakRing finds pieces that move into each other's cells in a closed loop,
// a swap being the shortest, which the engine cannot order. The worst-scored
// member that has another free cell moves there instead. When none has, the
// worst-scored member is released to hold its cell. It reports whether a ring
// was found.
func (a *assignment) breakRing(police []game.Piece, at map[game.Position]int, byPiece [][]candidate) bool {
	for i := range police {
		ring := a.ring(i, at)
		if ring == nil {
			continue
		}
		slices.SortStableFunc(ring, func(x, y int) int {
			return cmp.Compare(a.dest[y].score, a.dest[x].score)
		})
		for _, piece := range ring {
			c := a.dest[piece]
			a.release(piece)
			if a.retryExcept(piece, byPiece[piece], c.to) {
				return true
			}
			a.dest[piece] = c
			a.claimed[c.to] = piece
		}
		a.release(ring[0])
		return true
	}
	return false
}

// ring returns the pieces on the loop through start, or nil if following
// destinations from start does not lead back to it.
func (a *assignment) ring(start int, at map[game.Position]int) []int {
	ring := []int{start}
	for piece := start; ; {
		c, ok := a.dest[piece]
		if !ok {
			return nil
		}
		next, ok := at[c.to]
		if !ok {
			return nil
		}
		if next == start {
			return ring
		}
		if slices.Contains(ring, next) {
			return nil
		}
		ring = append(ring, next)
		piece = next
	}
}

// release drops piece's destination together with its claim on that cell.
func (a *assignment) release(piece int) {
	c, ok := a.dest[piece]
	if !ok {
		return
	}
	delete(a.dest, piece)
	if owner, taken := a.claimed[c.to]; taken && owner == piece {
		delete(a.claimed, c.to)
	}
}

// retry gives piece its first unclaimed candidate. If there is none the
// piece stays unassigned and will hold its current cell.
func (a *assignment) retry(piece int, candidates []candidate) bool {
	for _, c := range candidates {
		if !a.isClaimed(c.to) {
			a.assign(c)
			return true
		}
	}
	return false
}

// retryExcept is retry without the skip cell.
func (a *assignment) retryExcept(piece int, candidates []candidate, skip game.Position) bool {
	for _, c := range candidates {
		if c.to != skip && !a.isClaimed(c.to) {
			a.assign(c)
			return true
		}
	}
	return false
}
