package game

import "golang.org/x/exp/slices"

// Pieces is a snapshot of every piece on the board, split by faction.
type Pieces struct {
	Police  []Piece
	Thieves []Piece
}

// Copy returns a deep copy, so a caller can never alias engine state.
func (p Pieces) Copy() Pieces {
	return Pieces{
		Police:  slices.Clone(p.Police),
		Thieves: slices.Clone(p.Thieves),
	}
}

// Find returns the piece with the given id from either faction.
func (p Pieces) Find(id PieceID) (Piece, bool) {
	for _, group := range [][]Piece{p.Police, p.Thieves} {
		if i := slices.IndexFunc(group, func(pc Piece) bool { return pc.ID == id }); i >= 0 {
			return group[i], true
		}
	}
	return Piece{}, false
}

// At returns the piece standing on pos, police first.
func (p Pieces) At(pos Position) (Piece, bool) {
	for _, group := range [][]Piece{p.Police, p.Thieves} {
		for _, pc := range group {
			if pc.Position == pos {
				return pc, true
			}
		}
	}
	return Piece{}, false
}

// WithPolice returns a copy where the police pieces stand on the given cells,
// keyed by id. Pieces missing from moves keep their position.
func (p Pieces) WithPolice(moves map[PieceID]Position) Pieces {
	out := p.Copy()
	for i, cop := range out.Police {
		if to, ok := moves[cop.ID]; ok {
			out.Police[i].Position = to
		}
	}
	return out
}

// FreeThiefMoves returns the diagonal moves of thief that are not occupied by
// police or by another thief.
func (p Pieces) FreeThiefMoves(thief Piece, boardSize int) []Position {
	var free []Position
	for _, m := range DiagonalMoves(thief.Position, boardSize, false) {
		if occupied, ok := p.At(m); ok && occupied.ID != thief.ID {
			continue
		}
		free = append(free, m)
	}
	return free
}
