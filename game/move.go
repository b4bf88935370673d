package game

import "fmt"

// Move is an append-only history entry.
type Move struct {
	PieceID PieceID
	From    Position
	To      Position
	Turn    int
}

// NewPieceID builds the id of the i-th piece of a faction.
func NewPieceID(f Faction, i int) PieceID {
	return PieceID(fmt.Sprintf("%s-%d", f, i))
}

func (m Move) String() string {
	return fmt.Sprintf("turn %d: %s (%d,%d) -> (%d,%d)",
		m.Turn, m.PieceID, m.From.Row, m.From.Col, m.To.Row, m.To.Col)
}
