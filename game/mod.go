package game

// Position is a 0-indexed cell on the board.
type Position struct {
	Row int
	Col int
}

// PieceID identifies a piece within a game, e.g. "police-0" or "thief-1".
type PieceID string

// Piece is a read-only view of a piece. The engine owns the real ones.
type Piece struct {
	ID       PieceID
	Faction  Faction
	Position Position
}

// Evaluates a position from one side's perspective. Lower is better for the
// police scorer, higher is better for the thief scorer.
type Evaluate func(boardSize int, pieces Pieces, thief Piece) float64
