package game

import "strings"

// Stats summarises a move log.
type Stats struct {
	TotalMoves      int
	PoliceMoves     int
	ThiefMoves      int
	AvgMovesPerTurn float64
}

// ComputeStats tallies moves per faction using the id prefix.
func ComputeStats(moves []Move, turn int) Stats {
	s := Stats{TotalMoves: len(moves)}
	for _, m := range moves {
		switch {
		case strings.HasPrefix(string(m.PieceID), Police.String()):
			s.PoliceMoves++
		case strings.HasPrefix(string(m.PieceID), Thief.String()):
			s.ThiefMoves++
		}
	}
	if turn > 0 {
		s.AvgMovesPerTurn = float64(s.TotalMoves) / float64(turn)
	}
	return s
}
