package game

import "pursuit/meta"

// Rules holds the configurable policy choices of the game.
type Rules struct {
	// MaxTurns is the number of police steps after which the thieves win.
	MaxTurns int
}

func NewStandardRules() Rules {
	return Rules{
		MaxTurns: meta.MAX_TURNS,
	}
}

// TurnLimitReached reports whether turn has used up the police's time.
func (r Rules) TurnLimitReached(turn int) bool {
	return r.MaxTurns > 0 && turn >= r.MaxTurns
}
