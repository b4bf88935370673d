package game

// Faction tags a piece as police or thief.
type Faction int

const (
	Thief Faction = iota
	Police
)

func (f Faction) String() string {
	switch f {
	case Thief:
		return "thief"
	case Police:
		return "police"
	default:
		return "unknown"
	}
}

// Opponent returns the other faction.
func (f Faction) Opponent() Faction {
	if f == Thief {
		return Police
	}
	return Thief
}

// State is the lifecycle state of a game.
type State int

const (
	NotStarted State = iota
	Playing
	Paused
	ThiefWon
	PoliceWon
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case ThiefWon:
		return "thief-won"
	case PoliceWon:
		return "police-won"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no transition leaves s except a reset.
func (s State) IsTerminal() bool {
	return s == ThiefWon || s == PoliceWon
}

// Reason explains why a game ended.
type Reason string

const (
	ReasonCaptured  Reason = "captured"
	ReasonNoMoves   Reason = "no-moves"
	ReasonGoal      Reason = "goal"
	ReasonTurnLimit Reason = "turn-limit"
)

// Result is the terminal outcome of a game.
type Result struct {
	Winner  Faction
	Reason  Reason
	Message string
	// IsManual is true when a human controlled the thieves. It only changes
	// the wording of Message.
	IsManual bool
}

// NewResult builds a Result with the user-facing message for the outcome.
func NewResult(winner Faction, reason Reason, isManual bool) Result {
	var msg string
	switch {
	case winner == Thief && reason == ReasonTurnLimit:
		msg = "Thieves win - police ran out of turns"
	case winner == Thief:
		msg = "Thieves win - the far edge was reached"
	case reason == ReasonNoMoves && isManual:
		msg = "You lost - no valid moves left"
	case reason == ReasonNoMoves:
		msg = "Police win - the thieves have no moves"
	case isManual:
		msg = "Defeat - thief captured"
	default:
		msg = "Thief captured"
	}
	return Result{
		Winner:   winner,
		Reason:   reason,
		Message:  msg,
		IsManual: isManual,
	}
}

// Status is a read-only snapshot of the game lifecycle.
type Status struct {
	State         State
	Turn          int
	CurrentPlayer Faction
	Moves         []Move
	Result        *Result
}
