// meta/meta.go
package meta

import "time"

// MAX_TURNS is the default number of police steps before the thieves win by
// running out the clock.
const MAX_TURNS = 200

// STEP_DELAY is the default pause between automatic steps.
const STEP_DELAY = 800 * time.Millisecond

// IDLE_POLL is the shortest pause between polls of a game that did not
// advance, e.g. while paused or waiting for manual thieves.
const IDLE_POLL = 20 * time.Millisecond

// NearGoalRows is how close to the last row a thief must be before the police
// score starts penalising it.
const NearGoalRows = 3

// Police-perspective weights (lower score is better for police).
const (
	PoliceGoalPenalty   = 10.0
	PoliceEscapePenalty = 2.0
)

// Thief-perspective weights (higher score is better for thieves).
// Goal proximity > distance from pursuers > escape options.
const (
	ThiefGoalWeight     = 10.0
	ThiefDistanceWeight = 3.0
	ThiefEscapeWeight   = 2.0
)

// Greedy police assignment weights.
const (
	CaptureScore       = -10000.0
	DistanceGainWeight = 10.0
	RowGainWeight      = 5.0
	ColGainWeight      = 3.0
)

// Escape thief weights. Rows left to the goal count against a move.
const (
	EscapeMinDistWeight  = 3.0
	EscapeSumDistWeight  = 1.0
	EscapeGoalDistWeight = -2.0
)
