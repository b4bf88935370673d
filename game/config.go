package game

import "fmt"

// ThiefMode selects who moves the thieves.
type ThiefMode string

const (
	ThiefManual    ThiefMode = "manual"
	ThiefAutomatic ThiefMode = "automatic"
)

// ThiefPolicy selects the automatic thief strategy.
type ThiefPolicy string

const (
	ThiefRandom ThiefPolicy = "random"
	ThiefEscape ThiefPolicy = "escape"
)

// PolicePolicy selects the police strategy.
type PolicePolicy string

const (
	PoliceGreedy  PolicePolicy = "greedy"
	PoliceMinimax PolicePolicy = "minimax"
)

// Config describes a game. Display preferences are carried for the
// presentation layer and never read by the engine.
type Config struct {
	BoardSize    int
	PoliceCount  int
	ThiefCount   int
	ThiefMode    ThiefMode
	ThiefPolicy  ThiefPolicy
	PolicePolicy PolicePolicy
	Rules        Rules
	// Seed feeds the engine's random generator; 0 picks a time-based seed.
	Seed uint64

	ShowAnimations bool
	CellSize       string
	ColorScheme    string
}

func DefaultConfig() Config {
	return Config{
		BoardSize:      SmallBoard,
		PoliceCount:    4,
		ThiefCount:     1,
		ThiefMode:      ThiefAutomatic,
		ThiefPolicy:    ThiefRandom,
		PolicePolicy:   PoliceGreedy,
		Rules:          NewStandardRules(),
		ShowAnimations: true,
		CellSize:       "medium",
		ColorScheme:    "default",
	}
}

// Validate returns a copy of c that the engine can play. Unsupported values
// fall back to the defaults and piece counts are clamped to the reachable
// cells of each home row.
func (c Config) Validate() Config {
	def := DefaultConfig()
	if c.BoardSize != SmallBoard && c.BoardSize != LargeBoard {
		c.BoardSize = def.BoardSize
	}
	if c.ThiefMode != ThiefManual && c.ThiefMode != ThiefAutomatic {
		c.ThiefMode = def.ThiefMode
	}
	if c.ThiefPolicy != ThiefRandom && c.ThiefPolicy != ThiefEscape {
		c.ThiefPolicy = def.ThiefPolicy
	}
	if c.PolicePolicy != PoliceGreedy && c.PolicePolicy != PoliceMinimax {
		c.PolicePolicy = def.PolicePolicy
	}
	if c.Rules.MaxTurns <= 0 {
		c.Rules = def.Rules
	}

	c.PoliceCount = clamp(c.PoliceCount, 1, len(HomeColumns(c.BoardSize-1, c.BoardSize)))
	c.ThiefCount = clamp(c.ThiefCount, 1, len(HomeColumns(0, c.BoardSize)))
	return c
}

func (c Config) String() string {
	return fmt.Sprintf("%dx%d police=%d(%s) thieves=%d(%s/%s) maxTurns=%d",
		c.BoardSize, c.BoardSize, c.PoliceCount, c.PolicePolicy,
		c.ThiefCount, c.ThiefMode, c.ThiefPolicy, c.Rules.MaxTurns)
}

// ConfigPatch is a partial Config; nil fields are left unchanged.
type ConfigPatch struct {
	BoardSize    *int
	PoliceCount  *int
	ThiefCount   *int
	ThiefMode    *ThiefMode
	ThiefPolicy  *ThiefPolicy
	PolicePolicy *PolicePolicy
	MaxTurns     *int
	Seed         *uint64

	ShowAnimations *bool
	CellSize       *string
	ColorScheme    *string
}

// Apply merges p over c.
func (p ConfigPatch) Apply(c Config) Config {
	if p.BoardSize != nil {
		c.BoardSize = *p.BoardSize
	}
	if p.PoliceCount != nil {
		c.PoliceCount = *p.PoliceCount
	}
	if p.ThiefCount != nil {
		c.ThiefCount = *p.ThiefCount
	}
	if p.ThiefMode != nil {
		c.ThiefMode = *p.ThiefMode
	}
	if p.ThiefPolicy != nil {
		c.ThiefPolicy = *p.ThiefPolicy
	}
	if p.PolicePolicy != nil {
		c.PolicePolicy = *p.PolicePolicy
	}
	if p.MaxTurns != nil {
		c.Rules.MaxTurns = *p.MaxTurns
	}
	if p.Seed != nil {
		c.Seed = *p.Seed
	}
	if p.ShowAnimations != nil {
		c.ShowAnimations = *p.ShowAnimations
	}
	if p.CellSize != nil {
		c.CellSize = *p.CellSize
	}
	if p.ColorScheme != nil {
		c.ColorScheme = *p.ColorScheme
	}
	return c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
