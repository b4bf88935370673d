package metrics

import (
	"fmt"
	"time"

	"pursuit/game"
)

// AgentConfig is one side-by-side setup of police and thief policies.
type AgentConfig struct {
	ID           int
	PolicePolicy game.PolicePolicy
	ThiefPolicy  game.ThiefPolicy
	BoardSize    int
	PoliceCount  int
	ThiefCount   int
	MaxTurns     int
}

// GameConfig builds the automatic-thief game config for one seeded game.
func (c AgentConfig) GameConfig(seed uint64) game.Config {
	cfg := game.DefaultConfig()
	cfg.BoardSize = c.BoardSize
	cfg.PoliceCount = c.PoliceCount
	cfg.ThiefCount = c.ThiefCount
	cfg.PolicePolicy = c.PolicePolicy
	cfg.ThiefPolicy = c.ThiefPolicy
	cfg.ThiefMode = game.ThiefAutomatic
	if c.MaxTurns > 0 {
		cfg.Rules.MaxTurns = c.MaxTurns
	}
	cfg.Seed = seed
	return cfg.Validate()
}

func (c AgentConfig) String() string {
	return fmt.Sprintf("#%d %s vs %s on %dx%d (%d/%d)",
		c.ID, c.PolicePolicy, c.ThiefPolicy, c.BoardSize, c.BoardSize, c.PoliceCount, c.ThiefCount)
}

// TurnMetric describes the position after one police step.
type TurnMetric struct {
	Turn        int
	Target      game.PieceID
	PoliceScore float64
	ThiefScore  float64
	Moves       int // pieces moved in the step
}

type GameMetric struct {
	GameID    string
	Seed      uint64
	Winner    string
	Reason    string
	Turns     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	game.Stats
}

type Collector interface {
	Start(gameID string, seed uint64)
	AddTurn(turn TurnMetric)
	Complete(status game.Status) (GameMetric, []TurnMetric)
}

type collector struct {
	gameID    string
	seed      uint64
	startTime time.Time
	turns     []TurnMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(gameID string, seed uint64) {
	m.gameID = gameID
	m.seed = seed
	m.startTime = time.Now()
	m.turns = nil
}

func (m *collector) AddTurn(turn TurnMetric) {
	m.turns = append(m.turns, turn)
}

func (m *collector) Complete(status game.Status) (GameMetric, []TurnMetric) {
	end := time.Now()
	gm := GameMetric{
		GameID:    m.gameID,
		Seed:      m.seed,
		Turns:     status.Turn,
		StartTime: m.startTime,
		EndTime:   end,
		Duration:  end.Sub(m.startTime),
		Stats:     game.ComputeStats(status.Moves, status.Turn),
	}
	if status.Result != nil {
		gm.Winner = status.Result.Winner.String()
		gm.Reason = string(status.Result.Reason)
	}
	return gm, m.turns
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(gameID string, seed uint64) {}
func (m *dummyCollector) AddTurn(turn TurnMetric)          {}
func (m *dummyCollector) Complete(status game.Status) (GameMetric, []TurnMetric) {
	return GameMetric{}, nil
}
