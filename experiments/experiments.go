package experiments

import (
	"fmt"

	"pursuit/engine"
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/strategy"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const NumGames = 30 // Per config

// StandardConfigs pairs every police policy with every thief policy on the
// default small board.
var StandardConfigs = []metrics.AgentConfig{
	{ID: 1, PolicePolicy: game.PoliceGreedy, ThiefPolicy: game.ThiefRandom, BoardSize: game.SmallBoard, PoliceCount: 4, ThiefCount: 1},
	{ID: 2, PolicePolicy: game.PoliceGreedy, ThiefPolicy: game.ThiefEscape, BoardSize: game.SmallBoard, PoliceCount: 4, ThiefCount: 1},
	{ID: 3, PolicePolicy: game.PoliceMinimax, ThiefPolicy: game.ThiefRandom, BoardSize: game.SmallBoard, PoliceCount: 4, ThiefCount: 1},
	{ID: 4, PolicePolicy: game.PoliceMinimax, ThiefPolicy: game.ThiefEscape, BoardSize: game.SmallBoard, PoliceCount: 4, ThiefCount: 1},
}

// ScalingConfigs grow the board and the number of pieces. Minimax is left out
// since it is exponential in the number of police.
var ScalingConfigs = []metrics.AgentConfig{
	{ID: 1, PolicePolicy: game.PoliceGreedy, ThiefPolicy: game.ThiefEscape, BoardSize: game.SmallBoard, PoliceCount: 2, ThiefCount: 1},
	{ID: 2, PolicePolicy: game.PoliceGreedy, ThiefPolicy: game.ThiefEscape, BoardSize: game.SmallBoard, PoliceCount: 4, ThiefCount: 2},
	{ID: 3, PolicePolicy: game.PoliceGreedy, ThiefPolicy: game.ThiefEscape, BoardSize: game.LargeBoard, PoliceCount: 4, ThiefCount: 1},
	{ID: 4, PolicePolicy: game.PoliceGreedy, ThiefPolicy: game.ThiefEscape, BoardSize: game.LargeBoard, PoliceCount: 8, ThiefCount: 2},
	{ID: 5, PolicePolicy: game.PoliceGreedy, ThiefPolicy: game.ThiefRandom, BoardSize: game.LargeBoard, PoliceCount: 8, ThiefCount: 4},
}

// Batches are the named experiments the CLI can run.
var Batches = map[string][]metrics.AgentConfig{
	"standard": StandardConfigs,
	"scaling":  ScalingConfigs,
}

// Run plays gamesPerConfig seeded games for every config and, when writer is
// not nil, stores configs, games and turns as CSV. Game i of a config uses
// seed seedBase+i, so every config faces the same openings.
func Run(name string, configs []metrics.AgentConfig, gamesPerConfig int, seedBase uint64, writer *metrics.Writer) ([]metrics.GameRecord, error) {
	newCollector := metrics.NewDummyCollector
	if writer != nil {
		newCollector = metrics.NewCollector
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	turnRecords := []metrics.TurnRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for ci, config := range configs {
		log.Info().Msgf("starting config %d of %d: %s", ci+1, len(configs), config)

		wins := 0
		for i := 0; i < gamesPerConfig; i++ {
			collector := newCollector()
			status, gameMetric, turnMetrics := runGame(config, seedBase+uint64(i), collector)
			count++
			if status.Result != nil && status.Result.Winner == game.Police {
				wins++
			}
			log.Debug().Msgf("config %d game %d ended %s at turn %d", config.ID, i+1, status.State, status.Turn)

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Config:     config.ID,
				GameMetric: gameMetric,
			})
			for _, tm := range turnMetrics {
				turnRecords = append(turnRecords, metrics.TurnRecord{
					Game:       count,
					TurnMetric: tm,
				})
			}
		}
		log.Info().Msgf("completed config %d of %d: police won %d of %d", ci+1, len(configs), wins, gamesPerConfig)
	}

	log.Info().Msgf("completed %s experiment", name)

	if writer == nil {
		return gameRecords, nil
	}
	if err := store(writer, configs, gameRecords, turnRecords); err != nil {
		return nil, err
	}
	return gameRecords, nil
}

func store(writer *metrics.Writer, configs []metrics.AgentConfig, games []metrics.GameRecord, turns []metrics.TurnRecord) error {
	err := writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(games)
	if err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteTurnRecords(turns)
	if err != nil {
		return fmt.Errorf("failed to store turn records: %w", err)
	}
	log.Info().Msgf("stored turn records in %s", writer.Dir())
	return nil
}

// runGame plays one autonomous game to the end without delays.
func runGame(config metrics.AgentConfig, seed uint64, collector metrics.Collector) (game.Status, metrics.GameMetric, []metrics.TurnMetric) {
	logger := log.Logger.Level(zerolog.WarnLevel)
	e := engine.New(config.GameConfig(seed), engine.WithLogger(logger))
	collector.Start(e.GameID().String(), seed)
	e.Start()

	for {
		before := e.Status()
		if before.State.IsTerminal() {
			break
		}
		if !e.Step() {
			// Only a misbehaving strategy can stall an automatic game
			log.Warn().Msgf("game %s stalled at turn %d", e.GameID(), before.Turn)
			break
		}
		if before.CurrentPlayer == game.Police {
			collector.AddTurn(turnMetric(e, before))
		}
	}

	status := e.Status()
	gameMetric, turnMetrics := collector.Complete(status)
	return status, gameMetric, turnMetrics
}

func turnMetric(e *engine.Engine, before game.Status) metrics.TurnMetric {
	after := e.Status()
	tm := metrics.TurnMetric{
		Turn:  before.Turn,
		Moves: len(after.Moves) - len(before.Moves),
	}
	target, ok := strategy.SelectTarget(e.Pieces())
	if !ok {
		return tm
	}
	tm.Target = target.ID
	if eval, ok := e.Evaluate(target.ID); ok {
		tm.PoliceScore = eval.Police
		tm.ThiefScore = eval.Thief
	}
	return tm
}
