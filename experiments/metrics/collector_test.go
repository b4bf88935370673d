package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"pursuit/game"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("collects turns and outcome", func(t *testing.T) {
		c := NewCollector()
		c.Start("abc", 9)
		c.AddTurn(TurnMetric{Turn: 0, Target: "thief-0", PoliceScore: 4, ThiefScore: 30, Moves: 2})
		c.AddTurn(TurnMetric{Turn: 1, Target: "thief-0", PoliceScore: 1, ThiefScore: 20, Moves: 1})

		result := game.NewResult(game.Police, game.ReasonCaptured, false)
		status := game.Status{
			State: game.PoliceWon,
			Turn:  1,
			Moves: []game.Move{
				{PieceID: "thief-0"}, {PieceID: "police-0"}, {PieceID: "police-1"},
				{PieceID: "thief-0"}, {PieceID: "police-1"},
			},
			Result: &result,
		}
		gm, turns := c.Complete(status)
		require.Equal(t, "abc", gm.GameID, "Game id")
		require.Equal(t, uint64(9), gm.Seed, "Seed")
		require.Equal(t, "police", gm.Winner, "Winner")
		require.Equal(t, "captured", gm.Reason, "Reason")
		require.Equal(t, 5, gm.TotalMoves, "Total moves")
		require.Equal(t, 3, gm.PoliceMoves, "Police moves")
		require.Equal(t, 2, gm.ThiefMoves, "Thief moves")
		require.False(t, gm.EndTime.Before(gm.StartTime), "End should not precede start")
		require.Len(t, turns, 2, "Every turn should be kept")
	})

	t.Run("start clears turns", func(t *testing.T) {
		c := NewCollector()
		c.Start("a", 1)
		c.AddTurn(TurnMetric{Turn: 0})
		c.Start("b", 2)
		_, turns := c.Complete(game.Status{})
		require.Empty(t, turns, "A new game should start empty")
	})

	t.Run("dummy", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("a", 1)
		c.AddTurn(TurnMetric{Turn: 0})
		gm, turns := c.Complete(game.Status{Turn: 3})
		require.Equal(t, GameMetric{}, gm, "Dummy collects nothing")
		require.Nil(t, turns, "Dummy collects nothing")
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "unit")
	require.NoError(t, err, "Writer should be created")
	require.DirExists(t, w.Dir(), "Output directory should exist")

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1}, {ID: 2, MaxTurns: 40}}), "Configs should be written")
	require.NoError(t, w.WriteGameRecords(nil), "Empty records should be written")
	require.NoError(t, w.WriteTurnRecords([]TurnRecord{{Game: 1}}), "Turns should be written")
	require.FileExists(t, w.Dir()+"/turn_records.csv", "Turn file should exist")
}

func TestWriterMaxTurns(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "unit")
	require.NoError(t, err, "Writer should be created")
	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1}, {ID: 2, MaxTurns: 40}}), "Configs should be written")

	f, err := os.Open(filepath.Join(w.Dir(), "agent_configs.csv"))
	require.NoError(t, err, "Config file should exist")
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err, "Config file should parse")

	require.Len(t, rows, 3, "Header plus one row per config")
	require.Equal(t, "max_turns", rows[0][6], "Turn limit header")
	require.Equal(t, strconv.Itoa(game.DefaultConfig().Rules.MaxTurns), rows[1][6], "Unset limit should be written as the effective default")
	require.Equal(t, "40", rows[2][6], "Explicit limit should be written as given")
}
