package gamemaster

import (
	"context"
	"testing"
	"time"

	"pursuit/engine"
	"pursuit/game"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newEngine(mode game.ThiefMode) *engine.Engine {
	cfg := game.DefaultConfig()
	cfg.Seed = 11
	cfg.ThiefMode = mode
	return engine.New(cfg, engine.WithLogger(zerolog.Nop()))
}

type countingEngine struct {
	*engine.Engine
	steps int
}

func (c *countingEngine) Step() bool {
	c.steps++
	return c.Engine.Step()
}

func TestDriverRun(t *testing.T) {
	t.Run("plays to the end", func(t *testing.T) {
		e := newEngine(game.ThiefAutomatic)
		d := NewDriver(e, WithStepDelay(0))
		getUpdate := d.Updates()

		_, ok := getUpdate()
		require.False(t, ok, "No update before the game runs")

		status := d.Run(context.Background())
		require.True(t, status.State.IsTerminal(), "Game should finish")
		require.NotNil(t, status.Result, "Finished game should have a result")

		u, ok := getUpdate()
		require.True(t, ok, "The last step should be published")
		require.Equal(t, status.State, u.Status.State, "Latest update should hold the final state")
		require.Equal(t, e.Pieces(), u.Pieces, "Latest update should hold the final pieces")

		_, ok = getUpdate()
		require.False(t, ok, "Updates are consumed once")
	})

	t.Run("step cap", func(t *testing.T) {
		e := newEngine(game.ThiefAutomatic)
		status := NewDriver(e, WithStepDelay(0), WithMaxSteps(1)).Run(context.Background())
		require.Equal(t, game.Playing, status.State, "Game should still be running")
		require.Equal(t, game.Police, status.CurrentPlayer, "Thieves should have taken the one step")
	})

	t.Run("manual thieves wait", func(t *testing.T) {
		e := newEngine(game.ThiefManual)
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		status := NewDriver(e, WithStepDelay(5*time.Millisecond)).Run(ctx)
		require.Equal(t, game.Playing, status.State, "Game should wait for the thief")
		require.Equal(t, game.Thief, status.CurrentPlayer, "Thieves should still be to move")
		require.Empty(t, status.Moves, "Nothing should move without input")
	})

	t.Run("manual thief then police", func(t *testing.T) {
		e := newEngine(game.ThiefManual)
		e.Start()
		thief := e.Pieces().Thieves[0]
		moves := e.ValidThiefMoves(thief.ID)
		require.NotEmpty(t, moves, "Thief should be able to move")
		require.True(t, e.MakeThiefMove(thief.ID, moves[0]), "Thief should move")

		status := NewDriver(e, WithStepDelay(0), WithMaxSteps(1)).Run(context.Background())
		require.Equal(t, 1, status.Turn, "Driver should run the police step")
		require.Equal(t, game.Thief, status.CurrentPlayer, "Turn should return to the thief")
	})

	t.Run("paused game idles", func(t *testing.T) {
		e := newEngine(game.ThiefAutomatic)
		e.Start()
		e.SetPaused(true)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()

		status := NewDriver(e, WithStepDelay(5*time.Millisecond)).Run(ctx)
		require.Equal(t, game.Paused, status.State, "Pause should hold")
		require.Empty(t, status.Moves, "Nothing should move while paused")
	})

	t.Run("idle game polled slowly", func(t *testing.T) {
		e := &countingEngine{Engine: newEngine(game.ThiefManual)}
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		status := NewDriver(e, WithStepDelay(0)).Run(ctx)
		require.Empty(t, status.Moves, "Nothing should move without input")
		require.LessOrEqual(t, e.steps, 10, "A game waiting on input should not be polled flat out")
	})
}
