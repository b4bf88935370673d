package gamemaster

import (
	"context"
	"time"

	"pursuit/game"
	"pursuit/meta"

	"github.com/rs/zerolog/log"
)

// Engine is the part of the simulation engine the driver paces.
type Engine interface {
	Start()
	Step() bool
	Status() game.Status
	Pieces() game.Pieces
}

// Update is a snapshot taken after a step.
type Update struct {
	Status game.Status
	Pieces game.Pieces
}

// UpdateGetter returns the latest update, or false when nothing new happened
// since the last call. It never blocks.
type UpdateGetter func() (Update, bool)

// Driver steps an engine automatically with a fixed delay between steps.
type Driver struct {
	engine   Engine
	delay    time.Duration
	maxSteps int
	updateCh chan Update
}

type Option func(d *Driver)

// WithStepDelay sets the pause between steps. Zero runs flat out.
func WithStepDelay(delay time.Duration) Option {
	return func(d *Driver) {
		if delay >= 0 {
			d.delay = delay
		}
	}
}

// WithMaxSteps stops Run after n successful steps. Zero means no cap.
func WithMaxSteps(n int) Option {
	return func(d *Driver) {
		if n >= 0 {
			d.maxSteps = n
		}
	}
}

func NewDriver(engine Engine, opts ...Option) *Driver {
	d := &Driver{ // Default values
		engine:   engine,
		delay:    meta.STEP_DELAY,
		updateCh: make(chan Update, 1),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) Updates() UpdateGetter {
	return func() (Update, bool) {
		select {
		case u := <-d.updateCh:
			return u, true
		default:
			return Update{}, false
		}
	}
}

// Run starts the game if needed and steps it until it ends, ctx is done or
// the step cap is hit. A game that does not advance, paused or waiting on
// manual thieves, is polled no faster than meta.IDLE_POLL. Manual thieves
// are left to the caller; the driver keeps running police steps once they
// have moved.
func (d *Driver) Run(ctx context.Context) game.Status {
	d.engine.Start()
	log.Info().Msgf("driver started with %s between steps", d.delay)

	steps := 0
	for {
		status := d.engine.Status()
		if status.State.IsTerminal() {
			log.Info().Msgf("driver finished after %d steps: %s", steps, status.Result.Message)
			return status
		}
		if d.maxSteps > 0 && steps >= d.maxSteps {
			log.Info().Msgf("driver stopped at step cap %d", d.maxSteps)
			return status
		}

		delay := max(d.delay, meta.IDLE_POLL)
		if status.State == game.Playing && d.engine.Step() {
			steps++
			d.publish()
			delay = d.delay
		}

		if !d.wait(ctx, delay) {
			log.Info().Msgf("driver cancelled after %d steps", steps)
			return d.engine.Status()
		}
	}
}

// publish replaces any unread update with the newest one.
func (d *Driver) publish() {
	u := Update{Status: d.engine.Status(), Pieces: d.engine.Pieces()}
	select {
	case <-d.updateCh:
	default:
	}
	d.updateCh <- u
}

func (d *Driver) wait(ctx context.Context, delay time.Duration) bool {
	if delay <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
