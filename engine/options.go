package engine

import (
	"pursuit/strategy"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

type Option func(e *Engine)

// WithRand injects the random generator used for placement and the random
// thief policy. It takes precedence over Config.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
			e.customRand = true
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.baseLogger = logger
	}
}

// WithPoliceStrategy overrides the strategy picked from Config.PolicePolicy.
func WithPoliceStrategy(s strategy.Police) Option {
	return func(e *Engine) {
		if s != nil {
			e.policeStrategy = s
			e.customPolice = true
		}
	}
}

// WithThiefStrategy overrides the strategy picked from Config.ThiefPolicy.
func WithThiefStrategy(s strategy.Thief) Option {
	return func(e *Engine) {
		if s != nil {
			e.thiefStrategy = s
			e.customThief = true
		}
	}
}
