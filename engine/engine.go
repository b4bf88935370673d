package engine

import (
	"fmt"
	"sync"
	"time"

	"pursuit/game"
	"pursuit/strategy"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// Engine owns the authoritative game state. Every read returns a copy and
// every mutation goes through its methods.
type Engine struct {
	mu sync.Mutex

	id      uuid.UUID
	cfg     game.Config
	rng     *rand.Rand
	cops    []game.Piece
	thieves []game.Piece
	moved   []bool // per thief, reset every turn

	state   game.State
	turn    int
	current game.Faction
	moves   []game.Move
	result  *game.Result

	policeStrategy strategy.Police
	thiefStrategy  strategy.Thief
	customPolice   bool
	customThief    bool
	customRand     bool

	baseLogger zerolog.Logger
	logger     zerolog.Logger
}

// New builds an engine and places the pieces for cfg. The game is left
// not-started.
func New(cfg game.Config, options ...Option) *Engine {
	e := &Engine{ // Default values
		baseLogger: log.Logger,
	}
	for _, option := range options {
		option(e)
	}
	if !e.customRand {
		e.rng = rand.New(rand.NewSource(seedOrNow(cfg.Seed)))
	}
	e.initialize(cfg)
	return e
}

func seedOrNow(seed uint64) uint64 {
	if seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return seed
}

// Initialize re-places every piece for cfg and clears turn, log and result.
func (e *Engine) Initialize(cfg game.Config) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.initialize(cfg)
}

func (e *Engine) initialize(cfg game.Config) {
	e.cfg = cfg.Validate()
	e.id = uuid.New()
	e.logger = e.baseLogger.With().Str("game", e.id.String()).Logger()

	if !e.customPolice {
		s, err := strategy.NewPolice(e.cfg.PolicePolicy)
		if err != nil {
			panic(fmt.Sprintf("validated config has no police strategy: %v", err))
		}
		e.policeStrategy = s
	}
	if !e.customThief {
		s, err := strategy.NewThief(e.cfg.ThiefPolicy, e.rng)
		if err != nil {
			panic(fmt.Sprintf("validated config has no thief strategy: %v", err))
		}
		e.thiefStrategy = s
	}

	size := e.cfg.BoardSize
	e.cops = e.placeRow(game.Police, size-1, e.cfg.PoliceCount)
	e.thieves = e.placeRow(game.Thief, 0, e.cfg.ThiefCount)
	e.moved = make([]bool, len(e.thieves))

	e.state = game.NotStarted
	e.turn = 0
	e.current = game.Thief
	e.moves = nil
	e.result = nil

	e.logger.Info().Msgf("initialized %s", e.cfg)
}

// placeRow puts count pieces on random reachable cells of row.
func (e *Engine) placeRow(faction game.Faction, row, count int) []game.Piece {
	cols := game.HomeColumns(row, e.cfg.BoardSize)
	e.rng.Shuffle(len(cols), func(i, j int) {
		cols[i], cols[j] = cols[j], cols[i]
	})
	count = min(count, len(cols))

	pieces := make([]game.Piece, count)
	for i := 0; i < count; i++ {
		pieces[i] = game.Piece{
			ID:       game.NewPieceID(faction, i),
			Faction:  faction,
			Position: game.Position{Row: row, Col: cols[i]},
		}
	}
	return pieces
}

// Reset re-initializes with the current config.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.initialize(e.cfg)
}

// UpdateConfig merges patch into the config and re-initializes. A new seed
// re-seeds the generator unless one was injected.
func (e *Engine) UpdateConfig(patch game.ConfigPatch) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cfg := patch.Apply(e.cfg)
	if patch.Seed != nil && !e.customRand {
		e.rng.Seed(seedOrNow(*patch.Seed))
	}
	e.initialize(cfg)
}

// Start moves a not-started game to playing.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == game.NotStarted {
		e.state = game.Playing
		e.logger.Info().Msg("game started")
	}
}

// SetPaused toggles between playing and paused.
func (e *Engine) SetPaused(paused bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case paused && e.state == game.Playing:
		e.state = game.Paused
	case !paused && e.state == game.Paused:
		e.state = game.Playing
	}
}

// Status returns a snapshot of the lifecycle and the move log.
func (e *Engine) Status() game.Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := game.Status{
		State:         e.state,
		Turn:          e.turn,
		CurrentPlayer: e.current,
		Moves:         slices.Clone(e.moves),
	}
	if e.result != nil {
		r := *e.result
		s.Result = &r
	}
	return s
}

// Pieces returns a copy of every piece.
func (e *Engine) Pieces() game.Pieces {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.snapshot()
}

func (e *Engine) snapshot() game.Pieces {
	return game.Pieces{Police: e.cops, Thieves: e.thieves}.Copy()
}

func (e *Engine) Config() game.Config {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.cfg
}

// GameID identifies the current game; it changes on every initialize.
func (e *Engine) GameID() uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.id
}

// ValidThiefMoves lists the free diagonals of a thief, for highlighting.
func (e *Engine) ValidThiefMoves(id game.PieceID) []game.Position {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.thiefIndex(id)
	if i < 0 {
		return nil
	}
	return e.validMoves(i)
}

// Evaluation scores the current position for one thief from both sides.
type Evaluation struct {
	Police float64 // lower is better for police
	Thief  float64 // higher is better for the thief
}

func (e *Engine) Evaluate(thiefID game.PieceID) (Evaluation, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.thiefIndex(thiefID)
	if i < 0 {
		return Evaluation{}, false
	}
	return e.evaluate(e.thieves[i]), true
}

func (e *Engine) evaluate(thief game.Piece) Evaluation {
	pieces := e.snapshot()
	return Evaluation{
		Police: game.PoliceScore(e.cfg.BoardSize, pieces, thief),
		Thief:  game.ThiefScore(e.cfg.BoardSize, pieces, thief),
	}
}

// ReachableCells lists the cells a piece could reach within steps moves,
// ignoring occupancy. Police only move forward.
func (e *Engine) ReachableCells(id game.PieceID, steps int) []game.Position {
	e.mu.Lock()
	defer e.mu.Unlock()

	pc, ok := game.Pieces{Police: e.cops, Thieves: e.thieves}.Find(id)
	if !ok {
		return nil
	}
	return game.Reachable(pc.Position, steps, e.cfg.BoardSize, pc.Faction == game.Police)
}

func (e *Engine) thiefIndex(id game.PieceID) int {
	return slices.IndexFunc(e.thieves, func(p game.Piece) bool { return p.ID == id })
}

func (e *Engine) policeIndex(id game.PieceID) int {
	return slices.IndexFunc(e.cops, func(p game.Piece) bool { return p.ID == id })
}

func (e *Engine) policeAt(pos game.Position) int {
	return slices.IndexFunc(e.cops, func(p game.Piece) bool { return p.Position == pos })
}

func (e *Engine) thiefAt(pos game.Position) int {
	return slices.IndexFunc(e.thieves, func(p game.Piece) bool { return p.Position == pos })
}
