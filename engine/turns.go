package engine

import (
	"pursuit/game"
	"pursuit/strategy"
	"pursuit/utils"
)

// MakeThiefMove applies a manually chosen destination for a thief. It returns
// false, without side effects on positions, when the move is illegal or it is
// not the thieves' turn.
func (e *Engine) MakeThiefMove(id game.PieceID, to game.Position) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, ok := e.thiefReady(id)
	if !ok {
		return false
	}
	if !e.isValidThiefMove(i, to) {
		// A thief with nothing left may have been the last one able to move
		if len(e.validMoves(i)) == 0 {
			e.checkDeadlock()
		}
		return false
	}
	e.applyThiefMove(i, to)
	return true
}

// MakeAutoThiefMove lets the configured thief policy move a thief.
func (e *Engine) MakeAutoThiefMove(id game.PieceID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.autoThiefMove(id)
}

func (e *Engine) autoThiefMove(id game.PieceID) bool {
	i, ok := e.thiefReady(id)
	if !ok {
		return false
	}

	to, ok := e.thiefStrategy.Choose(e.cfg.BoardSize, e.snapshot(), e.thieves[i])
	if !ok {
		e.logger.Debug().Msgf("%s has no move", id)
		e.moved[i] = true
		if !e.checkDeadlock() {
			e.endThiefTurnIfDone()
		}
		return false
	}
	if !e.isValidThiefMove(i, to) {
		e.logger.Warn().Msgf("thief policy proposed illegal move for %s to (%d,%d)", id, to.Row, to.Col)
		return false
	}
	e.applyThiefMove(i, to)
	return true
}

// thiefReady returns the index of a thief allowed to move right now.
func (e *Engine) thiefReady(id game.PieceID) (int, bool) {
	if e.state != game.Playing || e.current != game.Thief {
		return -1, false
	}
	i := e.thiefIndex(id)
	if i < 0 || e.moved[i] {
		return -1, false
	}
	return i, true
}

func (e *Engine) isValidThiefMove(i int, to game.Position) bool {
	from := e.thieves[i].Position
	if !game.IsDiagonalStep(from, to) || !game.InBounds(to, e.cfg.BoardSize) {
		return false
	}
	return utils.Contains(e.validMoves(i), to)
}

func (e *Engine) validMoves(i int) []game.Position {
	pieces := game.Pieces{Police: e.cops, Thieves: e.thieves}
	return pieces.FreeThiefMoves(e.thieves[i], e.cfg.BoardSize)
}

func (e *Engine) applyThiefMove(i int, to game.Position) {
	thief := &e.thieves[i]
	e.record(thief.ID, thief.Position, to)
	thief.Position = to
	e.moved[i] = true

	if e.policeAt(to) >= 0 {
		e.endGame(game.Police, game.ReasonCaptured)
		return
	}
	if game.HasReachedGoal(to, e.cfg.BoardSize) {
		e.endGame(game.Thief, game.ReasonGoal)
		return
	}
	e.endThiefTurnIfDone()
}

// endThiefTurnIfDone hands the turn to the police once every thief has moved
// or has nowhere to go.
func (e *Engine) endThiefTurnIfDone() {
	for i := range e.thieves {
		if !e.moved[i] && len(e.validMoves(i)) > 0 {
			return
		}
	}
	e.current = game.Police
	e.checkDeadlock()
}

// MakePoliceMove runs one police decision step for every police piece. It
// returns false when it is not the police's turn.
func (e *Engine) MakePoliceMove() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.policeMove()
}

func (e *Engine) policeMove() bool {
	if e.state != game.Playing || e.current != game.Police {
		return false
	}

	pieces := e.snapshot()
	target, ok := strategy.SelectTarget(pieces)
	if !ok {
		return false
	}
	plan := e.policeStrategy.Plan(e.cfg.BoardSize, pieces, target)
	e.logger.Debug().Msgf("turn %d: police plan %d moves against %s", e.turn, len(plan), target.ID)

	e.applyPolicePlan(plan)
	if e.state.IsTerminal() {
		return true
	}

	e.turn++
	if e.cfg.Rules.TurnLimitReached(e.turn) {
		e.endGame(game.Thief, game.ReasonTurnLimit)
		return true
	}

	e.current = game.Thief
	for i := range e.moved {
		e.moved[i] = false
	}
	e.checkDeadlock()
	return true
}

// applyPolicePlan commits proposals whose destination is free, repeating
// until no more can be applied so a piece may step into a cell another piece
// just left. Landing on a thief ends the game at once.
func (e *Engine) applyPolicePlan(plan []strategy.Proposal) {
	pending := make([]strategy.Proposal, 0, len(plan))
	for _, p := range plan {
		i := e.policeIndex(p.PieceID)
		if i < 0 || e.cops[i].Position != p.From ||
			!game.InBounds(p.To, e.cfg.BoardSize) || !game.IsDiagonalStep(p.From, p.To) {
			e.logger.Warn().Msgf("dropping invalid police proposal for %s", p.PieceID)
			continue
		}
		pending = append(pending, p)
	}

	for progress := true; progress && len(pending) > 0; {
		progress = false
		rest := pending[:0]
		for _, p := range pending {
			if e.policeAt(p.To) >= 0 {
				rest = append(rest, p)
				continue
			}

			cop := &e.cops[e.policeIndex(p.PieceID)]
			e.record(cop.ID, cop.Position, p.To)
			cop.Position = p.To
			progress = true

			if e.thiefAt(p.To) >= 0 {
				e.endGame(game.Police, game.ReasonCaptured)
				return
			}
		}
		pending = rest
	}

	for _, p := range pending {
		e.logger.Warn().Msgf("police %s blocked at (%d,%d)", p.PieceID, p.From.Row, p.From.Col)
	}
}

// checkDeadlock ends the game for the police when no thief can move.
func (e *Engine) checkDeadlock() bool {
	if e.state != game.Playing {
		return false
	}
	for i := range e.thieves {
		if len(e.validMoves(i)) > 0 {
			return false
		}
	}
	e.endGame(game.Police, game.ReasonNoMoves)
	return true
}

// Step advances one logical step: every thief in automatic mode, or the
// police. It returns whether anything changed. Manual thieves are left to
// the caller.
func (e *Engine) Step() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != game.Playing {
		return false
	}
	if e.current == game.Police {
		return e.policeMove()
	}
	if e.cfg.ThiefMode == game.ThiefManual {
		return false
	}

	before := len(e.moves)
	ids := make([]game.PieceID, len(e.thieves))
	for i, t := range e.thieves {
		ids[i] = t.ID
	}
	for _, id := range ids {
		if e.state != game.Playing || e.current != game.Thief {
			break
		}
		e.autoThiefMove(id)
	}
	return len(e.moves) != before || e.state != game.Playing || e.current != game.Thief
}

func (e *Engine) record(id game.PieceID, from, to game.Position) {
	m := game.Move{PieceID: id, From: from, To: to, Turn: e.turn}
	e.moves = append(e.moves, m)
	e.logger.Debug().Msg(m.String())
}

func (e *Engine) endGame(winner game.Faction, reason game.Reason) {
	if winner == game.Thief {
		e.state = game.ThiefWon
	} else {
		e.state = game.PoliceWon
	}
	r := game.NewResult(winner, reason, e.cfg.ThiefMode == game.ThiefManual)
	e.result = &r
	e.logger.Info().
		Str("winner", winner.String()).
		Str("reason", string(reason)).
		Int("turn", e.turn).
		Msg(r.Message)
}
