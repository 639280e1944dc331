// Package search implements iterative-deepening alpha-beta (negamax) search over
// pkg/movegen-generated legal moves, backed by a transposition table and a repetition
// stack, behind a single synchronous entry point: (*Search).BestMove.
package search

import (
	"context"
	"time"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/eval"
	"github.com/herohde/morlock/pkg/movegen"
	"github.com/seekerror/logw"
)

// Contempt is subtracted from the side to move's score on a detected draw (threefold
// repetition or the fifty-move rule), so the engine steers toward a draw only when it is
// otherwise losing by at least this much, never offers one from an equal or winning
// position.
var Contempt = 4 * eval.PieceValue(board.Pawn)

const (
	// MaxDepth bounds iterative deepening; also used to prefer faster mates (a mate
	// found with more remaining depth, i.e. nearer the root, scores closer to MinEval for
	// the mated side).
	MaxDepth = 100

	// MinEval and MaxEval are sentinels strictly beyond any reachable static or mate
	// score, so alpha-beta's initial window never prunes a real result.
	MinEval board.Score = board.MinScore
	MaxEval board.Score = board.MaxScore
)

// Search runs iterative-deepening negamax for one side of a game, owning a
// transposition table and the repetition history of the current line of play. It is not
// safe for concurrent use: per the single-threaded cooperative model, only one call
// chain is ever active at a time.
type Search struct {
	engine board.Color
	tt     *TranspositionTable
	rep    repetitionStack
}

// New returns a Search that plays engine and stores results in tt. tt may be shared
// across Search instances only if they never run concurrently, since
// TranspositionTable is not goroutine-safe.
func New(engine board.Color, tt *TranspositionTable) *Search {
	return &Search{engine: engine, tt: tt}
}

// PushHistory records a position the game has passed through, so draws by repetition
// through it are detected. Call once per ply actually played (not per move considered
// inside search), in sync with the game's own Position.Make calls.
func (s *Search) PushHistory(hash board.ZobristHash) {
	s.rep.push(hash)
}

// ClearHistory discards repetition history; call whenever an irreversible move (capture,
// pawn move, or castle) is played at the game level, since no earlier position can recur.
func (s *Search) ClearHistory() {
	s.rep.clear()
}

// BestMove runs iterative deepening from pos, which must have the engine to move,
// spending up to budgetMs milliseconds. It returns the best move found at the deepest
// depth iterate fully completed. If the budget is exhausted before depth 1 completes, it
// falls back to the first legal root move rather than NullMove, so the caller always has
// a move to play as long as one is legal.
func (s *Search) BestMove(ctx context.Context, pos *board.Position, budgetMs int) board.Move {
	start := time.Now()

	best := board.NullMove
	if moves := movegen.Generate(pos, movegen.AllMoves); len(moves) > 0 {
		best = moves[0]
	}

	for depth := 1; depth <= MaxDepth; depth++ {
		m, score, ok := s.iterate(ctx, pos, depth, start, budgetMs)
		if !ok {
			break
		}
		best = m
		logw.Infof(ctx, "search depth=%v score=%v move=%v elapsed=%v", depth, s.engine.Unit()*score, m, time.Since(start))
	}

	if best.IsIrreversible() {
		s.ClearHistory()
	}
	return best
}

// iterate runs one full-width root search at depth, in MVV-LVA/TT-hinted move order.
// ok is false if the time budget ran out before every root move was examined, meaning
// the caller must discard this depth's result entirely.
func (s *Search) iterate(ctx context.Context, pos *board.Position, depth int, start time.Time, budgetMs int) (board.Move, board.Score, bool) {
	moves := movegen.Generate(pos, movegen.AllMoves)
	if len(moves) == 0 {
		return board.NullMove, 0, false
	}

	ttBest := board.NullMove
	if e := s.tt.Probe(pos.Hash()); e.Hash == pos.Hash() {
		ttBest = e.Best
	}

	var best board.Move
	bestScore := MinEval - 1
	for i := range moves {
		if budgetElapsed(start, budgetMs) || ctx.Err() != nil {
			return board.NullMove, 0, false
		}
		selectNext(moves, i, ttBest)
		m := moves[i]

		irr := pos.Make(m)
		s.rep.push(pos.Hash())
		score := -s.negamax(ctx, pos, depth-1, MinEval, MaxEval)
		s.rep.pop()
		pos.Unmake(m, irr)

		if i == 0 || score > bestScore {
			best, bestScore = m, score
		}
	}
	return best, bestScore, true
}

// negamax evaluates pos from the side-to-move's perspective: positive is good for
// whoever is to move there, and every recursive call negates the child's score on
// return.
func (s *Search) negamax(ctx context.Context, pos *board.Position, depth int, alpha, beta board.Score) board.Score {
	origAlpha, origBeta := alpha, beta

	hash := pos.Hash()

	if s.rep.isThreefold(hash) || pos.HalfMoveClock() >= 50 {
		return -Contempt
	}

	entry := s.tt.Probe(hash)
	if entry.Hash != hash {
		entry.reset(hash)
	} else if entry.Depth >= depth {
		switch entry.Bound {
		case Exact:
			return entry.Score
		case Lower:
			if entry.Score > alpha {
				alpha = entry.Score
			}
		case Upper:
			if entry.Score < beta {
				beta = entry.Score
			}
		}
		if alpha >= beta {
			return entry.Score
		}
	}

	if depth == 0 {
		score := eval.Evaluate(pos) * pos.SideToMove().Unit()
		*entry = Entry{Hash: hash, Depth: depth, Score: score, Best: board.NullMove, Bound: Exact}
		return score
	}

	moves := movegen.Generate(pos, movegen.AllMoves)
	if len(moves) == 0 {
		if pos.IsChecked(pos.SideToMove()) {
			return MinEval + board.Score(MaxDepth-depth)
		}
		return -Contempt
	}

	ttBest := entry.Best

	var bestMove board.Move
	bestScore := MinEval - 1
	for i := range moves {
		selectNext(moves, i, ttBest)
		m := moves[i]

		irr := pos.Make(m)
		s.rep.push(pos.Hash())
		score := -s.negamax(ctx, pos, depth-1, -beta, -alpha)
		s.rep.pop()
		pos.Unmake(m, irr)

		if score > bestScore {
			bestScore, bestMove = score, m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	// Classify against the window this call actually received, not the (possibly
	// TT-tightened) alpha/beta used during the move loop: a cutoff relative to a
	// narrowed window doesn't imply a cutoff relative to the caller's true window.
	bound := Exact
	switch {
	case bestScore <= origAlpha:
		bound = Upper
	case bestScore >= origBeta:
		bound = Lower
	}
	*entry = Entry{Hash: hash, Depth: depth, Score: bestScore, Best: bestMove, Bound: bound}

	return bestScore
}

func budgetElapsed(start time.Time, budgetMs int) bool {
	return time.Since(start) > time.Duration(budgetMs)*time.Millisecond
}
