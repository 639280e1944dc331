package search

import (
	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/eval"
)

// queenValue anchors the move-ordering scale so that even a losing capture (QxP, the
// worst case) still outscores every quiet move: quiets are fixed at -1 below.
var queenValue = eval.PieceValue(board.Queen)

// selectNext scans moves[index:] for the highest-scoring move under ttBest's ordering
// and swaps it into position index, an in-place selection sort performed one step per
// call rather than all at once: callers that beta-cutoff partway through the move list
// never pay for sorting moves they never look at.
func selectNext(moves []board.Move, index int, ttBest board.Move) {
	best := index
	bestScore := moveOrderScore(moves[index], ttBest)
	for i := index + 1; i < len(moves); i++ {
		if s := moveOrderScore(moves[i], ttBest); s > bestScore {
			best, bestScore = i, s
		}
	}
	moves[index], moves[best] = moves[best], moves[index]
}

// moveOrderScore ranks the transposition-table move first, then captures by MVV-LVA
// (most valuable victim, least valuable attacker), then quiets last.
func moveOrderScore(m, ttBest board.Move) board.Score {
	if !ttBest.IsNull() && m.Equals(ttBest) {
		return 3 * queenValue
	}
	if m.IsCapture() {
		return queenValue + eval.PieceValue(m.Captured) - eval.PieceValue(m.Piece)
	}
	return -1
}
