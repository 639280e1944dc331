// Package eval provides a static, pure-function evaluator for board.Position: material
// balance, the bishop-pair bonus, and piece-square tables, combined into a single signed
// centipawn score from White's perspective.
package eval

import "github.com/herohde/morlock/pkg/board"

// pieceValue is the nominal centipawn value of each piece. The King's value is 0, so the
// one king per side adds nothing to Material.
var pieceValue = [board.NumPieces]board.Score{
	board.Pawn:   100,
	board.Knight: 350,
	board.Bishop: 400,
	board.Rook:   550,
	board.Queen:  1000,
	board.King:   0,
}

// bishopPairBonus is awarded to a side holding two or more bishops, reflecting the
// long-diagonal coverage a single bishop can never match.
const bishopPairBonus board.Score = 150

// PieceValue returns the nominal centipawn value used for piece by Material and, via
// pkg/search, for MVV-LVA move ordering and the contempt constant.
func PieceValue(piece board.Piece) board.Score {
	return pieceValue[piece]
}

// Evaluate returns the static evaluation of pos in centipawns from White's perspective:
// positive favors White, negative favors Black. Pure function of pos; no side effects,
// no search.
func Evaluate(pos *board.Position) board.Score {
	return material(pos) + bishopPair(pos) + pieceSquares(pos)
}

func material(pos *board.Position) board.Score {
	var score board.Score
	for piece := board.Pawn; piece <= board.King; piece++ {
		count := pos.PieceBitboard(board.White, piece).PopCount() - pos.PieceBitboard(board.Black, piece).PopCount()
		score += board.Score(count) * pieceValue[piece]
	}
	return score
}

func bishopPair(pos *board.Position) board.Score {
	var score board.Score
	if pos.PieceBitboard(board.White, board.Bishop).PopCount() >= 2 {
		score += bishopPairBonus
	}
	if pos.PieceBitboard(board.Black, board.Bishop).PopCount() >= 2 {
		score -= bishopPairBonus
	}
	return score
}

func pieceSquares(pos *board.Position) board.Score {
	var score board.Score
	score += pstFor(pos, board.White, board.Pawn, pawnPST)
	score -= pstFor(pos, board.Black, board.Pawn, pawnPST)
	score += pstFor(pos, board.White, board.Knight, knightPST)
	score -= pstFor(pos, board.Black, board.Knight, knightPST)
	score += pstFor(pos, board.White, board.Bishop, bishopPST)
	score -= pstFor(pos, board.Black, board.Bishop, bishopPST)
	return score
}

func pstFor(pos *board.Position, c board.Color, piece board.Piece, table [64]board.Score) board.Score {
	var score board.Score
	bb := pos.PieceBitboard(c, piece)
	for bb != 0 {
		sq := bb.PopFirstSquare()
		score += table[mirrorIfBlack(c, sq)]
	}
	return score
}

// mirrorIfBlack returns sq unchanged for White, or vertically flipped (rank r -> 7-r)
// for Black, so a single White-oriented table reads correctly for either color: a
// pawn one step from promotion scores the same whichever side it belongs to.
func mirrorIfBlack(c board.Color, sq board.Square) board.Square {
	if c == board.White {
		return sq
	}
	return board.NewSquare(sq.File(), board.Rank(7-sq.Rank()))
}
