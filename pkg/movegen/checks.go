package movegen

import "github.com/herohde/morlock/pkg/board"

// resolverSquares returns the destinations, other than moving the king itself, that end
// the current check: the full board if the king is not attacked, the attacker's square
// plus, for a sliding attacker, the squares between it and the king (capture or block) if
// attacked once, or the empty board if attacked by two
// or more pieces at once (only the king can move).
func resolverSquares(pos *board.Position, us board.Color, king board.Square, occupied board.Bitboard) board.Bitboard {
	them := us.Opponent()

	cardinalSliders := pos.PieceBitboard(them, board.Rook) | pos.PieceBitboard(them, board.Queen)
	ordinalSliders := pos.PieceBitboard(them, board.Bishop) | pos.PieceBitboard(them, board.Queen)

	cardinalAttackers := board.CardinalAttacks(king, occupied) & cardinalSliders
	ordinalAttackers := board.OrdinalAttacks(king, occupied) & ordinalSliders
	knightAttackers := board.KnightAttacks[king] & pos.PieceBitboard(them, board.Knight)
	pawnAttackers := board.PawnCaptures[us][king] & pos.PieceBitboard(them, board.Pawn)

	count := cardinalAttackers.PopCount() + ordinalAttackers.PopCount() + knightAttackers.PopCount() + pawnAttackers.PopCount()
	switch {
	case count == 0:
		return board.FullBitboard
	case count >= 2:
		return board.EmptyBitboard
	}

	if cardinalAttackers != 0 {
		attacker := cardinalAttackers.FirstSquare()
		return board.CardinalAttacks(king, occupied)&board.CardinalAttacks(attacker, occupied) | board.BitMask(attacker)
	}
	if ordinalAttackers != 0 {
		attacker := ordinalAttackers.FirstSquare()
		return board.OrdinalAttacks(king, occupied)&board.OrdinalAttacks(attacker, occupied) | board.BitMask(attacker)
	}
	if knightAttackers != 0 {
		return knightAttackers
	}
	return pawnAttackers
}

// enPassantRevealsCheck implements the one pin case the ray scanner in pins.go cannot see:
// capturing en passant removes two pawns from the same rank at once, which can uncover a
// rook/queen attack on the king along that rank even though neither pawn alone was pinned.
func enPassantRevealsCheck(pos *board.Position, us board.Color, king, from, captured board.Square, occupied board.Bitboard) bool {
	them := us.Opponent()
	occ2 := occupied &^ board.BitMask(from) &^ board.BitMask(captured)

	attackers := board.CardinalAttacks(king, occ2) & (pos.PieceBitboard(them, board.Rook) | pos.PieceBitboard(them, board.Queen))
	for attackers != 0 {
		sq := attackers.PopFirstSquare()
		if sq.Rank() == king.Rank() {
			return true
		}
	}
	return false
}
