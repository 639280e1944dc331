package movegen

import "github.com/herohde/morlock/pkg/board"

var promoKinds = [4]board.MoveKind{board.PromoKnight, board.PromoBishop, board.PromoRook, board.PromoQueen}

// pawnForward returns the square directly ahead of sq in color c's direction of travel.
func pawnForward(c board.Color, sq board.Square) board.Square {
	if c == board.White {
		return sq + 8
	}
	return sq - 8
}

// pawnBehind returns the square directly behind `to` in color c's direction of travel: the
// square an en-passant-captured pawn stands on, and the target square a double push sets.
func pawnBehind(c board.Color, to board.Square) board.Square {
	if c == board.White {
		return to - 8
	}
	return to + 8
}

func (g *generator) generatePawns() {
	us, them := g.us, g.them
	pawns := g.pos.PieceBitboard(us, board.Pawn)
	promoRank := board.PawnPromotionRank(us)
	jumpRank := board.PawnJumpRank(us)
	empties := g.pos.Empties()

	for pawns != 0 {
		from := pawns.PopFirstSquare()
		restrict := g.pins.restrict[from]

		to := pawnForward(us, from)
		toEmpty := empties.IsSet(to)

		if toEmpty && g.mode == AllMoves {
			if dest := board.BitMask(to) & restrict & g.resolver; dest != 0 {
				if promoRank.IsSet(to) {
					g.emitPromotions(from, to, board.NoPiece)
				} else {
					g.emit(board.Move{Kind: board.Normal, From: from, To: to, Piece: board.Pawn})
				}
			}
		}

		// The double push's own resolver/pin check is independent of the single push's:
		// a double push can be the only legal block of a check when the intervening
		// square isn't itself on the resolver ray (e.g. a king in check along a diagonal,
		// blocked only by landing two squares ahead), so it must not be gated behind the
		// single push having qualified.
		if toEmpty && g.mode == AllMoves {
			to2 := pawnForward(us, to)
			if empties.IsSet(to2) && jumpRank.IsSet(to2) {
				if dest2 := board.BitMask(to2) & restrict & g.resolver; dest2 != 0 {
					g.emit(board.Move{Kind: board.Normal, From: from, To: to2, Piece: board.Pawn})
				}
			}
		}

		captures := board.PawnCaptures[us][from] & g.pos.ColorOccupied(them) & restrict & g.resolver
		for captures != 0 {
			capTo := captures.PopFirstSquare()
			captured, _ := g.pos.PieceAtSide(them, capTo)
			if promoRank.IsSet(capTo) {
				g.emitPromotions(from, capTo, captured)
			} else {
				g.emit(board.Move{Kind: board.Normal, From: from, To: capTo, Piece: board.Pawn, Captured: captured})
			}
		}

		g.generateEnPassant(from, restrict)
	}
}

func (g *generator) generateEnPassant(from board.Square, restrict board.Bitboard) {
	ep, ok := g.pos.EnPassant()
	if !ok {
		return
	}
	if board.PawnCaptures[g.us][from]&board.BitMask(ep) == 0 {
		return
	}
	if restrict&board.BitMask(ep) == 0 {
		return
	}

	captured := pawnBehind(g.us, ep)
	if g.resolver&(board.BitMask(ep)|board.BitMask(captured)) == 0 {
		return
	}
	if enPassantRevealsCheck(g.pos, g.us, g.king, from, captured, g.occupied) {
		return
	}

	g.emit(board.Move{Kind: board.EnPassant, From: from, To: ep, Piece: board.Pawn, Captured: board.Pawn})
}

func (g *generator) emitPromotions(from, to board.Square, captured board.Piece) {
	for _, kind := range promoKinds {
		g.emit(board.Move{Kind: kind, From: from, To: to, Piece: board.Pawn, Captured: captured})
	}
}
