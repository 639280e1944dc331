package movegen

import "github.com/herohde/morlock/pkg/board"

func (g *generator) generateKnights() {
	knights := g.pos.PieceBitboard(g.us, board.Knight)
	for knights != 0 {
		from := knights.PopFirstSquare()
		dest := board.KnightAttacks[from] & g.destMask & g.pins.restrict[from] & g.resolver
		g.emitTargets(from, board.Knight, dest)
	}
}

func (g *generator) generateSliders(piece board.Piece) {
	pieces := g.pos.PieceBitboard(g.us, piece)
	for pieces != 0 {
		from := pieces.PopFirstSquare()
		dest := g.sliderAttacks(piece, from) & g.destMask & g.pins.restrict[from] & g.resolver
		g.emitTargets(from, piece, dest)
	}
}

func (g *generator) sliderAttacks(piece board.Piece, sq board.Square) board.Bitboard {
	switch piece {
	case board.Rook:
		return board.CardinalAttacks(sq, g.occupied)
	case board.Bishop:
		return board.OrdinalAttacks(sq, g.occupied)
	default: // Queen
		return board.CardinalAttacks(sq, g.occupied) | board.OrdinalAttacks(sq, g.occupied)
	}
}

func (g *generator) emitTargets(from board.Square, piece board.Piece, dest board.Bitboard) {
	for dest != 0 {
		to := dest.PopFirstSquare()
		captured, _ := g.pos.PieceAtSide(g.them, to)
		g.emit(board.Move{Kind: board.Normal, From: from, To: to, Piece: piece, Captured: captured})
	}
}

func (g *generator) generateKing() {
	king := g.king
	dest := board.KingAttacks[king] & g.destMask
	for dest != 0 {
		to := dest.PopFirstSquare()
		if !g.isSafe(to) {
			continue
		}
		captured, _ := g.pos.PieceAtSide(g.them, to)
		g.emit(board.Move{Kind: board.Normal, From: king, To: to, Piece: board.King, Captured: captured})
	}

	if g.mode == CapturesOnly {
		return
	}
	g.generateCastles()
}

func (g *generator) generateCastles() {
	king := g.king
	if !g.isSafe(king) {
		return
	}

	rights := g.pos.Castling()
	rank := king.Rank()

	kingSideRight, queenSideRight := board.WhiteKingSideCastle, board.WhiteQueenSideCastle
	if g.us == board.Black {
		kingSideRight, queenSideRight = board.BlackKingSideCastle, board.BlackQueenSideCastle
	}

	if rights.IsAllowed(kingSideRight) {
		f, g2 := board.NewSquare(board.FileF, rank), board.NewSquare(board.FileG, rank)
		if g.pos.Empties().IsSet(f) && g.pos.Empties().IsSet(g2) && g.isSafe(f) && g.isSafe(g2) {
			g.emit(board.Move{Kind: board.Castle, From: king, To: g2, Piece: board.King})
		}
	}
	if rights.IsAllowed(queenSideRight) {
		b, c, d := board.NewSquare(board.FileB, rank), board.NewSquare(board.FileC, rank), board.NewSquare(board.FileD, rank)
		if g.pos.Empties().IsSet(b) && g.pos.Empties().IsSet(c) && g.pos.Empties().IsSet(d) && g.isSafe(c) && g.isSafe(d) {
			g.emit(board.Move{Kind: board.Castle, From: king, To: c, Piece: board.King})
		}
	}
}

// isSafe reports whether sq would be safe for the side-to-move's king to occupy: not
// attacked by the opponent with the king itself removed from the occupancy, so a slider
// isn't stopped short by the very king whose destination is being tested.
func (g *generator) isSafe(sq board.Square) bool {
	return !g.pos.IsAttacked(g.them, sq, g.occupiedNoKing)
}
