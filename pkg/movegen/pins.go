package movegen

import "github.com/herohde/morlock/pkg/board"

// direction is one of the 8 ray directions a slider can move along, expressed as the
// bitboard shift that advances one step in that direction.
type direction func(board.Bitboard) board.Bitboard

var cardinalDirs = [4]direction{board.ShiftNorth, board.ShiftSouth, board.ShiftEast, board.ShiftWest}

var ordinalDirs = [4]direction{
	func(b board.Bitboard) board.Bitboard { return board.ShiftNorth(board.ShiftEast(b)) },
	func(b board.Bitboard) board.Bitboard { return board.ShiftNorth(board.ShiftWest(b)) },
	func(b board.Bitboard) board.Bitboard { return board.ShiftSouth(board.ShiftEast(b)) },
	func(b board.Bitboard) board.Bitboard { return board.ShiftSouth(board.ShiftWest(b)) },
}

// scanRay walks from sq in the given direction, accumulating every square crossed, and
// stops at (and includes) the first occupied square. ok is false if the ray runs off the
// board without hitting a blocker.
func scanRay(sq board.Square, occupied board.Bitboard, dir direction) (ray board.Bitboard, blocker board.Square, ok bool) {
	bb := dir(board.BitMask(sq))
	for bb != 0 {
		ray |= bb
		if bb&occupied != 0 {
			return ray, bb.FirstSquare(), true
		}
		bb = dir(bb)
	}
	return ray, board.NullSquare, false
}

// pins holds, per square, the restriction an absolute pin places on the piece standing
// there: FullBitboard if unpinned, or the ray from the king through the piece up to and
// including the pinning slider otherwise.
//
// A single array serves every piece type and every pin geometry. Intersecting any piece's
// candidate destinations with pins.restrict[sq] is sufficient on its own to enforce every
// rule in the per-piece generation: a piece whose movement geometry doesn't match the pin
// line (a cardinally-pinned bishop, an ordinally-pinned rook, any pinned knight) can never
// produce a destination that also lies on the pin line, since the two geometries only ever
// meet at the piece's own square — which is excluded from its own attack set. So those
// cases need no special-casing; they fall out of the geometry.
type pins struct {
	restrict [board.NumSquares]board.Bitboard
}

func computePins(pos *board.Position, us board.Color, king board.Square, occupied board.Bitboard) pins {
	var p pins
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		p.restrict[sq] = board.FullBitboard
	}

	them := us.Opponent()
	findPins(pos, us, them, king, occupied, cardinalDirs[:], board.Rook, board.Queen, &p)
	findPins(pos, us, them, king, occupied, ordinalDirs[:], board.Bishop, board.Queen, &p)
	return p
}

func findPins(pos *board.Position, us, them board.Color, king board.Square, occupied board.Bitboard, dirs []direction, sliderA, sliderB board.Piece, p *pins) {
	sliders := pos.PieceBitboard(them, sliderA) | pos.PieceBitboard(them, sliderB)
	if sliders == 0 {
		return
	}

	for _, dir := range dirs {
		_, candidate, ok := scanRay(king, occupied, dir)
		if !ok {
			continue
		}
		if piece, side := colorPieceAt(pos, candidate); side != us || piece == board.NoPiece {
			continue
		}

		ray2, pinner, ok2 := scanRay(king, occupied&^board.BitMask(candidate), dir)
		if !ok2 || sliders&board.BitMask(pinner) == 0 {
			continue
		}
		p.restrict[candidate] = ray2
	}
}

func colorPieceAt(pos *board.Position, sq board.Square) (board.Piece, board.Color) {
	c, piece, ok := pos.PieceAt(sq)
	if !ok {
		return board.NoPiece, board.ZeroColor
	}
	return piece, c
}
