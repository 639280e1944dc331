package movegen

import "github.com/herohde/morlock/pkg/board"

// generator carries the per-call state shared by every piece-type routine: the position
// being searched, whose move it is, the destination mask implied by mode, and the
// check/pin restrictions computed once up front.
type generator struct {
	pos  *board.Position
	mode Mode

	us, them       board.Color
	king           board.Square
	occupied       board.Bitboard
	occupiedNoKing board.Bitboard

	destMask board.Bitboard
	resolver board.Bitboard
	pins     pins

	moves []board.Move
}

func (g *generator) emit(m board.Move) {
	g.moves = append(g.moves, m)
}

// Generate returns every fully legal move available to the side to move in pos, per mode.
// The returned slice is freshly allocated; order is unspecified.
func Generate(pos *board.Position, mode Mode) []board.Move {
	us := pos.SideToMove()
	them := us.Opponent()
	king := pos.KingSquare(us)
	occupied := pos.Occupied()

	destMask := pos.Movable(us)
	if mode == CapturesOnly {
		destMask = pos.ColorOccupied(them)
	}

	g := &generator{
		pos:            pos,
		mode:           mode,
		us:             us,
		them:           them,
		king:           king,
		occupied:       occupied,
		occupiedNoKing: occupied &^ board.BitMask(king),
		destMask:       destMask,
		resolver:       resolverSquares(pos, us, king, occupied),
		pins:           computePins(pos, us, king, occupied),
		moves:          make([]board.Move, 0, 32),
	}

	if g.resolver != board.EmptyBitboard {
		g.generatePawns()
		g.generateKnights()
		g.generateSliders(board.Bishop)
		g.generateSliders(board.Rook)
		g.generateSliders(board.Queen)
	}
	g.generateKing()

	return g.moves
}

// IsCheckmate reports whether the side to move has no legal move and is in check.
func IsCheckmate(pos *board.Position) bool {
	return pos.IsChecked(pos.SideToMove()) && len(Generate(pos, AllMoves)) == 0
}

// IsStalemate reports whether the side to move has no legal move and is not in check.
func IsStalemate(pos *board.Position) bool {
	return !pos.IsChecked(pos.SideToMove()) && len(Generate(pos, AllMoves)) == 0
}
