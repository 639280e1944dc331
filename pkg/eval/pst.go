package eval

import "github.com/herohde/morlock/pkg/board"

// Piece-square tables, indexed by board.Square (A1=0 .. H8=63), from White's perspective.
// Values nudge the material score toward standard positional preferences: central pawn
// advancement, centralized knights, and open bishop diagonals.

var pawnPST = [64]board.Score{
	// rank 1
	0, 0, 0, 0, 0, 0, 0, 0,
	// rank 2
	5, 10, 10, -20, -20, 10, 10, 5,
	// rank 3
	5, -5, -10, 0, 0, -10, -5, 5,
	// rank 4
	0, 0, 0, 20, 20, 0, 0, 0,
	// rank 5
	5, 5, 10, 25, 25, 10, 5, 5,
	// rank 6
	10, 10, 20, 30, 30, 20, 10, 10,
	// rank 7
	50, 50, 50, 50, 50, 50, 50, 50,
	// rank 8
	0, 0, 0, 0, 0, 0, 0, 0,
}

// knightPST and bishopPST are listed rank 1 first, like pawnPST. They are not vertically
// symmetric: the first and last rows match, but rows 2-7 differ from their mirror rows.
var knightPST = [64]board.Score{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]board.Score{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}
