// Package perft counts the leaf positions reached after a fixed number of plies of
// fully legal play, the standard cross-check for a move generator against published
// node-count tables.
package perft

import (
	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/movegen"
)

// Count returns the number of leaf nodes reached after depth plies from pos.
func Count(pos *board.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := movegen.Generate(pos, movegen.AllMoves)
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		irr := pos.Make(m)
		nodes += Count(pos, depth-1)
		pos.Unmake(m, irr)
	}
	return nodes
}

// Divide returns Count(pos, depth) broken down by each of pos's root moves: each move
// maps to the node count depth-1 plies after it. This is the usual way to isolate which
// branch of a move generator disagrees with a reference engine.
func Divide(pos *board.Position, depth int) map[board.Move]int64 {
	counts := make(map[board.Move]int64)
	if depth == 0 {
		return counts
	}

	for _, m := range movegen.Generate(pos, movegen.AllMoves) {
		irr := pos.Make(m)
		counts[m] = Count(pos, depth-1)
		pos.Unmake(m, irr)
	}
	return counts
}
