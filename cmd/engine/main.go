// engine is a minimal command-line front end: given a position and a time budget, it
// prints the best move found.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/herohde/morlock/pkg/fen"
	"github.com/herohde/morlock/pkg/search"
	"github.com/seekerror/logw"
)

var (
	position = flag.String("fen", "", "Position to search (default to the standard starting position)")
	budget   = flag.Int("budget", 1000, "Search time budget in milliseconds")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: engine [options]

Searches a single position under iterative-deepening negamax and prints the best move.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *position == "" {
		*position = fen.Initial
	}

	pos, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	s := search.New(pos.SideToMove(), search.NewTranspositionTable())

	m := s.BestMove(ctx, pos, *budget)
	if m.IsNull() {
		logw.Exitf(ctx, "No legal move for fen='%v'", *position)
	}

	println(fmt.Sprintf("bestmove,%v,%v,%v", *position, pos.SideToMove(), m))
}
