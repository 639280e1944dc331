package search_test

import (
	"context"
	"testing"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/fen"
	"github.com/herohde/morlock/pkg/movegen"
	"github.com/herohde/morlock/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestMoveFindsMateInOne(t *testing.T) {
	ctx := context.Background()

	// White king h1, rooks h7 and g6, black king a8 to move against: Rg8 is mate.
	pos, err := fen.Decode("k7/7R/6R1/8/8/8/8/7K w - - 0 1")
	require.NoError(t, err)

	s := search.New(board.White, search.NewTranspositionTable())
	m := s.BestMove(ctx, pos, 2000)
	require.False(t, m.IsNull())

	irr := pos.Make(m)
	assert.True(t, movegen.IsCheckmate(pos), "expected %v to deliver mate", m)
	pos.Unmake(m, irr)
}

func TestBestMoveCapturesHangingQueen(t *testing.T) {
	ctx := context.Background()

	// White queen on d1 can capture a hanging black queen on d8 along the open file.
	pos, err := fen.Decode("3q3k/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)

	s := search.New(board.White, search.NewTranspositionTable())
	m := s.BestMove(ctx, pos, 2000)
	require.False(t, m.IsNull())

	assert.Equal(t, board.D1, m.From)
	assert.Equal(t, board.D8, m.To)
	assert.True(t, m.IsCapture())
}

func TestBestMoveReturnsLegalMove(t *testing.T) {
	ctx := context.Background()

	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	s := search.New(board.White, search.NewTranspositionTable())
	m := s.BestMove(ctx, pos, 500)
	require.False(t, m.IsNull())

	legal := movegen.Generate(pos, movegen.AllMoves)
	found := false
	for _, lm := range legal {
		if lm.Equals(m) {
			found = true
			break
		}
	}
	assert.True(t, found, "%v is not among the legal root moves", m)
}

func TestBestMoveUnderExhaustedBudgetFallsBackToALegalMove(t *testing.T) {
	ctx := context.Background()

	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	s := search.New(board.White, search.NewTranspositionTable())
	m := s.BestMove(ctx, pos, -1)
	require.False(t, m.IsNull(), "must fall back to a legal root move rather than NullMove")

	legal := movegen.Generate(pos, movegen.AllMoves)
	found := false
	for _, lm := range legal {
		if lm.Equals(m) {
			found = true
			break
		}
	}
	assert.True(t, found, "%v is not among the legal root moves", m)
}

func TestBestMoveFindsTacticalShots(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		to   board.Square
	}{
		{"pawn fork", "4rrk1/1P3ppp/3b4/8/1n6/2p5/PP4B1/1K1QR3 b - - 0 1", board.D3},
		{"rook skewer", "r5k1/5ppp/1b2n3/8/8/3N4/1PP1PR2/2K4Q b - - 0 1", board.A1},
		{"mate in 1", "6k1/1q1N1pbp/4Q1p1/8/8/8/PPP3R1/1K6 b - - 0 1", board.B2},
		{"discovered mate in 1", "Q3q3/1b3pkp/6p1/2Qr4/8/8/1N2PP1P/7K b - - 0 1", board.D1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx := context.Background()

			pos, err := fen.Decode(test.fen)
			require.NoError(t, err)

			s := search.New(pos.SideToMove(), search.NewTranspositionTable())
			m := s.BestMove(ctx, pos, 500)
			require.False(t, m.IsNull())

			assert.Equal(t, test.to, m.To, "%v: expected a move to %v, got %v", test.name, test.to, m)
		})
	}
}

func TestBestMoveLeavesPositionUnchanged(t *testing.T) {
	ctx := context.Background()

	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	before := pos.Hash()

	s := search.New(board.White, search.NewTranspositionTable())
	s.BestMove(ctx, pos, 200)

	assert.Equal(t, before, pos.Hash(), "search must fully unmake every move it tries")
}
