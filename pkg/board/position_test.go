package board_test

import (
	"testing"

	"github.com/herohde/morlock/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startingPosition(t *testing.T) *board.Position {
	t.Helper()

	var placements []board.Placement
	back := []board.Piece{board.Rook, board.Knight, board.Bishop, board.Queen, board.King, board.Bishop, board.Knight, board.Rook}
	for f := board.ZeroFile; f < board.NumFiles; f++ {
		placements = append(placements,
			board.Placement{Square: board.NewSquare(f, board.Rank1), Color: board.White, Piece: back[f]},
			board.Placement{Square: board.NewSquare(f, board.Rank2), Color: board.White, Piece: board.Pawn},
			board.Placement{Square: board.NewSquare(f, board.Rank7), Color: board.Black, Piece: board.Pawn},
			board.Placement{Square: board.NewSquare(f, board.Rank8), Color: board.Black, Piece: back[f]},
		)
	}
	pos, err := board.NewPosition(placements, board.White, board.FullCastingRights, board.NullSquare, 0, 1)
	require.NoError(t, err)
	return pos
}

func TestNewPosition(t *testing.T) {
	pos := startingPosition(t)
	assert.Equal(t, board.E1, pos.KingSquare(board.White))
	assert.Equal(t, board.E8, pos.KingSquare(board.Black))
	assert.Equal(t, board.FullBitboard&^board.BitRank(board.Rank3)&^board.BitRank(board.Rank4)&^board.BitRank(board.Rank5)&^board.BitRank(board.Rank6), pos.Occupied())
	assert.False(t, pos.IsChecked(board.White))
	assert.False(t, pos.IsChecked(board.Black))

	_, err := board.NewPosition([]board.Placement{{Square: board.E1, Color: board.White, Piece: board.King}}, board.White, 0, board.NullSquare, 0, 1)
	assert.Error(t, err, "missing black king")

	_, err = board.NewPosition([]board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E2, Color: board.Black, Piece: board.King},
	}, board.White, 0, board.NullSquare, 0, 1)
	assert.Error(t, err, "adjacent kings")

	_, err = board.NewPosition([]board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E1, Color: board.Black, Piece: board.Queen},
		{Square: board.E8, Color: board.Black, Piece: board.King},
	}, board.White, 0, board.NullSquare, 0, 1)
	assert.Error(t, err, "duplicate placement")
}

// makeUnmake applies and then reverses m, asserting every observable field of pos is
// restored exactly, including the Zobrist hash.
func makeUnmake(t *testing.T, pos *board.Position, m board.Move) {
	t.Helper()

	before := pos.String()
	beforeHash := pos.Hash()

	irr := pos.Make(m)
	assert.NotEqual(t, before, pos.String(), "move %v had no effect", m)

	pos.Unmake(m, irr)
	assert.Equal(t, before, pos.String())
	assert.Equal(t, beforeHash, pos.Hash())
}

func TestMakeUnmakeQuietMove(t *testing.T) {
	pos := startingPosition(t)
	makeUnmake(t, pos, board.Move{Kind: board.Normal, From: board.E2, To: board.E4, Piece: board.Pawn})
}

func TestMakeUnmakeCapture(t *testing.T) {
	placements := []board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E8, Color: board.Black, Piece: board.King},
		{Square: board.D4, Color: board.White, Piece: board.Rook},
		{Square: board.D8, Color: board.Black, Piece: board.Rook},
	}
	pos, err := board.NewPosition(placements, board.White, 0, board.NullSquare, 0, 1)
	require.NoError(t, err)

	makeUnmake(t, pos, board.Move{Kind: board.Normal, From: board.D4, To: board.D8, Piece: board.Rook, Captured: board.Rook})
}

func TestMakeUnmakeEnPassant(t *testing.T) {
	placements := []board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E8, Color: board.Black, Piece: board.King},
		{Square: board.E5, Color: board.White, Piece: board.Pawn},
		{Square: board.D5, Color: board.Black, Piece: board.Pawn},
	}
	pos, err := board.NewPosition(placements, board.White, 0, board.D6, 0, 1)
	require.NoError(t, err)

	m := board.Move{Kind: board.EnPassant, From: board.E5, To: board.D6, Piece: board.Pawn, Captured: board.Pawn}
	makeUnmake(t, pos, m)

	irr := pos.Make(m)
	_, captured := pos.PieceAtSide(board.Black, board.D5)
	assert.False(t, captured, "captured pawn must be removed from its true square, not the target square")
	pos.Unmake(m, irr)
}

func TestMakeUnmakeCastle(t *testing.T) {
	placements := []board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.H1, Color: board.White, Piece: board.Rook},
		{Square: board.E8, Color: board.Black, Piece: board.King},
	}
	pos, err := board.NewPosition(placements, board.White, board.WhiteKingSideCastle, board.NullSquare, 0, 1)
	require.NoError(t, err)

	m := board.Move{Kind: board.Castle, From: board.E1, To: board.G1, Piece: board.King}
	makeUnmake(t, pos, m)

	irr := pos.Make(m)
	_, ok := pos.PieceAtSide(board.White, board.F1)
	assert.True(t, ok, "rook must land beside the king")
	assert.Equal(t, board.Castling(0), pos.Castling())
	pos.Unmake(m, irr)
	assert.Equal(t, board.WhiteKingSideCastle, pos.Castling())
}

func TestMakeUnmakePromotion(t *testing.T) {
	placements := []board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E8, Color: board.Black, Piece: board.King},
		{Square: board.D7, Color: board.White, Piece: board.Pawn},
	}
	pos, err := board.NewPosition(placements, board.White, 0, board.NullSquare, 0, 1)
	require.NoError(t, err)

	m := board.Move{Kind: board.PromoQueen, From: board.D7, To: board.D8, Piece: board.Pawn}
	makeUnmake(t, pos, m)
}

func TestMakeClearsCastlingRightOnRookCapture(t *testing.T) {
	placements := []board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E8, Color: board.Black, Piece: board.King},
		{Square: board.A8, Color: board.Black, Piece: board.Rook},
		{Square: board.A7, Color: board.White, Piece: board.Rook},
	}
	pos, err := board.NewPosition(placements, board.White, board.BlackQueenSideCastle, board.NullSquare, 0, 1)
	require.NoError(t, err)

	m := board.Move{Kind: board.Normal, From: board.A7, To: board.A8, Piece: board.Rook, Captured: board.Rook}
	irr := pos.Make(m)
	assert.Equal(t, board.Castling(0), pos.Castling())
	pos.Unmake(m, irr)
	assert.Equal(t, board.BlackQueenSideCastle, pos.Castling())
}

func TestDoublePushSetsEnPassantFile(t *testing.T) {
	placements := []board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E8, Color: board.Black, Piece: board.King},
		{Square: board.E2, Color: board.White, Piece: board.Pawn},
	}
	pos, err := board.NewPosition(placements, board.White, 0, board.NullSquare, 0, 1)
	require.NoError(t, err)

	m := board.Move{Kind: board.Normal, From: board.E2, To: board.E4, Piece: board.Pawn}
	irr := pos.Make(m)
	ep, ok := pos.EnPassant()
	assert.True(t, ok)
	assert.Equal(t, board.E3, ep)
	pos.Unmake(m, irr)
}
