// Package fen reads and writes board.Position values in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/herohde/morlock/pkg/board"
)

// Initial is the FEN of the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN record into a Position. All six fields are mandatory except the
// half-move clock and full-move number, which default to 0 and 1.
func Decode(s string) (*board.Position, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) < 4 || len(parts) > 6 {
		return nil, fmt.Errorf("invalid number of fields in FEN: %q", s)
	}
	for len(parts) < 6 {
		if len(parts) == 4 {
			parts = append(parts, "0")
		} else {
			parts = append(parts, "1")
		}
	}

	placements, err := decodePlacement(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid FEN %q: %w", s, err)
	}

	active, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid active color in FEN: %q", s)
	}

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("invalid castling rights in FEN: %q", s)
	}

	ep := board.NullSquare
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en-passant square in FEN: %q", s)
		}
		ep = sq
	}

	halfMove, err := strconv.Atoi(parts[4])
	if err != nil || halfMove < 0 {
		return nil, fmt.Errorf("invalid half-move clock in FEN: %q", s)
	}
	fullMove, err := strconv.Atoi(parts[5])
	if err != nil || fullMove < 0 {
		return nil, fmt.Errorf("invalid full-move number in FEN: %q", s)
	}

	pos, err := board.NewPosition(placements, active, castling, ep, halfMove, fullMove)
	if err != nil {
		return nil, fmt.Errorf("invalid FEN %q: %w", s, err)
	}
	return pos, nil
}

// decodePlacement parses the piece-placement field, ranks 8 down to 1, files a through h.
func decodePlacement(field string) ([]board.Placement, error) {
	ranks := strings.Split(field, "/")
	if len(ranks) != int(board.NumRanks) {
		return nil, fmt.Errorf("expected %v ranks, got %v", board.NumRanks, len(ranks))
	}

	var placements []board.Placement
	for i, row := range ranks {
		rank := board.Rank(int(board.NumRanks) - 1 - i)
		file := board.ZeroFile
		for _, r := range row {
			switch {
			case unicode.IsDigit(r):
				file += board.File(r - '0')
			case unicode.IsLetter(r):
				if !file.IsValid() {
					return nil, fmt.Errorf("rank overflow on rank %v", rank)
				}
				color, piece, ok := parsePiece(r)
				if !ok {
					return nil, fmt.Errorf("invalid piece %q", r)
				}
				placements = append(placements, board.Placement{Square: board.NewSquare(file, rank), Color: color, Piece: piece})
				file++
			default:
				return nil, fmt.Errorf("invalid character %q", r)
			}
		}
		if file != board.NumFiles {
			return nil, fmt.Errorf("rank %v does not cover all %v files", rank, board.NumFiles)
		}
	}
	return placements, nil
}

// Encode formats pos as a FEN record.
func Encode(pos *board.Position) string {
	var sb strings.Builder
	for i := 0; i < int(board.NumRanks); i++ {
		rank := board.Rank(int(board.NumRanks) - 1 - i)
		blanks := 0
		for file := board.ZeroFile; file < board.NumFiles; file++ {
			color, piece, ok := pos.PieceAt(board.NewSquare(file, rank))
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteString(printPiece(color, piece))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if i < int(board.NumRanks)-1 {
			sb.WriteRune('/')
		}
	}

	ep := "-"
	if sq, ok := pos.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), printColor(pos.SideToMove()), printCastling(pos.Castling()), ep, pos.HalfMoveClock(), pos.FullMoves())
}

func parseColor(s string) (board.Color, bool) {
	switch s {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func printColor(c board.Color) string {
	if c == board.White {
		return "w"
	}
	return "b"
}

func parseCastling(s string) (board.Castling, bool) {
	var ret board.Castling
	if s == "-" {
		return ret, true
	}
	for _, r := range s {
		switch r {
		case 'K':
			ret |= board.WhiteKingSideCastle
		case 'Q':
			ret |= board.WhiteQueenSideCastle
		case 'k':
			ret |= board.BlackKingSideCastle
		case 'q':
			ret |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return ret, true
}

func printCastling(c board.Castling) string {
	return c.String()
}

func parsePiece(r rune) (board.Color, board.Piece, bool) {
	piece, ok := board.ParsePiece(r)
	if !ok {
		return 0, board.NoPiece, false
	}
	if unicode.IsUpper(r) {
		return board.White, piece, true
	}
	return board.Black, piece, true
}

func printPiece(c board.Color, p board.Piece) string {
	if c == board.White {
		return strings.ToUpper(p.String())
	}
	return strings.ToLower(p.String())
}
