package board

import "fmt"

// MoveKind classifies a move beyond its (from, to) squares. Values >= PromoKnight denote
// a promotion.
type MoveKind uint8

const (
	Normal MoveKind = iota
	Castle
	EnPassant
	PromoKnight
	PromoBishop
	PromoRook
	PromoQueen
)

// IsPromotion reports whether the move kind is one of the four promotion kinds.
func (k MoveKind) IsPromotion() bool {
	return k >= PromoKnight
}

// PromotedPiece returns the piece a pawn becomes for a promotion move kind, or NoPiece.
func (k MoveKind) PromotedPiece() Piece {
	switch k {
	case PromoKnight:
		return Knight
	case PromoBishop:
		return Bishop
	case PromoRook:
		return Rook
	case PromoQueen:
		return Queen
	default:
		return NoPiece
	}
}

func (k MoveKind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Castle:
		return "castle"
	case EnPassant:
		return "en-passant"
	case PromoKnight:
		return "promo=n"
	case PromoBishop:
		return "promo=b"
	case PromoRook:
		return "promo=r"
	case PromoQueen:
		return "promo=q"
	default:
		return "?"
	}
}

// Move is a value-type move bundling kind, squares, and the piece moved/captured. It
// carries no pointer or slice field, so it is cheap to copy and compare: the unit the
// move generator fills, the search orders, and Position.Make/Unmake consumes.
type Move struct {
	Kind     MoveKind
	From, To Square
	Piece    Piece // the piece that moved (never NoPiece for a valid move)
	Captured Piece // NoPiece if the move is not a capture
}

// NullMove is the sentinel "no move" value, returned when a search iteration is aborted
// by the time budget before completing a depth.
var NullMove = Move{From: NullSquare, To: NullSquare}

// IsNull reports whether m is the NullMove sentinel.
func (m Move) IsNull() bool {
	return m.From == NullSquare && m.To == NullSquare
}

// IsCapture reports whether m captures a piece, including en passant.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece
}

// IsIrreversible reports whether m resets the repetition history at the game level: a
// capture, a pawn move, or castling.
func (m Move) IsIrreversible() bool {
	return m.IsCapture() || m.Piece == Pawn || m.Kind == Castle
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Kind == o.Kind
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "a2a4" or
// "a7a8q". The result carries no contextual information (castling, en passant); callers
// match it against a generator's legal-move list to recover Kind/Piece/Captured.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: '%v'", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid from: '%v': %v", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid to: '%v': %v", str, err)
	}

	kind := Normal
	if len(runes) == 5 {
		promo, ok := ParsePiece(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid promotion: '%v'", str)
		}
		switch promo {
		case Knight:
			kind = PromoKnight
		case Bishop:
			kind = PromoBishop
		case Rook:
			kind = PromoRook
		case Queen:
			kind = PromoQueen
		}
	}
	return Move{Kind: kind, From: from, To: to}, nil
}

func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	if m.Kind.IsPromotion() {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Kind.PromotedPiece())
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}
