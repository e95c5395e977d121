package chess

import "fmt"

// moveKind tags the shape of a Move.
type moveKind uint8

const (
	moveRegular moveKind = iota
	moveEnPassant
	movePromotion
	moveCastle
)

// CastleSide distinguishes the two castling destinations.
type CastleSide uint8

const (
	KingSide CastleSide = iota + 1
	QueenSide
)

// Move is a tagged value representing one ply. The zero Move is never
// produced by the generator; use the constructors below or values
// returned from LegalMoves.
type Move struct {
	kind       moveKind
	from       Square
	to         Square
	capturedSq Square // EnPassant only; NoSquare otherwise
	promoteTo  PieceType
	side       CastleSide // Castle only
	color      Color      // Castle only, needed to derive from/to
}

// NewRegularMove builds a quiet move or an ordinary capture, including
// pawn single and double pushes.
func NewRegularMove(from, to Square) Move {
	return Move{kind: moveRegular, from: from, to: to, capturedSq: NoSquare}
}

// NewEnPassantMove builds an en-passant capture. captured is the
// square of the enemy pawn being removed: same file as to, same rank
// as from.
func NewEnPassantMove(from, to, captured Square) Move {
	return Move{kind: moveEnPassant, from: from, to: to, capturedSq: captured}
}

// NewPromotionMove builds a single promotion choice.
func NewPromotionMove(from, to Square, promoteTo PieceType) Move {
	return Move{kind: movePromotion, from: from, to: to, capturedSq: NoSquare, promoteTo: promoteTo}
}

// PromotionMoves expands a pawn's promoting move into the four
// Promotion values, in the deterministic order Knight, Bishop, Rook,
// Queen.
func PromotionMoves(from, to Square) []Move {
	out := make([]Move, 0, 4)
	for _, promo := range promoOrder {
		out = append(out, NewPromotionMove(from, to, promo.PieceType()))
	}
	return out
}

// NewCastleMove builds a castling move for color c toward side.
func NewCastleMove(c Color, side CastleSide) Move {
	m := Move{kind: moveCastle, capturedSq: NoSquare, side: side, color: c}
	m.from, m.to = castleKingSquares(c, side)
	return m
}

func castleKingSquares(c Color, side CastleSide) (from, to Square) {
	if c == White {
		from = E1
		if side == KingSide {
			return from, G1
		}
		return from, C1
	}
	from = E8
	if side == KingSide {
		return from, G8
	}
	return from, C8
}

// From returns the move's origin square. For Castle moves this is the
// king's origin.
func (m Move) From() Square { return m.from }

// To returns the move's destination square. For Castle moves this is
// the king's destination. For EnPassant this is the landing square,
// distinct from CapturedSquare.
func (m Move) To() Square { return m.to }

// IsEnPassant reports whether m is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.kind == moveEnPassant }

// IsPromotion reports whether m is a promotion.
func (m Move) IsPromotion() bool { return m.kind == movePromotion }

// IsCastle reports whether m is a castle.
func (m Move) IsCastle() bool { return m.kind == moveCastle }

// CapturedSquare returns the square of the pawn captured en passant.
// Only meaningful when IsEnPassant is true.
func (m Move) CapturedSquare() Square { return m.capturedSq }

// PromoteTo returns the promotion piece kind. Only meaningful when
// IsPromotion is true.
func (m Move) PromoteTo() PieceType { return m.promoteTo }

// CastleSide returns the castling side. Only meaningful when IsCastle
// is true.
func (m Move) CastleSide() CastleSide { return m.side }

// Equal reports whether two moves describe the same transition.
func (m Move) Equal(other Move) bool {
	if m.kind != other.kind || m.from != other.from || m.to != other.to {
		return false
	}
	switch m.kind {
	case moveEnPassant:
		return m.capturedSq == other.capturedSq
	case movePromotion:
		return m.promoteTo == other.promoteTo
	case moveCastle:
		return m.side == other.side && m.color == other.color
	}
	return true
}

// String renders the move as long algebraic notation (e.g. "e2e4",
// "e7e8q"), useful for debugging and for UCI-style I/O. It carries no
// SAN knowledge and does not require disambiguation against sibling
// moves.
func (m Move) String() string {
	if m.kind == moveCastle {
		if m.side == KingSide {
			return "O-O"
		}
		return "O-O-O"
	}
	s := m.from.String() + m.to.String()
	if m.kind == movePromotion {
		s += m.promoteTo.String()
	}
	return s
}

// Less orders moves by (from, to, promotion_kind), the stable
// tie-break spec.md §4.F offers clients that need determinism; the
// legal move set itself carries no ordering guarantee.
func (m Move) Less(other Move) bool {
	if m.from != other.from {
		return m.from < other.from
	}
	if m.to != other.to {
		return m.to < other.to
	}
	return m.promoteTo < other.promoteTo
}

func (m Move) GoString() string {
	return fmt.Sprintf("Move(%s)", m.String())
}
