package chess

import "strings"

// CastlingRights tracks, per color and side, whether the king and the
// relevant rook have remained on their home squares since the start
// of the game.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// Allows reports whether castling is still available for c toward
// side.
func (cr CastlingRights) Allows(c Color, side CastleSide) bool {
	switch {
	case c == White && side == KingSide:
		return cr.WhiteKingSide
	case c == White && side == QueenSide:
		return cr.WhiteQueenSide
	case c == Black && side == KingSide:
		return cr.BlackKingSide
	case c == Black && side == QueenSide:
		return cr.BlackQueenSide
	}
	return false
}

// String renders the rights in FEN order, KQkq, or "-" if none remain.
func (cr CastlingRights) String() string {
	s := ""
	if cr.WhiteKingSide {
		s += "K"
	}
	if cr.WhiteQueenSide {
		s += "Q"
	}
	if cr.BlackKingSide {
		s += "k"
	}
	if cr.BlackQueenSide {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// parseCastlingRights parses the third FEN field: "-" or a subset of
// "KQkq" in that order with no duplicates.
func parseCastlingRights(s string) (CastlingRights, error) {
	var cr CastlingRights
	if s == "-" {
		return cr, nil
	}
	if s == "" {
		return cr, &ParseError{Field: "castling", Reason: "empty castling field"}
	}
	order := "KQkq"
	pos := -1
	for _, ch := range s {
		idx := strings.IndexByte(order, byte(ch))
		if idx < 0 {
			return CastlingRights{}, &ParseError{Field: "castling", Reason: "unknown castling character " + string(ch)}
		}
		if idx <= pos {
			return CastlingRights{}, &ParseError{Field: "castling", Reason: "castling characters out of KQkq order or duplicated"}
		}
		pos = idx
		switch ch {
		case 'K':
			cr.WhiteKingSide = true
		case 'Q':
			cr.WhiteQueenSide = true
		case 'k':
			cr.BlackKingSide = true
		case 'q':
			cr.BlackQueenSide = true
		}
	}
	return cr, nil
}

// revoke clears the right named by sq if sq is one of the four castle
// anchor squares (E1/A1/H1/E8/A8/H8). Applied for both a move's from
// and to square, which is what correctly handles a rook captured on
// its home square (spec.md §9).
func (cr *CastlingRights) revoke(sq Square) {
	switch sq {
	case E1:
		cr.WhiteKingSide = false
		cr.WhiteQueenSide = false
	case A1:
		cr.WhiteQueenSide = false
	case H1:
		cr.WhiteKingSide = false
	case E8:
		cr.BlackKingSide = false
		cr.BlackQueenSide = false
	case A8:
		cr.BlackQueenSide = false
	case H8:
		cr.BlackKingSide = false
	}
}

// State is the position metadata that rides alongside a Board: side to
// move, castling rights, the en-passant target, and the two move
// clocks.
type State struct {
	SideToMove     Color
	Castling       CastlingRights
	EnPassant      Square
	HalfmoveClock  uint32
	FullmoveNumber uint32
}

// StartState is the position state of the standard starting position.
func StartState() State {
	return State{
		SideToMove: White,
		Castling: CastlingRights{
			WhiteKingSide: true, WhiteQueenSide: true,
			BlackKingSide: true, BlackQueenSide: true,
		},
		EnPassant:      NoSquare,
		HalfmoveClock:  0,
		FullmoveNumber: 1,
	}
}
