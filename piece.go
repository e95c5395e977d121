package chess

// NOTE:
// Piece, PieceType and Color constant values are carefully chosen
// to allow for bit operations between them.
//
// A Piece has the upper 4 bits as Color and the
// lower 4 bits as PieceType.

// Color represents the color of a chess piece.
type Color uint8

const (
	// White represents the color white.
	White Color = 0
	// Black represents the color black.
	Black Color = 1
	// NoColor represents no color.
	NoColor Color = 15
)

// Other returns the opposite color of the receiver.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// String implements the fmt.Stringer interface and returns
// the color's FEN compatible notation.
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	}
	return "-"
}

// PieceType is the type of a piece.
type PieceType uint8

const (
	// King represents a king.
	King PieceType = 0
	// Queen represents a queen.
	Queen PieceType = 1
	// Rook represents a rook.
	Rook PieceType = 2
	// Bishop represents a bishop.
	Bishop PieceType = 3
	// Knight represents a knight.
	Knight PieceType = 4
	// Pawn represents a pawn.
	Pawn PieceType = 5
	// NoPieceType represents a lack of piece type.
	NoPieceType PieceType = 15
)

var allPieceTypes = [6]PieceType{King, Queen, Rook, Bishop, Knight, Pawn}

// PieceTypes returns every piece type.
func PieceTypes() [6]PieceType {
	return allPieceTypes
}

func (p PieceType) String() string {
	switch p {
	case King:
		return "k"
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	case Pawn:
		return "p"
	}
	return ""
}

// PromoType is a promotion choice. Ordered Knight, Bishop, Rook, Queen
// to match the deterministic expansion order of PromotionMoves.
type PromoType uint8

const (
	NoPromo PromoType = iota
	PromoKnight
	PromoBishop
	PromoRook
	PromoQueen
)

// promoOrder is the deterministic order PromotionMoves expands in.
var promoOrder = [4]PromoType{PromoKnight, PromoBishop, PromoRook, PromoQueen}

func (promo PromoType) PieceType() PieceType {
	switch promo {
	case PromoKnight:
		return Knight
	case PromoBishop:
		return Bishop
	case PromoRook:
		return Rook
	case PromoQueen:
		return Queen
	}
	return NoPieceType
}

// Piece is a piece type with a color.
type Piece uint8

const (
	WhiteKing   Piece = 0
	WhiteQueen  Piece = 1
	WhiteRook   Piece = 2
	WhiteBishop Piece = 3
	WhiteKnight Piece = 4
	WhitePawn   Piece = 5
	BlackKing   Piece = 16
	BlackQueen  Piece = 17
	BlackRook   Piece = 18
	BlackBishop Piece = 19
	BlackKnight Piece = 20
	BlackPawn   Piece = 21
	// NoPiece represents the absence of a piece.
	NoPiece Piece = 255
)

var allPieces = [12]Piece{
	WhiteKing, WhiteQueen, WhiteRook, WhiteBishop, WhiteKnight, WhitePawn,
	BlackKing, BlackQueen, BlackRook, BlackBishop, BlackKnight, BlackPawn,
}

// GetPiece packs a piece type and color into a Piece value.
func GetPiece(t PieceType, c Color) Piece {
	return Piece(uint8(c)<<4 | uint8(t))
}

// Type returns the type of the piece.
func (p Piece) Type() PieceType {
	return PieceType(p & 0xF)
}

// Color returns the color of the piece.
func (p Piece) Color() Color {
	return Color(p >> 4)
}

var fenReverseMap = map[Piece]byte{
	WhiteKing:   'K',
	WhiteQueen:  'Q',
	WhiteRook:   'R',
	WhiteBishop: 'B',
	WhiteKnight: 'N',
	WhitePawn:   'P',
	BlackKing:   'k',
	BlackQueen:  'q',
	BlackRook:   'r',
	BlackBishop: 'b',
	BlackKnight: 'n',
	BlackPawn:   'p',
}

var fenPieceMap = func() map[byte]Piece {
	m := make(map[byte]Piece, len(fenReverseMap))
	for p, c := range fenReverseMap {
		m[c] = p
	}
	return m
}()

// FENChar returns the piece's FEN character: uppercase for White,
// lowercase for Black. NoPiece returns 0.
func (p Piece) FENChar() byte {
	return fenReverseMap[p]
}

// String implements the fmt.Stringer interface and returns the FEN
// character, or a single space for NoPiece.
func (p Piece) String() string {
	c, ok := fenReverseMap[p]
	if !ok {
		return " "
	}
	return string(c)
}

// pieceFromFENChar returns the piece for a FEN character, and false if
// the character isn't one of PNBRQKpnbrqk.
func pieceFromFENChar(c byte) (Piece, bool) {
	p, ok := fenPieceMap[c]
	return p, ok
}
