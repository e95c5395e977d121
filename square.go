package chess

import "fmt"

// File is a column of the board, A through H.
type File int8

// Rank is a row of the board, 1 through 8.
type Rank int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// String returns the lowercase file letter.
func (f File) String() string {
	if f < FileA || f > FileH {
		return "?"
	}
	return string(rune('a' + int(f)))
}

// String returns the rank digit.
func (r Rank) String() string {
	if r < Rank1 || r > Rank8 {
		return "?"
	}
	return string(rune('1' + int(r)))
}

// numOfSquaresInRow and numOfSquaresInBoard mirror the teacher's naming
// for the board's fixed dimensions.
const (
	numOfSquaresInRow   = 8
	numOfSquaresInBoard = 64
)

// Square is one of the 64 board squares, index = 8*rank + file, so
// bit 0 is A1 and bit 63 is H8.
type Square int8

// NoSquare represents the absence of a square, used as a sentinel for
// an unset en-passant target or an unplaced king.
const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds the square at the given file and rank. The result is
// only meaningful when both file and rank are in [0,7]; callers that
// need bounds checking should use Step instead.
func NewSquare(f File, r Rank) Square {
	return Square(int8(r)*numOfSquaresInRow + int8(f))
}

// File returns the square's file.
func (sq Square) File() File {
	return File(int8(sq) % numOfSquaresInRow)
}

// Rank returns the square's rank.
func (sq Square) Rank() Rank {
	return Rank(int8(sq) / numOfSquaresInRow)
}

// Step returns the square df files and dr ranks away from sq, or
// NoSquare if the result would fall off the board.
func (sq Square) Step(df, dr int) (Square, bool) {
	f := int(sq.File()) + df
	r := int(sq.Rank()) + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare, false
	}
	return NewSquare(File(f), Rank(r)), true
}

// String returns the square's algebraic notation, lowercase, e.g. "e4".
func (sq Square) String() string {
	if sq < A1 || sq > H8 {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

var strToSquareMap = func() map[string]Square {
	m := make(map[string]Square, numOfSquaresInBoard)
	for sq := Square(0); sq < numOfSquaresInBoard; sq++ {
		m[sq.String()] = sq
	}
	return m
}()

// ParseSquare parses a two-character algebraic square, case-insensitive.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, &ParseError{Field: "square", Reason: fmt.Sprintf("%q is not two characters", s)}
	}
	file := s[0]
	if file >= 'A' && file <= 'H' {
		file = file - 'A' + 'a'
	}
	rank := s[1]
	sq, ok := strToSquareMap[string(file)+string(rank)]
	if !ok {
		return NoSquare, &ParseError{Field: "square", Reason: fmt.Sprintf("%q is not a valid square", s)}
	}
	return sq, nil
}

// AllSquares returns every square in canonical order: A1, B1, ..., H1,
// A2, ..., H8.
func AllSquares() []Square {
	out := make([]Square, numOfSquaresInBoard)
	for i := range out {
		out[i] = Square(i)
	}
	return out
}
