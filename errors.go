package chess

import "fmt"

// ParseError reports a malformed FEN string: wrong field count, bad
// piece placement, unknown side character, a malformed castling
// string, an out-of-range en-passant square, or non-numeric clocks.
type ParseError struct {
	Field  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("chess: parse error in %s: %s", e.Field, e.Reason)
}

// InvalidPositionError reports a syntactically valid FEN that
// describes an unreachable or inconsistent position: a missing king,
// more than one king of a color, a pawn on rank 1 or 8, both kings
// simultaneously in check, or the side not to move in check.
type InvalidPositionError struct {
	Reason string
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("chess: invalid position: %s", e.Reason)
}

// IllegalMoveError reports that MakeMove was called with a move that
// is not a member of the position's current legal move set, including
// the case where the game has already ended.
type IllegalMoveError struct {
	Move Move
	FEN  string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("chess: illegal move %s for position %s", e.Move.String(), e.FEN)
}
