package chess

import (
	"fmt"
	"strconv"
	"strings"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN decodes a full six-field FEN record into a board and state.
// It validates field count, piece placement, side/castling/en-passant
// syntax, and the numeric clocks, then checks the invariants in
// spec.md §7 (InvalidPositionError): both kings present, no pawn on
// rank 1 or 8, and not both kings simultaneously in check.
func ParseFEN(s string) (*Board, State, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return nil, State{}, &ParseError{Field: "fen", Reason: fmt.Sprintf("expected 6 fields, got %d", len(fields))}
	}
	board, err := parsePiecePlacement(fields[0])
	if err != nil {
		return nil, State{}, err
	}

	var side Color
	switch fields[1] {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return nil, State{}, &ParseError{Field: "side", Reason: fmt.Sprintf("unknown side %q", fields[1])}
	}

	castling, err := parseCastlingRights(fields[2])
	if err != nil {
		return nil, State{}, err
	}

	ep := NoSquare
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, State{}, &ParseError{Field: "en-passant", Reason: err.Error()}
		}
		if sq.Rank() != Rank3 && sq.Rank() != Rank6 {
			return nil, State{}, &ParseError{Field: "en-passant", Reason: "target must be on rank 3 or rank 6"}
		}
		ep = sq
	}

	halfmove, err := parseUint(fields[4], "halfmove")
	if err != nil {
		return nil, State{}, err
	}
	fullmove, err := parseUint(fields[5], "fullmove")
	if err != nil {
		return nil, State{}, err
	}
	if fullmove == 0 {
		return nil, State{}, &ParseError{Field: "fullmove", Reason: "must be positive"}
	}

	if err := validatePosition(board, side); err != nil {
		return nil, State{}, err
	}

	st := State{
		SideToMove:     side,
		Castling:       castling,
		EnPassant:      ep,
		HalfmoveClock:  halfmove,
		FullmoveNumber: fullmove,
	}
	return board, st, nil
}

func parseUint(s, field string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, &ParseError{Field: field, Reason: fmt.Sprintf("%q is not a non-negative integer", s)}
	}
	return uint32(n), nil
}

// validatePosition checks the unrecoverable invariants from spec.md
// §7: exactly one king per color, no pawn on rank 1 or 8, and the side
// NOT to move is not currently delivering check on itself (i.e. both
// kings are not simultaneously in check, and the side not to move is
// not in check, since that would mean the prior move left its own
// king attacked).
func validatePosition(b *Board, sideToMove Color) error {
	if b.KingSquare(White) == NoSquare {
		return &InvalidPositionError{Reason: "missing white king"}
	}
	if b.KingSquare(Black) == NoSquare {
		return &InvalidPositionError{Reason: "missing black king"}
	}
	if b.Bitboard(White, King).PopCount() > 1 || b.Bitboard(Black, King).PopCount() > 1 {
		return &InvalidPositionError{Reason: "more than one king of the same color"}
	}
	if (b.Bitboard(White, Pawn)|b.Bitboard(Black, Pawn))&(bbRank1|bbRank8) != 0 {
		return &InvalidPositionError{Reason: "pawn on rank 1 or rank 8"}
	}
	whiteInCheck := isAttacked(b, b.KingSquare(White), Black)
	blackInCheck := isAttacked(b, b.KingSquare(Black), White)
	if whiteInCheck && blackInCheck {
		return &InvalidPositionError{Reason: "both kings in check"}
	}
	opponent := sideToMove.Other()
	opponentInCheck := whiteInCheck
	if opponent == Black {
		opponentInCheck = blackInCheck
	}
	if opponentInCheck {
		return &InvalidPositionError{Reason: "side not to move is in check"}
	}
	return nil
}

// FormatFEN renders a board and state as the canonical six-field FEN
// string: castling letters in KQkq order, single spaces, no trailing
// whitespace.
func FormatFEN(b *Board, st State) string {
	ep := "-"
	if st.EnPassant != NoSquare {
		ep = st.EnPassant.String()
	}
	return fmt.Sprintf("%s %s %s %s %d %d",
		b.piecePlacementFEN(), st.SideToMove.String(), st.Castling.String(), ep,
		st.HalfmoveClock, st.FullmoveNumber)
}
