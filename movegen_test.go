package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStartingPositionHasTwentyLegalMoves(t *testing.T) {
	b, st, err := ParseFEN(startFEN)
	require.NoError(t, err)
	require.Len(t, LegalMoves(b, st), 20)
}

func TestInCheckDetection(t *testing.T) {
	b, st, err := ParseFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	require.NoError(t, err)
	require.True(t, InCheck(b, st.SideToMove))
	require.False(t, InCheck(b, st.SideToMove.Other()))
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	// 1. f3 e5 2. g4 Qh4#
	b, st, err := ParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	require.True(t, InCheck(b, st.SideToMove))
	require.Empty(t, LegalMoves(b, st))
}

func TestStalemateHasNoLegalMovesAndNoCheck(t *testing.T) {
	// Classic king+queen stalemate: black king h8 boxed in, no check.
	b, st, err := ParseFEN("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	require.False(t, InCheck(b, st.SideToMove))
	require.Empty(t, LegalMoves(b, st))
}

func TestPawnDoublePushGeneratesEnPassantTarget(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.MakeMove(NewRegularMove(E2, E4)))
	require.Equal(t, E3, g.State().EnPassant)
}

func TestEnPassantCaptureIsLegalAndRemovesPawn(t *testing.T) {
	g, err := FromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)

	found := false
	for _, m := range g.LegalMoves() {
		if m.IsEnPassant() && m.From() == E5 && m.To() == D6 {
			found = true
		}
	}
	require.True(t, found, "en-passant capture e5xd6 must be legal")

	require.NoError(t, g.MakeMove(NewEnPassantMove(E5, D6, D5)))
	_, ok := g.Board().PieceAt(D5)
	require.False(t, ok, "the captured pawn must be removed")
	p, ok := g.Board().PieceAt(D6)
	require.True(t, ok)
	require.Equal(t, WhitePawn, p)
}

func TestCastlingAvailableWhenClear(t *testing.T) {
	b, st, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	require.False(t, InCheck(b, st.SideToMove))

	var sides []CastleSide
	for _, m := range LegalMoves(b, st) {
		if m.IsCastle() {
			sides = append(sides, m.CastleSide())
		}
	}
	require.ElementsMatch(t, []CastleSide{KingSide, QueenSide}, sides)
}

func TestCastlingRequiresRookOnHomeSquare(t *testing.T) {
	// Castling rights claimed in the FEN with no rook actually behind
	// them must never produce a Castle move.
	b, st, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w K - 0 1")
	require.NoError(t, err)
	for _, m := range LegalMoves(b, st) {
		require.False(t, m.IsCastle(), "no rook on h1: castling must not be offered")
	}
}

func TestCastlingBlockedWhileInCheck(t *testing.T) {
	// White king on e1 in check from a rook on the e-file cannot castle
	// either side until the check is addressed.
	b, st, err := ParseFEN("3kr3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	require.True(t, InCheck(b, st.SideToMove))
	for _, m := range LegalMoves(b, st) {
		require.False(t, m.IsCastle(), "a king in check must never castle out of it")
	}
}

func TestPromotionExpandsInDeterministicOrder(t *testing.T) {
	b, st, err := ParseFEN("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	require.NoError(t, err)
	var promos []PieceType
	for _, m := range LegalMoves(b, st) {
		if m.IsPromotion() && m.From() == A7 {
			promos = append(promos, m.PromoteTo())
		}
	}
	require.Equal(t, []PieceType{Knight, Bishop, Rook, Queen}, promos)
}

func TestLegalMovesFromFiltersBySquare(t *testing.T) {
	b, st, err := ParseFEN(startFEN)
	require.NoError(t, err)
	moves := LegalMovesFrom(b, st, E2)
	require.Len(t, moves, 2)
	for _, m := range moves {
		require.Equal(t, E2, m.From())
	}
}
