package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitboardInsertOccupied(t *testing.T) {
	var bb bitboard
	bb = bb.Insert(E4)
	require.True(t, bb.Occupied(E4))
	require.False(t, bb.Occupied(D4))
}

func TestBitboardPopCount(t *testing.T) {
	var bb bitboard
	bb = bb.Insert(A1).Insert(B2).Insert(H8)
	require.Equal(t, 3, bb.PopCount())
}

func TestBitboardLSBEmpty(t *testing.T) {
	var bb bitboard
	require.Equal(t, NoSquare, bb.LSB())
}

func TestBitboardLSBOrdering(t *testing.T) {
	var bb bitboard
	bb = bb.Insert(D4).Insert(A1).Insert(H8)
	require.Equal(t, A1, bb.LSB())
}

func TestBitboardSquaresMatchesPopCount(t *testing.T) {
	var bb bitboard
	bb = bb.Insert(A1).Insert(E4).Insert(H8).Insert(D4)
	squares := bb.Squares()
	require.Len(t, squares, bb.PopCount())
	require.ElementsMatch(t, []Square{A1, E4, H8, D4}, squares)
}

func TestBitboardReverseRoundTrip(t *testing.T) {
	var bb bitboard
	bb = bb.Insert(A1).Insert(D4)
	require.Equal(t, bb, bb.Reverse().Reverse())
	require.True(t, bb.Reverse().Occupied(H8))
}

func TestBitboardStringLength(t *testing.T) {
	var bb bitboard
	bb = bb.Insert(A1)
	require.Len(t, bb.String(), 64)
}

func TestFileRankMasks(t *testing.T) {
	require.True(t, bbRank1.Occupied(A1))
	require.True(t, bbRank1.Occupied(H1))
	require.False(t, bbRank1.Occupied(A2))
	require.True(t, bbFileA.Occupied(A1))
	require.True(t, bbFileA.Occupied(A8))
	require.False(t, bbFileA.Occupied(B1))
}
