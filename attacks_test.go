package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKnightAttacksCorner(t *testing.T) {
	attacks := knightAttacksFrom(A1)
	require.ElementsMatch(t, []Square{B3, C2}, attacks.Squares())
}

func TestKnightAttacksCenter(t *testing.T) {
	attacks := knightAttacksFrom(D4)
	require.Equal(t, 8, attacks.PopCount())
}

func TestKingAttacksCorner(t *testing.T) {
	attacks := kingAttacksFrom(A1)
	require.ElementsMatch(t, []Square{A2, B1, B2}, attacks.Squares())
}

func TestPawnAttacksSwapByColor(t *testing.T) {
	white := pawnAttacksFrom(White, E4)
	black := pawnAttacksFrom(Black, E4)
	require.ElementsMatch(t, []Square{D5, F5}, white.Squares())
	require.ElementsMatch(t, []Square{D3, F3}, black.Squares())
}

func TestRookAttacksOpenBoard(t *testing.T) {
	attacks := rookAttacksFrom(D4, 0)
	require.Equal(t, 14, attacks.PopCount())
}

func TestRookAttacksStopsAtFirstBlocker(t *testing.T) {
	occ := bitboard(0).Insert(D6)
	attacks := rookAttacksFrom(D4, occ)
	require.True(t, attacks.Occupied(D5))
	require.True(t, attacks.Occupied(D6), "first blocker is included as a target")
	require.False(t, attacks.Occupied(D7), "squares beyond the first blocker are excluded")
}

func TestBishopAttacksOpenBoard(t *testing.T) {
	attacks := bishopAttacksFrom(D4, 0)
	require.Equal(t, 13, attacks.PopCount())
}

func TestQueenAttacksIsUnionOfRookAndBishop(t *testing.T) {
	occ := bitboard(0).Insert(D6).Insert(F4)
	queen := queenAttacksFrom(D4, occ)
	want := rookAttacksFrom(D4, occ) | bishopAttacksFrom(D4, occ)
	require.Equal(t, want, queen)
}

func TestAttackMaskSymmetryForSliders(t *testing.T) {
	occ := bitboard(0).Insert(A4)
	targetsFromD4 := rookAttacksFrom(D4, occ)
	attackersOfD4 := rookAttacksFrom(A4, occ)
	require.True(t, targetsFromD4.Occupied(A4))
	require.True(t, attackersOfD4.Occupied(D4))
}
