package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGameStartingPosition(t *testing.T) {
	g := NewGame()
	require.Equal(t, startFEN, g.ToFEN())
	require.Equal(t, White, g.SideToMove())
	require.Len(t, g.LegalMoves(), 20)
	require.Equal(t, NoOutcome, g.Outcome())
}

func TestMakeMoveRejectsIllegalMove(t *testing.T) {
	g := NewGame()
	err := g.MakeMove(NewRegularMove(E2, E5))
	require.Error(t, err)
	var illegal *IllegalMoveError
	require.ErrorAs(t, err, &illegal)
	require.Equal(t, startFEN, g.ToFEN(), "a rejected move must leave the game unchanged")
}

func TestMakeMoveUpdatesHalfmoveClock(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.MakeMove(NewRegularMove(E2, E4)))
	require.Equal(t, uint32(0), g.State().HalfmoveClock, "pawn moves reset the clock")

	require.NoError(t, g.MakeMove(NewRegularMove(B8, C6)))
	require.Equal(t, uint32(1), g.State().HalfmoveClock, "a non-pawn non-capture increments the clock")
}

func TestMakeMoveIncrementsFullmoveAfterBlack(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.MakeMove(NewRegularMove(E2, E4)))
	require.Equal(t, uint32(1), g.State().FullmoveNumber)
	require.NoError(t, g.MakeMove(NewRegularMove(E7, E5)))
	require.Equal(t, uint32(2), g.State().FullmoveNumber)
}

func TestMakeMoveRevokesCastlingRightsOnRookCapture(t *testing.T) {
	// A white bishop captures the black rook on a8 without the black
	// king ever moving: black's queenside right must still be revoked,
	// since revoke() applies to a move's destination as well as its
	// origin.
	g, err := FromFEN("r3k2r/8/8/8/8/5B2/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	require.NoError(t, g.MakeMove(NewRegularMove(F3, A8)))
	require.False(t, g.State().Castling.BlackQueenSide)
	require.True(t, g.State().Castling.BlackKingSide)
}

func TestFoolsMateEndsInBlackWinByCheckmate(t *testing.T) {
	g := NewGame()
	moves := []Move{
		NewRegularMove(F2, F3),
		NewRegularMove(E7, E5),
		NewRegularMove(G2, G4),
	}
	for _, m := range moves {
		require.NoError(t, g.MakeMove(m))
	}
	require.NoError(t, g.MakeMove(NewRegularMove(D8, H4)))

	require.Equal(t, BlackWon, g.Outcome())
	require.Equal(t, Checkmate, g.Method())
	require.Empty(t, g.LegalMoves())
}

func TestCastleMoveRelocatesRookToo(t *testing.T) {
	g, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	require.NoError(t, g.MakeMove(NewCastleMove(White, KingSide)))

	board := g.Board()
	p, ok := board.PieceAt(G1)
	require.True(t, ok)
	require.Equal(t, WhiteKing, p)
	p, ok = board.PieceAt(F1)
	require.True(t, ok)
	require.Equal(t, WhiteRook, p)
	_, ok = board.PieceAt(H1)
	require.False(t, ok)
	require.False(t, g.State().Castling.WhiteKingSide)
	require.False(t, g.State().Castling.WhiteQueenSide)
}

func TestHashIsStableAndPositionSensitive(t *testing.T) {
	g1 := NewGame()
	g2 := NewGame()
	require.Equal(t, g1.Hash(), g2.Hash())

	require.NoError(t, g1.MakeMove(NewRegularMove(E2, E4)))
	require.NotEqual(t, g1.Hash(), g2.Hash())
}

func TestMarshalBinaryRoundTrip(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.MakeMove(NewRegularMove(E2, E4)))
	require.NoError(t, g.MakeMove(NewRegularMove(C7, C5)))

	data, err := g.MarshalBinary()
	require.NoError(t, err)

	var decoded Game
	require.NoError(t, decoded.UnmarshalBinary(data))
	require.Equal(t, g.ToFEN(), decoded.ToFEN())
	require.Equal(t, g.Hash(), decoded.Hash())
}

func TestFiftyMoveDrawThreshold(t *testing.T) {
	g := NewGame()
	require.False(t, g.FiftyMoveDraw())

	st := g.State()
	st.HalfmoveClock = 100
	g2, err := FromFEN(FormatFEN(g.Board(), st))
	require.NoError(t, err)
	require.True(t, g2.FiftyMoveDraw())
}

func TestEncodeDecodeUCIRoundTrip(t *testing.T) {
	g := NewGame()
	text, err := g.EncodeUCI(NewRegularMove(E2, E4))
	require.NoError(t, err)
	require.Equal(t, "e2e4", text)

	decoded, err := g.DecodeUCI(text)
	require.NoError(t, err)
	require.True(t, decoded.Equal(NewRegularMove(E2, E4)))
}

func TestDecodeUCIRejectsIllegalMove(t *testing.T) {
	g := NewGame()
	_, err := g.DecodeUCI("e2e5")
	require.Error(t, err)
}

func TestDecodeUCIPromotion(t *testing.T) {
	g, err := FromFEN("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	require.NoError(t, err)
	m, err := g.DecodeUCI("a7a8q")
	require.NoError(t, err)
	require.True(t, m.IsPromotion())
	require.Equal(t, Queen, m.PromoteTo())
}
