package chess

import (
	"bytes"
	"crypto/md5"
	"encoding/binary"
	"errors"
)

// Outcome is the result of a finished game.
type Outcome uint8

const (
	// NoOutcome indicates the game is still ongoing.
	NoOutcome Outcome = iota
	WhiteWon
	BlackWon
	DrawOutcome
)

func (o Outcome) String() string {
	switch o {
	case WhiteWon:
		return "1-0"
	case BlackWon:
		return "0-1"
	case DrawOutcome:
		return "1/2-1/2"
	}
	return "*"
}

// Method names how an Outcome was reached.
type Method uint8

const (
	NoMethod Method = iota
	Checkmate
	Stalemate
)

// Game owns a Board and its position State, and maintains the
// current side's legal move set. All operations are synchronous,
// pure computation over in-memory state: no I/O, no blocking, no
// global mutable state beyond the package's one-time attack tables.
// A Game must not be shared across goroutines without external
// synchronization; distinct Games may be used concurrently.
type Game struct {
	board   *Board
	state   State
	legal   []Move
	outcome Outcome
	method  Method
}

// NewGame returns a Game in the standard starting position.
func NewGame() *Game {
	g, err := FromFEN(startFEN)
	if err != nil {
		panic("chess: starting FEN failed to parse: " + err.Error())
	}
	return g
}

// FromFEN builds a Game from a full six-field FEN record.
func FromFEN(s string) (*Game, error) {
	board, state, err := ParseFEN(s)
	if err != nil {
		return nil, err
	}
	g := &Game{board: board, state: state}
	g.refresh()
	return g, nil
}

// ToFEN renders the game's current position as a canonical FEN
// string.
func (g *Game) ToFEN() string {
	return FormatFEN(g.board, g.state)
}

// Board returns a copy of the current board. Mutating it has no
// effect on the Game.
func (g *Game) Board() *Board {
	return g.board.clone()
}

// State returns the current position state.
func (g *Game) State() State {
	return g.state
}

// SideToMove returns the color to move next.
func (g *Game) SideToMove() Color {
	return g.state.SideToMove
}

// LegalMoves returns the current legal move set. The returned slice is
// owned by the caller; the Game's own cache is not aliased.
func (g *Game) LegalMoves() []Move {
	return append([]Move(nil), g.legal...)
}

// LegalMovesFrom returns the subset of LegalMoves whose From is sq.
func (g *Game) LegalMovesFrom(sq Square) []Move {
	var out []Move
	for _, m := range g.legal {
		if m.From() == sq {
			out = append(out, m)
		}
	}
	return out
}

// InCheck reports whether the side to move's king is attacked.
func (g *Game) InCheck() bool {
	return InCheck(g.board, g.state.SideToMove)
}

// Outcome returns the game's outcome, or NoOutcome while legal moves
// remain.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Method reports how the Outcome, if any, was reached.
func (g *Game) Method() Method {
	return g.method
}

// FiftyMoveDraw reports whether the halfmove clock has reached 100,
// surfaced per spec.md §4.G as an optional query; it is not folded
// into Outcome automatically.
func (g *Game) FiftyMoveDraw() bool {
	return g.state.HalfmoveClock >= 100
}

// MakeMove applies mv, which must be a member of the current legal
// move set, updating the board and state and recomputing the legal
// set for the new side to move. On error the Game is left completely
// unchanged (copy-then-swap, strong exception safety).
func (g *Game) MakeMove(mv Move) error {
	if g.outcome != NoOutcome {
		return &IllegalMoveError{Move: mv, FEN: g.ToFEN()}
	}
	var matched Move
	found := false
	for _, legal := range g.legal {
		if legal.Equal(mv) {
			matched = legal
			found = true
			break
		}
	}
	if !found {
		return &IllegalMoveError{Move: mv, FEN: g.ToFEN()}
	}

	newBoard := g.board.clone()
	mover := g.state.SideToMove
	movedPiece, _ := newBoard.PieceAt(matched.From())
	captureHappened := isCapture(newBoard, matched)
	applyMoveToBoard(newBoard, matched, mover)

	newState := g.state
	newState.Castling.revoke(matched.From())
	newState.Castling.revoke(matched.To())
	newState.EnPassant = nextEnPassantTarget(matched, movedPiece, mover)

	pawnMove := movedPiece.Type() == Pawn
	if pawnMove || captureHappened {
		newState.HalfmoveClock = 0
	} else {
		newState.HalfmoveClock++
	}
	if mover == Black {
		newState.FullmoveNumber++
	}
	newState.SideToMove = mover.Other()

	g.board = newBoard
	g.state = newState
	g.refresh()
	return nil
}

// isCapture reports whether applying m to b (before mutation) removes
// an enemy piece: an ordinary capture, an en-passant capture, or a
// capturing promotion.
func isCapture(b *Board, m Move) bool {
	if m.IsEnPassant() {
		return true
	}
	_, occupied := b.PieceAt(m.To())
	return occupied
}

// nextEnPassantTarget returns the square a double pawn push skipped
// over, or NoSquare for every other move.
func nextEnPassantTarget(m Move, moved Piece, mover Color) Square {
	if moved.Type() != Pawn || m.IsCastle() || m.IsEnPassant() {
		return NoSquare
	}
	from, to := m.From(), m.To()
	if mover == White && from.Rank() == Rank2 && to.Rank() == Rank4 {
		skipped, _ := from.Step(0, 1)
		return skipped
	}
	if mover == Black && from.Rank() == Rank7 && to.Rank() == Rank5 {
		skipped, _ := from.Step(0, -1)
		return skipped
	}
	return NoSquare
}

func (g *Game) refresh() {
	g.legal = LegalMoves(g.board, g.state)
	switch {
	case len(g.legal) > 0:
		g.outcome = NoOutcome
		g.method = NoMethod
	case g.InCheck():
		g.outcome = WhiteWon
		if g.state.SideToMove == White {
			g.outcome = BlackWon
		}
		g.method = Checkmate
	default:
		g.outcome = DrawOutcome
		g.method = Stalemate
	}
}

// Hash returns an MD5 hash of MarshalBinary's encoding: board, side to
// move, castling rights, en-passant target, and both move clocks, so
// the same placement reached at different clock values hashes
// differently. The engine itself does not compare or store history.
func (g *Game) Hash() [16]byte {
	data, _ := g.MarshalBinary()
	return md5.Sum(data)
}

// MarshalBinary encodes the board's twelve bitboards followed by the
// position state as a compact, fixed-size byte string.
func (g *Game) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	for _, p := range allPieces {
		if err := binary.Write(buf, binary.BigEndian, uint64(g.board.array[p])); err != nil {
			return nil, err
		}
	}
	var flags uint8
	if g.state.Castling.WhiteKingSide {
		flags |= 1
	}
	if g.state.Castling.WhiteQueenSide {
		flags |= 2
	}
	if g.state.Castling.BlackKingSide {
		flags |= 4
	}
	if g.state.Castling.BlackQueenSide {
		flags |= 8
	}
	if g.state.SideToMove == Black {
		flags |= 16
	}
	if g.state.EnPassant != NoSquare {
		flags |= 32
	}
	if err := binary.Write(buf, binary.BigEndian, flags); err != nil {
		return nil, err
	}
	ep := int8(g.state.EnPassant)
	if err := binary.Write(buf, binary.BigEndian, ep); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, g.state.HalfmoveClock); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, g.state.FullmoveNumber); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary is the inverse of MarshalBinary.
func (g *Game) UnmarshalBinary(data []byte) error {
	const wantLen = 12*8 + 1 + 1 + 4 + 4
	if len(data) != wantLen {
		return errors.New("chess: invalid byte length for game unmarshal binary")
	}
	buf := bytes.NewReader(data)
	board := NewBoard()
	for _, p := range allPieces {
		var bb uint64
		if err := binary.Read(buf, binary.BigEndian, &bb); err != nil {
			return err
		}
		board.array[p] = bitboard(bb)
	}
	board.whiteKingSq = board.findKing(White)
	board.blackKingSq = board.findKing(Black)

	var flags uint8
	if err := binary.Read(buf, binary.BigEndian, &flags); err != nil {
		return err
	}
	var epRaw int8
	if err := binary.Read(buf, binary.BigEndian, &epRaw); err != nil {
		return err
	}
	var half, full uint32
	if err := binary.Read(buf, binary.BigEndian, &half); err != nil {
		return err
	}
	if err := binary.Read(buf, binary.BigEndian, &full); err != nil {
		return err
	}

	state := State{
		Castling: CastlingRights{
			WhiteKingSide:  flags&1 != 0,
			WhiteQueenSide: flags&2 != 0,
			BlackKingSide:  flags&4 != 0,
			BlackQueenSide: flags&8 != 0,
		},
		SideToMove:     White,
		EnPassant:      NoSquare,
		HalfmoveClock:  half,
		FullmoveNumber: full,
	}
	if flags&16 != 0 {
		state.SideToMove = Black
	}
	if flags&32 != 0 {
		state.EnPassant = Square(epRaw)
	}
	if err := validatePosition(board, state.SideToMove); err != nil {
		return err
	}
	g.board = board
	g.state = state
	g.refresh()
	return nil
}

// findKing scans for c's king; used when reconstructing a board whose
// king-square cache wasn't maintained incrementally (binary decode).
func (b *Board) findKing(c Color) Square {
	bb := b.Bitboard(c, King)
	return bb.LSB()
}

// EncodeUCI renders m as long algebraic text ("e2e4", "a7a8q"), the
// one notation this engine speaks; no SAN, no move-text parser. m must
// be a member of the current legal move set.
func (g *Game) EncodeUCI(m Move) (string, error) {
	for _, legal := range g.legal {
		if legal.Equal(m) {
			if legal.IsCastle() {
				return legal.From().String() + legal.To().String(), nil
			}
			return legal.String(), nil
		}
	}
	return "", &IllegalMoveError{Move: m, FEN: g.ToFEN()}
}

// DecodeUCI parses long algebraic text and resolves it against the
// current legal move set (the from/to/promotion tuple maps uniquely
// onto the matching Move, including castles, since a king's UCI
// from-to pair is identical for both representations).
func (g *Game) DecodeUCI(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, &ParseError{Field: "uci", Reason: "expected 4 or 5 characters"}
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, &ParseError{Field: "uci", Reason: err.Error()}
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, &ParseError{Field: "uci", Reason: err.Error()}
	}
	promo := NoPieceType
	if len(s) == 5 {
		p, ok := pieceTypeFromPromoChar(s[4])
		if !ok {
			return Move{}, &ParseError{Field: "uci", Reason: "unknown promotion letter " + string(s[4])}
		}
		promo = p
	}
	for _, m := range g.legal {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() && m.PromoteTo() != promo {
			continue
		}
		return m, nil
	}
	return Move{}, &IllegalMoveError{Move: NewRegularMove(from, to), FEN: g.ToFEN()}
}

func pieceTypeFromPromoChar(c byte) (PieceType, bool) {
	switch c {
	case 'n':
		return Knight, true
	case 'b':
		return Bishop, true
	case 'r':
		return Rook, true
	case 'q':
		return Queen, true
	}
	return NoPieceType, false
}
