package chess

// isAttacked reports whether sq is attacked by any piece of color by,
// given the board's current occupancy. This is spec.md §4.F's
// "attacked-by test": for each piece kind k, attack_mask(k, sq, occ)
// intersected with by's pieces of kind k. For sliders and the knight,
// attack_mask doubles as "squares attacking sq" by the symmetry spec.md
// documents; for pawns the color must be swapped, since a white pawn
// attacker of sq sits on the squares *below*-diagonal of sq (the
// squares a black pawn on sq would capture), so the lookup uses the
// opposite color's pawn-attack table.
func isAttacked(b *Board, sq Square, by Color) bool {
	occ := b.OccupancyAll()
	if attackMask(Knight, sq, occ, by)&b.Bitboard(by, Knight) != 0 {
		return true
	}
	if attackMask(King, sq, occ, by)&b.Bitboard(by, King) != 0 {
		return true
	}
	if attackMask(Rook, sq, occ, by)&(b.Bitboard(by, Rook)|b.Bitboard(by, Queen)) != 0 {
		return true
	}
	if attackMask(Bishop, sq, occ, by)&(b.Bitboard(by, Bishop)|b.Bitboard(by, Queen)) != 0 {
		return true
	}
	if attackMask(Pawn, sq, occ, by.Other())&b.Bitboard(by, Pawn) != 0 {
		return true
	}
	return false
}

// InCheck reports whether c's king is currently attacked. A missing
// king (only possible on boards built outside FromFEN's validation)
// is treated as not in check.
func InCheck(b *Board, c Color) bool {
	kingSq := b.KingSquare(c)
	if kingSq == NoSquare {
		return false
	}
	return isAttacked(b, kingSq, c.Other())
}

// LegalMoves returns every fully legal move for st.SideToMove in
// position (b, st): phase 1 generates pseudo-legal candidates per
// piece, phase 2 discards any that leave the mover's own king
// attacked. The returned slice's order is not part of the contract;
// sort with Move.Less for a stable order.
func LegalMoves(b *Board, st State) []Move {
	candidates := pseudoLegalMoves(b, st)
	candidates = append(candidates, castleCandidates(b, st)...)

	legal := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		scratch := b.clone()
		applyMoveToBoard(scratch, m, st.SideToMove)
		if !InCheck(scratch, st.SideToMove) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMovesFrom filters LegalMoves to those originating at sq.
func LegalMovesFrom(b *Board, st State, sq Square) []Move {
	all := LegalMoves(b, st)
	out := make([]Move, 0)
	for _, m := range all {
		if m.From() == sq {
			out = append(out, m)
		}
	}
	return out
}

func pseudoLegalMoves(b *Board, st State) []Move {
	side := st.SideToMove
	own := b.Occupancy(side)
	enemy := b.Occupancy(side.Other())
	occ := own | enemy

	var moves []Move
	for _, sq := range b.Bitboard(side, Pawn).Squares() {
		moves = append(moves, pawnMoves(b, st, sq)...)
	}
	for _, sq := range b.Bitboard(side, Knight).Squares() {
		moves = append(moves, targetsToMoves(sq, knightAttacksFrom(sq)&^own)...)
	}
	for _, sq := range b.Bitboard(side, Bishop).Squares() {
		moves = append(moves, targetsToMoves(sq, bishopAttacksFrom(sq, occ)&^own)...)
	}
	for _, sq := range b.Bitboard(side, Rook).Squares() {
		moves = append(moves, targetsToMoves(sq, rookAttacksFrom(sq, occ)&^own)...)
	}
	for _, sq := range b.Bitboard(side, Queen).Squares() {
		moves = append(moves, targetsToMoves(sq, queenAttacksFrom(sq, occ)&^own)...)
	}
	for _, sq := range b.Bitboard(side, King).Squares() {
		moves = append(moves, targetsToMoves(sq, kingAttacksFrom(sq)&^own)...)
	}
	return moves
}

func targetsToMoves(from Square, targets bitboard) []Move {
	out := make([]Move, 0, targets.PopCount())
	for _, to := range targets.Squares() {
		out = append(out, NewRegularMove(from, to))
	}
	return out
}

// promotionRank returns the rank a pawn of color c promotes on.
func promotionRank(c Color) Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}

func pawnMoves(b *Board, st State, from Square) []Move {
	side := st.SideToMove
	occ := b.OccupancyAll()
	enemy := b.Occupancy(side.Other())

	dir := 1
	startRank := Rank2
	if side == Black {
		dir = -1
		startRank = Rank7
	}

	var moves []Move
	appendPushOrPromo := func(to Square) {
		if to.Rank() == promotionRank(side) {
			moves = append(moves, PromotionMoves(from, to)...)
		} else {
			moves = append(moves, NewRegularMove(from, to))
		}
	}

	if one, ok := from.Step(0, dir); ok && !occ.Occupied(one) {
		appendPushOrPromo(one)
		if from.Rank() == startRank {
			if two, ok := from.Step(0, 2*dir); ok && !occ.Occupied(two) {
				moves = append(moves, NewRegularMove(from, two))
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to, ok := from.Step(df, dir)
		if !ok {
			continue
		}
		switch {
		case st.EnPassant != NoSquare && to == st.EnPassant:
			captured, _ := from.Step(df, 0)
			moves = append(moves, NewEnPassantMove(from, to, captured))
		case enemy.Occupied(to):
			appendPushOrPromo(to)
		}
	}
	return moves
}

func castleCandidates(b *Board, st State) []Move {
	side := st.SideToMove
	occ := b.OccupancyAll()
	var moves []Move

	kingHome, rank := E1, Rank1
	if side == Black {
		kingHome, rank = E8, Rank8
	}
	if b.KingSquare(side) != kingHome {
		return nil
	}
	if InCheck(b, side) {
		return nil
	}
	enemy := side.Other()

	rookOn := func(sq Square) bool {
		p, ok := b.PieceAt(sq)
		return ok && p == GetPiece(Rook, side)
	}

	fSq := NewSquare(FileF, rank)
	gSq := NewSquare(FileG, rank)
	hSq := NewSquare(FileH, rank)
	if st.Castling.Allows(side, KingSide) && rookOn(hSq) &&
		!occ.Occupied(fSq) && !occ.Occupied(gSq) &&
		!isAttacked(b, fSq, enemy) && !isAttacked(b, gSq, enemy) {
		moves = append(moves, NewCastleMove(side, KingSide))
	}

	aSq := NewSquare(FileA, rank)
	bSq := NewSquare(FileB, rank)
	cSq := NewSquare(FileC, rank)
	dSq := NewSquare(FileD, rank)
	if st.Castling.Allows(side, QueenSide) && rookOn(aSq) &&
		!occ.Occupied(bSq) && !occ.Occupied(cSq) && !occ.Occupied(dSq) &&
		!isAttacked(b, cSq, enemy) && !isAttacked(b, dSq, enemy) {
		moves = append(moves, NewCastleMove(side, QueenSide))
	}
	return moves
}

// applyMoveToBoard mutates b in place to reflect m, without touching
// any position State. Shared by LegalMoves' self-check filter (on a
// scratch clone) and Game.MakeMove (on the real board, inside its
// copy-then-swap).
func applyMoveToBoard(b *Board, m Move, mover Color) {
	switch {
	case m.IsCastle():
		side := m.CastleSide()
		rank := Rank1
		if mover == Black {
			rank = Rank8
		}
		king, _ := b.TakePiece(m.From())
		b.placeKnownPiece(m.To(), king)
		var rookFrom, rookTo Square
		if side == KingSide {
			rookFrom, rookTo = NewSquare(FileH, rank), NewSquare(FileF, rank)
		} else {
			rookFrom, rookTo = NewSquare(FileA, rank), NewSquare(FileD, rank)
		}
		rook, _ := b.TakePiece(rookFrom)
		b.placeKnownPiece(rookTo, rook)
		return
	case m.IsEnPassant():
		b.TakePiece(m.CapturedSquare())
		pawn, _ := b.TakePiece(m.From())
		b.placeKnownPiece(m.To(), pawn)
		return
	case m.IsPromotion():
		b.TakePiece(m.From())
		b.TakePiece(m.To())
		b.placeKnownPiece(m.To(), GetPiece(m.PromoteTo(), mover))
		return
	default:
		piece, _ := b.TakePiece(m.From())
		b.TakePiece(m.To())
		b.placeKnownPiece(m.To(), piece)
	}
}
