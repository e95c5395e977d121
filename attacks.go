package chess

// Precomputed single-step attack masks, indexed by origin square.
// Populated once at package init and never mutated afterward, so they
// may be read freely from any number of goroutines.
var (
	knightAttacks [numOfSquaresInBoard]bitboard
	kingAttacks   [numOfSquaresInBoard]bitboard
	pawnAttacks   [2][numOfSquaresInBoard]bitboard
)

var knightSteps = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingSteps = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func init() {
	for sq := Square(0); sq < numOfSquaresInBoard; sq++ {
		var n, k bitboard
		for _, d := range knightSteps {
			if to, ok := sq.Step(d[0], d[1]); ok {
				n = n.Insert(to)
			}
		}
		for _, d := range kingSteps {
			if to, ok := sq.Step(d[0], d[1]); ok {
				k = k.Insert(to)
			}
		}
		knightAttacks[sq] = n
		kingAttacks[sq] = k

		var wp, bp bitboard
		if to, ok := sq.Step(-1, 1); ok {
			wp = wp.Insert(to)
		}
		if to, ok := sq.Step(1, 1); ok {
			wp = wp.Insert(to)
		}
		if to, ok := sq.Step(-1, -1); ok {
			bp = bp.Insert(to)
		}
		if to, ok := sq.Step(1, -1); ok {
			bp = bp.Insert(to)
		}
		pawnAttacks[White][sq] = wp
		pawnAttacks[Black][sq] = bp
	}
}

// knightAttacksFrom returns the knight jump targets from sq.
func knightAttacksFrom(sq Square) bitboard { return knightAttacks[sq] }

// kingAttacksFrom returns the king step targets from sq.
func kingAttacksFrom(sq Square) bitboard { return kingAttacks[sq] }

// pawnAttacksFrom returns the diagonal capture targets from sq for a
// pawn of color c.
func pawnAttacksFrom(c Color, sq Square) bitboard { return pawnAttacks[c][sq] }

// rookDirs holds N, S, E, W; bishopDirs holds NE, SE, NW, SW.
var rookDirs = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// castRay walks outward from sq in direction d, one square at a time,
// stopping after including the first occupied square encountered
// ("first blocker is a target").
func castRay(sq Square, occ bitboard, d [2]int) bitboard {
	var out bitboard
	cur := sq
	for {
		to, ok := cur.Step(d[0], d[1])
		if !ok {
			break
		}
		out = out.Insert(to)
		if occ.Occupied(to) {
			break
		}
		cur = to
	}
	return out
}

// rookAttacksFrom returns the squares a rook on sq attacks given
// occupancy occ, unfiltered by friend/foe; the first blocker along
// each ray is included.
func rookAttacksFrom(sq Square, occ bitboard) bitboard {
	var out bitboard
	for _, d := range rookDirs {
		out |= castRay(sq, occ, d)
	}
	return out
}

// bishopAttacksFrom returns the squares a bishop on sq attacks given
// occupancy occ, unfiltered by friend/foe; the first blocker along
// each ray is included.
func bishopAttacksFrom(sq Square, occ bitboard) bitboard {
	var out bitboard
	for _, d := range bishopDirs {
		out |= castRay(sq, occ, d)
	}
	return out
}

// queenAttacksFrom is the union of rookAttacksFrom and bishopAttacksFrom.
func queenAttacksFrom(sq Square, occ bitboard) bitboard {
	return rookAttacksFrom(sq, occ) | bishopAttacksFrom(sq, occ)
}

// attackMask returns the squares a piece of kind k on sq would attack
// given occupancy occ. For sliders and knights this doubles as the
// set of squares from which a piece of kind k could attack sq (the
// symmetry spec.md §4.F relies on for the attacked-by test); for pawns
// the caller must swap color, see isAttacked.
func attackMask(k PieceType, sq Square, occ bitboard, c Color) bitboard {
	switch k {
	case King:
		return kingAttacksFrom(sq)
	case Queen:
		return queenAttacksFrom(sq, occ)
	case Rook:
		return rookAttacksFrom(sq, occ)
	case Bishop:
		return bishopAttacksFrom(sq, occ)
	case Knight:
		return knightAttacksFrom(sq)
	case Pawn:
		return pawnAttacksFrom(c, sq)
	}
	return 0
}
