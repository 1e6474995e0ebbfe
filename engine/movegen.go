// movegen.go generates moves (spec.md §4.3): pseudo-legal generation
// per piece kind, then a legality filter built on pin detection and
// check evasion rather than a make/IsAttacked/unmake trial for every
// candidate.
package engine

// pawnPromotionFigures lists the figures a pawn may promote to, in the
// fixed order promotion moves are generated.
var pawnPromotionFigures = [4]Figure{Knight, Bishop, Rook, Queen}

// GenerateLegalMoves appends every legal move for the side to move to
// moves and returns the extended slice.
func (pos *Position) GenerateLegalMoves(moves []Move) []Move {
	return pos.generateMoves(moves, false)
}

// GenerateCaptures appends every legal capturing or promoting move
// (spec.md §4.4's quiescence generation) and returns the extended
// slice.
func (pos *Position) GenerateCaptures(moves []Move) []Move {
	return pos.generateMoves(moves, true)
}

func (pos *Position) generateMoves(moves []Move, capturesOnly bool) []Move {
	co := pos.SideToMove
	king := pos.KingSquare(co)
	checkers := pos.checkers(co)
	numCheckers := checkers.Count()
	pinned, pinLine := pos.pinnedMask(co)

	var target Bitboard
	restrictNonKing := numCheckers == 1
	if restrictNonKing {
		checkerSq := checkers.AsSquare()
		target = SquareBB[checkerSq] | Between[king][checkerSq]
	}

	pseudo := pos.genPseudoLegal(nil, capturesOnly)
	for _, m := range pseudo {
		from, to, flag := m.From(), m.To(), m.Flag()

		if numCheckers >= 2 && from != king {
			continue
		}

		if from == king {
			if pos.kingDestinationAttacked(to, co) {
				continue
			}
		} else {
			if restrictNonKing {
				covered := target&SquareBB[to] != 0
				if flag == FlagEnPassant {
					capturedSq := RankFile(from.Rank(), to.File())
					covered = covered || target&SquareBB[capturedSq] != 0
				}
				if !covered {
					continue
				}
			}
			if pinned&SquareBB[from] != 0 && pinLine[from]&SquareBB[to] == 0 {
				continue
			}
		}

		if flag == FlagEnPassant && !pos.enPassantLegal(m) {
			continue
		}

		moves = append(moves, m)
	}
	return moves
}

// checkers returns the set of co's enemy pieces currently attacking
// co's king.
func (pos *Position) checkers(co Color) Bitboard {
	king := pos.KingSquare(co)
	enemy := co.Other()

	var bb Bitboard
	// PawnAttacks is zero on the back ranks, where a king can still be
	// checked by a pawn, so the pawn pattern is shifted from the king.
	kingBB := SquareBB[king]
	if co == White {
		bb |= ((kingBB&^bbFileA)<<7 | (kingBB&^bbFileH)<<9) & pos.PieceBB[enemy][Pawn]
	} else {
		bb |= ((kingBB&^bbFileA)>>9 | (kingBB&^bbFileH)>>7) & pos.PieceBB[enemy][Pawn]
	}
	bb |= KnightAttacks[king] & pos.PieceBB[enemy][Knight]
	diag := pos.PieceBB[enemy][Bishop] | pos.PieceBB[enemy][Queen]
	bb |= BishopAttacks(king, pos.Occupancy) & diag
	orth := pos.PieceBB[enemy][Rook] | pos.PieceBB[enemy][Queen]
	bb |= RookAttacks(king, pos.Occupancy) & orth
	return bb
}

// pinnedMask returns the set of co's pieces pinned against co's king,
// plus, for each pinned square, the line the piece must stay on
// (spec.md §4.3's legality filter: "a pinned piece's move is legal
// only if its destination lies on Line[king][pinner]").
func (pos *Position) pinnedMask(co Color) (pinned Bitboard, pinLine [64]Bitboard) {
	king := pos.KingSquare(co)
	enemy := co.Other()
	sliders := pos.PieceBB[enemy][Bishop] | pos.PieceBB[enemy][Rook] | pos.PieceBB[enemy][Queen]

	for bb := sliders; bb != 0; {
		sq := bb.Pop()
		if Line[king][sq] == 0 {
			continue
		}
		straight := king.Rank() == sq.Rank() || king.File() == sq.File()
		fig := pos.Get(sq).Figure()
		if straight && fig == Bishop {
			continue
		}
		if !straight && fig == Rook {
			continue
		}
		blockers := Between[king][sq] & pos.Occupancy
		if blockers.Count() != 1 {
			continue
		}
		blocker := blockers.AsSquare()
		if pos.Get(blocker).Color() == co {
			pinned |= SquareBB[blocker]
			pinLine[blocker] = Line[king][sq]
		}
	}
	return pinned, pinLine
}

// kingDestinationAttacked reports whether to would be attacked after
// co's king moves there, using an occupancy with the king's old
// square cleared so a slider that was only blocked by the king itself
// is correctly seen to attack through it.
func (pos *Position) kingDestinationAttacked(to Square, co Color) bool {
	king := pos.KingSquare(co)
	occ := (pos.Occupancy &^ SquareBB[king]) | SquareBB[to]
	return pos.squareAttackedWithOccupancy(to, co.Other(), occ)
}

// enPassantLegal re-checks an en-passant capture for the discovered
// rank pin spec.md §4.3 calls out: both the capturing and captured
// pawn leave the fifth rank, which can expose the king to a rook or
// queen that normal pin detection never considered since neither pawn
// sits on the king's line to begin with.
func (pos *Position) enPassantLegal(m Move) bool {
	co := pos.SideToMove
	enemy := co.Other()
	from, to := m.From(), m.To()
	capturedSq := RankFile(from.Rank(), to.File())
	king := pos.KingSquare(co)

	occ := (pos.Occupancy &^ SquareBB[from] &^ SquareBB[capturedSq]) | SquareBB[to]

	orth := pos.PieceBB[enemy][Rook] | pos.PieceBB[enemy][Queen]
	if orth != 0 && RookAttacks(king, occ)&orth != 0 {
		return false
	}
	diag := pos.PieceBB[enemy][Bishop] | pos.PieceBB[enemy][Queen]
	if diag != 0 && BishopAttacks(king, occ)&diag != 0 {
		return false
	}
	return true
}

// genPseudoLegal generates every pseudo-legal move (spec.md §4.3 step
// 1): obeys piece movement and occupancy but may leave the mover's own
// king in check. capturesOnly restricts it to captures and promotions,
// for quiescence search.
func (pos *Position) genPseudoLegal(moves []Move, capturesOnly bool) []Move {
	co := pos.SideToMove

	moves = pos.genPawnMoves(moves, capturesOnly)

	for bb := pos.PieceBB[co][Knight]; bb != 0; {
		from := bb.Pop()
		moves = pos.genPieceMoves(moves, co, KnightAttacks[from], from, capturesOnly)
	}
	for bb := pos.PieceBB[co][Bishop]; bb != 0; {
		from := bb.Pop()
		moves = pos.genPieceMoves(moves, co, BishopAttacks(from, pos.Occupancy), from, capturesOnly)
	}
	for bb := pos.PieceBB[co][Rook]; bb != 0; {
		from := bb.Pop()
		moves = pos.genPieceMoves(moves, co, RookAttacks(from, pos.Occupancy), from, capturesOnly)
	}
	for bb := pos.PieceBB[co][Queen]; bb != 0; {
		from := bb.Pop()
		moves = pos.genPieceMoves(moves, co, QueenAttacks(from, pos.Occupancy), from, capturesOnly)
	}

	king := pos.KingSquare(co)
	moves = pos.genPieceMoves(moves, co, KingAttacks[king], king, capturesOnly)
	if !capturesOnly {
		moves = pos.genCastles(moves)
	}
	return moves
}

// genPieceMoves appends the non-pawn moves a piece on from makes given
// its raw attack set (already intersected with nothing): friendly
// pieces are masked out, and in capturesOnly mode only enemy-occupied
// destinations are kept.
func (pos *Position) genPieceMoves(moves []Move, co Color, attacks Bitboard, from Square, capturesOnly bool) []Move {
	attacks &^= pos.ByColor[co]
	enemy := pos.ByColor[co.Other()]

	if !capturesOnly {
		for bb := attacks &^ enemy; bb != 0; {
			to := bb.Pop()
			moves = append(moves, NewMove(from, to, FlagQuiet))
		}
	}
	for bb := attacks & enemy; bb != 0; {
		to := bb.Pop()
		moves = append(moves, NewMove(from, to, FlagCapture))
	}
	return moves
}

func (pos *Position) genCastles(moves []Move) []Move {
	co := pos.SideToMove
	enemy := co.Other()
	if co == White {
		if pos.Castle&WhiteOO != 0 && pos.IsEmpty(SquareF1) && pos.IsEmpty(SquareG1) &&
			!pos.IsAttackedBy(SquareE1, enemy) && !pos.IsAttackedBy(SquareF1, enemy) && !pos.IsAttackedBy(SquareG1, enemy) {
			moves = append(moves, NewMove(SquareE1, SquareG1, FlagShortCastle))
		}
		if pos.Castle&WhiteOOO != 0 && pos.IsEmpty(SquareD1) && pos.IsEmpty(SquareC1) && pos.IsEmpty(SquareB1) &&
			!pos.IsAttackedBy(SquareE1, enemy) && !pos.IsAttackedBy(SquareD1, enemy) && !pos.IsAttackedBy(SquareC1, enemy) {
			moves = append(moves, NewMove(SquareE1, SquareC1, FlagLongCastle))
		}
	} else {
		if pos.Castle&BlackOO != 0 && pos.IsEmpty(SquareF8) && pos.IsEmpty(SquareG8) &&
			!pos.IsAttackedBy(SquareE8, enemy) && !pos.IsAttackedBy(SquareF8, enemy) && !pos.IsAttackedBy(SquareG8, enemy) {
			moves = append(moves, NewMove(SquareE8, SquareG8, FlagShortCastle))
		}
		if pos.Castle&BlackOOO != 0 && pos.IsEmpty(SquareD8) && pos.IsEmpty(SquareC8) && pos.IsEmpty(SquareB8) &&
			!pos.IsAttackedBy(SquareE8, enemy) && !pos.IsAttackedBy(SquareD8, enemy) && !pos.IsAttackedBy(SquareC8, enemy) {
			moves = append(moves, NewMove(SquareE8, SquareC8, FlagLongCastle))
		}
	}
	return moves
}

// genPawnMoves generates every pawn move: pushes, double pushes,
// captures (including en-passant) and promotions. In capturesOnly
// mode only captures and promoting pushes are produced, since a
// promotion changes material enough to matter in quiescence.
func (pos *Position) genPawnMoves(moves []Move, capturesOnly bool) []Move {
	co := pos.SideToMove
	pawns := pos.PieceBB[co][Pawn]
	empty := ^pos.Occupancy
	enemy := pos.ByColor[co.Other()]

	if co == White {
		if !capturesOnly {
			push := (pawns << 8) & empty &^ bbRank8
			for bb := push; bb != 0; {
				to := bb.Pop()
				moves = append(moves, NewMove(to-8, to, FlagQuiet))
			}
			dbl := ((pawns & bbRank2) << 16) & empty & (empty << 8)
			for bb := dbl; bb != 0; {
				to := bb.Pop()
				moves = append(moves, NewMove(to-16, to, FlagDoublePawnPush))
			}
		}
		promo := (pawns << 8) & empty & bbRank8
		for bb := promo; bb != 0; {
			to := bb.Pop()
			moves = pos.appendPromotions(moves, to-8, to, false)
		}

		left := ((pawns &^ bbFileA) << 7) & enemy
		for bb := left; bb != 0; {
			to := bb.Pop()
			moves = pos.appendPawnCapture(moves, to-7, to)
		}
		right := ((pawns &^ bbFileH) << 9) & enemy
		for bb := right; bb != 0; {
			to := bb.Pop()
			moves = pos.appendPawnCapture(moves, to-9, to)
		}
	} else {
		if !capturesOnly {
			push := (pawns >> 8) & empty &^ bbRank1
			for bb := push; bb != 0; {
				to := bb.Pop()
				moves = append(moves, NewMove(to+8, to, FlagQuiet))
			}
			dbl := ((pawns & bbRank7) >> 16) & empty & (empty >> 8)
			for bb := dbl; bb != 0; {
				to := bb.Pop()
				moves = append(moves, NewMove(to+16, to, FlagDoublePawnPush))
			}
		}
		promo := (pawns >> 8) & empty & bbRank1
		for bb := promo; bb != 0; {
			to := bb.Pop()
			moves = pos.appendPromotions(moves, to+8, to, false)
		}

		left := ((pawns &^ bbFileA) >> 9) & enemy
		for bb := left; bb != 0; {
			to := bb.Pop()
			moves = pos.appendPawnCapture(moves, to+9, to)
		}
		right := ((pawns &^ bbFileH) >> 7) & enemy
		for bb := right; bb != 0; {
			to := bb.Pop()
			moves = pos.appendPawnCapture(moves, to+7, to)
		}
	}

	if pos.EnPassant != NoSquare {
		ep := pos.EnPassant
		attackers := PawnAttacks[co.Other()][ep] & pawns
		for bb := attackers; bb != 0; {
			from := bb.Pop()
			moves = append(moves, NewMove(from, ep, FlagEnPassant))
		}
	}

	return moves
}

// appendPawnCapture appends a capturing pawn move, expanding to the
// four capture-promotion variants when to is on the last rank.
func (pos *Position) appendPawnCapture(moves []Move, from, to Square) []Move {
	if to.Rank() == 0 || to.Rank() == 7 {
		return pos.appendPromotions(moves, from, to, true)
	}
	return append(moves, NewMove(from, to, FlagCapture))
}

func (pos *Position) appendPromotions(moves []Move, from, to Square, capture bool) []Move {
	base := FlagPromoKnight
	if capture {
		base = FlagCapturePromoKnight
	}
	for i := range pawnPromotionFigures {
		moves = append(moves, NewMove(from, to, base+MoveFlag(i)))
	}
	return moves
}
