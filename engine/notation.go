// notation.go handles the long-algebraic move text spec.md §6 defines:
// source square, destination square, optional promotion letter.
package engine

var uciPromoFigure = map[byte]Figure{
	'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen,
}

// ParseUCIMove decodes s (e.g. "e2e4", "e7e8q") against pos and
// returns the matching legal move. It fails with MalformedMove if s
// doesn't decode or doesn't name a move legal in pos (spec.md §7).
func ParseUCIMove(pos *Position, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NullMove, newError(MalformedMove, "move %q has wrong length", s)
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return NullMove, newError(MalformedMove, "bad source square in %q", s)
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return NullMove, newError(MalformedMove, "bad destination square in %q", s)
	}

	promo := NoFigure
	if len(s) == 5 {
		var ok bool
		promo, ok = uciPromoFigure[s[4]]
		if !ok {
			return NullMove, newError(MalformedMove, "bad promotion letter in %q", s)
		}
	}

	var moves []Move
	moves = pos.GenerateLegalMoves(moves)
	for _, m := range moves {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.Flag().IsPromotion() {
			if m.Flag().PromotionFigure() == promo {
				return m, nil
			}
			continue
		}
		if promo == NoFigure {
			return m, nil
		}
	}
	return NullMove, newError(MalformedMove, "%q is not legal in the current position", s)
}
