// Package perft counts leaf nodes of the legal move tree from a
// position to a fixed depth (spec.md §8's property/regression oracle
// for move generation), grounded on the teacher's perft tool but
// rebuilt as an importable package against the engine package's types
// instead of a package main CLI.
package perft

import "github.com/talonchess/talon/engine"

// Counters tallies the leaf-level move kinds perft distinguishes,
// following the teacher's counters struct.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
}

func (c *Counters) add(o Counters) {
	c.Nodes += o.Nodes
	c.Captures += o.Captures
	c.EnPassant += o.EnPassant
	c.Castles += o.Castles
	c.Promotions += o.Promotions
}

// Count walks the legal move tree from pos to depth and returns the
// leaf counters. pos is mutated via Make/Unmake and restored to its
// original state on return.
func Count(pos *engine.Position, depth int) Counters {
	if depth == 0 {
		return Counters{Nodes: 1}
	}

	var moves []engine.Move
	moves = pos.GenerateLegalMoves(moves)

	var r Counters
	for _, m := range moves {
		if depth == 1 {
			flag := m.Flag()
			switch {
			case flag == engine.FlagEnPassant:
				r.EnPassant++
				r.Captures++
			case flag.IsCapture():
				r.Captures++
			}
			if flag == engine.FlagShortCastle || flag == engine.FlagLongCastle {
				r.Castles++
			}
			if flag.IsPromotion() {
				r.Promotions++
			}
		}

		pos.Make(m)
		r.add(Count(pos, depth-1))
		pos.Unmake(m)
	}
	return r
}
