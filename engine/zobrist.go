// zobrist.go builds the random keys behind Position's incremental hash
// (spec.md §3, "Zobrist hash"): XOR of a per-(square,piece) key, a
// per-castling-rights key, a per-en-passant-file key and a
// per-side-to-move key.
package engine

import "math/rand"

// zobristPiece[pi][sq] is XORed in whenever piece pi sits on sq.
var zobristPiece [PieceArraySize][64]uint64

// zobristEnPassant[f] is XORed in while the en-passant target square
// sits on file f (0..7). There is no key for "no en-passant target";
// that case contributes nothing.
var zobristEnPassant [8]uint64

// zobristCastle[i] is the independent key for castleSymbol[i]'s bit;
// a Castle value's key is the XOR of the keys of its set bits.
var zobristCastle [4]uint64

// zobristColor is XORed in when Black is to move; absent (XOR with 0)
// when White is to move.
var zobristColor uint64

func rand64(r *rand.Rand) uint64 {
	return uint64(r.Int63())<<32 ^ uint64(r.Int63())
}

func init() {
	r := rand.New(rand.NewSource(1))
	for pi := Piece(0); pi < PieceArraySize; pi++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[pi][sq] = rand64(r)
		}
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rand64(r)
	}
	for i := range zobristCastle {
		zobristCastle[i] = rand64(r)
	}
	zobristColor = rand64(r)
}

// castleZobrist XORs together the independent key for each set bit in
// ca, so that castleZobrist(a) ^ castleZobrist(b) is the key for the
// symmetric difference of a and b's rights.
func castleZobrist(ca Castle) uint64 {
	var h uint64
	for i, cs := range castleSymbol {
		if ca&cs.bit != 0 {
			h ^= zobristCastle[i]
		}
	}
	return h
}

// enPassantZobrist returns the en-passant key for sq, or 0 if sq is
// NoSquare.
func enPassantZobrist(sq Square) uint64 {
	if sq == NoSquare {
		return 0
	}
	return zobristEnPassant[sq.File()]
}
