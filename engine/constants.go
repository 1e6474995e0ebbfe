package engine

const (
	SquareA1 Square = iota
	SquareB1
	SquareC1
	SquareD1
	SquareE1
	SquareF1
	SquareG1
	SquareH1
	SquareA2
	SquareB2
	SquareC2
	SquareD2
	SquareE2
	SquareF2
	SquareG2
	SquareH2
	SquareA3
	SquareB3
	SquareC3
	SquareD3
	SquareE3
	SquareF3
	SquareG3
	SquareH3
	SquareA4
	SquareB4
	SquareC4
	SquareD4
	SquareE4
	SquareF4
	SquareG4
	SquareH4
	SquareA5
	SquareB5
	SquareC5
	SquareD5
	SquareE5
	SquareF5
	SquareG5
	SquareH5
	SquareA6
	SquareB6
	SquareC6
	SquareD6
	SquareE6
	SquareF6
	SquareG6
	SquareH6
	SquareA7
	SquareB7
	SquareC7
	SquareD7
	SquareE7
	SquareF7
	SquareG7
	SquareH7
	SquareA8
	SquareB8
	SquareC8
	SquareD8
	SquareE8
	SquareF8
	SquareG8
	SquareH8
)

// PieceArraySize bounds every table indexed by Piece.
const PieceArraySize = Piece(FigureArraySize << 2)

const (
	WhitePawn Piece = Piece(iota+Pawn)<<2 + Piece(White)
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
)

const (
	BlackPawn Piece = Piece(iota+Pawn)<<2 + Piece(Black)
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

const (
	bbEmpty           Bitboard = 0x0000000000000000
	bbFull            Bitboard = 0xffffffffffffffff
	bbRank1           Bitboard = 0x00000000000000ff
	bbRank2           Bitboard = 0x000000000000ff00
	bbRank7           Bitboard = 0x00ff000000000000
	bbRank8           Bitboard = 0xff00000000000000
	bbFileA           Bitboard = 0x0101010101010101
	bbFileH           Bitboard = 0x8080808080808080
	bbPawnLeftAttack  Bitboard = 0x00fefefefefefe00
	bbPawnRightAttack Bitboard = 0x007f7f7f7f7f7f00
	bbPawnStartRank   Bitboard = 0x00ff00000000ff00
	bbPawnDoubleRank  Bitboard = 0x000000ffff000000
)

// Well-known FEN positions, reused by tests and by the perft oracle.
var (
	FENStartPos   = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	FENKiwipete   = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	FENDuplain    = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	FENPromotions = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
)
