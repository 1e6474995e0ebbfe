// search.go is iterative-deepening negamax with alpha-beta pruning and
// quiescence extension (spec.md §4.4). It consumes a Position and an
// Evaluator and publishes, after every completed depth, the current
// best move and score so the caller can answer `go` incrementally.
package engine

import (
	"sort"
	"sync/atomic"
	"time"
)

// Mate and bound scores (spec.md §4.4's "Mate scores" and the
// teacher's engine.go mateScore/InfinityScore constants, rescaled to
// this package's figureValue units).
const (
	MateBase      = 30000
	InfinityScore = 32000
	// MaxPly bounds recursion depth; also the arena size for the
	// fixed-depth move-list spec.md §5 calls for.
	MaxPly = 64
)

// Limits bounds one search, built from the `go` command's parameters
// (spec.md §6).
type Limits struct {
	Depth    int           // 0 = no depth limit
	MoveTime time.Duration // 0 = no time limit
	Nodes    uint64        // 0 = no node limit
	Infinite bool          // no limit at all until Stop fires
}

// Info is published once per completed iterative-deepening depth
// (spec.md §6's `info depth D score cp C nodes N time T pv ...`).
type Info struct {
	Depth int
	Score int
	Nodes uint64
	Time  time.Duration
	PV    []Move
}

// Searcher runs iterative-deepening negamax search against a Position
// (spec.md §4.4). A Searcher is single-use per call to Search; the
// stop flag is the only state shared with the protocol handler
// (spec.md §5).
type Searcher struct {
	Eval Evaluator

	pos      *Position
	stop     *atomic.Bool
	limits   Limits
	start    time.Time
	nodes    uint64
	aborted  bool
	buf      []Move
}

// NewSearcher returns a Searcher scoring leaves with eval, or with
// DefaultEvaluator if eval is nil.
func NewSearcher(eval Evaluator) *Searcher {
	if eval == nil {
		eval = DefaultEvaluator{}
	}
	return &Searcher{Eval: eval, buf: make([]Move, 0, MaxPly*32)}
}

// Search runs iterative deepening on pos under limits, calling onInfo
// after every completed depth (may be nil), and returns the last
// completed depth's result. stop is polled at every node; the
// protocol handler sets it from `stop`/`quit` (spec.md §5).
func (s *Searcher) Search(pos *Position, limits Limits, stop *atomic.Bool, onInfo func(Info)) Info {
	s.pos = pos
	s.limits = limits
	s.stop = stop
	s.start = time.Now()
	s.nodes = 0
	s.aborted = false
	s.buf = s.buf[:0]

	var rootMoves []Move
	rootMoves = pos.GenerateLegalMoves(rootMoves)
	if len(rootMoves) == 0 {
		score := 0
		if pos.InCheck() {
			score = -MateBase
		}
		return Info{Score: score, PV: []Move{NullMove}}
	}
	if pos.HalfmoveClock >= 100 || s.insufficientMaterial() {
		return Info{PV: []Move{rootMoves[0]}}
	}

	best := Info{Depth: 0, PV: []Move{rootMoves[0]}}

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > MaxPly {
		maxDepth = MaxPly
	}

	pvMove := NullMove
	for depth := 1; depth <= maxDepth; depth++ {
		if s.shouldStop() {
			break
		}
		s.aborted = false
		pv, score := s.searchRoot(rootMoves, depth, pvMove)
		if s.aborted {
			break
		}
		best = Info{Depth: depth, Score: score, Nodes: s.nodes, Time: time.Since(s.start), PV: pv}
		if len(pv) > 0 {
			pvMove = pv[0]
		}
		if onInfo != nil {
			onInfo(best)
		}
		if limits.Nodes != 0 && s.nodes >= limits.Nodes {
			break
		}
		if !limits.Infinite && abs(score) > MateBase-MaxPly {
			break
		}
	}
	return best
}

func (s *Searcher) searchRoot(moves []Move, depth int, pvMove Move) ([]Move, int) {
	s.orderMoves(moves, pvMove)
	alpha, beta := -InfinityScore, InfinityScore

	var bestPV []Move
	bestScore := -InfinityScore
	haveMove := false

	for _, m := range moves {
		if s.shouldStop() {
			s.aborted = true
			return bestPV, bestScore
		}
		s.pos.Make(m)
		childPV, v := s.negamax(depth-1, -beta, -alpha, 1)
		v = -v
		s.pos.Unmake(m)

		if s.aborted {
			return bestPV, bestScore
		}
		if !haveMove || v > bestScore {
			haveMove = true
			bestScore = v
			bestPV = append([]Move{m}, childPV...)
		}
		if v > alpha {
			alpha = v
		}
	}
	return bestPV, bestScore
}

// negamax implements spec.md §4.4's negamax(pos, depth, alpha, beta).
func (s *Searcher) negamax(depth, alpha, beta, ply int) ([]Move, int) {
	if s.shouldStop() {
		s.aborted = true
		return nil, alpha
	}
	s.nodes++

	if depth <= 0 || ply >= MaxPly {
		return nil, s.quiescence(alpha, beta, ply)
	}

	start := len(s.buf)
	s.buf = s.pos.GenerateLegalMoves(s.buf)
	moves := s.buf[start:]

	if len(moves) == 0 {
		s.buf = s.buf[:start]
		if s.pos.InCheck() {
			return nil, -(MateBase - ply)
		}
		return nil, 0
	}

	if s.pos.HalfmoveClock >= 100 || s.insufficientMaterial() {
		s.buf = s.buf[:start]
		return nil, 0
	}

	s.orderMoves(moves, NullMove)

	var pv []Move
	for _, m := range moves {
		s.pos.Make(m)
		childPV, v := s.negamax(depth-1, -beta, -alpha, ply+1)
		v = -v
		s.pos.Unmake(m)

		if s.aborted {
			s.buf = s.buf[:start]
			return nil, alpha
		}
		if v >= beta {
			s.buf = s.buf[:start]
			return nil, beta
		}
		if v > alpha {
			alpha = v
			pv = append([]Move{m}, childPV...)
		}
	}
	s.buf = s.buf[:start]
	return pv, alpha
}

// quiescence implements spec.md §4.4's capture-only mini-search.
func (s *Searcher) quiescence(alpha, beta, ply int) int {
	if s.shouldStop() {
		s.aborted = true
		return alpha
	}
	s.nodes++

	standPat := s.Eval.Evaluate(s.pos) * ColorWeight[s.pos.SideToMove]
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if ply >= MaxPly {
		return alpha
	}

	start := len(s.buf)
	s.buf = s.pos.GenerateCaptures(s.buf)
	moves := s.buf[start:]
	s.orderCaptures(moves)

	for _, m := range moves {
		s.pos.Make(m)
		v := -s.quiescence(-beta, -alpha, ply+1)
		s.pos.Unmake(m)

		if s.aborted {
			s.buf = s.buf[:start]
			return alpha
		}
		if v >= beta {
			s.buf = s.buf[:start]
			return beta
		}
		if v > alpha {
			alpha = v
		}
	}
	s.buf = s.buf[:start]
	return alpha
}

func (s *Searcher) shouldStop() bool {
	if s.stop != nil && s.stop.Load() {
		return true
	}
	if s.limits.Infinite {
		return false
	}
	if s.limits.MoveTime != 0 && time.Since(s.start) >= s.limits.MoveTime {
		return true
	}
	if s.limits.Nodes != 0 && s.nodes >= s.limits.Nodes {
		return true
	}
	return false
}

// capturedSquare returns the square a capturing move removes a piece
// from, which differs from m.To() only for en-passant.
func capturedSquare(m Move) Square {
	if m.Flag() == FlagEnPassant {
		return RankFile(m.From().Rank(), m.To().File())
	}
	return m.To()
}

// orderMoves sorts moves in place: pvMove first, then captures by
// MVV-LVA (captured value descending, attacker value ascending), then
// quiet moves (spec.md §4.4's move-ordering requirement).
func (s *Searcher) orderMoves(moves []Move, pvMove Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return s.moveOrderKey(moves[i], pvMove) > s.moveOrderKey(moves[j], pvMove)
	})
}

func (s *Searcher) moveOrderKey(m, pvMove Move) int {
	if !pvMove.IsNull() && m == pvMove {
		return 1 << 30
	}
	if !m.Flag().IsCapture() {
		return 0
	}
	return 1<<20 + s.captureOrderKey(m)
}

func (s *Searcher) orderCaptures(moves []Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return s.captureOrderKey(moves[i]) > s.captureOrderKey(moves[j])
	})
}

func (s *Searcher) captureOrderKey(m Move) int {
	captured := s.pos.Get(capturedSquare(m))
	attacker := s.pos.Get(m.From())
	return figureValue[captured.Figure()]*16 - figureValue[attacker.Figure()]
}

func (s *Searcher) insufficientMaterial() bool {
	pos := s.pos
	if pos.PieceBB[White][Pawn]|pos.PieceBB[Black][Pawn] != 0 {
		return false
	}
	if pos.PieceBB[White][Rook]|pos.PieceBB[Black][Rook] != 0 {
		return false
	}
	if pos.PieceBB[White][Queen]|pos.PieceBB[Black][Queen] != 0 {
		return false
	}
	whiteMinors := pos.PieceBB[White][Knight].Count() + pos.PieceBB[White][Bishop].Count()
	blackMinors := pos.PieceBB[Black][Knight].Count() + pos.PieceBB[Black][Bishop].Count()
	return whiteMinors <= 1 && blackMinors <= 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
