// Package protocol is the UCI command dispatcher (spec.md §5, §6):
// it owns the Position between searches, hands it to a Searcher for
// the duration of a `go`, and is the sole writer of the shared stop
// flag. Grounded on the teacher's uci.go dispatch-by-field-zero
// pattern, generalized from the teacher's ad-hoc Position/Move types
// to the engine package's.
package protocol

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/talonchess/talon/engine"
)

// Handler dispatches UCI command lines against one Position (spec.md
// §5: the Position is owned by the worker during a search, or by the
// handler between searches — never both). `go` starts the search on
// its own goroutine (the worker) and returns immediately so Execute
// keeps reading stdin (the protocol handler) and can still observe
// `stop`/`quit`; the stop flag is the one piece of state the two
// actors share.
type Handler struct {
	Name   string
	Author string

	Out  func(line string)
	Log  func(inbound bool, line string)
	Eval engine.Evaluator

	pos     *engine.Position
	stop    atomic.Bool
	running atomic.Bool
	wg      sync.WaitGroup
}

// NewHandler returns a Handler that writes responses to out and starts
// from the standard initial position.
func NewHandler(name, author string, eval engine.Evaluator, out func(string)) *Handler {
	return &Handler{
		Name:   name,
		Author: author,
		Out:    out,
		Eval:   eval,
		pos:    engine.NewStartPosition(),
	}
}

func (h *Handler) emit(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	if h.Log != nil {
		h.Log(false, line)
	}
	h.Out(line)
}

// Execute dispatches one input line. ErrQuit is returned for `quit`;
// the caller is expected to stop reading input and exit 0.
func (h *Handler) Execute(line string) error {
	if h.Log != nil {
		h.Log(true, line)
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "uci":
		h.handleUCI()
	case "isready":
		h.emit("readyok")
	case "ucinewgame":
		h.pos = engine.NewStartPosition()
	case "position":
		return h.handlePosition(args)
	case "go":
		h.handleGo(args)
	case "stop":
		h.stop.Store(true)
	case "quit":
		h.stop.Store(true)
		h.wg.Wait()
		return ErrQuit
	default:
		return &engine.Error{Kind: engine.ProtocolError, Msg: "unknown command " + cmd}
	}
	return nil
}

// ErrQuit signals that `quit` was processed; it is not itself a
// protocol error (spec.md §7 reserves the error taxonomy for
// MalformedPosition/MalformedMove/ProtocolError/Internal).
var ErrQuit = fmt.Errorf("quit")

func (h *Handler) handleUCI() {
	h.emit("id name %s", h.Name)
	h.emit("id author %s", h.Author)
	h.emit("uciok")
}

func (h *Handler) handlePosition(args []string) error {
	if len(args) == 0 {
		return &engine.Error{Kind: engine.ProtocolError, Msg: "position requires an argument"}
	}

	var pos *engine.Position
	var rest []string
	switch args[0] {
	case "startpos":
		pos = engine.NewStartPosition()
		rest = args[1:]
	case "fen":
		if len(args) < 7 {
			return &engine.Error{Kind: engine.ProtocolError, Msg: "position fen requires 6 fields"}
		}
		var err error
		pos, err = engine.ParseFEN(strings.Join(args[1:7], " "))
		if err != nil {
			return err
		}
		rest = args[7:]
	default:
		return &engine.Error{Kind: engine.ProtocolError, Msg: "expected startpos or fen, got " + args[0]}
	}

	if len(rest) > 0 {
		if rest[0] != "moves" {
			return &engine.Error{Kind: engine.ProtocolError, Msg: "expected moves, got " + rest[0]}
		}
		for _, mv := range rest[1:] {
			m, err := engine.ParseUCIMove(pos, mv)
			if err != nil {
				return err
			}
			pos.Make(m)
		}
	}

	h.pos = pos
	return nil
}

func (h *Handler) handleGo(args []string) {
	limits, err := parseGoLimits(args)
	if err != nil {
		if h.Log != nil {
			h.Log(false, err.Error())
		}
		return
	}
	if h.running.Load() {
		// The protocol handler must not issue a new `go` before the
		// previous search published its best move (spec.md §5); a
		// violating client gets its command ignored rather than
		// racing the in-flight worker for the Position.
		return
	}

	h.stop.Store(false)
	h.running.Store(true)
	pos := h.pos

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		defer h.running.Store(false)

		searcher := engine.NewSearcher(h.Eval)
		info := searcher.Search(pos, limits, &h.stop, func(i engine.Info) {
			h.emit("info depth %d score cp %d nodes %d time %d pv %s",
				i.Depth, i.Score, i.Nodes, i.Time.Milliseconds(), joinMoves(i.PV))
		})

		best := engine.NullMove
		if len(info.PV) > 0 {
			best = info.PV[0]
		}
		h.emit("bestmove %s", best.String())
	}()
}

// Stop marks the running search for cancellation; safe to call
// concurrently with Execute processing a `go`.
func (h *Handler) Stop() { h.stop.Store(true) }

// Running reports whether a search is currently in flight.
func (h *Handler) Running() bool { return h.running.Load() }

// Wait blocks until any in-flight search has published its bestmove.
func (h *Handler) Wait() { h.wg.Wait() }

func joinMoves(moves []engine.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// parseGoLimits decodes `go`'s parameters (spec.md §6) into a
// engine.Limits. wtime/btime/winc/binc are accepted but only MoveTime,
// Depth, Nodes and Infinite carry semantics this engine honors;
// per-side clocks are out of spec.md's §4.4 scope beyond not erroring.
func parseGoLimits(args []string) (engine.Limits, error) {
	var limits engine.Limits
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			n, err := nextInt(args, &i)
			if err != nil {
				return limits, err
			}
			limits.Depth = n
		case "movetime":
			n, err := nextInt(args, &i)
			if err != nil {
				return limits, err
			}
			limits.MoveTime = time.Duration(n) * time.Millisecond
		case "nodes":
			n, err := nextInt(args, &i)
			if err != nil {
				return limits, err
			}
			limits.Nodes = uint64(n)
		case "infinite":
			limits.Infinite = true
		case "wtime", "btime", "winc", "binc", "movestogo":
			if _, err := nextInt(args, &i); err != nil {
				return limits, err
			}
		default:
			return limits, &engine.Error{Kind: engine.ProtocolError, Msg: "unknown go parameter " + args[i]}
		}
	}
	return limits, nil
}

func nextInt(args []string, i *int) (int, error) {
	*i++
	if *i >= len(args) {
		return 0, &engine.Error{Kind: engine.ProtocolError, Msg: "missing value for " + args[*i-1]}
	}
	n, err := strconv.Atoi(args[*i])
	if err != nil {
		return 0, &engine.Error{Kind: engine.ProtocolError, Msg: "bad integer " + args[*i]}
	}
	return n, nil
}
