// Command talon is a UCI chess engine. It reads commands on standard
// input and writes responses on standard output, one line each,
// following the teacher's stdin-loop shape (zurichess/main.go) adapted
// to the new protocol.Handler dispatcher.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/talonchess/talon/config"
	"github.com/talonchess/talon/engine"
	"github.com/talonchess/talon/enginelog"
	"github.com/talonchess/talon/protocol"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load("talon.yaml")
	if err != nil {
		fmt.Fprintln(os.Stderr, "talon.yaml:", err)
		return 1
	}

	log, err := enginelog.Open(filepath.Join(cfg.LogDir, "talon.log"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "opening log:", err)
		return 1
	}
	defer log.Close()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	h := protocol.NewHandler(cfg.EngineName, cfg.Author, engine.DefaultEvaluator{}, func(line string) {
		fmt.Fprintln(out, line)
		out.Flush()
	})
	h.Log = func(inbound bool, line string) {
		if inbound {
			log.Inbound(line)
		} else {
			log.Outbound(line)
		}
	}

	log.Event("talon starting", zap.String("engine", cfg.EngineName))

	in := bufio.NewScanner(os.Stdin)
	in.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for in.Scan() {
		line := in.Text()
		if err := h.Execute(line); err != nil {
			if err == protocol.ErrQuit {
				return 0
			}
			var perr *engine.Error
			if ok := asEngineError(err, &perr); ok && perr.Kind == engine.Internal {
				log.Fatal("internal error", zap.Error(err))
				return 1
			}
			log.Event("command error", zap.String("line", line), zap.Error(err))
		}
	}
	if err := in.Err(); err != nil {
		log.Fatal("stdin read failed", zap.Error(err))
		return 1
	}
	return 0
}

func asEngineError(err error, target **engine.Error) bool {
	e, ok := err.(*engine.Error)
	if ok {
		*target = e
	}
	return ok
}
