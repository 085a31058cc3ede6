package engine

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/rawblock/household-ledger/pkg/model"
)

// Logger is the engine's debug/trace facility (§6: "Debug/trace flags
// may exist; they affect only secondary output to standard error and
// must not change the computed debt graph."). It wraps the standard
// library's log.Logger exactly as the teacher does throughout
// cmd/engine/main.go and internal/db/postgres.go — no third-party
// logger is wired anywhere in the corpus for this concern.
type Logger struct {
	out   *log.Logger
	runID string
}

// NewLogger returns a Logger writing to w, stamped with a fresh
// per-run trace id — the same role the teacher's uuid-tagged
// EvidenceEdge.AuditHash plays (internal/heuristics/llr_engine.go):
// a stable handle to correlate every line this run emits.
func NewLogger(w io.Writer) *Logger {
	return &Logger{
		out:   log.New(w, "", log.LstdFlags),
		runID: uuid.New().String(),
	}
}

// Tracef writes one debug line, prefixed with the run id.
func (l *Logger) Tracef(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.out.Printf("[run %s] %s", l.runID, fmt.Sprintf(format, args...))
}

// trace emits one line per dispatched record when debug tracing is on.
func (e *Engine) trace(rec *model.Record) {
	if e.log == nil {
		return
	}
	e.log.Tracef("dispatch %s at=%d nick=%q", rec.Kind, rec.At, rec.Nick)
}
