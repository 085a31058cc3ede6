package engine

import "github.com/pkg/errors"

// Kind classifies a fatal error per §7. The engine never recovers —
// every kind terminates the run — but callers (the CLI's exit-code
// mapping, diagnostics) benefit from telling them apart.
type Kind int

const (
	// KindFormat: unrecognized op, missing field, unparseable date/amount.
	KindFormat Kind = iota
	// KindReferential: an op names an unknown nickname where one is
	// required, or a BUY finds no obligated occupants at its timestamp.
	KindReferential
	// KindState: PAUSE/STOP with no open interval, RESUME with one already open.
	KindState
	// KindResource: I/O failure reading input or writing output.
	KindResource
	// KindInvariant: engine-internal corruption (secondary index desync,
	// negative occupancy during sweep). Indicates a bug, not bad input.
	KindInvariant
)

func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindReferential:
		return "referential"
	case KindState:
		return "state"
	case KindResource:
		return "resource"
	case KindInvariant:
		return "invariant"
	default:
		return "unknown"
	}
}

// FatalError is the one error type the engine ever returns to its
// caller. Per §7's policy of no recovery, any FatalError means the
// process should stop immediately with a non-zero exit and no
// partial output.
type FatalError struct {
	Kind Kind
	Line int // 1-based input line number, 0 if not line-associated
	err  error
}

func (e *FatalError) Error() string {
	if e.Line > 0 {
		return errors.Wrapf(e.err, "line %d: %s error", e.Line, e.Kind).Error()
	}
	return errors.Wrap(e.err, e.Kind.String()+" error").Error()
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *FatalError) Unwrap() error { return e.err }

// Fatal wraps cause as a FatalError of the given kind with no line
// association (used for errors raised outside of line-by-line
// parsing, e.g. a referential error discovered mid-dispatch).
func Fatal(kind Kind, cause error) *FatalError {
	return &FatalError{Kind: kind, err: cause}
}

// FatalAtLine is Fatal with a 1-based input line number attached.
func FatalAtLine(kind Kind, line int, cause error) *FatalError {
	return &FatalError{Kind: kind, Line: line, err: cause}
}
