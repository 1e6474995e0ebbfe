// errors.go is the error taxonomy spec.md §7 requires. Parse-level
// kinds are recoverable (the caller logs and ignores the offending
// command); Internal is fatal.
package engine

import "fmt"

// ErrorKind distinguishes the four error kinds spec.md §7 names.
type ErrorKind int

const (
	// MalformedPosition is a text-notation parse failure or a
	// structurally impossible placement (too many pawns, no king).
	MalformedPosition ErrorKind = iota
	// MalformedMove is move text that doesn't decode, or that
	// doesn't name a legal move in the current position.
	MalformedMove
	// ProtocolError is an unknown command or parameter shape.
	ProtocolError
	// Internal is an invariant violation; propagation is fatal.
	Internal
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedPosition:
		return "MalformedPosition"
	case MalformedMove:
		return "MalformedMove"
	case ProtocolError:
		return "ProtocolError"
	case Internal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error wraps a message with its ErrorKind so callers can branch on
// the propagation policy spec.md §7 defines (log-and-ignore vs fatal).
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.Msg }

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
