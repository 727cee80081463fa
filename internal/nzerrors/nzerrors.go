// Package nzerrors implements the closed error taxonomy the public API
// translates every internal failure into. No error value the API
// returns carries a kind outside this set.
package nzerrors

import "github.com/pkg/errors"

// Kind is one of the closed set of error categories the core reports.
type Kind int

const (
	// Ok indicates success; callers rarely construct this explicitly.
	Ok Kind = iota
	// Io covers a failed file read/write, or a file shorter than required.
	Io
	// InvalidFormat means a container's magic did not match.
	InvalidFormat
	// UnsupportedVersion means a container's formatVersion != 1.
	UnsupportedVersion
	// ModelMismatch means modelId differs, or a non-zero modelHash differs.
	ModelMismatch
	// Corrupt means the decoded byte count or post-decode CRC32 didn't match.
	Corrupt
	// Internal means a precondition was violated at an API boundary.
	Internal
)

// Describe returns the stable, human-readable string for a Kind.
func Describe(k Kind) string {
	switch k {
	case Ok:
		return "ok"
	case Io:
		return "io error"
	case InvalidFormat:
		return "invalid container format"
	case UnsupportedVersion:
		return "unsupported container version"
	case ModelMismatch:
		return "model mismatch"
	case Corrupt:
		return "corrupt payload"
	case Internal:
		return "internal precondition violation"
	default:
		return "unknown error"
	}
}

// Error pairs a Kind with the wrapped cause (if any) that produced it.
// Only Kind is part of the public contract; Cause exists for logging.
type Error struct {
	Kind  Kind
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return Describe(e.Kind) + ": " + e.Cause.Error()
	}
	return Describe(e.Kind)
}

func (e *Error) Unwrap() error { return e.Cause }

// New constructs an Error of the given kind whose Cause wraps cause
// with msg for diagnostic context. The Kind is unaffected by msg;
// Error() prints the Kind's description followed by Cause's text, msg
// included.
func New(kind Kind, msg string, cause error) *Error {
	if cause != nil {
		return &Error{Kind: kind, Cause: errors.Wrap(cause, msg)}
	}
	return &Error{Kind: kind, Cause: errors.New(msg)}
}
