package acon

import (
	"errors"
	"fmt"
)

// ErrorKind classifies structural parse failures.
type ErrorKind uint8

const (
	ExcessiveClosingDelimiter ErrorKind = iota + 1
	DuplicateKey
	WrongClosingDelimiterKind
	UnterminatedNesting
	InternalInvariantViolation
)

func (k ErrorKind) String() string {
	switch k {
	case ExcessiveClosingDelimiter:
		return "excessive closing delimiter"
	case DuplicateKey:
		return "duplicate key"
	case WrongClosingDelimiterKind:
		return "wrong closing delimiter"
	case UnterminatedNesting:
		return "unterminated nesting"
	case InternalInvariantViolation:
		return "internal invariant violation"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

func (k ErrorKind) Error() string { return "acon: " + k.String() }

// Sentinels for errors.Is. A *Error matches the sentinel of its Kind.
var (
	ErrExcessiveClosingDelimiter  error = ExcessiveClosingDelimiter
	ErrDuplicateKey               error = DuplicateKey
	ErrWrongClosingDelimiterKind  error = WrongClosingDelimiterKind
	ErrUnterminatedNesting        error = UnterminatedNesting
	ErrInternalInvariantViolation error = InternalInvariantViolation
)

// ErrRootNotTable is returned by the printer for a non-table document root.
var ErrRootNotTable = errors.New("acon: only a table can be printed as a document")

// Error is a structural parse error. Line is 1-based; 0 means the error was
// detected at end of input and has no line.
type Error struct {
	Kind ErrorKind
	Line int
	// Key is the colliding key for DuplicateKey.
	Key string
	// Want is the kind of the open block for WrongClosingDelimiterKind and
	// UnterminatedNesting.
	Want Kind
	// Opened is the line the unterminated block started on.
	Opened int
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("acon:%d: %s", e.Line, e.detail())
	}
	return "acon: " + e.detail()
}

func (e *Error) detail() string {
	switch e.Kind {
	case DuplicateKey:
		return fmt.Sprintf("%s %q", e.Kind.String(), e.Key)
	case WrongClosingDelimiterKind:
		return fmt.Sprintf("%s, expected %q", e.Kind.String(), closerOf(e.Want))
	case UnterminatedNesting:
		return fmt.Sprintf("unterminated %s opened on line %d", e.Want, e.Opened)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// Reason renders the long explanation shown to people editing a document.
func (e *Error) Reason() string {
	lead := "T"
	if e.Line > 0 {
		lead = fmt.Sprintf("On line %d, t", e.Line)
	}
	switch e.Kind {
	case ExcessiveClosingDelimiter:
		return lead + "here's a closing delimiter that has no matching opening delimiter. " +
			"Delimiters only count as the first word on a line; they are {, }, [, ] and $."
	case DuplicateKey:
		return fmt.Sprintf("%she key %q is already present in the table.", lead, e.Key)
	case WrongClosingDelimiterKind:
		return fmt.Sprintf("%she closing delimiter does not match the open %s, which is closed by %s. "+
			"Make sure all delimiters match up in the input.", lead, e.Want, closerOf(e.Want))
	case UnterminatedNesting:
		return fmt.Sprintf("The input ends inside the %s opened on line %d. "+
			"Try appending %q, or $ to close every open block.", e.Want, e.Opened, closerOf(e.Want))
	case InternalInvariantViolation:
		return lead + "he parser reached a state that should be impossible. " +
			"Please report this together with the input."
	default:
		return e.Error()
	}
}

func closerOf(k Kind) string {
	if k == aconKinds.Array {
		return "]"
	}
	return "}"
}
