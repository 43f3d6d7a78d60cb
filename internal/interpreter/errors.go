package interpreter

import (
	"fmt"
	"strings"
)

// Reason classifies why a command file was rejected. The numeric values are
// the process exit codes.
type Reason int

const (
	ReasonOpen Reason = iota + 1
	ReasonClose
	ReasonIO
	ReasonEmpty
	ReasonArity
	ReasonUnknownCommand
	ReasonTypeMismatch
	ReasonOutOfRange
)

func (r Reason) String() string {
	switch r {
	case ReasonOpen:
		return "cannot-open"
	case ReasonClose:
		return "cannot-close"
	case ReasonIO:
		return "io-error"
	case ReasonEmpty:
		return "empty-file"
	case ReasonArity:
		return "wrong-arity"
	case ReasonUnknownCommand:
		return "unknown-command"
	case ReasonTypeMismatch:
		return "type-mismatch"
	case ReasonOutOfRange:
		return "out-of-range"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// ExitCode is the process exit status reported for r.
func (r Reason) ExitCode() int {
	return int(r)
}

// ValidationError reports the first problem found in a command file.
type ValidationError struct {
	Reason  Reason
	Line    int    // 1-based; 0 when the problem is not tied to a line
	Text    string // offending line as read
	Message string
	Hint    string
	Err     error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if e.Hint != "" {
		b.WriteString("\n")
		b.WriteString(e.Hint)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(r Reason, format string, args ...any) *ValidationError {
	return &ValidationError{Reason: r, Message: fmt.Sprintf(format, args...)}
}
