package demoerr

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ib-77/fallible/pkg/rop"
)

type Kind int

const (
	IoFailure Kind = iota
	ParseFailure
	RuleViolation
)

func (k Kind) String() string {
	switch k {
	case IoFailure:
		return "io"
	case ParseFailure:
		return "parse"
	case RuleViolation:
		return "rule"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is one failure of a known Kind. IoFailure and ParseFailure wrap the
// lower-level error that caused them; RuleViolation only carries a message.
type Error struct {
	kind    Kind
	cause   error
	message string
}

var (
	_ error         = (*Error)(nil)
	_ rop.Describer = (*Error)(nil)

	errMissingCause = errors.New("unknown cause")
)

func FromIO(err error) *Error {
	if err == nil {
		err = errMissingCause
	}
	return &Error{kind: IoFailure, cause: err}
}

func FromParse(err error) *Error {
	if err == nil {
		err = errMissingCause
	}
	return &Error{kind: ParseFailure, cause: err}
}

// Rule reports a violated business rule. The message is shown verbatim.
func Rule(message string) *Error {
	return &Error{kind: RuleViolation, message: message}
}

// Classify converts an arbitrary error into the taxonomy. An *Error anywhere
// in the chain is returned as is; *strconv.NumError becomes a parse failure
// and everything else is treated as I/O.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return FromParse(err)
	}

	return FromIO(err)
}

func (e *Error) Kind() Kind {
	return e.kind
}

func (e *Error) Describe() string {
	switch e.kind {
	case IoFailure:
		return fmt.Sprintf("IO error: %v", e.cause)
	case ParseFailure:
		return fmt.Sprintf("Parse error: %v", e.cause)
	default:
		return e.message
	}
}

// Cause is nil for rule violations.
func (e *Error) Cause() error {
	return e.cause
}

func (e *Error) Error() string {
	return e.Describe()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// IsKind reports whether err carries an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var typed *Error
	return errors.As(err, &typed) && typed.kind == k
}
