package rop

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or a failure payload
type WithError[T, E any] interface {
	ResultProvider[T]
	// Err returns the failure payload if operation failed
	Err() E
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

// Conversion turns a failure of one type into a failure of another.
// Propagating across error types always names one explicitly.
type Conversion[E1, E2 any] func(E1) E2

// Describer is implemented by failures that expose a readable description
// and an optional underlying cause.
type Describer interface {
	Describe() string
	Cause() error
}

var _ WithError[int, error] = Result[int, error]{}
