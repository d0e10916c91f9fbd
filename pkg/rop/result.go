package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result holds either a success value of type T or a failure value of type E.
// Exactly one of them is meaningful, as reported by IsSuccess.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       E
	isSuccess bool
}

func Success[T, E any](r T) Result[T, E] {
	return Result[T, E]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromTuple lifts a Go (value, error) pair into a Result.
func FromTuple[T any](r T, err error) Result[T, error] {
	if err != nil {
		return Fail[T](err)
	}
	return Success[T, error](r)
}

// FailFrom re-types a failed result for a new success type, keeping its
// failure payload, id and creation time.
func FailFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// SuccessFrom re-types a successful result for a new failure type, keeping
// its value, id and creation time.
func SuccessFrom[T, E, F any](from Result[T, E]) Result[T, F] {
	return Result[T, F]{
		result:    from.result,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T, E]) Result() T {
	return r.result
}

func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// UnwrapOr returns the success value, or def when the result is a failure.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.isSuccess {
		return r.result
	}
	return def
}

// UnwrapOrElse computes the fallback from the failure payload.
func (r Result[T, E]) UnwrapOrElse(onFailure func(err E) T) T {
	if r.isSuccess {
		return r.result
	}
	return onFailure(r.err)
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}
