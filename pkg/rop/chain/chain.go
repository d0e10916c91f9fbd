package chain

import (
	"github.com/ib-77/fallible/pkg/rop"
	"github.com/ib-77/fallible/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[T, E any] struct {
	result rop.Result[T, E]
}

// Start creates a new chain from a rop.Result
func Start[T, E any](result rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](value T) *Chain[T, E] {
	return &Chain[T, E]{
		result: rop.Success[T, E](value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

// Then chains a function that returns rop.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onSuccess func(T) rop.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		result: solo.AndThen(c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error), converting the error
func ThenTry[T, U, E any](c *Chain[T, E], convert rop.Conversion[error, E],
	tryOnSuccess func(T) (U, error)) *Chain[U, E] {

	return &Chain[U, E]{
		result: solo.AndThen(c.result, func(in T) rop.Result[U, E] {
			return solo.Lift[U](convert)(tryOnSuccess(in))
		}),
	}
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onSuccess func(T) U) *Chain[U, E] {
	return &Chain[U, E]{
		result: solo.Map(c.result, onSuccess),
	}
}

// MapErr switches the chain to a new failure type
func MapErr[T, E, F any](c *Chain[T, E], onFailure func(E) F) *Chain[T, F] {
	return &Chain[T, F]{
		result: solo.MapErr(c.result, onFailure),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(T)) *Chain[T, E] {
	return &Chain[T, E]{
		result: solo.Tee(c.result, onSuccess),
	}
}

// OnFailure performs a side effect on failure without changing the result
func (c *Chain[T, E]) OnFailure(onFailure func(E)) *Chain[T, E] {
	return &Chain[T, E]{
		result: solo.TeeErr(c.result, onFailure),
	}
}

// Or returns the value or def when the chain failed
func (c *Chain[T, E]) Or(def T) T {
	return c.result.UnwrapOr(def)
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, E, U any](c *Chain[T, E], onSuccess func(T) U, onFailure func(E) U) U {
	return solo.Finally(c.result, onSuccess, onFailure)
}
