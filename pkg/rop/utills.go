package rop

import (
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// Erase hides the concrete failure type behind the error interface.
// A failure holding a nil pointer stays a failure with a placeholder error.
func Erase[T any, E error](r Result[T, E]) Result[T, error] {
	if r.IsSuccess() {
		return SuccessFrom[T, E, error](r)
	}

	var err error = r.Err()
	if IsNil(err) {
		err = errErasedNil
	}

	return Result[T, error]{
		err:       err,
		isSuccess: false,
		createdAt: r.createdAt,
		id:        r.id,
	}
}

var errErasedNil = errors.New("rop: nil failure")

// CauseChain returns err followed by every error reachable through Unwrap,
// depth first. Joined errors contribute each of their branches.
func CauseChain(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	chain := []error{err}
	if _, ok := err.(interface{ Unwrap() []error }); ok {
		for _, inner := range GetErrors(err) {
			chain = append(chain, CauseChain(inner)...)
		}
		return chain
	}

	if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, CauseChain(e.Unwrap())...)
	}
	return chain
}

// Describe renders err through Describer when available, falling back to Error.
func Describe(err error) string {
	if IsNil(err) {
		return ""
	}

	if d, ok := err.(Describer); ok {
		return d.Describe()
	}
	return err.Error()
}
