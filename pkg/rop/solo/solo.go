package solo

import (
	"github.com/ib-77/fallible/pkg/rop"
)

func Succeed[T, E any](input T) rop.Result[T, E] {
	return rop.Success[T, E](input)
}

func Fail[T, E any](err E) rop.Result[T, E] {
	return rop.Fail[T](err)
}

func Validate[T, E any](input T, validate func(in T) (isValid bool, err E)) rop.Result[T, E] {
	return AndValidate(Succeed[T, E](input), validate)
}

func AndValidate[T, E any](input rop.Result[T, E],
	validate func(in T) (isValid bool, err E)) rop.Result[T, E] {

	if input.IsSuccess() {

		if isValid, err := validate(input.Result()); isValid {
			return input
		} else {
			return rop.Fail[T](err)
		}
	}
	return input
}

// AndThen runs a dependent fallible step. A failed input is returned as is
// (re-typed) and onSuccess is never called.
func AndThen[In, Out, E any](input rop.Result[In, E],
	onSuccess func(r In) rop.Result[Out, E]) rop.Result[Out, E] {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In, Out, E any](input rop.Result[In, E], onSuccess func(r In) Out) rop.Result[Out, E] {
	if input.IsSuccess() {
		return rop.Success[Out, E](onSuccess(input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

func MapErr[T, E, F any](input rop.Result[T, E], onFailure func(err E) F) rop.Result[T, F] {
	if input.IsFailure() {
		return rop.Fail[T](onFailure(input.Err()))
	}
	return rop.SuccessFrom[T, E, F](input)
}

// Try is the propagation shorthand: a failed input is converted once and
// returned, a successful one is handed to onSuccess.
func Try[In, Out, E1, E2 any](input rop.Result[In, E1],
	convert rop.Conversion[E1, E2],
	onSuccess func(r In) rop.Result[Out, E2]) rop.Result[Out, E2] {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return rop.Fail[Out](convert(input.Err()))
}

// Lift adapts a Go-style (value, error) step to a Result using convert for
// the error path:
//
//	n := solo.Lift[int](demoerr.FromParse)(strconv.Atoi(s))
func Lift[T, E any](convert rop.Conversion[error, E]) func(r T, err error) rop.Result[T, E] {
	return func(r T, err error) rop.Result[T, E] {
		if err != nil {
			return rop.Fail[T](convert(err))
		}
		return rop.Success[T, E](r)
	}
}

func Recover[T, E any](input rop.Result[T, E], onFailure func(err E) T) rop.Result[T, E] {
	if input.IsFailure() {
		return rop.Success[T, E](onFailure(input.Err()))
	}
	return input
}

func Tee[T, E any](input rop.Result[T, E], onSuccess func(r T)) rop.Result[T, E] {
	if input.IsSuccess() {
		onSuccess(input.Result())
	}
	return input
}

func TeeErr[T, E any](input rop.Result[T, E], onFailure func(err E)) rop.Result[T, E] {
	if input.IsFailure() {
		onFailure(input.Err())
	}
	return input
}

func DoubleTee[T, E any](input rop.Result[T, E],
	onSuccess func(r T),
	onFailure func(err E)) rop.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(input.Result())
	} else {
		onFailure(input.Err())
	}
	return input
}

// Finally collapses the result; both branches must be supplied.
func Finally[In, E, Out any](input rop.Result[In, E],
	onSuccess func(r In) Out,
	onFailure func(err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onFailure(input.Err())
}
