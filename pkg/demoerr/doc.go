// Package demoerr defines a small closed taxonomy of failure causes used by
// the demo programs: I/O failures, numeric parse failures and rule
// violations.
//
// FromIO and FromParse are the conversions used when a low-level error is
// propagated out of a function returning rop.Result[_, *demoerr.Error]:
//
//	n := solo.Lift[int](demoerr.FromParse)(strconv.Atoi(s))
//
// Error satisfies rop.Describer and unwraps to its cause, so errors.Is and
// errors.As see through it.
package demoerr
