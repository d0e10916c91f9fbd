// Package solo contains single-value, synchronous primitives that operate
// on Result[T, E]. These functions form the core building blocks for
// failure-aware code without branching at every step.
//
// Highlights:
// - Succeed/Fail: construct Result[T, E]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - AndThen: chain a dependent step, short-circuiting on failure
// - Map/MapErr: transform the success or the failure payload
// - Try/Lift: propagate a failure through an explicit conversion
// - Recover: replace a failure with a value
// - Tee/TeeErr/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
package solo
