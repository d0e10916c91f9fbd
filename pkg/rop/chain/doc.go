// Package chain provides a fluent wrapper around Result[T, E]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// It composes functions like AndThen, Map, Lift, Tee, and Finally behind a
// convenient Chain[T, E] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or value
// - Then: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map/MapErr: transform the successful value or the failure
// - Ensure/OnFailure: run side effects without changing the result
// - Or/Finally: collapse the chain into a final value
package chain
