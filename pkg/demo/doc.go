// Package demo walks through the Result toolkit in small sections: basic
// inspection, propagation with conversion, combinators, the custom error
// taxonomy and error erasure.
//
// The section functions (ParseOdd, Reciprocal, ReciprocalOf, ...) are plain
// and testable; Runner prints their outcomes, logs failures and keeps
// per-run metrics.
package demo
