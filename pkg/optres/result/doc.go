// Package result provides Result[T, E], the outcome of a fallible computation:
// either Success(v) or Failure(e). Failure payloads are any type E, not only
// error.
//
// Highlights:
// - Success/Failure: construct a Result
// - FromPair/Try/ToPair: bridge to and from Go's (T, error) returns
// - OkOr/OkOrElse: lift an option.Option into a Result
// - Ok/Err: project a Result onto an option.Option
// - Map/MapOr/MapOrElse/MapErr: transform one side
// - And/AndThen: continue on success, short-circuit on the first failure
// - Or/OrElse: recover from a failure
// - Unwrap/Expect/UnwrapErr/ExpectErr: extract a payload or panic
//
// Panics raised by the Unwrap family carry an *optres.UnwrapError.
package result
