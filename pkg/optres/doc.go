// Package optres holds the pieces shared by the option and result packages:
// the UnwrapError failure primitive and the fixed diagnostics used when a
// container is unwrapped on the wrong variant.
//
// Highlights:
// - UnwrapError: the value carried by every Unwrap/Expect panic
// - Raise: panic with an *UnwrapError
// - Recover: turn an UnwrapError panic back into a returned error
// - IsUnwrapError/AsUnwrapError: classify errors produced by Recover
//
// See package option for Option[T] and package result for Result[T, E].
package optres
