// Package option provides Option[T], a value that is either Present(v) or
// Absent. It replaces nil checks and "found" flags with explicit, composable
// handling.
//
// The discriminant is an explicit tag, so any T value (nil pointers, zero
// values, empty strings) can be stored and stays Present.
//
// Methods cover operations that keep T; operations that produce a different
// payload type are package functions taking the Option first:
// - Present/Absent/FromPointer/FromPair: construct an Option
// - Unwrap/Expect/UnwrapOr/UnwrapOrElse/Get: extract the value
// - Filter/Or/OrElse/Xor/Inspect: derive an Option[T] from an Option[T]
// - Map/MapOr/MapOrElse/And/AndThen: move to another payload type
// - Zip/ZipWith/Unzip/Flatten: combine and split Options
//
// Unwrap and Expect panic with *optres.UnwrapError on Absent; see
// optres.Recover for converting that into an error.
package option
