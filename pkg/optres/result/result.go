package result

import (
	"fmt"

	"github.com/ib-77/optres/pkg/optres"
	"github.com/ib-77/optres/pkg/optres/option"
)

// Result holds either a success value of type T or a failure value of type E.
// The zero value is a Failure carrying the zero E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value: v,
		ok:    true,
	}
}

func Failure[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		err: e,
		ok:  false,
	}
}

// FromPair converts Go's (value, error) return convention into a Result.
// A nil err yields Success(v) whatever v is.
func FromPair[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Failure[T](err)
	}
	return Success[T, error](v)
}

// Try calls f and wraps its (value, error) pair.
func Try[T any](f func() (T, error)) Result[T, error] {
	v, err := f()
	return FromPair(v, err)
}

// ToPair is the inverse of FromPair.
func ToPair[T any](r Result[T, error]) (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	return zero, r.err
}

// OkOr maps Present(v) to Success(v) and Absent to Failure(e).
func OkOr[T, E any](o option.Option[T], e E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Success[T, E](v)
	}
	return Failure[T](e)
}

func OkOrElse[T, E any](o option.Option[T], f func() E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Success[T, E](v)
	}
	return Failure[T](f())
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool {
	return !r.ok && pred(r.err)
}

// ContainsFunc reports whether r is a Success and eq(value, x) holds.
func (r Result[T, E]) ContainsFunc(x T, eq func(a, b T) bool) bool {
	return r.ok && eq(r.value, x)
}

// ContainsErrFunc reports whether r is a Failure and eq(err, e) holds.
func (r Result[T, E]) ContainsErrFunc(e E, eq func(a, b E) bool) bool {
	return !r.ok && eq(r.err, e)
}

func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok
}

func (r Result[T, E]) GetErr() (E, bool) {
	return r.err, !r.ok
}

// Ok converts r into an Option holding the success value, if any.
func (r Result[T, E]) Ok() option.Option[T] {
	return option.FromPair(r.value, r.ok)
}

// Err converts r into an Option holding the failure value, if any.
func (r Result[T, E]) Err() option.Option[E] {
	return option.FromPair(r.err, !r.ok)
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if r.ok {
		return r.value
	}
	return f(r.err)
}

func (r Result[T, E]) UnwrapOrZero() T {
	return r.value
}

// Expect returns the success value or panics with an *optres.UnwrapError
// carrying msg.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		optres.Raise(msg)
	}
	return r.value
}

// Unwrap returns the success value or panics with optres.MsgResultUnwrap.
func (r Result[T, E]) Unwrap() T {
	return r.Expect(optres.MsgResultUnwrap)
}

// ExpectErr returns the failure value or panics with an *optres.UnwrapError
// carrying msg.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		optres.Raise(msg)
	}
	return r.err
}

// UnwrapErr returns the failure value or panics with optres.MsgResultUnwrapErr.
func (r Result[T, E]) UnwrapErr() E {
	return r.ExpectErr(optres.MsgResultUnwrapErr)
}

func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	if r.ok {
		f(r.value)
	}
	return r
}

func (r Result[T, E]) InspectErr(f func(E)) Result[T, E] {
	if !r.ok {
		f(r.err)
	}
	return r
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}

func Contains[T comparable, E any](r Result[T, E], x T) bool {
	return r.ok && r.value == x
}

func ContainsErr[T any, E comparable](r Result[T, E], e E) bool {
	return !r.ok && r.err == e
}

func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.ok {
		return Success[U, E](f(r.value))
	}
	return Failure[U](r.err)
}

func MapOr[T, U, E any](r Result[T, E], def U, f func(T) U) U {
	if r.ok {
		return f(r.value)
	}
	return def
}

func MapOrElse[T, U, E any](r Result[T, E], def func(E) U, f func(T) U) U {
	if r.ok {
		return f(r.value)
	}
	return def(r.err)
}

func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Success[T, F](r.value)
	}
	return Failure[T](f(r.err))
}

// And returns other when r is a Success, otherwise r's failure re-typed.
func And[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if r.ok {
		return other
	}
	return Failure[U](r.err)
}

// AndThen feeds the success value to f and returns its Result as is. The first
// failure in a chain of AndThen calls short-circuits the rest.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return f(r.value)
	}
	return Failure[U](r.err)
}

// Or returns r re-typed when it is a Success, otherwise other.
func Or[T, E, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	if r.ok {
		return Success[T, F](r.value)
	}
	return other
}

func OrElse[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Success[T, F](r.value)
	}
	return f(r.err)
}

func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if r.ok {
		return r.value
	}
	return Failure[T](r.err)
}
