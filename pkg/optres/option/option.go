package option

import (
	"fmt"

	"github.com/ib-77/optres/pkg/optres"
)

// Option holds either a value of type T (Present) or nothing (Absent).
// The zero value is Absent.
type Option[T any] struct {
	value   T
	present bool
}

// Pair is the payload produced by Zip.
type Pair[T, U any] struct {
	First  T
	Second U
}

func Present[T any](v T) Option[T] {
	return Option[T]{
		value:   v,
		present: true,
	}
}

func Absent[T any]() Option[T] {
	return Option[T]{}
}

// FromPointer returns Absent for a nil pointer, otherwise Present of the pointee.
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

// FromPair adapts the comma-ok idiom: FromPair(m[k]) for a map lookup.
func FromPair[T any](v T, ok bool) Option[T] {
	if ok {
		return Present(v)
	}
	return Absent[T]()
}

func (o Option[T]) IsPresent() bool {
	return o.present
}

func (o Option[T]) IsAbsent() bool {
	return !o.present
}

// IsPresentAnd reports whether o is Present and its value satisfies pred.
func (o Option[T]) IsPresentAnd(pred func(T) bool) bool {
	return o.present && pred(o.value)
}

// ContainsFunc reports whether o is Present and eq(value, x) holds.
// Use Contains for comparable types.
func (o Option[T]) ContainsFunc(x T, eq func(a, b T) bool) bool {
	return o.present && eq(o.value, x)
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Expect returns the value or panics with an *optres.UnwrapError carrying msg.
func (o Option[T]) Expect(msg string) T {
	if !o.present {
		optres.Raise(msg)
	}
	return o.value
}

// Unwrap returns the value or panics with optres.MsgOptionUnwrap.
func (o Option[T]) Unwrap() T {
	return o.Expect(optres.MsgOptionUnwrap)
}

func (o Option[T]) UnwrapOr(def T) T {
	if o.present {
		return o.value
	}
	return def
}

func (o Option[T]) UnwrapOrElse(def func() T) T {
	if o.present {
		return o.value
	}
	return def()
}

func (o Option[T]) UnwrapOrZero() T {
	return o.value
}

// Pointer returns a pointer to a copy of the value, or nil when Absent.
func (o Option[T]) Pointer() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.present && pred(o.value) {
		return o
	}
	return Absent[T]()
}

func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.present {
		return o
	}
	return other
}

func (o Option[T]) OrElse(other func() Option[T]) Option[T] {
	if o.present {
		return o
	}
	return other()
}

// Xor returns whichever of o and other is Present when exactly one of them is.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.present && !other.present:
		return o
	case !o.present && other.present:
		return other
	default:
		return Absent[T]()
	}
}

// Inspect calls f with the value when Present and returns o unchanged.
func (o Option[T]) Inspect(f func(T)) Option[T] {
	if o.present {
		f(o.value)
	}
	return o
}

func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Present(%v)", o.value)
	}
	return "Absent"
}

// Contains reports whether o is Present and holds a value equal to x.
func Contains[T comparable](o Option[T], x T) bool {
	return o.present && o.value == x
}

func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.present {
		return Present(f(o.value))
	}
	return Absent[U]()
}

func MapOr[T, U any](o Option[T], def U, f func(T) U) U {
	if o.present {
		return f(o.value)
	}
	return def
}

func MapOrElse[T, U any](o Option[T], def func() U, f func(T) U) U {
	if o.present {
		return f(o.value)
	}
	return def()
}

// And returns other when o is Present, otherwise Absent.
func And[T, U any](o Option[T], other Option[U]) Option[U] {
	if o.present {
		return other
	}
	return Absent[U]()
}

func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.present {
		return f(o.value)
	}
	return Absent[U]()
}

// Zip pairs the values of o and other; the result is Present only when both are.
func Zip[T, U any](o Option[T], other Option[U]) Option[Pair[T, U]] {
	return ZipWith(o, other, func(t T, u U) Pair[T, U] {
		return Pair[T, U]{First: t, Second: u}
	})
}

// ZipWith combines the values of o and other with f. f is only called when
// both are Present.
func ZipWith[T, U, R any](o Option[T], other Option[U], f func(T, U) R) Option[R] {
	if o.present && other.present {
		return Present(f(o.value, other.value))
	}
	return Absent[R]()
}

func Unzip[T, U any](o Option[Pair[T, U]]) (Option[T], Option[U]) {
	if o.present {
		return Present(o.value.First), Present(o.value.Second)
	}
	return Absent[T](), Absent[U]()
}

func Flatten[T any](o Option[Option[T]]) Option[T] {
	if o.present {
		return o.value
	}
	return Absent[T]()
}
