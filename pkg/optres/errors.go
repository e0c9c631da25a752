package optres

import (
	"errors"
)

const (
	MsgOptionUnwrap    = "called `Option.Unwrap()` on an `Absent` value"
	MsgResultUnwrap    = "called `Result.Unwrap()` on a `Failure` value"
	MsgResultUnwrapErr = "called `Result.UnwrapErr()` on a `Success` value"
)

// UnwrapError is the panic value raised when a container is unwrapped on the
// variant that holds no such payload. Message is either one of the fixed Msg*
// constants or the text passed to Expect/ExpectErr.
type UnwrapError struct {
	Message string
}

func NewUnwrapError(msg string) *UnwrapError {
	return &UnwrapError{Message: msg}
}

func (e *UnwrapError) Error() string {
	return e.Message
}

// Raise panics with an *UnwrapError carrying msg.
func Raise(msg string) {
	panic(NewUnwrapError(msg))
}

// Recover is meant to be deferred by functions that unwrap containers and want
// a returned error instead of a panic:
//
//	func load() (cfg Config, err error) {
//		defer optres.Recover(&err)
//		...
//	}
//
// Only *UnwrapError panics are recovered; anything else is re-raised.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}

	e, ok := r.(*UnwrapError)
	if !ok {
		panic(r)
	}

	if errp != nil {
		*errp = e
	}
}

// Catch runs fn and reports the *UnwrapError it raised, if any.
func Catch(fn func()) (err error) {
	defer Recover(&err)
	fn()
	return nil
}

func IsUnwrapError(err error) bool {
	var e *UnwrapError
	return errors.As(err, &e)
}

// AsUnwrapError returns the UnwrapError wrapped somewhere in err's chain.
func AsUnwrapError(err error) (*UnwrapError, bool) {
	var e *UnwrapError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
