package rop

import (
	"context"
	"errors"
	"fmt"
)

type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

func (e PanicError) Unwrap() error {
	return ToError(e.Value)
}

// Recover must be deferred directly. A panic is stored in err as a PanicError,
// joined with any error already present.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	perr := PanicError{Value: r}
	if *err == nil {
		*err = perr
		return
	}
	*err = errors.Join(*err, perr)
}

// ToError coerces an arbitrary failure reason into an error so callers can
// always rely on Error().
func ToError(reason any) error {
	switch r := reason.(type) {
	case nil:
		return errors.New("unknown error")
	case error:
		return r
	case string:
		return errors.New(r)
	case fmt.Stringer:
		return errors.New(r.String())
	default:
		return fmt.Errorf("%v", r)
	}
}

func GetErrors(err error) []error {
	if err == nil {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
