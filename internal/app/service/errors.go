package service

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Kind classifies service failures so the transport can pick a status.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindPrecondition
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindPrecondition:
		return "precondition"
	case KindPersistence:
		return "persistence"
	}
	return "unknown"
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func validationf(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func notFoundf(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func preconditionf(format string, args ...interface{}) error {
	return &Error{Kind: KindPrecondition, Message: fmt.Sprintf(format, args...)}
}

// persistence lifts a store error into the taxonomy. Errors that already
// carry a Kind pass through untouched.
func persistence(err error, msg string) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Kind: KindPersistence, Message: msg, Err: err}
}

// KindOf reports the kind of err; errors from outside the service count as
// persistence failures.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindPersistence
}

// num prints a quantity without exponent or trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
