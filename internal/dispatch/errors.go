package dispatch

import (
	"errors"
	"fmt"
)

// Kind categorizes a dispatch failure.
type Kind string

const (
	// KindConfiguration means a required setting (sender number, caller id) is missing.
	KindConfiguration Kind = "configuration"
	// KindUnavailable means the provider capability was never initialized.
	KindUnavailable Kind = "unavailable"
	// KindInvalidArgument means a caller-supplied field is missing or has the wrong shape.
	KindInvalidArgument Kind = "invalid_argument"
	// KindProvider means the remote telephony call itself failed.
	KindProvider Kind = "provider"
)

// Failure is the failure side of a Result.
// Message is safe for logs; Err carries the underlying cause, if any.
type Failure struct {
	Kind    Kind
	Message string
	Err     error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Message, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func (f *Failure) Unwrap() error { return f.Err }

// Is matches any *Failure of the same Kind, so errors.Is(err, ErrUnavailable) works.
func (f *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	if !ok {
		return false
	}
	return f.Kind == t.Kind
}

var (
	ErrConfiguration   = &Failure{Kind: KindConfiguration, Message: "configuration error"}
	ErrUnavailable     = &Failure{Kind: KindUnavailable, Message: "capability unavailable"}
	ErrInvalidArgument = &Failure{Kind: KindInvalidArgument, Message: "invalid argument"}
	ErrProvider        = &Failure{Kind: KindProvider, Message: "provider error"}
)

// KindOf returns the Kind of err, or "" when err is not a dispatch failure.
func KindOf(err error) Kind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return ""
}
