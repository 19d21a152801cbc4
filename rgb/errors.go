package rgb

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures of a Client.
type ErrorKind uint8

const (
	// KindGeneric covers the business rejections: invalid input, insufficient
	// funds, unknown asset, and so on.
	KindGeneric ErrorKind = iota
	// KindOnline is a connectivity or backend-internal failure.
	KindOnline
	// KindInvoice is a failure during invoice generation.
	KindInvoice
)

func (k ErrorKind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindOnline:
		return "online"
	case KindInvoice:
		return "invoice"
	default:
		return "unknown"
	}
}

// Error is the error returned by Client implementations.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindOnline:
		return fmt.Sprintf("online error: %s", e.Err)
	case KindInvoice:
		return fmt.Sprintf("invoice error: %s", e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsInternal reports whether the cause of the error must be kept away from
// the API callers.
func (e *Error) IsInternal() bool {
	return e.Kind == KindOnline || e.Kind == KindInvoice
}

func NewError(err error) *Error {
	return &Error{Kind: KindGeneric, Err: err}
}

func NewOnlineError(err error) *Error {
	return &Error{Kind: KindOnline, Err: err}
}

func NewInvoiceError(err error) *Error {
	return &Error{Kind: KindInvoice, Err: err}
}

// KindOf returns the kind of err, and false if err isn't an *Error.
func KindOf(err error) (ErrorKind, bool) {
	var rgbErr *Error
	if errors.As(err, &rgbErr) {
		return rgbErr.Kind, true
	}
	return 0, false
}
