package llm

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies model call failures so callers can decide between
// retrying, skipping a tick, or surfacing the error.
type Kind string

const (
	// KindTimeout means the call exceeded its deadline.
	KindTimeout Kind = "timeout"
	// KindTransport covers network and provider API failures.
	KindTransport Kind = "transport"
	// KindValidation means the model answered but the output did not
	// satisfy the requested schema.
	KindValidation Kind = "validation"
)

// Error is a classified model call failure.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("llm %s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// classify wraps err with the kind inferred from its cause.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &Error{Kind: KindTimeout, Err: err}
	}
	return &Error{Kind: KindTransport, Err: err}
}

// validationError wraps err as a schema validation failure.
func validationError(err error) error {
	return &Error{Kind: KindValidation, Err: err}
}

// KindOf extracts the failure kind, or "" for non-llm errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
