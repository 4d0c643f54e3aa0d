package errs

import (
	"errors"
)

// Kind is the closed set of error classes raised by the application core.
// Every error crossing a component boundary carries exactly one Kind; the
// transport layer maps kinds to response statuses.
type Kind string

const (
	KindValidation          Kind = "VALIDATION"
	KindAuthRequired        Kind = "AUTHENTICATION_REQUIRED"
	KindForbidden           Kind = "FORBIDDEN"
	KindNotMember           Kind = "NOT_MEMBER"
	KindNotFound            Kind = "NOT_FOUND"
	KindConflict            Kind = "CONFLICT"
	KindNoSubscription      Kind = "NO_SUBSCRIPTION"
	KindSubscriptionExpired Kind = "SUBSCRIPTION_EXPIRED"
	KindInternal            Kind = "INTERNAL"
)

type KindError struct {
	kind Kind
	msg  string
	err  error
}

func (e *KindError) Error() string {
	if e.err != nil {
		return string(e.kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.kind) + ": " + e.msg
}

func (e *KindError) Unwrap() error { return e.err }

func (e *KindError) Kind() Kind { return e.kind }

// Message is the human-readable part, safe to surface to callers.
func (e *KindError) Message() string { return e.msg }

// E builds a new tagged error.
func E(kind Kind, msg string) error {
	return &KindError{kind: kind, msg: msg}
}

// WrapKind tags a low-level error with a Kind while preserving the cause.
func WrapKind(err error, kind Kind, msg string) error {
	if err == nil {
		return &KindError{kind: kind, msg: msg}
	}
	return &KindError{kind: kind, msg: msg, err: Wrap(err, msg)}
}

// KindOf extracts the Kind from an error chain. Untagged errors are
// classified as internal.
func KindOf(err error) Kind {
	var ke *KindError
	if errors.As(err, &ke) {
		return ke.kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// MessageOf returns the surfaceable message of a tagged error, or a generic
// fallback for untagged ones.
func MessageOf(err error) string {
	var ke *KindError
	if errors.As(err, &ke) {
		return ke.msg
	}
	return "internal error"
}
