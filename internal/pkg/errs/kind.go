package errs

import "errors"

// Kind is the caller-facing classification of an error.
type Kind string

const (
	KindNotFound                Kind = "NOT_FOUND"
	KindInvalidStatusTransition Kind = "INVALID_STATUS_TRANSITION"
	KindUnknownTargetStatus     Kind = "UNKNOWN_TARGET_STATUS"
	KindValidationFailed        Kind = "VALIDATION_FAILED"
	KindStorageError            Kind = "STORAGE_ERROR"
)

// KindOf classifies err. Errors that carry none of the package sentinels are
// reported as KindStorageError, so raw driver failures never leak as their own kind.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidStatusTransition):
		return KindInvalidStatusTransition
	case errors.Is(err, ErrUnknownTargetStatus):
		return KindUnknownTargetStatus
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidationFailed
	default:
		return KindStorageError
	}
}
