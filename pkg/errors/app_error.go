package custom_error

import (
	"errors"
	"net/http"
)

// Kind is the stable, machine-readable error discriminator exposed on the
// wire as error_kind. Clients branch on kinds, not on message strings.
type Kind string

const (
	KindValidation          Kind = "validation_error"
	KindUnsupportedQuantity Kind = "unsupported_quantity"
	KindNoSuchHardware      Kind = "no_such_hardware"
	KindNotFound            Kind = "not_found"
	KindAuthorization       Kind = "authorization_error"
	KindConflict            Kind = "conflict"
	KindInvalidIssue        Kind = "invalid_issue"
	KindNotAllowed          Kind = "not_allowed"
	KindInternal            Kind = "internal"
)

type AppError struct {
	Kind    Kind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewValidation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewUnsupportedQuantity(message string) *AppError {
	return &AppError{Kind: KindUnsupportedQuantity, Message: message}
}

func NewNoSuchHardware(message string) *AppError {
	return &AppError{Kind: KindNoSuchHardware, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewAuthorization(message string) *AppError {
	return &AppError{Kind: KindAuthorization, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NewInvalidIssue(message string) *AppError {
	return &AppError{Kind: KindInvalidIssue, Message: message}
}

func NewNotAllowed(message string) *AppError {
	return &AppError{Kind: KindNotAllowed, Message: message}
}

// KindOf extracts the kind from any error; wrapped errors and plain errors
// degrade to KindInternal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	var uniqueErr *UniqueViolationError
	if errors.As(err, &uniqueErr) {
		return KindConflict
	}
	return KindInternal
}

// HTTPStatus maps an error to the status code used across the API. The
// system's convention reports conflicts and business-rule rejections as 400.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindUnsupportedQuantity, KindInvalidIssue, KindConflict:
		return http.StatusBadRequest
	case KindNoSuchHardware, KindNotFound:
		return http.StatusNotFound
	case KindAuthorization, KindNotAllowed:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
