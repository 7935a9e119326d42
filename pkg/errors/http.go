package errors

import (
	"errors"
)

func HTTPStatusCode(err error) int {
	if err == nil {
		return StatusInternalServerError
	}

	switch GetErrorType(err) {
	case ErrorTypeNotFound:
		return StatusNotFound
	case ErrorTypeValidation:
		return StatusUnprocessableEntity
	case ErrorTypeInvalidRequest:
		return StatusBadRequest
	case ErrorTypeConflict, ErrorTypeEmailUsed:
		return StatusConflict
	case ErrorTypeUnauthorized, ErrorTypeInvalidCredentials:
		return StatusUnauthorized
	case ErrorTypeForbidden:
		return StatusForbidden
	case ErrorTypeTooManyRequests, ErrorTypeRateLimitExceeded:
		return StatusTooManyRequests
	case ErrorTypeRequestTimeout:
		return StatusRequestTimeout
	case ErrorTypeMethodNotAllowed:
		return StatusMethodNotAllowed
	case ErrorTypeUpstreamError:
		return StatusBadGateway
	case ErrorTypeUpstreamUnavailable:
		return StatusServiceUnavailable
	default:
		return StatusInternalServerError
	}
}

// WireCode maps an error to the stable code surfaced in the response
// envelope. Unknown errors never leak internals.
func WireCode(err error) string {
	if err == nil {
		return ErrorTypeInternalServerError
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeDatabaseError, ErrorTypeUnknown:
			return ErrorTypeInternalServerError
		default:
			return appErr.Type
		}
	}

	return ErrorTypeInternalServerError
}

func GetHumanReadableMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeDatabaseError, ErrorTypeUnknown:
			// Avoid leaking internal error strings.
			return "An unexpected error occurred"
		default:
			return appErr.Message
		}
	}

	return "An unexpected error occurred"
}
