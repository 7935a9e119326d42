package router

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/storelaunch/launchlist/internal/log"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
)

func GetLogger(ctx *RequestContext) *log.Logger {
	if logger := ctx.Request.Context().Value(log.LoggerKeyForContext); logger != nil {
		if l, ok := logger.(*log.Logger); ok {
			return l
		}
	}

	baseLogger := log.NewLoggerWithJSONOutput()
	return baseLogger.WithCorrelationID(ctx.Request.Context())
}

func OKResult(data any, message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusOK,
		Data:       data,
		Message:    message,
	}
}

func CreatedResult(data any, resourceName string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusCreated,
		Data:       data,
		Message:    resourceName + " created successfully",
	}
}

// AttachmentResult serves a raw body as a file download instead of the JSON
// envelope.
func AttachmentResult(contentType, filename string, body []byte) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusOK,
		attachment: &Attachment{
			ContentType: contentType,
			Filename:    filename,
			Body:        body,
		},
	}
}

func TooManyRequestsResult(data RateLimitResponse) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusTooManyRequests,
		ErrorCode:  apperrors.ErrorTypeRateLimitExceeded,
		Message:    "Too many requests",
		Details: map[string]string{
			"limit":       strconv.Itoa(data.Limit),
			"window":      data.Window,
			"retry_after": data.RetryAfter,
		},
	}
}

func BadRequestResult(message string, details map[string]string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusBadRequest,
		ErrorCode:  apperrors.ErrorTypeInvalidRequest,
		Message:    message,
		Details:    details,
	}
}

// ValidationErrorResult reports collected field errors with a 422 status.
func ValidationErrorResult(message string, details map[string]string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusUnprocessableEntity,
		ErrorCode:  apperrors.ErrorTypeValidation,
		Message:    message,
		Details:    details,
	}
}

func UnauthorizedResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusUnauthorized,
		ErrorCode:  apperrors.ErrorTypeUnauthorized,
		Message:    message,
	}
}

func NotFoundResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusNotFound,
		ErrorCode:  apperrors.ErrorTypeNotFound,
		Message:    message,
	}
}

func InternalServerErrorResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  apperrors.ErrorTypeInternalServerError,
		Message:    message,
	}
}

func ConflictResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusConflict,
		ErrorCode:  apperrors.ErrorTypeConflict,
		Message:    message,
	}
}

// ServiceErrorResult maps a service-layer error onto the response envelope,
// carrying its wire code, message, and any field details.
func ServiceErrorResult(err error) *ServiceResult {
	return &ServiceResult{
		StatusCode: apperrors.HTTPStatusCode(err),
		ErrorCode:  apperrors.WireCode(err),
		Message:    apperrors.GetHumanReadableMessage(err),
		Details:    apperrors.GetErrorDetails(err),
	}
}

func ErrorResult(statusCode int, code, message string, details map[string]string) *ServiceResult {
	return &ServiceResult{
		StatusCode: statusCode,
		ErrorCode:  code,
		Message:    message,
		Details:    details,
	}
}

// ParseUUIDParam validates a path parameter as a UUID. Malformed ids are
// rejected before they reach the repository.
func ParseUUIDParam(ctx *RequestContext, paramName string) (string, *ServiceResult) {
	logger := GetLogger(ctx)

	idParam := ctx.Param(paramName)
	if _, err := uuid.Parse(idParam); err != nil {
		logger.Error("Invalid ID parameter", "param", paramName, "value", idParam, "error", err)
		return "", ValidationErrorResult("Invalid input.", map[string]string{
			paramName: "must be a valid UUID",
		})
	}

	return idParam, nil
}
