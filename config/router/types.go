package router

import (
	"github.com/gin-gonic/gin"
)

type RequestContext = gin.Context

type MiddlewareFunc = gin.HandlerFunc

// ServiceResult is the uniform handler return value. JSON responses use the
// envelope {success, data, message?} on 2xx and
// {success: false, error: {code, message, details?}} on errors. A result
// with an attachment set bypasses the JSON envelope entirely.
type ServiceResult struct {
	StatusCode int
	Data       any
	Message    string
	ErrorCode  string
	Details    map[string]string

	attachment *Attachment
}

// Attachment is a non-JSON response body served as a download.
type Attachment struct {
	ContentType string
	Filename    string
	Body        []byte
}

type RateLimitResponse struct {
	Limit      int    `json:"limit"`
	Window     string `json:"window"`
	RetryAfter string `json:"retry_after"`
}

type HandlerFunction func(*RequestContext) *ServiceResult

type RESTController struct {
	name         string
	mountPoint   string
	version      string
	handlerCount int
	prepare      func(*RouterService, *RESTController)
}

func (result *ServiceResult) ToJSON() gin.H {
	if result.IsError() {
		errBody := gin.H{
			"code":    result.ErrorCode,
			"message": result.Message,
		}
		if len(result.Details) > 0 {
			errBody["details"] = result.Details
		}
		return gin.H{
			"success": false,
			"error":   errBody,
		}
	}

	body := gin.H{
		"success": true,
		"data":    result.Data,
	}
	if result.Message != "" {
		body["message"] = result.Message
	}
	return body
}

func (result *ServiceResult) IsSuccess() bool {
	return result.StatusCode >= 200 && result.StatusCode < 300
}

func (result *ServiceResult) IsError() bool {
	return result.StatusCode >= 400
}

func (result *ServiceResult) IsAttachment() bool {
	return result.attachment != nil
}
