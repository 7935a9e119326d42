package waitlist

import (
	"time"

	"github.com/storelaunch/launchlist/config/router"
	"github.com/storelaunch/launchlist/internal/log"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
	"github.com/storelaunch/launchlist/pkg/ratelimit"
	"gorm.io/gorm"
)

func NewWaitlistController(
	db *gorm.DB,
	logger *log.Logger,
	mailer ConfirmationMailer,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"WaitlistController",
		"v1",
		"/waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewWaitlistRepository(db)
			service := NewWaitlistService(logger, repository, mailer)

			captureLimiter := createEmailCaptureRateLimiter(rs)

			rs.AddPostHandler(c, captureLimiter, "/email-capture", captureEmailHandler(service))
			rs.AddPutHandler(c, nil, "/:id", updateDetailsHandler(service))
			rs.AddGetHandler(c, nil, "", getAllWaitlistEntriesHandler(service))
			rs.AddGetHandler(c, nil, "/:id", getWaitlistEntryHandler(service))
			rs.AddDeleteHandler(c, nil, "/:id", deleteWaitlistEntryHandler(service))
			rs.AddPostHandler(c, nil, "/bulk-delete", bulkDeleteWaitlistEntriesHandler(service))
		},
	)
}

func createEmailCaptureRateLimiter(routerService *router.RouterService) ratelimit.RateLimiter {
	const emailCaptureRequestsPerMinute = 30

	config := &ratelimit.RateLimitConfig{
		Requests: emailCaptureRequestsPerMinute,
		Window:   time.Minute,
		Redis:    nil, // in-memory is enough for a single instance
		Logger:   nil,
	}

	return ratelimit.NewRateLimiter(config)
}

func captureEmailHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req CaptureEmailRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)
			return router.ValidationErrorResult("Invalid input.", apperrors.FormatValidationErrors(err, &req))
		}

		meta := CaptureMeta{
			IPAddress: ctx.ClientIP(),
			UserAgent: ctx.Request.UserAgent(),
			Referrer:  ctx.Request.Referer(),
		}

		response, created, err := service.CaptureEmail(ctx.Request.Context(), &req, meta)
		if err != nil {
			return router.ServiceErrorResult(err)
		}

		if created {
			return router.CreatedResult(response, "Waitlist entry")
		}

		return router.OKResult(response, "Email already on the waitlist")
	}
}

func updateDetailsHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		id, errResult := router.ParseUUIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		var req UpdateDetailsRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)
			return router.ValidationErrorResult("Invalid input.", apperrors.FormatValidationErrors(err, &req))
		}

		response, err := service.UpdateDetails(ctx.Request.Context(), id, &req)
		if err != nil {
			return router.ServiceErrorResult(err)
		}

		return router.OKResult(response, "Waitlist entry updated successfully")
	}
}

func getWaitlistEntryHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseUUIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		response, err := service.FindEntryByID(ctx.Request.Context(), id)
		if err != nil {
			return router.ServiceErrorResult(err)
		}

		return router.OKResult(response, "Waitlist entry retrieved successfully")
	}
}

func getAllWaitlistEntriesHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		response, err := service.GetAllEntries(ctx.Request.Context())
		if err != nil {
			return router.ServiceErrorResult(err)
		}

		return router.OKResult(response, "Waitlist entries retrieved successfully")
	}
}

func deleteWaitlistEntryHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseUUIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		if err := service.DeleteEntry(ctx.Request.Context(), id); err != nil {
			return router.ServiceErrorResult(err)
		}

		return router.OKResult(nil, "Waitlist entry deleted successfully")
	}
}

func bulkDeleteWaitlistEntriesHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req BulkDeleteRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)
			return router.ValidationErrorResult("Invalid input.", apperrors.FormatValidationErrors(err, &req))
		}

		deleted, err := service.DeleteEntries(ctx.Request.Context(), &req)
		if err != nil {
			return router.ServiceErrorResult(err)
		}

		return router.OKResult(map[string]int{"deleted": deleted}, "Waitlist entries deleted successfully")
	}
}
