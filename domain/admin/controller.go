package admin

import (
	"fmt"
	"time"

	"github.com/storelaunch/launchlist/config/router"
	"github.com/storelaunch/launchlist/domain/mailer"
	"github.com/storelaunch/launchlist/domain/waitlist"
	"github.com/storelaunch/launchlist/internal/log"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
	"github.com/storelaunch/launchlist/pkg/ratelimit"
	"gorm.io/gorm"
)

func NewAdminController(
	db *gorm.DB,
	logger *log.Logger,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"AdminController",
		"v1",
		"/admin",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewAdminRepository(db)
			waitlistRepo := waitlist.NewWaitlistRepository(db)
			mailQueue := mailer.NewMailQueueRepository(db)
			tokens := NewTokenServiceFromEnv()
			service := NewAdminService(logger, repository, waitlistRepo, mailQueue, tokens)

			loginLimiter := createLoginRateLimiter(rs)
			auth := RequireAuth(tokens, logger)

			rs.AddPostHandler(c, loginLimiter, "/login", loginHandler(service))
			rs.AddGetHandler(c, nil, "/stats", statsHandler(service), auth)
			rs.AddGetHandler(c, nil, "/export", exportHandler(service), auth)
		},
	)
}

func createLoginRateLimiter(routerService *router.RouterService) ratelimit.RateLimiter {
	// Tighter than the public capture endpoint to slow down guessing.
	const loginRequestsPerMinute = 10

	config := &ratelimit.RateLimitConfig{
		Requests: loginRequestsPerMinute,
		Window:   time.Minute,
		Redis:    nil,
		Logger:   nil,
	}

	return ratelimit.NewRateLimiter(config)
}

func loginHandler(service AdminService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req LoginRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)
			return router.ValidationErrorResult("Invalid input.", apperrors.FormatValidationErrors(err, &req))
		}

		response, err := service.Login(ctx.Request.Context(), &req)
		if err != nil {
			return router.ServiceErrorResult(err)
		}

		return router.OKResult(response, "Login successful")
	}
}

func statsHandler(service AdminService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		response, err := service.GetStats(ctx.Request.Context())
		if err != nil {
			return router.ServiceErrorResult(err)
		}

		return router.OKResult(response, "Stats retrieved successfully")
	}
}

func exportHandler(service AdminService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		body, err := service.ExportCSV(ctx.Request.Context())
		if err != nil {
			return router.ServiceErrorResult(err)
		}

		filename := fmt.Sprintf("waitlist-export-%s.csv", time.Now().Format("2006-01-02"))
		return router.AttachmentResult("text/csv", filename, body)
	}
}
