package assistant

import (
	"github.com/storelaunch/launchlist/config/router"
	"github.com/storelaunch/launchlist/domain/admin"
	"github.com/storelaunch/launchlist/domain/waitlist"
	"github.com/storelaunch/launchlist/internal/log"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
	"gorm.io/gorm"
)

func NewAssistantController(
	db *gorm.DB,
	logger *log.Logger,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"AssistantController",
		"v1",
		"/ai",
		func(rs *router.RouterService, c *router.RESTController) {
			waitlistRepo := waitlist.NewWaitlistRepository(db)
			service := NewAssistantService(logger, waitlistRepo, NewUpstreamClient())

			auth := admin.RequireAuth(admin.NewTokenServiceFromEnv(), logger)

			rs.AddPostHandler(c, nil, "/security", securityChatHandler(service), auth)
		},
	)
}

func securityChatHandler(service AssistantService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req SecurityChatRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)
			return router.ValidationErrorResult("Invalid input.", apperrors.FormatValidationErrors(err, &req))
		}

		response, err := service.SecurityChat(ctx.Request.Context(), &req)
		if err != nil {
			return router.ServiceErrorResult(err)
		}

		return router.OKResult(response, "Assistant reply")
	}
}
