package content

import (
	"github.com/storelaunch/launchlist/config/router"
	"github.com/storelaunch/launchlist/domain/admin"
	"github.com/storelaunch/launchlist/internal/log"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
	"gorm.io/gorm"
)

func NewContentController(
	db *gorm.DB,
	logger *log.Logger,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"ContentController",
		"v1",
		"/content",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewContentRepository(db)
			service := NewContentService(logger, repository)

			auth := admin.RequireAuth(admin.NewTokenServiceFromEnv(), logger)

			rs.AddGetHandler(c, nil, "", getActiveContentHandler(service))
			rs.AddPostHandler(c, nil, "", createContentHandler(service), auth)
		},
	)
}

func getActiveContentHandler(service ContentService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		response, err := service.GetActiveContent(ctx.Request.Context())
		if err != nil {
			return router.ServiceErrorResult(err)
		}

		return router.OKResult(response, "Site content retrieved successfully")
	}
}

func createContentHandler(service ContentService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req CreateContentRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)
			return router.ValidationErrorResult("Invalid input.", apperrors.FormatValidationErrors(err, &req))
		}

		response, err := service.CreateContent(ctx.Request.Context(), &req)
		if err != nil {
			return router.ServiceErrorResult(err)
		}

		return router.CreatedResult(response, "Site content")
	}
}
