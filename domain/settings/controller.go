package settings

import (
	"github.com/storelaunch/launchlist/config/router"
	"github.com/storelaunch/launchlist/domain/admin"
	"github.com/storelaunch/launchlist/internal/log"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
	"gorm.io/gorm"
)

func NewSettingsController(
	db *gorm.DB,
	logger *log.Logger,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"SettingsController",
		"v1",
		"/settings",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewSettingsRepository(db)
			service := NewSettingsService(logger, repository)

			auth := admin.RequireAuth(admin.NewTokenServiceFromEnv(), logger)

			rs.AddGetHandler(c, nil, "", getPublicSettingsHandler(service))
			rs.AddPutHandler(c, nil, "", updateSettingsHandler(service), auth)
		},
	)
}

func getPublicSettingsHandler(service SettingsService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		response, err := service.GetPublicSettings(ctx.Request.Context())
		if err != nil {
			return router.ServiceErrorResult(err)
		}

		return router.OKResult(response, "Site settings retrieved successfully")
	}
}

func updateSettingsHandler(service SettingsService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req UpdateSettingsRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)
			return router.ValidationErrorResult("Invalid input.", apperrors.FormatValidationErrors(err, &req))
		}

		updatedBy := ctx.GetString("admin_username")

		response, err := service.UpdateSettings(ctx.Request.Context(), &req, updatedBy)
		if err != nil {
			return router.ServiceErrorResult(err)
		}

		return router.OKResult(response, "Site settings updated successfully")
	}
}
