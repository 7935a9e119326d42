package domain

import (
	"github.com/storelaunch/launchlist/config"
	"github.com/storelaunch/launchlist/domain/admin"
	"github.com/storelaunch/launchlist/domain/assistant"
	"github.com/storelaunch/launchlist/domain/content"
	"github.com/storelaunch/launchlist/domain/mailer"
	"github.com/storelaunch/launchlist/domain/monitoring"
	"github.com/storelaunch/launchlist/domain/settings"
	"github.com/storelaunch/launchlist/domain/waitlist"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	confirmationMailer := mailer.NewMailerService(appConfig.Logger, mailer.NewMailQueueRepository(appConfig.DB))

	appConfig.RouterService.MountController(monitoring.NewMonitoringController(appConfig.DB, appConfig.Logger, appConfig.Cache))
	appConfig.RouterService.MountController(waitlist.NewWaitlistServiceFactory(appConfig.DB, appConfig.Logger, confirmationMailer).CreateController())
	appConfig.RouterService.MountController(admin.NewAdminController(appConfig.DB, appConfig.Logger))
	appConfig.RouterService.MountController(content.NewContentController(appConfig.DB, appConfig.Logger))
	appConfig.RouterService.MountController(settings.NewSettingsController(appConfig.DB, appConfig.Logger))
	appConfig.RouterService.MountController(assistant.NewAssistantController(appConfig.DB, appConfig.Logger))
}
