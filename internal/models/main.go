package models

// ModelRegistry lists every model passed to gorm's AutoMigrate when the
// server is started with --auto-migrate. Production schemas are managed by
// the SQL files under migrations/ instead.
var ModelRegistry = []interface{}{
	&WaitlistEntry{},
	&SiteContent{},
	&SiteSetting{},
	&AdminUser{},
	&QueuedEmail{},
}
