package main

// Command: seed.go
//
// Description:
// Inserts the default site content and settings a fresh deployment needs
// before the landing page can render. Existing keys are left untouched, so
// the command is safe to re-run.
//
// Usage:
//   make seed

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/storelaunch/launchlist/config"
	"github.com/storelaunch/launchlist/internal/log"
	"github.com/storelaunch/launchlist/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var defaultContent = []models.SiteContent{
	{Key: "hero_title", Value: "Launch your store before everyone else", Category: "landing"},
	{Key: "hero_subtitle", Value: "Join the waitlist and be first in line.", Category: "landing"},
	{Key: "confirmation_message", Value: "You're on the list! Check your inbox.", Category: "landing"},
	{Key: "footer_note", Value: "We'll only email you about your spot.", Category: "landing"},
}

var defaultSettings = []models.SiteSetting{
	{Key: "waitlist_open", Value: "true", Type: models.ValueTypeBoolean, Category: "waitlist"},
	{Key: "max_signups", Value: "10000", Type: models.ValueTypeNumber, Category: "waitlist"},
	{Key: "tutorial_book_enabled", Value: "true", Type: models.ValueTypeBoolean, Category: "features"},
	{Key: "social_links", Value: "{}", Type: models.ValueTypeJSON, Category: "landing"},
}

func Seed(logger *log.Logger) {
	dbCfg := &config.DBConfig{}
	db, err := config.NewDatabase(logger, dbCfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	titler := cases.Title(language.English)

	for _, record := range defaultContent {
		record.Type = models.ValueTypeText
		record.IsActive = true
		record.Description = describeKey(titler, record.Key)

		if err := insertIfMissing(ctx, db, &record); err != nil {
			logger.Error("Failed to seed content", "key", record.Key, "error", err.Error())
			os.Exit(1)
		}
	}

	for _, record := range defaultSettings {
		record.Description = describeKey(titler, record.Key)

		if err := insertIfMissing(ctx, db, &record); err != nil {
			logger.Error("Failed to seed setting", "key", record.Key, "error", err.Error())
			os.Exit(1)
		}
	}

	logger.Info("Seed completed", "content", len(defaultContent), "settings", len(defaultSettings))
}

// describeKey turns a snake_case key into a human-readable label.
func describeKey(titler cases.Caser, key string) string {
	return titler.String(strings.ReplaceAll(key, "_", " "))
}

func insertIfMissing(ctx context.Context, db *gorm.DB, record interface{}) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).
		Create(record).Error
}
