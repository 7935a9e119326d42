package waitlist

import (
	"context"
	"testing"

	"github.com/storelaunch/launchlist/internal/log"
	"github.com/storelaunch/launchlist/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newFactoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.WaitlistEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func TestWaitlistServiceFactory(t *testing.T) {
	db := newFactoryTestDB(t)
	logger := log.NewLoggerWithJSONOutput()
	mailer := &stubMailer{}

	factory := NewWaitlistServiceFactory(db, logger, mailer)

	t.Run("CreateService returns a usable service", func(t *testing.T) {
		service := factory.CreateService()
		assert.NotNil(t, service)

		response, created, err := service.CaptureEmail(context.Background(),
			&CaptureEmailRequest{Email: "factory@example.com"}, CaptureMeta{})

		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, models.WaitlistStatusPending, response.Status)
		assert.Equal(t, 1, mailer.calls)
	})

	t.Run("CreateController returns a mountable controller", func(t *testing.T) {
		assert.NotNil(t, factory.CreateController())
	})
}
