package mailer

import (
	"context"
	"testing"

	"github.com/storelaunch/launchlist/internal/log"
	"github.com/storelaunch/launchlist/internal/models"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMailerService_EnqueueConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockMailQueueRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewMailerService(logger, mockRepo)

	t.Run("queues a pending confirmation message", func(t *testing.T) {
		mockRepo.EXPECT().
			Enqueue(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, email *models.QueuedEmail) (*models.QueuedEmail, error) {
				assert.Equal(t, "new@example.com", email.ToEmail)
				assert.Equal(t, models.EmailStatusPending, email.Status)
				assert.Equal(t, confirmationTemplateID, email.TemplateID)
				assert.Equal(t, "entry-1", email.WaitlistEntryID)
				assert.NotEmpty(t, email.FromEmail)
				assert.NotEmpty(t, email.HTMLContent)
				return email, nil
			})

		err := service.EnqueueConfirmation(context.Background(), "new@example.com", "entry-1")

		assert.NoError(t, err)
	})

	t.Run("rejects an empty recipient", func(t *testing.T) {
		err := service.EnqueueConfirmation(context.Background(), "", "entry-1")

		assert.Error(t, err)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		mockRepo.EXPECT().
			Enqueue(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewDatabaseError("insert failed", nil))

		err := service.EnqueueConfirmation(context.Background(), "new@example.com", "entry-1")

		assert.Error(t, err)
	})
}
