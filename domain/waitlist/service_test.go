package waitlist

import (
	"context"
	"testing"

	"github.com/storelaunch/launchlist/internal/log"
	"github.com/storelaunch/launchlist/internal/models"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestWaitlistService_CaptureEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockWaitlistRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewWaitlistService(logger, mockRepo, nil)

	meta := CaptureMeta{IPAddress: "203.0.113.7", UserAgent: "test-agent"}

	t.Run("creates a new pending entry", func(t *testing.T) {
		req := &CaptureEmailRequest{Email: "test@example.com"}

		mockRepo.EXPECT().
			FindEntryByEmail(gomock.Any(), "test@example.com").
			Return(nil, apperrors.NewNotFoundError("Waitlist entry not found.", nil))

		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
				assert.Equal(t, "test@example.com", entry.Email)
				assert.Equal(t, models.WaitlistStatusPending, entry.Status)
				assert.Equal(t, "203.0.113.7", entry.IPAddress)
				entry.ID = "3e7f3c16-3c94-4a3a-8e5a-1a3f8e2d9b01"
				return entry, nil
			})

		result, created, err := service.CaptureEmail(context.Background(), req, meta)

		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, models.WaitlistStatusPending, result.Status)
	})

	t.Run("normalizes the email before lookup", func(t *testing.T) {
		req := &CaptureEmailRequest{Email: "  Test@Example.COM "}

		mockRepo.EXPECT().
			FindEntryByEmail(gomock.Any(), "test@example.com").
			Return(nil, apperrors.NewNotFoundError("Waitlist entry not found.", nil))

		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
				assert.Equal(t, "test@example.com", entry.Email)
				return entry, nil
			})

		_, created, err := service.CaptureEmail(context.Background(), req, meta)

		assert.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("returns the existing pending entry without creating", func(t *testing.T) {
		req := &CaptureEmailRequest{Email: "pending@example.com"}

		mockRepo.EXPECT().
			FindEntryByEmail(gomock.Any(), "pending@example.com").
			Return(&models.WaitlistEntry{
				ID:     "11111111-1111-1111-1111-111111111111",
				Email:  "pending@example.com",
				Status: models.WaitlistStatusPending,
			}, nil)

		result, created, err := service.CaptureEmail(context.Background(), req, meta)

		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "11111111-1111-1111-1111-111111111111", result.ID)
	})

	t.Run("rejects a completed email", func(t *testing.T) {
		req := &CaptureEmailRequest{Email: "done@example.com"}

		mockRepo.EXPECT().
			FindEntryByEmail(gomock.Any(), "done@example.com").
			Return(&models.WaitlistEntry{
				Email:  "done@example.com",
				Status: models.WaitlistStatusCompleted,
			}, nil)

		result, created, err := service.CaptureEmail(context.Background(), req, meta)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.False(t, created)
		assert.Equal(t, apperrors.ErrorTypeEmailUsed, apperrors.GetErrorType(err))
	})

	t.Run("resolves an insert race against the winning row", func(t *testing.T) {
		req := &CaptureEmailRequest{Email: "race@example.com"}

		mockRepo.EXPECT().
			FindEntryByEmail(gomock.Any(), "race@example.com").
			Return(nil, apperrors.NewNotFoundError("Waitlist entry not found.", nil))

		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewConflictError("an entry with this email already exists", nil))

		mockRepo.EXPECT().
			FindEntryByEmail(gomock.Any(), "race@example.com").
			Return(&models.WaitlistEntry{
				ID:     "22222222-2222-2222-2222-222222222222",
				Email:  "race@example.com",
				Status: models.WaitlistStatusPending,
			}, nil)

		result, created, err := service.CaptureEmail(context.Background(), req, meta)

		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "22222222-2222-2222-2222-222222222222", result.ID)
	})

	t.Run("capture proceeds when the mailer fails", func(t *testing.T) {
		mailer := &stubMailer{err: apperrors.NewDatabaseError("queue unavailable", nil)}
		svc := NewWaitlistService(logger, mockRepo, mailer)

		req := &CaptureEmailRequest{Email: "mail@example.com"}

		mockRepo.EXPECT().
			FindEntryByEmail(gomock.Any(), "mail@example.com").
			Return(nil, apperrors.NewNotFoundError("Waitlist entry not found.", nil))

		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
				return entry, nil
			})

		_, created, err := svc.CaptureEmail(context.Background(), req, meta)

		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 1, mailer.calls)
	})
}

func TestWaitlistService_UpdateDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockWaitlistRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewWaitlistService(logger, mockRepo, nil)

	entryID := "33333333-3333-3333-3333-333333333333"

	t.Run("completes the entry on a successful update", func(t *testing.T) {
		req := &UpdateDetailsRequest{
			FullName:       "Ada Lovelace",
			PhoneNumber:    "+1 (555) 123-4567",
			TypeOfBusiness: "Retail",
			Country:        "United Kingdom",
			City:           "London",
		}

		mockRepo.EXPECT().
			FindEntryByID(gomock.Any(), entryID).
			Return(&models.WaitlistEntry{ID: entryID, Status: models.WaitlistStatusPending}, nil)

		mockRepo.EXPECT().
			UpdateEntry(gomock.Any(), entryID, gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, updates map[string]interface{}) (*models.WaitlistEntry, error) {
				assert.Equal(t, models.WaitlistStatusCompleted, updates["status"])
				assert.Equal(t, "Ada Lovelace", updates["full_name"])
				return &models.WaitlistEntry{ID: id, Status: models.WaitlistStatusCompleted}, nil
			})

		result, err := service.UpdateDetails(context.Background(), entryID, req)

		assert.NoError(t, err)
		assert.Equal(t, models.WaitlistStatusCompleted, result.Status)
	})

	t.Run("completes even when no optional fields are supplied", func(t *testing.T) {
		mockRepo.EXPECT().
			FindEntryByID(gomock.Any(), entryID).
			Return(&models.WaitlistEntry{ID: entryID, Status: models.WaitlistStatusPending}, nil)

		mockRepo.EXPECT().
			UpdateEntry(gomock.Any(), entryID, gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, updates map[string]interface{}) (*models.WaitlistEntry, error) {
				assert.Equal(t, models.WaitlistStatusCompleted, updates["status"])
				return &models.WaitlistEntry{ID: id, Status: models.WaitlistStatusCompleted}, nil
			})

		result, err := service.UpdateDetails(context.Background(), entryID, &UpdateDetailsRequest{})

		assert.NoError(t, err)
		assert.Equal(t, models.WaitlistStatusCompleted, result.Status)
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		mockRepo.EXPECT().
			FindEntryByID(gomock.Any(), entryID).
			Return(nil, apperrors.NewNotFoundError("Waitlist entry not found.", nil))

		result, err := service.UpdateDetails(context.Background(), entryID, &UpdateDetailsRequest{})

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.GetErrorType(err))
	})

	t.Run("collects validation errors without updating", func(t *testing.T) {
		req := &UpdateDetailsRequest{
			PhoneNumber:    "123",
			TypeOfBusiness: "Other",
		}

		mockRepo.EXPECT().
			FindEntryByID(gomock.Any(), entryID).
			Return(&models.WaitlistEntry{ID: entryID, Status: models.WaitlistStatusPending}, nil)

		result, err := service.UpdateDetails(context.Background(), entryID, req)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.GetErrorType(err))

		details := apperrors.GetErrorDetails(err)
		assert.Contains(t, details, "phone_number")
		assert.Contains(t, details, "custom_business_types")
	})

	t.Run("stored custom business type satisfies the conditional rule", func(t *testing.T) {
		req := &UpdateDetailsRequest{TypeOfBusiness: "Other"}

		mockRepo.EXPECT().
			FindEntryByID(gomock.Any(), entryID).
			Return(&models.WaitlistEntry{
				ID:                  entryID,
				Status:              models.WaitlistStatusPending,
				CustomBusinessTypes: "Pottery studio",
			}, nil)

		mockRepo.EXPECT().
			UpdateEntry(gomock.Any(), entryID, gomock.Any()).
			Return(&models.WaitlistEntry{ID: entryID, Status: models.WaitlistStatusCompleted}, nil)

		_, err := service.UpdateDetails(context.Background(), entryID, req)

		assert.NoError(t, err)
	})
}

func TestWaitlistService_DeleteEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockWaitlistRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewWaitlistService(logger, mockRepo, nil)

	t.Run("deduplicates ids before deleting", func(t *testing.T) {
		req := &BulkDeleteRequest{IDs: []string{
			"44444444-4444-4444-4444-444444444444",
			"44444444-4444-4444-4444-444444444444",
			"55555555-5555-5555-5555-555555555555",
		}}

		mockRepo.EXPECT().
			DeleteEntries(gomock.Any(), []string{
				"44444444-4444-4444-4444-444444444444",
				"55555555-5555-5555-5555-555555555555",
			}).
			Return(nil)

		deleted, err := service.DeleteEntries(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, 2, deleted)
	})

	t.Run("propagates the all-or-nothing validation error", func(t *testing.T) {
		req := &BulkDeleteRequest{IDs: []string{"66666666-6666-6666-6666-666666666666"}}

		mockRepo.EXPECT().
			DeleteEntries(gomock.Any(), req.IDs).
			Return(apperrors.NewValidationError("Invalid input.", map[string]string{"ids": "unknown entry ids"}))

		deleted, err := service.DeleteEntries(context.Background(), req)

		assert.Error(t, err)
		assert.Zero(t, deleted)
		assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.GetErrorType(err))
	})

	t.Run("rejects an empty request", func(t *testing.T) {
		deleted, err := service.DeleteEntries(context.Background(), &BulkDeleteRequest{})

		assert.Error(t, err)
		assert.Zero(t, deleted)
	})
}

type stubMailer struct {
	calls int
	err   error
}

func (s *stubMailer) EnqueueConfirmation(_ context.Context, _, _ string) error {
	s.calls++
	return s.err
}
