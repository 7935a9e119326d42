package settings

import (
	"context"
	"testing"

	"github.com/storelaunch/launchlist/internal/log"
	"github.com/storelaunch/launchlist/internal/models"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSettingsService_GetPublicSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockSettingsRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewSettingsService(logger, mockRepo)

	mockRepo.EXPECT().
		GetPublicSettings(gomock.Any()).
		Return([]*models.SiteSetting{
			{Key: "waitlist_open", Value: "true", Type: models.ValueTypeBoolean},
		}, nil)

	response, err := service.GetPublicSettings(context.Background())

	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "waitlist_open", response[0].Key)
}

func TestSettingsService_UpdateSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockSettingsRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewSettingsService(logger, mockRepo)

	stored := []*models.SiteSetting{
		{Key: "waitlist_open", Value: "true", Type: models.ValueTypeBoolean},
		{Key: "max_signups", Value: "100", Type: models.ValueTypeNumber},
	}

	t.Run("applies a valid batch", func(t *testing.T) {
		req := &UpdateSettingsRequest{Settings: map[string]string{
			"waitlist_open": "false",
			"max_signups":   "250",
		}}

		mockRepo.EXPECT().
			FindSettingsByKeys(gomock.Any(), gomock.Any()).
			Return(stored, nil)

		mockRepo.EXPECT().
			UpdateValues(gomock.Any(), req.Settings, "admin").
			Return(nil)

		mockRepo.EXPECT().
			FindSettingsByKeys(gomock.Any(), gomock.Any()).
			Return([]*models.SiteSetting{
				{Key: "waitlist_open", Value: "false", Type: models.ValueTypeBoolean},
				{Key: "max_signups", Value: "250", Type: models.ValueTypeNumber},
			}, nil)

		response, err := service.UpdateSettings(context.Background(), req, "admin")

		assert.NoError(t, err)
		assert.Len(t, response, 2)
	})

	t.Run("rejects the whole batch on a type mismatch", func(t *testing.T) {
		req := &UpdateSettingsRequest{Settings: map[string]string{
			"waitlist_open": "false",
			"max_signups":   "lots",
		}}

		mockRepo.EXPECT().
			FindSettingsByKeys(gomock.Any(), gomock.Any()).
			Return(stored, nil)

		response, err := service.UpdateSettings(context.Background(), req, "admin")

		assert.Error(t, err)
		assert.Nil(t, response)
		assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.GetErrorType(err))
		assert.Contains(t, apperrors.GetErrorDetails(err), "max_signups")
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		req := &UpdateSettingsRequest{Settings: map[string]string{
			"no_such_setting": "x",
		}}

		mockRepo.EXPECT().
			FindSettingsByKeys(gomock.Any(), []string{"no_such_setting"}).
			Return(nil, nil)

		response, err := service.UpdateSettings(context.Background(), req, "admin")

		assert.Error(t, err)
		assert.Nil(t, response)
		assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.GetErrorType(err))
	})
}

func TestValidateTypedValue(t *testing.T) {
	assert.Empty(t, validateTypedValue("anything", models.ValueTypeText))
	assert.Empty(t, validateTypedValue("3.14", models.ValueTypeNumber))
	assert.Empty(t, validateTypedValue("true", models.ValueTypeBoolean))
	assert.Empty(t, validateTypedValue(`{"a":1}`, models.ValueTypeJSON))

	assert.NotEmpty(t, validateTypedValue("NaN-ish", models.ValueTypeNumber))
	assert.NotEmpty(t, validateTypedValue("yes", models.ValueTypeBoolean))
	assert.NotEmpty(t, validateTypedValue("{broken", models.ValueTypeJSON))
	assert.NotEmpty(t, validateTypedValue("x", "mystery"))
}
