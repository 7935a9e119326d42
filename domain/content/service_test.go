package content

import (
	"context"
	"testing"

	"github.com/storelaunch/launchlist/internal/log"
	"github.com/storelaunch/launchlist/internal/models"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestContentService_GetActiveContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockContentRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewContentService(logger, mockRepo)

	mockRepo.EXPECT().
		GetActiveContent(gomock.Any()).
		Return([]*models.SiteContent{
			{Key: "hero_title", Value: "Launch your store", Type: models.ValueTypeText, IsActive: true},
		}, nil)

	response, err := service.GetActiveContent(context.Background())

	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "hero_title", response[0].Key)
}

func TestContentService_CreateContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockContentRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewContentService(logger, mockRepo)

	t.Run("defaults type and active flag", func(t *testing.T) {
		req := &CreateContentRequest{
			Key:      "hero_subtitle",
			Value:    "Be first in line",
			Category: "landing",
		}

		mockRepo.EXPECT().
			CreateContent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record *models.SiteContent) (*models.SiteContent, error) {
				assert.Equal(t, models.ValueTypeText, record.Type)
				assert.True(t, record.IsActive)
				return record, nil
			})

		response, err := service.CreateContent(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "hero_subtitle", response.Key)
	})

	t.Run("duplicate keys surface as a conflict", func(t *testing.T) {
		req := &CreateContentRequest{
			Key:      "hero_title",
			Value:    "dup",
			Category: "landing",
		}

		mockRepo.EXPECT().
			CreateContent(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewConflictError("content with this key already exists", nil))

		response, err := service.CreateContent(context.Background(), req)

		assert.Error(t, err)
		assert.Nil(t, response)
		assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.GetErrorType(err))
	})
}
