package content

import (
	"context"

	"github.com/storelaunch/launchlist/internal/log"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
)

type ContentService interface {
	// GetActiveContent returns the copy the public site renders.
	GetActiveContent(ctx context.Context) ([]ContentResponse, error)
	// CreateContent adds a new editable copy record.
	CreateContent(ctx context.Context, req *CreateContentRequest) (*ContentResponse, error)
}

type contentService struct {
	logger     *log.Logger
	repository ContentRepository
}

func NewContentService(logger *log.Logger, repository ContentRepository) ContentService {
	return &contentService{logger: logger, repository: repository}
}

func (s *contentService) GetActiveContent(ctx context.Context) ([]ContentResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	records, err := s.repository.GetActiveContent(ctx)
	if err != nil {
		logger.Error("Failed to fetch site content", "error", err)
		return nil, err
	}

	responses := make([]ContentResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, ToContentResponse(record))
	}

	return responses, nil
}

func (s *contentService) CreateContent(ctx context.Context, req *CreateContentRequest) (*ContentResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	record, err := s.repository.CreateContent(ctx, ToSiteContentModel(req))
	if err != nil {
		logger.Error("Failed to create site content", "key", req.Key, "error", err)
		return nil, err
	}

	response := ToContentResponse(record)
	return &response, nil
}
