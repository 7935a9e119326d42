package content

import (
	"context"
	"errors"

	"github.com/storelaunch/launchlist/internal/models"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
	"gorm.io/gorm"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=content

type ContentRepository interface {
	// GetActiveContent returns every active record, ordered by category
	// then key so rendering is deterministic.
	GetActiveContent(ctx context.Context) ([]*models.SiteContent, error)
	// CreateContent persists a new record; duplicate keys are a conflict.
	CreateContent(ctx context.Context, record *models.SiteContent) (*models.SiteContent, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (cr *contentRepository) GetActiveContent(ctx context.Context) ([]*models.SiteContent, error) {
	var records []*models.SiteContent

	if err := cr.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category ASC, key ASC").
		Find(&records).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch site content", err)
	}

	return records, nil
}

func (cr *contentRepository) CreateContent(ctx context.Context, record *models.SiteContent) (*models.SiteContent, error) {
	if err := cr.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err) {
			return nil, apperrors.NewConflictError("content with this key already exists", err)
		}
		return nil, apperrors.NewDatabaseError("unable to create site content", err)
	}

	return record, nil
}
