package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/storelaunch/launchlist/internal/models"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
	"gorm.io/gorm"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=settings

type SettingsRepository interface {
	// GetPublicSettings returns every non-sensitive setting.
	GetPublicSettings(ctx context.Context) ([]*models.SiteSetting, error)
	// FindSettingsByKeys returns the settings matching the given keys.
	FindSettingsByKeys(ctx context.Context, keys []string) ([]*models.SiteSetting, error)
	// UpdateValues applies a batch of value assignments atomically: if any
	// key is unknown, nothing is written.
	UpdateValues(ctx context.Context, values map[string]string, updatedBy string) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (sr *settingsRepository) GetPublicSettings(ctx context.Context) ([]*models.SiteSetting, error) {
	var records []*models.SiteSetting

	if err := sr.db.WithContext(ctx).
		Where("is_sensitive = ?", false).
		Order("category ASC, key ASC").
		Find(&records).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch site settings", err)
	}

	return records, nil
}

func (sr *settingsRepository) FindSettingsByKeys(ctx context.Context, keys []string) ([]*models.SiteSetting, error) {
	var records []*models.SiteSetting

	if err := sr.db.WithContext(ctx).
		Where("key IN ?", keys).
		Find(&records).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch site settings", err)
	}

	return records, nil
}

func (sr *settingsRepository) UpdateValues(ctx context.Context, values map[string]string, updatedBy string) error {
	return sr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}

		var existing []string
		if err := tx.Model(&models.SiteSetting{}).
			Where("key IN ?", keys).
			Pluck("key", &existing).Error; err != nil {
			return apperrors.NewDatabaseError("unable to verify site settings", err)
		}

		if len(existing) != len(keys) {
			known := make(map[string]struct{}, len(existing))
			for _, key := range existing {
				known[key] = struct{}{}
			}
			var missing []string
			for _, key := range keys {
				if _, ok := known[key]; !ok {
					missing = append(missing, key)
				}
			}
			return apperrors.NewValidationError("Invalid input.", map[string]string{
				"settings": fmt.Sprintf("unknown setting keys: %s", strings.Join(missing, ", ")),
			})
		}

		for key, value := range values {
			if err := tx.Model(&models.SiteSetting{}).
				Where("key = ?", key).
				Updates(map[string]interface{}{
					"value":      value,
					"updated_by": updatedBy,
				}).Error; err != nil {
				return apperrors.NewDatabaseError("unable to update site setting", err)
			}
		}

		return nil
	})
}
