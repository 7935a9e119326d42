package waitlist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/storelaunch/launchlist/internal/models"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
	"gorm.io/gorm"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=waitlist

type WaitlistRepository interface {
	// CreateEntry persists a new entry. A duplicate email surfaces as a
	// conflict from the storage-level unique index, never from an
	// application-level check alone.
	CreateEntry(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error)
	// FindEntryByID retrieves an entry or a NOT_FOUND error.
	FindEntryByID(ctx context.Context, id string) (*models.WaitlistEntry, error)
	// FindEntryByEmail retrieves an entry by email or a NOT_FOUND error.
	FindEntryByEmail(ctx context.Context, email string) (*models.WaitlistEntry, error)
	// UpdateEntry applies the given column updates and returns the updated
	// entry fully materialized.
	UpdateEntry(ctx context.Context, id string, updates map[string]interface{}) (*models.WaitlistEntry, error)
	// GetAllEntries returns every entry in creation order
	// (created_at ASC, id ASC as a stable tiebreak).
	GetAllEntries(ctx context.Context) ([]*models.WaitlistEntry, error)
	// DeleteEntry removes one entry by id.
	DeleteEntry(ctx context.Context, id string) error
	// DeleteEntries removes the given set atomically: if any id does not
	// resolve to an entry, nothing is deleted.
	DeleteEntries(ctx context.Context, ids []string) error
	// CountEntries returns the total number of entries.
	CountEntries(ctx context.Context) (int64, error)
	// CountEntriesByStatus returns the number of entries in one status.
	CountEntriesByStatus(ctx context.Context, status string) (int64, error)
	// CountVerifiedEntries returns the number of email-verified entries.
	CountVerifiedEntries(ctx context.Context) (int64, error)
}

type waitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (wr *waitlistRepository) CreateEntry(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
	if err := wr.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.NewConflictError("an entry with this email already exists", err)
		}
		return nil, apperrors.NewDatabaseError("unable to create waitlist entry", err)
	}

	return entry, nil
}

func (wr *waitlistRepository) FindEntryByID(ctx context.Context, id string) (*models.WaitlistEntry, error) {
	var entry models.WaitlistEntry

	if err := wr.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Waitlist entry not found.", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch waitlist entry", err)
	}

	return &entry, nil
}

func (wr *waitlistRepository) FindEntryByEmail(ctx context.Context, email string) (*models.WaitlistEntry, error) {
	var entry models.WaitlistEntry

	if err := wr.db.WithContext(ctx).First(&entry, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Waitlist entry not found.", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch waitlist entry", err)
	}

	return &entry, nil
}

func (wr *waitlistRepository) UpdateEntry(ctx context.Context, id string, updates map[string]interface{}) (*models.WaitlistEntry, error) {
	if len(updates) == 0 {
		return nil, apperrors.NewInvalidRequestError("no fields to update", nil)
	}

	result := wr.db.WithContext(ctx).
		Model(&models.WaitlistEntry{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("unable to update waitlist entry", result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, apperrors.NewNotFoundError("Waitlist entry not found.", nil)
	}

	return wr.FindEntryByID(ctx, id)
}

func (wr *waitlistRepository) GetAllEntries(ctx context.Context) ([]*models.WaitlistEntry, error) {
	var entries []*models.WaitlistEntry

	if err := wr.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch waitlist entries", err)
	}

	return entries, nil
}

func (wr *waitlistRepository) DeleteEntry(ctx context.Context, id string) error {
	result := wr.db.WithContext(ctx).Delete(&models.WaitlistEntry{}, "id = ?", id)

	if result.Error != nil {
		return apperrors.NewDatabaseError("unable to delete waitlist entry", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Waitlist entry not found.", nil)
	}

	return nil
}

func (wr *waitlistRepository) DeleteEntries(ctx context.Context, ids []string) error {
	return wr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []string
		if err := tx.Model(&models.WaitlistEntry{}).
			Where("id IN ?", ids).
			Pluck("id", &existing).Error; err != nil {
			return apperrors.NewDatabaseError("unable to verify waitlist entries", err)
		}

		if len(existing) != len(ids) {
			known := make(map[string]struct{}, len(existing))
			for _, id := range existing {
				known[id] = struct{}{}
			}
			var missing []string
			for _, id := range ids {
				if _, ok := known[id]; !ok {
					missing = append(missing, id)
				}
			}
			return apperrors.NewValidationError("Invalid input.", map[string]string{
				"ids": fmt.Sprintf("unknown entry ids: %s", strings.Join(missing, ", ")),
			})
		}

		if err := tx.Where("id IN ?", ids).Delete(&models.WaitlistEntry{}).Error; err != nil {
			return apperrors.NewDatabaseError("unable to delete waitlist entries", err)
		}

		return nil
	})
}

func (wr *waitlistRepository) CountEntries(ctx context.Context) (int64, error) {
	var count int64
	if err := wr.db.WithContext(ctx).Model(&models.WaitlistEntry{}).Count(&count).Error; err != nil {
		return 0, apperrors.NewDatabaseError("unable to count waitlist entries", err)
	}
	return count, nil
}

func (wr *waitlistRepository) CountEntriesByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	if err := wr.db.WithContext(ctx).
		Model(&models.WaitlistEntry{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, apperrors.NewDatabaseError("unable to count waitlist entries", err)
	}
	return count, nil
}

func (wr *waitlistRepository) CountVerifiedEntries(ctx context.Context) (int64, error) {
	var count int64
	if err := wr.db.WithContext(ctx).
		Model(&models.WaitlistEntry{}).
		Where("email_verified = ?", true).
		Count(&count).Error; err != nil {
		return 0, apperrors.NewDatabaseError("unable to count waitlist entries", err)
	}
	return count, nil
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err)
}
