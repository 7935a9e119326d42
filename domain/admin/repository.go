package admin

import (
	"context"
	"errors"

	"github.com/storelaunch/launchlist/internal/models"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
	"gorm.io/gorm"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=admin

type AdminRepository interface {
	// FindUserByUsername retrieves an admin account or a NOT_FOUND error.
	FindUserByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	// CreateUser persists a new admin account.
	CreateUser(ctx context.Context, user *models.AdminUser) (*models.AdminUser, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (ar *adminRepository) FindUserByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	var user models.AdminUser

	if err := ar.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("admin user not found", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch admin user", err)
	}

	return &user, nil
}

func (ar *adminRepository) CreateUser(ctx context.Context, user *models.AdminUser) (*models.AdminUser, error) {
	if err := ar.db.WithContext(ctx).Create(user).Error; err != nil {
		if apperrors.IsDuplicateKeyError(err) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewConflictError("an admin with this username already exists", err)
		}
		return nil, apperrors.NewDatabaseError("unable to create admin user", err)
	}

	return user, nil
}
