package mailer

import (
	"context"

	"github.com/storelaunch/launchlist/internal/models"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
	"gorm.io/gorm"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=mailer

type MailQueueRepository interface {
	// Enqueue writes one message into the email_queue table. Delivery is
	// handled by an external worker, never by this service.
	Enqueue(ctx context.Context, email *models.QueuedEmail) (*models.QueuedEmail, error)
	// PendingCount reports how many messages are waiting for delivery.
	PendingCount(ctx context.Context) (int64, error)
}

type mailQueueRepository struct {
	db *gorm.DB
}

func NewMailQueueRepository(db *gorm.DB) MailQueueRepository {
	return &mailQueueRepository{db: db}
}

func (mr *mailQueueRepository) Enqueue(ctx context.Context, email *models.QueuedEmail) (*models.QueuedEmail, error) {
	if err := mr.db.WithContext(ctx).Create(email).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to enqueue email", err)
	}
	return email, nil
}

func (mr *mailQueueRepository) PendingCount(ctx context.Context) (int64, error) {
	var count int64
	if err := mr.db.WithContext(ctx).
		Model(&models.QueuedEmail{}).
		Where("status = ?", models.EmailStatusPending).
		Count(&count).Error; err != nil {
		return 0, apperrors.NewDatabaseError("unable to count queued emails", err)
	}
	return count, nil
}
