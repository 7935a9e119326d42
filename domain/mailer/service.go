package mailer

import (
	"context"
	"fmt"

	"github.com/storelaunch/launchlist/config"
	"github.com/storelaunch/launchlist/internal/log"
	"github.com/storelaunch/launchlist/internal/models"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
)

const (
	confirmationSubject    = "You're on the waitlist!"
	confirmationTemplateID = "waitlist-confirmation"
)

type MailerService interface {
	// EnqueueConfirmation queues the post-capture confirmation message for
	// a waitlist entry.
	EnqueueConfirmation(ctx context.Context, email, entryID string) error
	// PendingCount reports the current delivery backlog.
	PendingCount(ctx context.Context) (int64, error)
}

type mailerService struct {
	logger     *log.Logger
	repository MailQueueRepository
	fromEmail  string
}

func NewMailerService(logger *log.Logger, repository MailQueueRepository) MailerService {
	return &mailerService{
		logger:     logger,
		repository: repository,
		fromEmail:  config.GetValueFromEnvironmentVariable("FROM_EMAIL", "hello@storelaunch.app"),
	}
}

func (s *mailerService) EnqueueConfirmation(ctx context.Context, email, entryID string) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if email == "" {
		return apperrors.NewInvalidRequestError("recipient email cannot be empty", nil)
	}

	queued := &models.QueuedEmail{
		ToEmail:         email,
		FromEmail:       s.fromEmail,
		Subject:         confirmationSubject,
		HTMLContent:     confirmationHTML(email),
		TextContent:     confirmationText(email),
		TemplateID:      confirmationTemplateID,
		WaitlistEntryID: entryID,
		Status:          models.EmailStatusPending,
		MaxAttempts:     3,
	}

	if _, err := s.repository.Enqueue(ctx, queued); err != nil {
		logger.Error("Failed to enqueue confirmation email", "to", email, "error", err)
		return err
	}

	return nil
}

func (s *mailerService) PendingCount(ctx context.Context) (int64, error) {
	return s.repository.PendingCount(ctx)
}

func confirmationHTML(email string) string {
	return fmt.Sprintf(
		"<p>Thanks for joining the waitlist!</p><p>We'll reach out to <strong>%s</strong> as soon as your spot opens up.</p>",
		email,
	)
}

func confirmationText(email string) string {
	return fmt.Sprintf(
		"Thanks for joining the waitlist! We'll reach out to %s as soon as your spot opens up.",
		email,
	)
}
