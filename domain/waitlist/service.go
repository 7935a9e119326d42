package waitlist

import (
	"context"
	"strings"

	"github.com/storelaunch/launchlist/internal/log"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
)

// ConfirmationMailer enqueues the confirmation message sent after an email
// is first captured. Enqueue failures never fail the capture itself.
type ConfirmationMailer interface {
	EnqueueConfirmation(ctx context.Context, email, entryID string) error
}

type WaitlistService interface {
	// CaptureEmail records an email on the waitlist. The boolean reports
	// whether a new entry was created; an existing pending entry is
	// returned as-is, while a completed one yields an EMAIL_USED error.
	CaptureEmail(ctx context.Context, req *CaptureEmailRequest, meta CaptureMeta) (*WaitlistEntryResponse, bool, error)

	// UpdateDetails applies follow-up profile fields to an entry and marks
	// it completed.
	UpdateDetails(ctx context.Context, id string, req *UpdateDetailsRequest) (*WaitlistEntryResponse, error)

	// FindEntryByID retrieves a waitlist entry by its unique ID.
	FindEntryByID(ctx context.Context, id string) (*WaitlistEntryResponse, error)

	// GetAllEntries retrieves all waitlist entries in creation order.
	GetAllEntries(ctx context.Context) ([]WaitlistEntryResponse, error)

	// DeleteEntry removes a waitlist entry identified by its ID.
	DeleteEntry(ctx context.Context, id string) error

	// DeleteEntries removes a batch of entries; the batch either deletes
	// entirely or not at all.
	DeleteEntries(ctx context.Context, req *BulkDeleteRequest) (int, error)
}

type waitlistService struct {
	logger     *log.Logger
	repository WaitlistRepository
	mailer     ConfirmationMailer
}

func NewWaitlistService(logger *log.Logger, repository WaitlistRepository, mailer ConfirmationMailer) WaitlistService {
	return &waitlistService{logger: logger, repository: repository, mailer: mailer}
}

func (s *waitlistService) CaptureEmail(ctx context.Context, req *CaptureEmailRequest, meta CaptureMeta) (*WaitlistEntryResponse, bool, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("CaptureEmail received empty request")
		return nil, false, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	req.Email = normalizeEmail(req.Email)

	existing, err := s.repository.FindEntryByEmail(ctx, req.Email)
	if err != nil && apperrors.GetErrorType(err) != apperrors.ErrorTypeNotFound {
		logger.Error("Failed to look up waitlist entry by email", "error", err)
		return nil, false, err
	}

	if existing != nil {
		if existing.IsCompleted() {
			return nil, false, apperrors.NewEmailUsedError("This email is already on the waitlist.", nil)
		}
		response := ToWaitlistEntryResponse(existing)
		return &response, false, nil
	}

	entry, err := s.repository.CreateEntry(ctx, ToWaitlistEntryModel(req, meta))
	if err != nil {
		if apperrors.GetErrorType(err) == apperrors.ErrorTypeConflict {
			// Lost an insert race; the unique index is the authority, so
			// resolve against whatever row won.
			return s.resolveCaptureConflict(ctx, req.Email)
		}
		logger.Error("Failed to create waitlist entry", "error", err)
		return nil, false, err
	}

	if s.mailer != nil {
		if mailErr := s.mailer.EnqueueConfirmation(ctx, entry.Email, entry.ID); mailErr != nil {
			logger.Error("Failed to enqueue confirmation email", "id", entry.ID, "error", mailErr)
		}
	}

	response := ToWaitlistEntryResponse(entry)
	return &response, true, nil
}

func (s *waitlistService) resolveCaptureConflict(ctx context.Context, email string) (*WaitlistEntryResponse, bool, error) {
	winner, err := s.repository.FindEntryByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	if winner.IsCompleted() {
		return nil, false, apperrors.NewEmailUsedError("This email is already on the waitlist.", nil)
	}
	response := ToWaitlistEntryResponse(winner)
	return &response, false, nil
}

func (s *waitlistService) UpdateDetails(ctx context.Context, id string, req *UpdateDetailsRequest) (*WaitlistEntryResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("UpdateDetails received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	existing, err := s.repository.FindEntryByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find waitlist entry", "id", id, "error", err)
		return nil, err
	}

	if details := validateDetails(req, existing.CustomBusinessTypes, existing.CustomCountry); details != nil {
		return nil, apperrors.NewValidationError("Invalid input.", details)
	}

	entry, err := s.repository.UpdateEntry(ctx, id, toUpdateMap(req))
	if err != nil {
		logger.Error("Failed to update waitlist entry", "id", id, "error", err)
		return nil, err
	}

	response := ToWaitlistEntryResponse(entry)
	return &response, nil
}

func (s *waitlistService) FindEntryByID(ctx context.Context, id string) (*WaitlistEntryResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	entry, err := s.repository.FindEntryByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find waitlist entry", "id", id, "error", err)
		return nil, err
	}

	response := ToWaitlistEntryResponse(entry)
	return &response, nil
}

func (s *waitlistService) GetAllEntries(ctx context.Context) ([]WaitlistEntryResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	entries, err := s.repository.GetAllEntries(ctx)
	if err != nil {
		logger.Error("Failed to get all waitlist entries", "error", err)
		return nil, err
	}

	responses := make([]WaitlistEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToWaitlistEntryResponse(entry))
	}

	return responses, nil
}

func (s *waitlistService) DeleteEntry(ctx context.Context, id string) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if err := s.repository.DeleteEntry(ctx, id); err != nil {
		logger.Error("Failed to delete waitlist entry", "id", id, "error", err)
		return err
	}

	return nil
}

func (s *waitlistService) DeleteEntries(ctx context.Context, req *BulkDeleteRequest) (int, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil || len(req.IDs) == 0 {
		logger.Error("DeleteEntries received empty request")
		return 0, apperrors.NewInvalidRequestError("at least one id must be provided", nil)
	}

	ids := dedupe(req.IDs)

	if err := s.repository.DeleteEntries(ctx, ids); err != nil {
		logger.Error("Failed to bulk delete waitlist entries", "count", len(ids), "error", err)
		return 0, err
	}

	return len(ids), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
