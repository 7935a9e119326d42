package admin

import (
	"context"

	"github.com/storelaunch/launchlist/domain/mailer"
	"github.com/storelaunch/launchlist/domain/waitlist"
	"github.com/storelaunch/launchlist/internal/log"
	"github.com/storelaunch/launchlist/internal/models"
	"github.com/storelaunch/launchlist/pkg/constants"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type AdminService interface {
	// Login verifies credentials and issues a session token. Unknown
	// usernames and wrong passwords are indistinguishable to the caller.
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)

	// GetStats aggregates waitlist and mail-queue counters for the
	// dashboard.
	GetStats(ctx context.Context) (*StatsResponse, error)

	// ExportCSV renders every waitlist entry as a CSV document.
	ExportCSV(ctx context.Context) ([]byte, error)
}

type adminService struct {
	logger       *log.Logger
	repository   AdminRepository
	waitlistRepo waitlist.WaitlistRepository
	mailQueue    mailer.MailQueueRepository
	tokens       *TokenService
}

func NewAdminService(
	logger *log.Logger,
	repository AdminRepository,
	waitlistRepo waitlist.WaitlistRepository,
	mailQueue mailer.MailQueueRepository,
	tokens *TokenService,
) AdminService {
	return &adminService{
		logger:       logger,
		repository:   repository,
		waitlistRepo: waitlistRepo,
		mailQueue:    mailQueue,
		tokens:       tokens,
	}
}

func (s *adminService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	user, err := s.repository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if apperrors.GetErrorType(err) == apperrors.ErrorTypeNotFound {
			logger.Error("Login attempt for unknown username", "username", req.Username)
			return nil, apperrors.NewInvalidCredentialsError("Invalid username or password.")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		logger.Error("Login attempt with wrong password", "username", req.Username)
		return nil, apperrors.NewInvalidCredentialsError("Invalid username or password.")
	}

	token, expiresAt, err := s.tokens.Generate(user.ID, user.Username, user.Role)
	if err != nil {
		logger.Error("Failed to issue session token", "username", req.Username, "error", err)
		return nil, err
	}

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(constants.RFC3339DateTimeFormat),
		User:      ToAdminUserResponse(user),
	}, nil
}

func (s *adminService) GetStats(ctx context.Context) (*StatsResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	total, err := s.waitlistRepo.CountEntries(ctx)
	if err != nil {
		logger.Error("Failed to count waitlist entries", "error", err)
		return nil, err
	}

	pending, err := s.waitlistRepo.CountEntriesByStatus(ctx, models.WaitlistStatusPending)
	if err != nil {
		return nil, err
	}

	completed, err := s.waitlistRepo.CountEntriesByStatus(ctx, models.WaitlistStatusCompleted)
	if err != nil {
		return nil, err
	}

	verified, err := s.waitlistRepo.CountVerifiedEntries(ctx)
	if err != nil {
		return nil, err
	}

	pendingEmails, err := s.mailQueue.PendingCount(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		TotalEntries:     total,
		PendingEntries:   pending,
		CompletedEntries: completed,
		VerifiedEntries:  verified,
		PendingEmails:    pendingEmails,
	}, nil
}

func (s *adminService) ExportCSV(ctx context.Context) ([]byte, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	entries, err := s.waitlistRepo.GetAllEntries(ctx)
	if err != nil {
		logger.Error("Failed to fetch waitlist entries for export", "error", err)
		return nil, err
	}

	body, err := renderEntriesCSV(entries)
	if err != nil {
		logger.Error("Failed to render waitlist export", "error", err)
		return nil, err
	}

	return body, nil
}
