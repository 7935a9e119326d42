package assistant

import (
	"context"
	"fmt"
	"regexp"

	"github.com/storelaunch/launchlist/domain/waitlist"
	"github.com/storelaunch/launchlist/internal/log"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
)

// countQuestionPattern matches the one question the assistant can answer
// from local data without calling the upstream model.
var countQuestionPattern = regexp.MustCompile(`(?i)how many (emails|users|registrations|people) (registered|signed up|on (the )?waitlist)`)

type AssistantService interface {
	// SecurityChat answers an admin dashboard conversation. Waitlist-count
	// questions are answered locally; everything else is proxied upstream.
	SecurityChat(ctx context.Context, req *SecurityChatRequest) (*ChatReplyResponse, error)
}

type assistantService struct {
	logger       *log.Logger
	waitlistRepo waitlist.WaitlistRepository
	upstream     UpstreamClient
}

func NewAssistantService(logger *log.Logger, waitlistRepo waitlist.WaitlistRepository, upstream UpstreamClient) AssistantService {
	return &assistantService{
		logger:       logger,
		waitlistRepo: waitlistRepo,
		upstream:     upstream,
	}
}

func (s *assistantService) SecurityChat(ctx context.Context, req *SecurityChatRequest) (*ChatReplyResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	if countQuestionPattern.MatchString(req.lastUserMessage()) {
		count, err := s.waitlistRepo.CountEntries(ctx)
		if err != nil {
			logger.Error("Failed to count entries for assistant reply", "error", err)
			return nil, err
		}

		return &ChatReplyResponse{
			Reply: fmt.Sprintf("There are currently %d emails registered on the waitlist.", count),
		}, nil
	}

	reply, err := s.upstream.Generate(ctx, req.Model, req.upstreamMessages())
	if err != nil {
		logger.Error("Assistant upstream call failed", "model", req.Model, "error", err)
		return nil, err
	}

	return &ChatReplyResponse{Reply: reply}, nil
}
