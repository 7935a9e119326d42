package assistant

import (
	"context"
	"testing"

	"github.com/storelaunch/launchlist/domain/waitlist"
	"github.com/storelaunch/launchlist/internal/log"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAssistantService_SecurityChat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWaitlist := waitlist.NewMockWaitlistRepository(ctrl)
	mockUpstream := NewMockUpstreamClient(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewAssistantService(logger, mockWaitlist, mockUpstream)

	t.Run("answers the count question locally", func(t *testing.T) {
		req := &SecurityChatRequest{
			Model: "gemini-pro",
			Messages: []ChatMessage{
				{Role: "user", Content: "How many people signed up so far?"},
				{Role: "assistant", Content: "Let me check."},
				{Role: "user", Content: "how many emails registered on the waitlist?"},
			},
		}

		mockWaitlist.EXPECT().CountEntries(gomock.Any()).Return(int64(42), nil)

		response, err := service.SecurityChat(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "There are currently 42 emails registered on the waitlist.", response.Reply)
	})

	t.Run("proxies everything else upstream", func(t *testing.T) {
		req := &SecurityChatRequest{
			Model:             "gemini-pro",
			SystemInstruction: "You are a security analyst.",
			Messages: []ChatMessage{
				{Role: "user", Content: "Summarize recent suspicious logins."},
			},
		}

		mockUpstream.EXPECT().
			Generate(gomock.Any(), "gemini-pro", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages []ChatMessage) (string, error) {
				assert.Len(t, messages, 2)
				assert.Equal(t, "system", messages[0].Role)
				return "Nothing unusual in the last 24 hours.", nil
			})

		response, err := service.SecurityChat(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "Nothing unusual in the last 24 hours.", response.Reply)
	})

	t.Run("propagates upstream unavailability", func(t *testing.T) {
		req := &SecurityChatRequest{
			Model:    "gemini-pro",
			Messages: []ChatMessage{{Role: "user", Content: "ping"}},
		}

		mockUpstream.EXPECT().
			Generate(gomock.Any(), "gemini-pro", gomock.Any()).
			Return("", apperrors.NewUpstreamUnavailableError("The assistant is temporarily unavailable.", nil))

		response, err := service.SecurityChat(context.Background(), req)

		assert.Error(t, err)
		assert.Nil(t, response)
		assert.Equal(t, apperrors.ErrorTypeUpstreamUnavailable, apperrors.GetErrorType(err))
	})
}

func TestCountQuestionPattern(t *testing.T) {
	matches := []string{
		"how many emails registered?",
		"How many users signed up yesterday?",
		"so, how many people on the waitlist now",
	}
	for _, msg := range matches {
		assert.True(t, countQuestionPattern.MatchString(msg), msg)
	}

	misses := []string{
		"how many tickets are open",
		"who signed up last",
	}
	for _, msg := range misses {
		assert.False(t, countQuestionPattern.MatchString(msg), msg)
	}
}
