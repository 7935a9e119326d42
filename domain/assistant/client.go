package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/storelaunch/launchlist/config"
	"github.com/storelaunch/launchlist/pkg/circuitbreaker"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
	"github.com/storelaunch/launchlist/pkg/retry"
)

const defaultUpstreamURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

//go:generate mockgen -source=client.go -destination=mock_client.go -package=assistant

// UpstreamClient talks to the model provider behind the assistant.
type UpstreamClient interface {
	Generate(ctx context.Context, model string, messages []ChatMessage) (string, error)
}

type upstreamClient struct {
	httpClient *http.Client
	breaker    circuitbreaker.CircuitBreaker
	retrier    retry.RetryPolicy
	baseURL    string
	apiKey     string
}

func NewUpstreamClient() UpstreamClient {
	return &upstreamClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		breaker:    circuitbreaker.NewCircuitBreaker(nil),
		retrier:    retry.NewExponentialBackoff(nil),
		baseURL:    config.GetValueFromEnvironmentVariable("AI_UPSTREAM_URL", defaultUpstreamURL),
		apiKey:     config.GetValueFromEnvironmentVariable("AI_API_KEY", ""),
	}
}

type upstreamRequest struct {
	Model    string        `json:"model"`
	Contents []ChatMessage `json:"contents"`
}

type upstreamResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *upstreamClient) Generate(ctx context.Context, model string, messages []ChatMessage) (string, error) {
	if c.apiKey == "" {
		return "", apperrors.NewInternalServerError("assistant API key is not configured", nil)
	}

	var reply string

	err := c.breaker.Call(func() error {
		return c.retrier.Execute(func() error {
			var callErr error
			reply, callErr = c.generateOnce(ctx, model, messages)
			return callErr
		})
	})

	if err != nil {
		if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
			return "", apperrors.NewUpstreamUnavailableError("The assistant is temporarily unavailable.", err)
		}
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return "", err
		}
		return "", apperrors.NewUpstreamError("The assistant failed to respond.", err)
	}

	return reply, nil
}

func (c *upstreamClient) generateOnce(ctx context.Context, model string, messages []ChatMessage) (string, error) {
	payload, err := json.Marshal(upstreamRequest{Model: model, Contents: messages})
	if err != nil {
		return "", apperrors.NewInternalServerError("unable to encode assistant request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", apperrors.NewInternalServerError("unable to build assistant request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		// Phrased so the retry policy recognizes it as transient.
		return "", fmt.Errorf("service unavailable: upstream returned %d", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.NewUpstreamError(fmt.Sprintf("upstream returned %d", resp.StatusCode), nil)
	}

	var parsed upstreamResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", apperrors.NewUpstreamError("unable to decode upstream response", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", apperrors.NewUpstreamError("upstream returned no candidates", nil)
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
