package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/storelaunch/launchlist/internal/log"
	"github.com/storelaunch/launchlist/internal/models"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
)

type SettingsService interface {
	// GetPublicSettings returns the settings safe to expose to the site.
	GetPublicSettings(ctx context.Context) ([]SettingResponse, error)
	// UpdateSettings applies a batch of typed value assignments. The batch
	// either applies entirely or not at all.
	UpdateSettings(ctx context.Context, req *UpdateSettingsRequest, updatedBy string) ([]SettingResponse, error)
}

type settingsService struct {
	logger     *log.Logger
	repository SettingsRepository
}

func NewSettingsService(logger *log.Logger, repository SettingsRepository) SettingsService {
	return &settingsService{logger: logger, repository: repository}
}

func (s *settingsService) GetPublicSettings(ctx context.Context) ([]SettingResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	records, err := s.repository.GetPublicSettings(ctx)
	if err != nil {
		logger.Error("Failed to fetch site settings", "error", err)
		return nil, err
	}

	responses := make([]SettingResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, ToSettingResponse(record))
	}

	return responses, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req *UpdateSettingsRequest, updatedBy string) ([]SettingResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil || len(req.Settings) == 0 {
		return nil, apperrors.NewInvalidRequestError("at least one setting must be provided", nil)
	}

	keys := make([]string, 0, len(req.Settings))
	for key := range req.Settings {
		keys = append(keys, key)
	}

	existing, err := s.repository.FindSettingsByKeys(ctx, keys)
	if err != nil {
		logger.Error("Failed to fetch settings for update", "error", err)
		return nil, err
	}

	if details := validateAssignments(req.Settings, existing); details != nil {
		return nil, apperrors.NewValidationError("Invalid input.", details)
	}

	if err := s.repository.UpdateValues(ctx, req.Settings, updatedBy); err != nil {
		logger.Error("Failed to update site settings", "error", err)
		return nil, err
	}

	updated, err := s.repository.FindSettingsByKeys(ctx, keys)
	if err != nil {
		return nil, err
	}

	responses := make([]SettingResponse, 0, len(updated))
	for _, record := range updated {
		responses = append(responses, ToSettingResponse(record))
	}

	return responses, nil
}

// validateAssignments checks each submitted value against the declared type
// of its setting. Unknown keys and type mismatches are collected together.
func validateAssignments(values map[string]string, existing []*models.SiteSetting) map[string]string {
	byKey := make(map[string]*models.SiteSetting, len(existing))
	for _, record := range existing {
		byKey[record.Key] = record
	}

	details := make(map[string]string)

	for key, value := range values {
		record, ok := byKey[key]
		if !ok {
			details[key] = "unknown setting key"
			continue
		}

		if msg := validateTypedValue(value, record.Type); msg != "" {
			details[key] = msg
		}
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

func validateTypedValue(value, valueType string) string {
	switch valueType {
	case models.ValueTypeNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return "must be a number"
		}
	case models.ValueTypeBoolean:
		if value != "true" && value != "false" {
			return "must be true or false"
		}
	case models.ValueTypeJSON:
		if !json.Valid([]byte(value)) {
			return "must be valid JSON"
		}
	case models.ValueTypeText:
		// any string is fine
	default:
		return fmt.Sprintf("setting has unsupported type %q", valueType)
	}
	return ""
}
