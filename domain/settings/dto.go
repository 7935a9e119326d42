package settings

import (
	"github.com/storelaunch/launchlist/internal/models"
	"github.com/storelaunch/launchlist/pkg/constants"
)

// UpdateSettingsRequest carries a batch of key/value assignments. Values
// arrive as strings and are validated against each setting's declared type.
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required,min=1"`
}

type SettingResponse struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Description string `json:"description"`
	UpdatedAt   string `json:"updated_at"`
}

func ToSettingResponse(record *models.SiteSetting) SettingResponse {
	if record == nil {
		return SettingResponse{}
	}
	return SettingResponse{
		Key:         record.Key,
		Value:       record.Value,
		Type:        record.Type,
		Category:    record.Category,
		Description: record.Description,
		UpdatedAt:   record.UpdatedAt.Format(constants.RFC3339DateTimeFormat),
	}
}
