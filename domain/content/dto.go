package content

import (
	"github.com/storelaunch/launchlist/internal/models"
	"github.com/storelaunch/launchlist/pkg/constants"
)

type CreateContentRequest struct {
	Key         string `json:"key" binding:"required,max=100"`
	Value       string `json:"value" binding:"required"`
	Type        string `json:"type" binding:"omitempty,oneof=text number boolean json"`
	Category    string `json:"category" binding:"required,max=50"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	IsActive    *bool  `json:"is_active"`
}

type ContentResponse struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Value       string `json:"value"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
	UpdatedAt   string `json:"updated_at"`
}

func ToSiteContentModel(req *CreateContentRequest) *models.SiteContent {
	if req == nil {
		return nil
	}

	contentType := req.Type
	if contentType == "" {
		contentType = models.ValueTypeText
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return &models.SiteContent{
		Key:         req.Key,
		Value:       req.Value,
		Type:        contentType,
		Category:    req.Category,
		Description: req.Description,
		IsActive:    isActive,
	}
}

func ToContentResponse(record *models.SiteContent) ContentResponse {
	if record == nil {
		return ContentResponse{}
	}
	return ContentResponse{
		ID:          record.ID,
		Key:         record.Key,
		Value:       record.Value,
		Type:        record.Type,
		Category:    record.Category,
		Description: record.Description,
		IsActive:    record.IsActive,
		UpdatedAt:   record.UpdatedAt.Format(constants.RFC3339DateTimeFormat),
	}
}
