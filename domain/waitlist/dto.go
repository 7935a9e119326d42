package waitlist

import (
	"github.com/storelaunch/launchlist/internal/models"
	"github.com/storelaunch/launchlist/pkg/constants"
)

type CaptureEmailRequest struct {
	Email       string `json:"email" binding:"required,email,max=255"`
	UTMSource   string `json:"utm_source" binding:"omitempty,max=100"`
	UTMMedium   string `json:"utm_medium" binding:"omitempty,max=100"`
	UTMCampaign string `json:"utm_campaign" binding:"omitempty,max=100"`
}

// CaptureMeta is request attribution recorded write-once when an entry is
// first created. It is never updated afterwards.
type CaptureMeta struct {
	IPAddress string
	UserAgent string
	Referrer  string
}

type UpdateDetailsRequest struct {
	FullName            string `json:"full_name" binding:"omitempty,max=255"`
	PhoneNumber         string `json:"phone_number" binding:"omitempty,max=50"`
	TypeOfBusiness      string `json:"type_of_business" binding:"omitempty,max=100"`
	CustomBusinessTypes string `json:"custom_business_types" binding:"omitempty,max=1000"`
	Country             string `json:"country" binding:"omitempty,max=100"`
	CustomCountry       string `json:"custom_country" binding:"omitempty,max=100"`
	City                string `json:"city" binding:"omitempty,max=100"`
	HasRunStoreBefore   *bool  `json:"has_run_store_before"`
	WantsTutorialBook   *bool  `json:"wants_tutorial_book"`
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}

type WaitlistEntryResponse struct {
	ID                  string `json:"id"`
	Email               string `json:"email"`
	FullName            string `json:"full_name"`
	PhoneNumber         string `json:"phone_number"`
	TypeOfBusiness      string `json:"type_of_business"`
	CustomBusinessTypes string `json:"custom_business_types"`
	Country             string `json:"country"`
	CustomCountry       string `json:"custom_country"`
	City                string `json:"city"`
	HasRunStoreBefore   bool   `json:"has_run_store_before"`
	WantsTutorialBook   bool   `json:"wants_tutorial_book"`
	UTMSource           string `json:"utm_source"`
	UTMMedium           string `json:"utm_medium"`
	UTMCampaign         string `json:"utm_campaign"`
	Status              string `json:"status"`
	EmailVerified       bool   `json:"email_verified"`
	CreatedAt           string `json:"created_at"`
	UpdatedAt           string `json:"updated_at"`
}

// ========================================
// Mappers
// ========================================

func ToWaitlistEntryModel(req *CaptureEmailRequest, meta CaptureMeta) *models.WaitlistEntry {
	if req == nil {
		return nil
	}
	return &models.WaitlistEntry{
		Email:       req.Email,
		Status:      models.WaitlistStatusPending,
		IPAddress:   meta.IPAddress,
		UserAgent:   meta.UserAgent,
		Referrer:    meta.Referrer,
		UTMSource:   req.UTMSource,
		UTMMedium:   req.UTMMedium,
		UTMCampaign: req.UTMCampaign,
	}
}

func ToWaitlistEntryResponse(entry *models.WaitlistEntry) WaitlistEntryResponse {
	if entry == nil {
		return WaitlistEntryResponse{}
	}
	return WaitlistEntryResponse{
		ID:                  entry.ID,
		Email:               entry.Email,
		FullName:            entry.FullName,
		PhoneNumber:         entry.PhoneNumber,
		TypeOfBusiness:      entry.TypeOfBusiness,
		CustomBusinessTypes: entry.CustomBusinessTypes,
		Country:             entry.Country,
		CustomCountry:       entry.CustomCountry,
		City:                entry.City,
		HasRunStoreBefore:   entry.HasRunStoreBefore,
		WantsTutorialBook:   entry.WantsTutorialBook,
		UTMSource:           entry.UTMSource,
		UTMMedium:           entry.UTMMedium,
		UTMCampaign:         entry.UTMCampaign,
		Status:              entry.Status,
		EmailVerified:       entry.EmailVerified,
		CreatedAt:           entry.CreatedAt.Format(constants.RFC3339DateTimeFormat),
		UpdatedAt:           entry.UpdatedAt.Format(constants.RFC3339DateTimeFormat),
	}
}

func toUpdateMap(req *UpdateDetailsRequest) map[string]interface{} {
	updates := make(map[string]interface{})

	if req.FullName != "" {
		updates["full_name"] = req.FullName
	}
	if req.PhoneNumber != "" {
		updates["phone_number"] = req.PhoneNumber
	}
	if req.TypeOfBusiness != "" {
		updates["type_of_business"] = req.TypeOfBusiness
	}
	if req.CustomBusinessTypes != "" {
		updates["custom_business_types"] = req.CustomBusinessTypes
	}
	if req.Country != "" {
		updates["country"] = req.Country
	}
	if req.CustomCountry != "" {
		updates["custom_country"] = req.CustomCountry
	}
	if req.City != "" {
		updates["city"] = req.City
	}
	if req.HasRunStoreBefore != nil {
		updates["has_run_store_before"] = *req.HasRunStoreBefore
	}
	if req.WantsTutorialBook != nil {
		updates["wants_tutorial_book"] = *req.WantsTutorialBook
	}

	// Calling the details endpoint is itself the completion signal; the
	// transition does not depend on which fields were supplied.
	updates["status"] = models.WaitlistStatusCompleted

	return updates
}
