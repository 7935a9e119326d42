package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Waitlist entry statuses
const (
	WaitlistStatusPending   = "pending"
	WaitlistStatusCompleted = "completed"
)

type WaitlistEntry struct {
	ID                      string     `gorm:"type:text;primaryKey" json:"id"`
	Email                   string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	FullName                string     `gorm:"size:255" json:"full_name"`
	PhoneNumber             string     `gorm:"size:50" json:"phone_number"`
	TypeOfBusiness          string     `gorm:"size:100" json:"type_of_business"`
	CustomBusinessTypes     string     `gorm:"type:text" json:"custom_business_types"`
	Country                 string     `gorm:"size:100" json:"country"`
	CustomCountry           string     `gorm:"size:100" json:"custom_country"`
	City                    string     `gorm:"size:100" json:"city"`
	HasRunStoreBefore       bool       `gorm:"not null;default:false" json:"has_run_store_before"`
	WantsTutorialBook       bool       `gorm:"not null;default:false" json:"wants_tutorial_book"`
	IPAddress               string     `gorm:"size:45" json:"ip_address"`
	UserAgent               string     `gorm:"type:text" json:"user_agent"`
	Referrer                string     `gorm:"type:text" json:"referrer"`
	UTMSource               string     `gorm:"size:100" json:"utm_source"`
	UTMMedium               string     `gorm:"size:100" json:"utm_medium"`
	UTMCampaign             string     `gorm:"size:100" json:"utm_campaign"`
	Status                  string     `gorm:"size:20;not null;default:pending" json:"status"`
	EmailVerified           bool       `gorm:"not null;default:false" json:"email_verified"`
	EmailVerificationToken  string     `gorm:"size:255" json:"-"`
	EmailVerificationSentAt *time.Time `json:"email_verification_sent_at"`
	CreatedAt               time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt               time.Time  `gorm:"not null" json:"updated_at"`
}

func (e *WaitlistEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Status == "" {
		e.Status = WaitlistStatusPending
	}
	return nil
}

// IsCompleted reports whether the entry's email is permanently claimed.
func (e *WaitlistEntry) IsCompleted() bool {
	return e.Status == WaitlistStatusCompleted
}
