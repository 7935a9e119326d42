package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Value types for site content and settings records.
const (
	ValueTypeText    = "text"
	ValueTypeNumber  = "number"
	ValueTypeBoolean = "boolean"
	ValueTypeJSON    = "json"
)

// SiteContent is an editable piece of site copy keyed by a stable name.
// The frontend reads active records at render time.
type SiteContent struct {
	ID          string `gorm:"type:text;primaryKey" json:"id"`
	Key         string `gorm:"size:100;not null;uniqueIndex" json:"key"`
	Value       string `gorm:"type:text;not null" json:"value"`
	Type        string `gorm:"size:20;not null;default:text" json:"type"`
	Category    string `gorm:"size:50;not null" json:"category"`
	Description string `gorm:"type:text" json:"description"`
	// No gorm default tag: gorm drops zero-value fields that carry one on
	// insert, so an explicit false would be stored as true. The application
	// default lives in ToSiteContentModel.
	IsActive  bool      `gorm:"not null" json:"is_active"`
	UpdatedBy string    `gorm:"type:text" json:"updated_by"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (c *SiteContent) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// SiteSetting is a behavior flag or configuration value keyed by a stable
// name. Sensitive settings are never returned on the public surface.
type SiteSetting struct {
	ID          string    `gorm:"type:text;primaryKey" json:"id"`
	Key         string    `gorm:"size:100;not null;uniqueIndex" json:"key"`
	Value       string    `gorm:"type:text;not null" json:"value"`
	Type        string    `gorm:"size:20;not null;default:text" json:"type"`
	Category    string    `gorm:"size:50;not null" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	IsSensitive bool      `gorm:"not null;default:false" json:"is_sensitive"`
	UpdatedBy   string    `gorm:"type:text" json:"updated_by"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (s *SiteSetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
