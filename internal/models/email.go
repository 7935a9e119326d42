package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Queued email statuses. Rows are only ever written with StatusPending by
// this service; delivery is handled out of process.
const (
	EmailStatusPending = "pending"
	EmailStatusSent    = "sent"
	EmailStatusFailed  = "failed"
)

// QueuedEmail is one outbound message waiting in the email_queue table.
type QueuedEmail struct {
	ID              string     `gorm:"type:text;primaryKey" json:"id"`
	ToEmail         string     `gorm:"size:255;not null" json:"to_email"`
	FromEmail       string     `gorm:"size:255;not null" json:"from_email"`
	Subject         string     `gorm:"size:255;not null" json:"subject"`
	HTMLContent     string     `gorm:"type:text;not null" json:"html_content"`
	TextContent     string     `gorm:"type:text" json:"text_content"`
	TemplateID      string     `gorm:"type:text" json:"template_id"`
	WaitlistEntryID string     `gorm:"type:text;index" json:"waitlist_entry_id"`
	Status          string     `gorm:"size:20;not null;default:pending" json:"status"`
	Attempts        int        `gorm:"not null;default:0" json:"attempts"`
	MaxAttempts     int        `gorm:"not null;default:3" json:"max_attempts"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
	SentAt          *time.Time `json:"sent_at"`
	ErrorMessage    string     `gorm:"type:text" json:"error_message"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null" json:"updated_at"`
}

func (m *QueuedEmail) TableName() string {
	return "email_queue"
}

func (m *QueuedEmail) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
