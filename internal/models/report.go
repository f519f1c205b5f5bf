package models

import (
	"time"

	"github.com/google/uuid"
)

// Report statuses. Pending is the only non-terminal state.
const (
	ReportPending   = "pending"
	ReportResolved  = "resolved"
	ReportDismissed = "dismissed"
)

// UserReport is a member-submitted flag against a post, comment, or user.
type UserReport struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReporterID     uuid.UUID `gorm:"type:uuid;not null;index" json:"reporter_id"`
	ReporterName   string    `gorm:"size:100;not null" json:"reporter_name"`
	TargetType     string    `gorm:"size:20;not null" json:"target_type"`
	TargetID       uuid.UUID `gorm:"type:uuid;not null;index" json:"target_id"`
	Reason         string    `gorm:"size:200;not null" json:"reason"`
	Description    string    `gorm:"size:1000" json:"description,omitempty"`
	Status         string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	ResolutionNote string    `gorm:"size:1000" json:"resolution_note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (UserReport) TableName() string {
	return "user_reports"
}
