package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups posts (spotting reports, gear talk, trip planning, ...).
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Slug      string    `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}
