package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Post is a forum discussion thread. Deletion is soft: the row stays so the
// moderation log can keep referencing its id.
type Post struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title      string         `gorm:"size:200;not null" json:"title"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	AuthorID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"author_id"`
	AuthorName string         `gorm:"size:100;not null" json:"author_name"`
	CategoryID uuid.UUID      `gorm:"type:uuid;index" json:"category_id"`
	Category   Category       `gorm:"foreignKey:CategoryID" json:"-"`
	Tags       datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"tags"`
	IsPinned   bool           `gorm:"default:false;index" json:"is_pinned"`
	IsLocked   bool           `gorm:"default:false" json:"is_locked"`
	IsDeleted  bool           `gorm:"default:false;index" json:"is_deleted"`
	Views      int            `gorm:"default:0" json:"views"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	// Derived from non-deleted comment rows at read time, never stored.
	CommentCount int64 `gorm:"-" json:"comment_count"`
}

func (Post) TableName() string {
	return "posts"
}
