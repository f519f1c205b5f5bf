package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reply on a post, optionally threaded under another comment.
type Comment struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PostID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"post_id"`
	ParentID   *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	AuthorID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"author_id"`
	AuthorName string     `gorm:"size:100;not null" json:"author_name"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	IsEdited   bool       `gorm:"default:false" json:"is_edited"`
	IsDeleted  bool       `gorm:"default:false;index" json:"is_deleted"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
