package models

import (
	"time"

	"github.com/google/uuid"
)

// Action types recorded in the moderation log.
const (
	ActionPin    = "pin"
	ActionUnpin  = "unpin"
	ActionLock   = "lock"
	ActionUnlock = "unlock"
	ActionDelete = "delete"
	ActionEdit   = "edit"
	ActionMove   = "move"
)

// Moderation target types.
const (
	TargetPost    = "post"
	TargetComment = "comment"
	TargetUser    = "user"
)

// ModerationAction is one entry in the append-only moderation log. The target
// id may reference soft-deleted content; that is the point of keeping it.
type ModerationAction struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"actor_id"`
	ActorName  string    `gorm:"size:100;not null" json:"actor_name"`
	ActionType string    `gorm:"size:20;not null" json:"action_type"`
	TargetType string    `gorm:"size:20;not null" json:"target_type"`
	TargetID   uuid.UUID `gorm:"type:uuid;not null;index" json:"target_id"`
	Reason     string    `gorm:"size:500" json:"reason,omitempty"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

func (ModerationAction) TableName() string {
	return "moderation_actions"
}
