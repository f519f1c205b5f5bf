package dto

import "github.com/google/uuid"

type CreatePostRequest struct {
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CategoryID uuid.UUID `json:"category_id"`
	Tags       []string  `json:"tags"`
}

type UpdatePostRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Reason  string   `json:"reason,omitempty"`
}

type PinRequest struct {
	Pinned bool   `json:"pinned"`
	Reason string `json:"reason,omitempty"`
}

type LockRequest struct {
	Locked bool   `json:"locked"`
	Reason string `json:"reason,omitempty"`
}

type MoveRequest struct {
	CategoryID uuid.UUID `json:"category_id"`
	Reason     string    `json:"reason,omitempty"`
}

// DeleteRequest carries the mandatory deletion reason. Pin/lock reasons are
// optional; delete reasons are not.
type DeleteRequest struct {
	Reason string `json:"reason"`
}

type CreateCommentRequest struct {
	Content  string     `json:"content"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}
