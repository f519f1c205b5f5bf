package storage

import (
	"errors"
	"time"

	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/models"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a row does not exist (or is soft-deleted and
// the caller asked for live rows only).
var ErrNotFound = errors.New("record not found")

// Store is the persistence surface the services run against. The GORM
// implementation lives in postgres.go; tests substitute a mock.
type Store interface {
	// Posts. Listings and live reads exclude soft-deleted rows; GetPost with
	// includeDeleted still resolves deleted ids for audit references.
	CreatePost(post *models.Post) error
	GetPost(id uuid.UUID, includeDeleted bool) (*models.Post, error)
	ListPosts(categoryID *uuid.UUID, offset, limit int) ([]models.Post, int64, error)
	UpdatePostContent(post *models.Post) error
	SetPostPinned(id uuid.UUID, pinned bool) error
	SetPostLocked(id uuid.UUID, locked bool) error
	SetPostCategory(id, categoryID uuid.UUID) error
	MarkPostDeleted(id uuid.UUID) (bool, error)
	IncrementPostViews(id uuid.UUID) error
	CountPosts() (int64, error)

	// Comments.
	CreateComment(comment *models.Comment) error
	GetComment(id uuid.UUID, includeDeleted bool) (*models.Comment, error)
	ListComments(postID uuid.UUID) ([]models.Comment, error)
	UpdateCommentContent(id uuid.UUID, content string) error
	MarkCommentDeleted(id uuid.UUID) (bool, error)
	CountPostComments(postID uuid.UUID) (int64, error)
	CountComments() (int64, error)

	// Categories.
	GetCategory(id uuid.UUID) (*models.Category, error)
	ListCategories() ([]models.Category, error)

	// Moderation log. Append-only: no update or delete exists on purpose.
	AppendAction(action *models.ModerationAction) error
	ListActions(offset, limit int) ([]models.ModerationAction, error)
	CountActionsSince(since time.Time) (int64, error)

	// Reports. ResolveReport only transitions rows still in pending and
	// reports whether it applied, so a terminal report can never transition
	// twice even under concurrent resolvers.
	CreateReport(report *models.UserReport) error
	GetReport(id uuid.UUID) (*models.UserReport, error)
	ResolveReport(id uuid.UUID, status, note string) (bool, error)
	ListReports(status string, offset, limit int) ([]models.UserReport, int64, error)
	CountReports(status string) (int64, error)
}
