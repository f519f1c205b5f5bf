package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore implements Store on a GORM-managed Postgres connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// --- Posts ---

func (s *GormStore) CreatePost(post *models.Post) error {
	if err := s.db.Create(post).Error; err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (s *GormStore) GetPost(id uuid.UUID, includeDeleted bool) (*models.Post, error) {
	var post models.Post
	query := s.db.Where("id = ?", id)
	if !includeDeleted {
		query = query.Where("is_deleted = false")
	}
	if err := query.First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &post, nil
}

func (s *GormStore) ListPosts(categoryID *uuid.UUID, offset, limit int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	query := s.db.Model(&models.Post{}).Where("is_deleted = false")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	err := query.Order("is_pinned DESC, created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	return posts, total, nil
}

func (s *GormStore) UpdatePostContent(post *models.Post) error {
	result := s.db.Model(&models.Post{}).
		Where("id = ? AND is_deleted = false", post.ID).
		Updates(map[string]interface{}{
			"title":   post.Title,
			"content": post.Content,
			"tags":    post.Tags,
		})
	if result.Error != nil {
		return fmt.Errorf("update post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) SetPostPinned(id uuid.UUID, pinned bool) error {
	return s.setPostFlag(id, "is_pinned", pinned)
}

func (s *GormStore) SetPostLocked(id uuid.UUID, locked bool) error {
	return s.setPostFlag(id, "is_locked", locked)
}

// Last write wins on lifecycle flags; no version check. Concurrent toggles by
// two moderators are a known, low-stakes race.
func (s *GormStore) setPostFlag(id uuid.UUID, column string, value bool) error {
	result := s.db.Model(&models.Post{}).
		Where("id = ? AND is_deleted = false", id).
		Update(column, value)
	if result.Error != nil {
		return fmt.Errorf("update %s: %w", column, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) SetPostCategory(id, categoryID uuid.UUID) error {
	result := s.db.Model(&models.Post{}).
		Where("id = ? AND is_deleted = false", id).
		Update("category_id", categoryID)
	if result.Error != nil {
		return fmt.Errorf("update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) MarkPostDeleted(id uuid.UUID) (bool, error) {
	result := s.db.Model(&models.Post{}).
		Where("id = ? AND is_deleted = false", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return false, fmt.Errorf("delete post: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *GormStore) IncrementPostViews(id uuid.UUID) error {
	return s.db.Model(&models.Post{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).Error
}

func (s *GormStore) CountPosts() (int64, error) {
	var total int64
	err := s.db.Model(&models.Post{}).Where("is_deleted = false").Count(&total).Error
	return total, err
}

// --- Comments ---

func (s *GormStore) CreateComment(comment *models.Comment) error {
	if err := s.db.Create(comment).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (s *GormStore) GetComment(id uuid.UUID, includeDeleted bool) (*models.Comment, error) {
	var comment models.Comment
	query := s.db.Where("id = ?", id)
	if !includeDeleted {
		query = query.Where("is_deleted = false")
	}
	if err := query.First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &comment, nil
}

func (s *GormStore) ListComments(postID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Where("post_id = ? AND is_deleted = false", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *GormStore) UpdateCommentContent(id uuid.UUID, content string) error {
	result := s.db.Model(&models.Comment{}).
		Where("id = ? AND is_deleted = false", id).
		Updates(map[string]interface{}{
			"content":   content,
			"is_edited": true,
		})
	if result.Error != nil {
		return fmt.Errorf("update comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) MarkCommentDeleted(id uuid.UUID) (bool, error) {
	result := s.db.Model(&models.Comment{}).
		Where("id = ? AND is_deleted = false", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return false, fmt.Errorf("delete comment: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *GormStore) CountPostComments(postID uuid.UUID) (int64, error) {
	var total int64
	err := s.db.Model(&models.Comment{}).
		Where("post_id = ? AND is_deleted = false", postID).
		Count(&total).Error
	return total, err
}

func (s *GormStore) CountComments() (int64, error) {
	var total int64
	err := s.db.Model(&models.Comment{}).Where("is_deleted = false").Count(&total).Error
	return total, err
}

// --- Categories ---

func (s *GormStore) GetCategory(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &category, nil
}

func (s *GormStore) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// --- Moderation log ---

func (s *GormStore) AppendAction(action *models.ModerationAction) error {
	if err := s.db.Create(action).Error; err != nil {
		return fmt.Errorf("append moderation action: %w", err)
	}
	return nil
}

func (s *GormStore) ListActions(offset, limit int) ([]models.ModerationAction, error) {
	var actions []models.ModerationAction
	err := s.db.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&actions).Error
	if err != nil {
		return nil, fmt.Errorf("list moderation actions: %w", err)
	}
	return actions, nil
}

func (s *GormStore) CountActionsSince(since time.Time) (int64, error) {
	var total int64
	err := s.db.Model(&models.ModerationAction{}).
		Where("created_at >= ?", since).
		Count(&total).Error
	return total, err
}

// --- Reports ---

func (s *GormStore) CreateReport(report *models.UserReport) error {
	if err := s.db.Create(report).Error; err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

func (s *GormStore) GetReport(id uuid.UUID) (*models.UserReport, error) {
	var report models.UserReport
	if err := s.db.Where("id = ?", id).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	return &report, nil
}

// ResolveReport transitions a pending report to a terminal status. The status
// guard in the WHERE clause makes the transition happen at most once.
func (s *GormStore) ResolveReport(id uuid.UUID, status, note string) (bool, error) {
	result := s.db.Model(&models.UserReport{}).
		Where("id = ? AND status = ?", id, models.ReportPending).
		Updates(map[string]interface{}{
			"status":          status,
			"resolution_note": note,
		})
	if result.Error != nil {
		return false, fmt.Errorf("resolve report: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *GormStore) ListReports(status string, offset, limit int) ([]models.UserReport, int64, error) {
	var reports []models.UserReport
	var total int64

	query := s.db.Model(&models.UserReport{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count reports: %w", err)
	}

	err := query.Order("created_at ASC").Offset(offset).Limit(limit).Find(&reports).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}
	return reports, total, nil
}

func (s *GormStore) CountReports(status string) (int64, error) {
	var total int64
	query := s.db.Model(&models.UserReport{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&total).Error
	return total, err
}
