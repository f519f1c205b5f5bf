package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/dto"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/identity"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/models"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/permissions"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/storage"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ForumService owns the post/comment lifecycle: creation, edits, and the
// moderation mutations (pin, lock, move, soft-delete). Capabilities are
// resolved fresh inside every mutation; the UI hiding a control is never
// trusted.
type ForumService struct {
	store  storage.Store
	filter *ContentFilter
}

func NewForumService(store storage.Store) *ForumService {
	return &ForumService{store: store, filter: NewContentFilter()}
}

func (s *ForumService) CreatePost(actor identity.Identity, req *dto.CreatePostRequest) (*models.Post, error) {
	if !actor.Authenticated {
		return nil, ErrUnauthenticated
	}
	title := strings.TrimSpace(req.Title)
	if len(title) < 3 || len(title) > 200 {
		return nil, fmt.Errorf("%w: title must be 3-200 characters", ErrValidation)
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if err := s.screen(req.Title); err != nil {
		return nil, err
	}
	if err := s.screen(req.Content); err != nil {
		return nil, err
	}
	if _, err := s.store.GetCategory(req.CategoryID); err != nil {
		if err == storage.ErrNotFound {
			return nil, fmt.Errorf("%w: unknown category", ErrValidation)
		}
		return nil, err
	}

	if req.Tags == nil {
		req.Tags = []string{}
	}
	tags, err := json.Marshal(req.Tags)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid tags", ErrValidation)
	}

	post := &models.Post{
		ID:         uuid.New(),
		Title:      title,
		Content:    req.Content,
		AuthorID:   actor.ID,
		AuthorName: actor.Name,
		CategoryID: req.CategoryID,
		Tags:       datatypes.JSON(tags),
	}
	if err := s.store.CreatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost returns a live post with its derived comment count, bumping views.
func (s *ForumService) GetPost(id uuid.UUID) (*models.Post, error) {
	post, err := s.store.GetPost(id, false)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	_ = s.store.IncrementPostViews(id)
	post.Views++
	return s.withCommentCount(post)
}

func (s *ForumService) ListPosts(categoryID *uuid.UUID, page, limit int) ([]models.Post, int64, error) {
	offset := (page - 1) * limit
	posts, total, err := s.store.ListPosts(categoryID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	for i := range posts {
		if _, err := s.withCommentCount(&posts[i]); err != nil {
			return nil, 0, err
		}
	}
	return posts, total, nil
}

// UpdatePost lets the author edit their own post; holders of CanEditAnyPost
// may edit anyone's. The two paths are OR'd. A non-author edit is a
// moderation action and lands in the audit log.
func (s *ForumService) UpdatePost(actor identity.Identity, id uuid.UUID, req *dto.UpdatePostRequest) (*models.Post, error) {
	post, err := s.store.GetPost(id, false)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	isAuthor := actor.Authenticated && post.AuthorID == actor.ID
	caps := permissions.Resolve(actor)
	if !isAuthor && !caps.CanEditAnyPost {
		return nil, ErrForbidden
	}

	title := strings.TrimSpace(req.Title)
	if len(title) < 3 || len(title) > 200 {
		return nil, fmt.Errorf("%w: title must be 3-200 characters", ErrValidation)
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if err := s.screen(req.Title); err != nil {
		return nil, err
	}
	if err := s.screen(req.Content); err != nil {
		return nil, err
	}

	post.Title = title
	post.Content = req.Content
	if req.Tags != nil {
		tags, err := json.Marshal(req.Tags)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid tags", ErrValidation)
		}
		post.Tags = datatypes.JSON(tags)
	}
	if err := s.store.UpdatePostContent(post); err != nil {
		return nil, mapStoreErr(err)
	}

	if !isAuthor {
		if err := s.logAction(actor, models.ActionEdit, models.TargetPost, post.ID, req.Reason); err != nil {
			return nil, err
		}
	}
	return s.withCommentCount(post)
}

func (s *ForumService) TogglePin(actor identity.Identity, id uuid.UUID, pinned bool, reason string) (*models.Post, error) {
	caps := permissions.Resolve(actor)
	if !caps.CanPin {
		return nil, ErrForbidden
	}
	post, err := s.store.GetPost(id, false)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if err := s.store.SetPostPinned(id, pinned); err != nil {
		return nil, mapStoreErr(err)
	}
	post.IsPinned = pinned

	actionType := models.ActionPin
	if !pinned {
		actionType = models.ActionUnpin
	}
	if err := s.logAction(actor, actionType, models.TargetPost, id, reason); err != nil {
		return nil, err
	}
	return s.withCommentCount(post)
}

func (s *ForumService) ToggleLock(actor identity.Identity, id uuid.UUID, locked bool, reason string) (*models.Post, error) {
	caps := permissions.Resolve(actor)
	if !caps.CanLock {
		return nil, ErrForbidden
	}
	post, err := s.store.GetPost(id, false)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if err := s.store.SetPostLocked(id, locked); err != nil {
		return nil, mapStoreErr(err)
	}
	post.IsLocked = locked

	actionType := models.ActionLock
	if !locked {
		actionType = models.ActionUnlock
	}
	if err := s.logAction(actor, actionType, models.TargetPost, id, reason); err != nil {
		return nil, err
	}
	return s.withCommentCount(post)
}

func (s *ForumService) MovePost(actor identity.Identity, id, categoryID uuid.UUID, reason string) (*models.Post, error) {
	caps := permissions.Resolve(actor)
	if !caps.CanModerate {
		return nil, ErrForbidden
	}
	post, err := s.store.GetPost(id, false)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if _, err := s.store.GetCategory(categoryID); err != nil {
		if err == storage.ErrNotFound {
			return nil, fmt.Errorf("%w: unknown category", ErrValidation)
		}
		return nil, err
	}
	if err := s.store.SetPostCategory(id, categoryID); err != nil {
		return nil, mapStoreErr(err)
	}
	post.CategoryID = categoryID

	if err := s.logAction(actor, models.ActionMove, models.TargetPost, id, reason); err != nil {
		return nil, err
	}
	return s.withCommentCount(post)
}

// DeletePost soft-deletes. Allowed for the post's author or CanDelete; the
// reason is mandatory because deletion is irreversible from the member's
// point of view, unlike pin/lock.
func (s *ForumService) DeletePost(actor identity.Identity, id uuid.UUID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: a reason is required to delete", ErrValidation)
	}
	post, err := s.store.GetPost(id, false)
	if err != nil {
		return mapStoreErr(err)
	}

	isAuthor := actor.Authenticated && post.AuthorID == actor.ID
	caps := permissions.Resolve(actor)
	if !isAuthor && !caps.CanDelete {
		return ErrForbidden
	}

	applied, err := s.store.MarkPostDeleted(id)
	if err != nil {
		return err
	}
	if !applied {
		// Raced with another delete; the row is already gone from listings.
		return ErrNotFound
	}
	return s.logAction(actor, models.ActionDelete, models.TargetPost, id, reason)
}

func (s *ForumService) CreateComment(actor identity.Identity, postID uuid.UUID, req *dto.CreateCommentRequest) (*models.Comment, error) {
	if !actor.Authenticated {
		return nil, ErrUnauthenticated
	}
	content := strings.TrimSpace(req.Content)
	if content == "" || len(content) > 2000 {
		return nil, fmt.Errorf("%w: comment must be 1-2000 characters", ErrValidation)
	}
	if err := s.screen(content); err != nil {
		return nil, err
	}

	post, err := s.store.GetPost(postID, false)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	// Locking blocks everyone, moderators included. Only unlocking reopens
	// the thread.
	if post.IsLocked {
		return nil, ErrPostLocked
	}

	if req.ParentID != nil {
		parent, err := s.store.GetComment(*req.ParentID, false)
		if err != nil {
			if err == storage.ErrNotFound {
				return nil, fmt.Errorf("%w: parent comment not found", ErrValidation)
			}
			return nil, err
		}
		if parent.PostID != postID {
			return nil, fmt.Errorf("%w: parent comment belongs to another post", ErrValidation)
		}
	}

	comment := &models.Comment{
		ID:         uuid.New(),
		PostID:     postID,
		ParentID:   req.ParentID,
		AuthorID:   actor.ID,
		AuthorName: actor.Name,
		Content:    content,
	}
	if err := s.store.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *ForumService) ListComments(postID uuid.UUID) ([]models.Comment, error) {
	if _, err := s.store.GetPost(postID, false); err != nil {
		return nil, mapStoreErr(err)
	}
	return s.store.ListComments(postID)
}

func (s *ForumService) UpdateComment(actor identity.Identity, id uuid.UUID, content string) (*models.Comment, error) {
	comment, err := s.store.GetComment(id, false)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	isAuthor := actor.Authenticated && comment.AuthorID == actor.ID
	caps := permissions.Resolve(actor)
	if !isAuthor && !caps.CanEditAnyPost {
		return nil, ErrForbidden
	}

	content = strings.TrimSpace(content)
	if content == "" || len(content) > 2000 {
		return nil, fmt.Errorf("%w: comment must be 1-2000 characters", ErrValidation)
	}
	if err := s.screen(content); err != nil {
		return nil, err
	}
	if err := s.store.UpdateCommentContent(id, content); err != nil {
		return nil, mapStoreErr(err)
	}
	comment.Content = content
	comment.IsEdited = true

	if !isAuthor {
		if err := s.logAction(actor, models.ActionEdit, models.TargetComment, id, ""); err != nil {
			return nil, err
		}
	}
	return comment, nil
}

func (s *ForumService) DeleteComment(actor identity.Identity, id uuid.UUID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: a reason is required to delete", ErrValidation)
	}
	comment, err := s.store.GetComment(id, false)
	if err != nil {
		return mapStoreErr(err)
	}

	isAuthor := actor.Authenticated && comment.AuthorID == actor.ID
	caps := permissions.Resolve(actor)
	if !isAuthor && !caps.CanDelete {
		return ErrForbidden
	}

	applied, err := s.store.MarkCommentDeleted(id)
	if err != nil {
		return err
	}
	if !applied {
		return ErrNotFound
	}
	return s.logAction(actor, models.ActionDelete, models.TargetComment, id, reason)
}

func (s *ForumService) ListCategories() ([]models.Category, error) {
	return s.store.ListCategories()
}

// logAction appends to the moderation log as part of the same logical
// operation: it runs only after the content mutation succeeded.
func (s *ForumService) logAction(actor identity.Identity, actionType, targetType string, targetID uuid.UUID, reason string) error {
	return s.store.AppendAction(&models.ModerationAction{
		ID:         uuid.New(),
		ActorID:    actor.ID,
		ActorName:  actor.Name,
		ActionType: actionType,
		TargetType: targetType,
		TargetID:   targetID,
		Reason:     reason,
	})
}

func (s *ForumService) withCommentCount(post *models.Post) (*models.Post, error) {
	count, err := s.store.CountPostComments(post.ID)
	if err != nil {
		return nil, err
	}
	post.CommentCount = count
	return post, nil
}

func (s *ForumService) screen(text string) error {
	if ok, reason := s.filter.Check(text); !ok {
		return fmt.Errorf("%w: %s", ErrValidation, s.filter.RejectionMessage(reason))
	}
	return nil
}

func mapStoreErr(err error) error {
	if err == storage.ErrNotFound {
		return ErrNotFound
	}
	return err
}
