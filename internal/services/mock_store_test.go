package services

import (
	"time"

	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStore is a hand-written testify mock of storage.Store so service
// behaviour can be exercised without a database.
type MockStore struct {
	mock.Mock
}

// --- Posts ---

func (m *MockStore) CreatePost(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockStore) GetPost(id uuid.UUID, includeDeleted bool) (*models.Post, error) {
	args := m.Called(id, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockStore) ListPosts(categoryID *uuid.UUID, offset, limit int) ([]models.Post, int64, error) {
	args := m.Called(categoryID, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore) UpdatePostContent(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockStore) SetPostPinned(id uuid.UUID, pinned bool) error {
	args := m.Called(id, pinned)
	return args.Error(0)
}

func (m *MockStore) SetPostLocked(id uuid.UUID, locked bool) error {
	args := m.Called(id, locked)
	return args.Error(0)
}

func (m *MockStore) SetPostCategory(id, categoryID uuid.UUID) error {
	args := m.Called(id, categoryID)
	return args.Error(0)
}

func (m *MockStore) MarkPostDeleted(id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) IncrementPostViews(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStore) CountPosts() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// --- Comments ---

func (m *MockStore) CreateComment(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockStore) GetComment(id uuid.UUID, includeDeleted bool) (*models.Comment, error) {
	args := m.Called(id, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockStore) ListComments(postID uuid.UUID) ([]models.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockStore) UpdateCommentContent(id uuid.UUID, content string) error {
	args := m.Called(id, content)
	return args.Error(0)
}

func (m *MockStore) MarkCommentDeleted(id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) CountPostComments(postID uuid.UUID) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) CountComments() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// --- Categories ---

func (m *MockStore) GetCategory(id uuid.UUID) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockStore) ListCategories() ([]models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

// --- Moderation log ---

func (m *MockStore) AppendAction(action *models.ModerationAction) error {
	args := m.Called(action)
	return args.Error(0)
}

func (m *MockStore) ListActions(offset, limit int) ([]models.ModerationAction, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ModerationAction), args.Error(1)
}

func (m *MockStore) CountActionsSince(since time.Time) (int64, error) {
	args := m.Called(since)
	return args.Get(0).(int64), args.Error(1)
}

// --- Reports ---

func (m *MockStore) CreateReport(report *models.UserReport) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockStore) GetReport(id uuid.UUID) (*models.UserReport, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserReport), args.Error(1)
}

func (m *MockStore) ResolveReport(id uuid.UUID, status, note string) (bool, error) {
	args := m.Called(id, status, note)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) ListReports(status string, offset, limit int) ([]models.UserReport, int64, error) {
	args := m.Called(status, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.UserReport), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore) CountReports(status string) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}
