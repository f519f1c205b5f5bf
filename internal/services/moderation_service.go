package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/dto"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/identity"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/models"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/permissions"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/storage"
	"github.com/google/uuid"
)

// ModerationService owns the report queue, the moderation history feed, and
// the on-demand stats aggregate.
type ModerationService struct {
	store storage.Store

	// Injectable for tests; Stats cuts the day at local midnight.
	now func() time.Time
}

func NewModerationService(store storage.Store) *ModerationService {
	return &ModerationService{store: store, now: time.Now}
}

// SubmitReport files a report against a post, comment, or user. Any
// authenticated member may report; duplicates are allowed by design so the
// queue reflects how many people flagged something.
func (s *ModerationService) SubmitReport(reporter identity.Identity, req *dto.CreateReportRequest) (*models.UserReport, error) {
	if !reporter.Authenticated {
		return nil, ErrUnauthenticated
	}
	switch req.TargetType {
	case models.TargetPost, models.TargetComment, models.TargetUser:
	default:
		return nil, fmt.Errorf("%w: target_type must be post, comment, or user", ErrValidation)
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, fmt.Errorf("%w: reason is required", ErrValidation)
	}

	report := &models.UserReport{
		ID:           uuid.New(),
		ReporterID:   reporter.ID,
		ReporterName: reporter.Name,
		TargetType:   req.TargetType,
		TargetID:     req.TargetID,
		Reason:       req.Reason,
		Description:  req.Description,
		Status:       models.ReportPending,
	}
	if err := s.store.CreateReport(report); err != nil {
		return nil, err
	}
	return report, nil
}

// ResolveReport moves a pending report to resolved or dismissed, exactly
// once. Resolution never touches the reported content; acting on the content
// is a separate moderator operation.
func (s *ModerationService) ResolveReport(actor identity.Identity, id uuid.UUID, req *dto.ResolveReportRequest) (*models.UserReport, error) {
	caps := permissions.Resolve(actor)
	if !caps.CanModerate {
		return nil, ErrForbidden
	}
	if req.Status != models.ReportResolved && req.Status != models.ReportDismissed {
		return nil, fmt.Errorf("%w: status must be resolved or dismissed", ErrValidation)
	}

	applied, err := s.store.ResolveReport(id, req.Status, req.ResolutionNote)
	if err != nil {
		return nil, err
	}
	if !applied {
		// Distinguish "never existed" from "exists but already terminal".
		if _, err := s.store.GetReport(id); err != nil {
			return nil, mapStoreErr(err)
		}
		return nil, fmt.Errorf("%w: report is no longer pending", ErrConflict)
	}
	return s.store.GetReport(id)
}

func (s *ModerationService) ListPendingReports(page, limit int) ([]models.UserReport, int64, error) {
	offset := (page - 1) * limit
	return s.store.ListReports(models.ReportPending, offset, limit)
}

func (s *ModerationService) ListReports(status string, page, limit int) ([]models.UserReport, int64, error) {
	if status != "" {
		switch status {
		case models.ReportPending, models.ReportResolved, models.ReportDismissed:
		default:
			return nil, 0, fmt.Errorf("%w: unknown report status", ErrValidation)
		}
	}
	offset := (page - 1) * limit
	return s.store.ListReports(status, offset, limit)
}

// InspectPost fetches a post for the moderation panel, soft-deleted rows
// included, so a moderator can still see the content behind a report or an
// audit entry.
func (s *ModerationService) InspectPost(actor identity.Identity, id uuid.UUID) (*models.Post, error) {
	caps := permissions.Resolve(actor)
	if !caps.CanModerate {
		return nil, ErrForbidden
	}
	post, err := s.store.GetPost(id, true)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	count, err := s.store.CountPostComments(post.ID)
	if err != nil {
		return nil, err
	}
	post.CommentCount = count
	return post, nil
}

// InspectComment is the comment counterpart of InspectPost.
func (s *ModerationService) InspectComment(actor identity.Identity, id uuid.UUID) (*models.Comment, error) {
	caps := permissions.Resolve(actor)
	if !caps.CanModerate {
		return nil, ErrForbidden
	}
	comment, err := s.store.GetComment(id, true)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return comment, nil
}

// RecentActivity returns the moderation log newest first, restartable via
// offset.
func (s *ModerationService) RecentActivity(limit, offset int) ([]models.ModerationAction, error) {
	return s.store.ListActions(offset, limit)
}

// Stats is computed by query on every call, nothing is maintained
// incrementally. actions_today counts log entries since local midnight.
func (s *ModerationService) Stats() (*dto.StatsResponse, error) {
	pending, err := s.store.CountReports(models.ReportPending)
	if err != nil {
		return nil, err
	}

	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	actionsToday, err := s.store.CountActionsSince(midnight)
	if err != nil {
		return nil, err
	}

	totalPosts, err := s.store.CountPosts()
	if err != nil {
		return nil, err
	}
	totalComments, err := s.store.CountComments()
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		PendingReports: pending,
		ActionsToday:   actionsToday,
		TotalPosts:     totalPosts,
		TotalComments:  totalComments,
	}, nil
}
