package services

import (
	"testing"
	"time"

	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/dto"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/identity"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/models"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSubmitReport_CreatesPendingEntry(t *testing.T) {
	store := new(MockStore)
	svc := NewModerationService(store)

	reporter := memberIdentity()
	targetID := uuid.New()

	store.On("CreateReport", mock.MatchedBy(func(r *models.UserReport) bool {
		return r.ReporterID == reporter.ID &&
			r.TargetType == models.TargetComment &&
			r.TargetID == targetID &&
			r.Reason == "spam" &&
			r.Status == models.ReportPending
	})).Return(nil).Once()

	report, err := svc.SubmitReport(reporter, &dto.CreateReportRequest{
		TargetType: models.TargetComment,
		TargetID:   targetID,
		Reason:     "spam",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.ReportPending, report.Status)
	store.AssertExpectations(t)
}

func TestSubmitReport_Validation(t *testing.T) {
	store := new(MockStore)
	svc := NewModerationService(store)
	reporter := memberIdentity()

	tests := []struct {
		name string
		req  dto.CreateReportRequest
	}{
		{"malformed target type", dto.CreateReportRequest{TargetType: "wiki", TargetID: uuid.New(), Reason: "spam"}},
		{"empty reason", dto.CreateReportRequest{TargetType: models.TargetPost, TargetID: uuid.New(), Reason: "  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SubmitReport(reporter, &tt.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
	store.AssertNotCalled(t, "CreateReport", mock.Anything)
}

func TestSubmitReport_RequiresAuthentication(t *testing.T) {
	store := new(MockStore)
	svc := NewModerationService(store)

	_, err := svc.SubmitReport(identity.Anonymous(), &dto.CreateReportRequest{
		TargetType: models.TargetPost,
		TargetID:   uuid.New(),
		Reason:     "spam",
	})

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolveReport_RequiresModerate(t *testing.T) {
	store := new(MockStore)
	svc := NewModerationService(store)

	_, err := svc.ResolveReport(memberIdentity(), uuid.New(), &dto.ResolveReportRequest{
		Status: models.ReportDismissed,
	})

	assert.ErrorIs(t, err, ErrForbidden)
	store.AssertNotCalled(t, "ResolveReport", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveReport_InvalidStatus(t *testing.T) {
	store := new(MockStore)
	svc := NewModerationService(store)

	_, err := svc.ResolveReport(moderatorIdentity(), uuid.New(), &dto.ResolveReportRequest{
		Status: "escalated",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestResolveReport_TransitionsOnce(t *testing.T) {
	store := new(MockStore)
	svc := NewModerationService(store)

	actor := moderatorIdentity()
	id := uuid.New()
	resolved := &models.UserReport{ID: id, Status: models.ReportDismissed, ResolutionNote: "not actionable"}

	store.On("ResolveReport", id, models.ReportDismissed, "not actionable").Return(true, nil).Once()
	store.On("GetReport", id).Return(resolved, nil)

	report, err := svc.ResolveReport(actor, id, &dto.ResolveReportRequest{
		Status:         models.ReportDismissed,
		ResolutionNote: "not actionable",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.ReportDismissed, report.Status)
	store.AssertExpectations(t)
}

// A second resolve attempt on a terminal report is a state conflict, and the
// stored terminal status is untouched.
func TestResolveReport_SecondAttemptConflicts(t *testing.T) {
	store := new(MockStore)
	svc := NewModerationService(store)

	id := uuid.New()
	terminal := &models.UserReport{ID: id, Status: models.ReportDismissed}

	store.On("ResolveReport", id, models.ReportResolved, "").Return(false, nil)
	store.On("GetReport", id).Return(terminal, nil)

	_, err := svc.ResolveReport(moderatorIdentity(), id, &dto.ResolveReportRequest{
		Status: models.ReportResolved,
	})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, models.ReportDismissed, terminal.Status)
}

func TestResolveReport_MissingReport(t *testing.T) {
	store := new(MockStore)
	svc := NewModerationService(store)

	id := uuid.New()
	store.On("ResolveReport", id, models.ReportResolved, "").Return(false, nil)
	store.On("GetReport", id).Return(nil, storage.ErrNotFound)

	_, err := svc.ResolveReport(moderatorIdentity(), id, &dto.ResolveReportRequest{
		Status: models.ReportResolved,
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPendingReports(t *testing.T) {
	store := new(MockStore)
	svc := NewModerationService(store)

	pending := []models.UserReport{{ID: uuid.New(), Status: models.ReportPending}}
	store.On("ListReports", models.ReportPending, 0, 20).Return(pending, int64(1), nil)

	reports, total, err := svc.ListPendingReports(1, 20)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, reports, 1)
}

func TestStats_CountsFromLocalMidnight(t *testing.T) {
	store := new(MockStore)
	svc := NewModerationService(store)

	fixed := time.Date(2026, time.March, 14, 15, 30, 0, 0, time.Local)
	svc.now = func() time.Time { return fixed }
	midnight := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.Local)

	store.On("CountReports", models.ReportPending).Return(int64(4), nil)
	store.On("CountActionsSince", midnight).Return(int64(2), nil)
	store.On("CountPosts").Return(int64(120), nil)
	store.On("CountComments").Return(int64(987), nil)

	stats, err := svc.Stats()

	assert.NoError(t, err)
	assert.Equal(t, int64(4), stats.PendingReports)
	assert.Equal(t, int64(2), stats.ActionsToday)
	assert.Equal(t, int64(120), stats.TotalPosts)
	assert.Equal(t, int64(987), stats.TotalComments)
	store.AssertExpectations(t)
}

// Soft-deleted content stays reachable through the moderation panel so audit
// entries keep resolving to something reviewable.
func TestInspectPost_IncludesDeleted(t *testing.T) {
	store := new(MockStore)
	svc := NewModerationService(store)

	post := livePost(uuid.New())
	post.IsDeleted = true

	store.On("GetPost", post.ID, true).Return(post, nil)
	store.On("CountPostComments", post.ID).Return(int64(12), nil)

	got, err := svc.InspectPost(moderatorIdentity(), post.ID)

	assert.NoError(t, err)
	assert.True(t, got.IsDeleted)
	assert.Equal(t, int64(12), got.CommentCount)
}

func TestInspectPost_RequiresModerate(t *testing.T) {
	store := new(MockStore)
	svc := NewModerationService(store)

	_, err := svc.InspectPost(memberIdentity(), uuid.New())

	assert.ErrorIs(t, err, ErrForbidden)
	store.AssertNotCalled(t, "GetPost", mock.Anything, mock.Anything)
}

func TestRecentActivity_PassesThroughOrdering(t *testing.T) {
	store := new(MockStore)
	svc := NewModerationService(store)

	actions := []models.ModerationAction{
		{ID: uuid.New(), ActionType: models.ActionPin},
		{ID: uuid.New(), ActionType: models.ActionDelete},
	}
	store.On("ListActions", 0, 1).Return(actions[:1], nil)

	got, err := svc.RecentActivity(1, 0)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, models.ActionPin, got[0].ActionType)
}
