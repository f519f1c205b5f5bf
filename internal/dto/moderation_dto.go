package dto

import "github.com/google/uuid"

type CreateReportRequest struct {
	TargetType  string    `json:"target_type"`
	TargetID    uuid.UUID `json:"target_id"`
	Reason      string    `json:"reason"`
	Description string    `json:"description,omitempty"`
}

type ResolveReportRequest struct {
	Status         string `json:"status"`
	ResolutionNote string `json:"resolution_note,omitempty"`
}

type StatsResponse struct {
	PendingReports int64 `json:"pending_reports"`
	ActionsToday   int64 `json:"actions_today"`
	TotalPosts     int64 `json:"total_posts"`
	TotalComments  int64 `json:"total_comments"`
}
