package handlers

import (
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/dto"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/identity"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ModerationHandler struct {
	moderationService *services.ModerationService
}

func NewModerationHandler(moderationService *services.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderationService: moderationService}
}

func (h *ModerationHandler) CreateReport(c *fiber.Ctx) error {
	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	report, err := h.moderationService.SubmitReport(identity.FromContext(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

func (h *ModerationHandler) ResolveReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid report ID")
	}
	var req dto.ResolveReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	report, err := h.moderationService.ResolveReport(identity.FromContext(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

func (h *ModerationHandler) ListReports(c *fiber.Ctx) error {
	status := c.Query("status", "")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	reports, total, err := h.moderationService.ListReports(status, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"reports": reports,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

func (h *ModerationHandler) InspectPost(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post ID")
	}

	post, err := h.moderationService.InspectPost(identity.FromContext(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

func (h *ModerationHandler) InspectComment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid comment ID")
	}

	comment, err := h.moderationService.InspectComment(identity.FromContext(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comment)
}

func (h *ModerationHandler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	actions, err := h.moderationService.RecentActivity(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"actions": actions,
		"limit":   limit,
		"offset":  offset,
	})
}

func (h *ModerationHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.moderationService.Stats()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
