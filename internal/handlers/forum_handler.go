package handlers

import (
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/dto"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/identity"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ForumHandler struct {
	forumService *services.ForumService
}

func NewForumHandler(forumService *services.ForumService) *ForumHandler {
	return &ForumHandler{forumService: forumService}
}

func (h *ForumHandler) CreatePost(c *fiber.Ctx) error {
	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	post, err := h.forumService.CreatePost(identity.FromContext(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *ForumHandler) GetPost(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post ID")
	}

	post, err := h.forumService.GetPost(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

func (h *ForumHandler) ListPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	var categoryID *uuid.UUID
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "Invalid category ID")
		}
		categoryID = &id
	}

	posts, total, err := h.forumService.ListPosts(categoryID, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"posts": posts,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (h *ForumHandler) UpdatePost(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post ID")
	}
	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	post, err := h.forumService.UpdatePost(identity.FromContext(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

func (h *ForumHandler) PinPost(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post ID")
	}
	var req dto.PinRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	post, err := h.forumService.TogglePin(identity.FromContext(c), id, req.Pinned, req.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

func (h *ForumHandler) LockPost(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post ID")
	}
	var req dto.LockRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	post, err := h.forumService.ToggleLock(identity.FromContext(c), id, req.Locked, req.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

func (h *ForumHandler) MovePost(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post ID")
	}
	var req dto.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	post, err := h.forumService.MovePost(identity.FromContext(c), id, req.CategoryID, req.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

func (h *ForumHandler) DeletePost(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post ID")
	}
	var req dto.DeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.forumService.DeletePost(identity.FromContext(c), id, req.Reason); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

func (h *ForumHandler) CreateComment(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post ID")
	}
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	comment, err := h.forumService.CreateComment(identity.FromContext(c), postID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *ForumHandler) ListComments(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post ID")
	}

	comments, err := h.forumService.ListComments(postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"comments": comments})
}

func (h *ForumHandler) UpdateComment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid comment ID")
	}
	var req dto.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	comment, err := h.forumService.UpdateComment(identity.FromContext(c), id, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comment)
}

func (h *ForumHandler) DeleteComment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid comment ID")
	}
	var req dto.DeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.forumService.DeleteComment(identity.FromContext(c), id, req.Reason); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}

func (h *ForumHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.forumService.ListCategories()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"categories": categories})
}
