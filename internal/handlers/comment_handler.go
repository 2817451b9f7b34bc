package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/playtube/playtube-backend/internal/apperr"
	"github.com/playtube/playtube-backend/internal/dto"
	"github.com/playtube/playtube-backend/internal/middleware"
	"github.com/playtube/playtube-backend/internal/services"
)

type CommentHandler struct {
	commentService *services.CommentService
}

func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListForVideo serves the paginated comments view. A malformed video id is
// treated as a video that cannot exist, so it reports not-found rather than
// bad-request.
func (h *CommentHandler) ListForVideo(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("videoId"))
	if err != nil {
		return fail(c, apperr.New(apperr.NotFound, "video not found"))
	}

	page, err := h.commentService.ListForVideo(videoID, c.QueryInt("page", 1), c.QueryInt("limit", 10))
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, page, "Comments fetched successfully")
}

func (h *CommentHandler) Add(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("videoId"))
	if err != nil {
		return badRequest(c, "Invalid video ID")
	}

	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validateStruct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	comment, err := h.commentService.Add(videoID, userID, req.Content)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusCreated, comment, "Comment added successfully")
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	commentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid comment ID")
	}

	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req dto.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validateStruct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	comment, err := h.commentService.Update(commentID, userID, req.Content)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, comment, "Comment updated successfully")
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	commentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid comment ID")
	}

	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.commentService.Delete(commentID, userID); err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, nil, "Comment deleted successfully")
}
