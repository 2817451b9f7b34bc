package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/playtube/playtube-backend/internal/middleware"
	"github.com/playtube/playtube-backend/internal/services"
)

type LikeHandler struct {
	likeService *services.LikeService
}

func NewLikeHandler(likeService *services.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

func (h *LikeHandler) ToggleVideoLike(c *fiber.Ctx) error {
	return h.toggle(c, "video", h.likeService.ToggleVideoLike)
}

func (h *LikeHandler) ToggleCommentLike(c *fiber.Ctx) error {
	return h.toggle(c, "comment", h.likeService.ToggleCommentLike)
}

func (h *LikeHandler) ToggleTweetLike(c *fiber.Ctx) error {
	return h.toggle(c, "tweet", h.likeService.ToggleTweetLike)
}

func (h *LikeHandler) toggle(c *fiber.Ctx, kind string, fn func(userID, targetID uuid.UUID) (bool, error)) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid "+kind+" ID")
	}

	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	liked, err := fn(userID, targetID)
	if err != nil {
		return fail(c, err)
	}

	message := kind + " unliked successfully"
	if liked {
		message = kind + " liked successfully"
	}
	return ok(c, fiber.StatusOK, fiber.Map{"liked": liked}, message)
}

func (h *LikeHandler) LikedVideos(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	videos, err := h.likeService.LikedVideos(userID)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, videos, "Liked videos fetched successfully")
}
