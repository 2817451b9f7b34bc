package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/playtube/playtube-backend/internal/dto"
	"github.com/playtube/playtube-backend/internal/middleware"
	"github.com/playtube/playtube-backend/internal/services"
	"github.com/playtube/playtube-backend/internal/storage"
)

type UserHandler struct {
	userService *services.UserService
	uploader    storage.Uploader
}

func NewUserHandler(userService *services.UserService, uploader storage.Uploader) *UserHandler {
	return &UserHandler{userService: userService, uploader: uploader}
}

func (h *UserHandler) CurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	user, err := h.userService.GetByID(userID)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, user, "Current user fetched successfully")
}

func (h *UserHandler) UpdateAccount(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req dto.UpdateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validateStruct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	user, err := h.userService.UpdateAccount(userID, req.FullName, req.Email)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, user, "Account updated successfully")
}

func (h *UserHandler) UpdateAvatar(c *fiber.Ctx) error {
	return h.updateImage(c, "avatar", "avatars")
}

func (h *UserHandler) UpdateCoverImage(c *fiber.Ctx) error {
	return h.updateImage(c, "cover_image", "covers")
}

func (h *UserHandler) updateImage(c *fiber.Ctx, field, kind string) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	fh, err := c.FormFile(field)
	if err != nil {
		return badRequest(c, field+" file is required")
	}

	url, err := uploadFormFile(c, h.uploader, kind, fh)
	if err != nil {
		return fail(c, err)
	}

	var user interface{}
	if field == "avatar" {
		user, err = h.userService.UpdateAvatar(userID, url)
	} else {
		user, err = h.userService.UpdateCoverImage(userID, url)
	}
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, user, "Image updated successfully")
}

// ChannelProfile serves the denormalized channel view. Anonymous requests
// are allowed; is_subscribed is then always false.
func (h *UserHandler) ChannelProfile(c *fiber.Ctx) error {
	username := c.Params("username")
	requestingUser := middleware.OptionalUserID(c)

	profile, err := h.userService.ChannelProfile(username, requestingUser)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, profile, "Channel profile fetched successfully")
}

func (h *UserHandler) WatchHistory(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	history, err := h.userService.WatchHistory(userID)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, history, "Watch history fetched successfully")
}
