package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/playtube/playtube-backend/internal/dto"
	"github.com/playtube/playtube-backend/internal/middleware"
	"github.com/playtube/playtube-backend/internal/services"
	"github.com/playtube/playtube-backend/internal/storage"
)

type AuthHandler struct {
	authService *services.AuthService
	uploader    storage.Uploader
}

func NewAuthHandler(authService *services.AuthService, uploader storage.Uploader) *AuthHandler {
	return &AuthHandler{authService: authService, uploader: uploader}
}

// Register accepts a multipart form: account fields plus a required avatar
// file and an optional cover image.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validateStruct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	avatarFile, err := c.FormFile("avatar")
	if err != nil {
		return badRequest(c, "Avatar is required")
	}

	avatarURL, err := uploadFormFile(c, h.uploader, "avatars", avatarFile)
	if err != nil {
		return fail(c, err)
	}

	coverURL := ""
	if coverFile, err := c.FormFile("cover_image"); err == nil {
		if coverURL, err = uploadFormFile(c, h.uploader, "covers", coverFile); err != nil {
			return fail(c, err)
		}
	}

	resp, err := h.authService.Register(&req, avatarURL, coverURL)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusCreated, resp, "User created successfully")
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validateStruct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, resp, "User logged in successfully")
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validateStruct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.authService.Refresh(&req)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, resp, "Token refreshed successfully")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validateStruct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.authService.Logout(&req); err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, nil, "User logged out successfully")
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validateStruct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.authService.ChangePassword(userID, &req); err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, nil, "Password changed successfully")
}

func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req dto.DeleteAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validateStruct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.authService.DeleteAccount(userID, req.Password); err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, nil, "Account deleted successfully")
}
