package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/playtube/playtube-backend/internal/apperr"
	"github.com/playtube/playtube-backend/internal/dto"
)

// ok writes the success envelope.
func ok(c *fiber.Ctx, status int, data interface{}, message string) error {
	return c.Status(status).JSON(dto.APIResponse{
		StatusCode: status,
		Data:       data,
		Message:    message,
	})
}

// fail maps a service error to the failure envelope. Internal errors are
// logged here and masked; everything else carries its own message.
func fail(c *fiber.Ctx, err error) error {
	status := apperr.Status(err)
	if status >= fiber.StatusInternalServerError {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
	}
	return c.Status(status).JSON(dto.APIError{
		StatusCode: status,
		Message:    apperr.PublicMessage(err),
	})
}

// badRequest is fail for handler-level input problems.
func badRequest(c *fiber.Ctx, message string) error {
	return fail(c, apperr.New(apperr.InvalidArgument, message))
}
