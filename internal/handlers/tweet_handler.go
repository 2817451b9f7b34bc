package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/playtube/playtube-backend/internal/dto"
	"github.com/playtube/playtube-backend/internal/middleware"
	"github.com/playtube/playtube-backend/internal/services"
)

type TweetHandler struct {
	tweetService *services.TweetService
}

func NewTweetHandler(tweetService *services.TweetService) *TweetHandler {
	return &TweetHandler{tweetService: tweetService}
}

func (h *TweetHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req dto.CreateTweetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validateStruct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	tweet, err := h.tweetService.Create(userID, req.Content)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusCreated, tweet, "Tweet created successfully")
}

func (h *TweetHandler) ListMine(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	tweets, err := h.tweetService.ListByOwner(userID)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, tweets, "Tweets fetched successfully")
}

func (h *TweetHandler) Update(c *fiber.Ctx) error {
	tweetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tweet ID")
	}

	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req dto.UpdateTweetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validateStruct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	tweet, err := h.tweetService.Update(tweetID, userID, req.Content)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, tweet, "Tweet updated successfully")
}

func (h *TweetHandler) Delete(c *fiber.Ctx) error {
	tweetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tweet ID")
	}

	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.tweetService.Delete(tweetID, userID); err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{"tweet_id": tweetID}, "Tweet deleted successfully")
}
