package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/playtube/playtube-backend/internal/middleware"
	"github.com/playtube/playtube-backend/internal/services"
)

type SubscriptionHandler struct {
	subscriptionService *services.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

func (h *SubscriptionHandler) Toggle(c *fiber.Ctx) error {
	channelID, err := uuid.Parse(c.Params("channelId"))
	if err != nil {
		return badRequest(c, "Invalid channel ID")
	}

	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	subscribed, err := h.subscriptionService.Toggle(userID, channelID)
	if err != nil {
		return fail(c, err)
	}

	message := "Unsubscribed successfully"
	if subscribed {
		message = "Subscribed successfully"
	}
	return ok(c, fiber.StatusOK, fiber.Map{"subscribed": subscribed}, message)
}

func (h *SubscriptionHandler) SubscriberCount(c *fiber.Ctx) error {
	channelID, err := uuid.Parse(c.Params("channelId"))
	if err != nil {
		return badRequest(c, "Invalid channel ID")
	}

	count, err := h.subscriptionService.SubscriberCount(channelID)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{"subscriber_count": count}, "Subscriber count fetched successfully")
}

func (h *SubscriptionHandler) SubscribedChannelCount(c *fiber.Ctx) error {
	subscriberID, err := uuid.Parse(c.Params("subscriberId"))
	if err != nil {
		return badRequest(c, "Invalid subscriber ID")
	}

	count, err := h.subscriptionService.SubscribedChannelCount(subscriberID)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{"subscribed_channel_count": count}, "Subscribed channel count fetched successfully")
}
