package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/playtube/playtube-backend/internal/apperr"
	"github.com/playtube/playtube-backend/internal/dto"
	"github.com/playtube/playtube-backend/internal/middleware"
	"github.com/playtube/playtube-backend/internal/services"
)

type PlaylistHandler struct {
	playlistService *services.PlaylistService
}

func NewPlaylistHandler(playlistService *services.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

func (h *PlaylistHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req dto.CreatePlaylistRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validateStruct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	playlist, err := h.playlistService.Create(userID, req.Name, req.Description)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusCreated, playlist, "Playlist created successfully")
}

func (h *PlaylistHandler) ListForUser(c *fiber.Ctx) error {
	ownerID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	page, err := h.playlistService.ListByOwner(ownerID, c.QueryInt("page", 1), c.QueryInt("limit", 10))
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, page, "Playlists fetched successfully")
}

func (h *PlaylistHandler) Get(c *fiber.Ctx) error {
	playlistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid playlist ID")
	}

	playlist, err := h.playlistService.Get(playlistID)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, playlist, "Playlist fetched successfully")
}

func (h *PlaylistHandler) AddVideo(c *fiber.Ctx) error {
	playlistID, videoID, userID, err := h.memberParams(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.playlistService.AddVideo(playlistID, videoID, userID); err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, nil, "Video added to playlist")
}

func (h *PlaylistHandler) RemoveVideo(c *fiber.Ctx) error {
	playlistID, videoID, userID, err := h.memberParams(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.playlistService.RemoveVideo(playlistID, videoID, userID); err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, nil, "Video removed from playlist")
}

func (h *PlaylistHandler) Update(c *fiber.Ctx) error {
	playlistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid playlist ID")
	}

	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req dto.UpdatePlaylistRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validateStruct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	playlist, err := h.playlistService.Update(playlistID, userID, req.Name, req.Description)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, playlist, "Playlist updated successfully")
}

func (h *PlaylistHandler) Delete(c *fiber.Ctx) error {
	playlistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid playlist ID")
	}

	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.playlistService.Delete(playlistID, userID); err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{"playlist_id": playlistID}, "Playlist deleted successfully")
}

func (h *PlaylistHandler) Videos(c *fiber.Ctx) error {
	playlistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid playlist ID")
	}

	videos, err := h.playlistService.Videos(playlistID)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, videos, "Playlist videos fetched successfully")
}

func (h *PlaylistHandler) ContainingVideo(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("videoId"))
	if err != nil {
		return badRequest(c, "Invalid video ID")
	}

	playlists, err := h.playlistService.ContainingVideo(videoID)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, playlists, "Playlists fetched successfully")
}

func (h *PlaylistHandler) memberParams(c *fiber.Ctx) (playlistID, videoID, userID uuid.UUID, err error) {
	playlistID, err = uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, apperr.New(apperr.InvalidArgument, "Invalid playlist ID")
	}
	videoID, err = uuid.Parse(c.Params("videoId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, apperr.New(apperr.InvalidArgument, "Invalid video ID")
	}
	userID, err = middleware.UserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, err
	}
	return playlistID, videoID, userID, nil
}
