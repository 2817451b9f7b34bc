package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/playtube/playtube-backend/internal/dto"
	"github.com/playtube/playtube-backend/internal/middleware"
	"github.com/playtube/playtube-backend/internal/services"
	"github.com/playtube/playtube-backend/internal/storage"
)

type VideoHandler struct {
	videoService *services.VideoService
	uploader     storage.Uploader
}

func NewVideoHandler(videoService *services.VideoService, uploader storage.Uploader) *VideoHandler {
	return &VideoHandler{videoService: videoService, uploader: uploader}
}

// List supports search, sort and owner filtering, all paginated.
func (h *VideoHandler) List(c *fiber.Ctx) error {
	params := services.ListParams{
		Search:   c.Query("query"),
		SortBy:   c.Query("sort_by", "createdAt"),
		SortType: c.Query("sort_type", "desc"),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 10),
	}
	if raw := c.Query("user_id"); raw != "" {
		ownerID, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "Invalid user ID")
		}
		params.OwnerID = ownerID
	}

	page, err := h.videoService.List(params)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, page, "Videos fetched successfully")
}

// Publish accepts a multipart form with the video file, a thumbnail and the
// title/description fields.
func (h *VideoHandler) Publish(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req dto.PublishVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validateStruct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	videoFile, err := c.FormFile("video_file")
	if err != nil {
		return badRequest(c, "Video file is required")
	}
	thumbnailFile, err := c.FormFile("thumbnail")
	if err != nil {
		return badRequest(c, "Thumbnail is required")
	}

	videoURL, err := uploadFormFile(c, h.uploader, "videos", videoFile)
	if err != nil {
		return fail(c, err)
	}
	thumbnailURL, err := uploadFormFile(c, h.uploader, "thumbnails", thumbnailFile)
	if err != nil {
		return fail(c, err)
	}

	duration, _ := strconv.ParseFloat(c.FormValue("duration_seconds"), 64)

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	video, err := h.videoService.Publish(userID, req.Title, req.Description, videoURL, thumbnailURL, duration, isPublished)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusCreated, video, "Video published successfully")
}

// Get returns a video. Authenticated viewers have the view counted and the
// video added to their watch history; anonymous viewers just read.
func (h *VideoHandler) Get(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid video ID")
	}

	video, err := h.videoService.Get(videoID, middleware.OptionalUserID(c))
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, video, "Video fetched successfully")
}

func (h *VideoHandler) Update(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid video ID")
	}

	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req dto.UpdateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validateStruct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	thumbnailURL := ""
	if fh, err := c.FormFile("thumbnail"); err == nil {
		if thumbnailURL, err = uploadFormFile(c, h.uploader, "thumbnails", fh); err != nil {
			return fail(c, err)
		}
	}

	video, err := h.videoService.Update(videoID, userID, req.Title, req.Description, thumbnailURL)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, video, "Video updated successfully")
}

func (h *VideoHandler) Delete(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid video ID")
	}

	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.videoService.Delete(videoID, userID); err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{"video_id": videoID}, "Video deleted successfully")
}

func (h *VideoHandler) TogglePublish(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid video ID")
	}

	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	video, err := h.videoService.TogglePublish(videoID, userID)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, video, "Video publish status toggled")
}
