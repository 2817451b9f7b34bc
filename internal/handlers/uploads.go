package handlers

import (
	"mime/multipart"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/playtube/playtube-backend/internal/metrics"
	"github.com/playtube/playtube-backend/internal/storage"
)

// uploadFormFile streams a multipart file to object storage under
// <kind>/<uuid><ext> and returns the hosted URL.
func uploadFormFile(c *fiber.Ctx, uploader storage.Uploader, kind string, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	contentType := fh.Header.Get(fiber.HeaderContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := kind + "/" + uuid.NewString() + filepath.Ext(fh.Filename)
	url, err := uploader.Upload(c.Context(), key, contentType, f)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(kind, "error").Inc()
		return "", err
	}
	metrics.UploadsTotal.WithLabelValues(kind, "ok").Inc()
	return url, nil
}
