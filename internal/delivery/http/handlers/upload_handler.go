package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/andromedanny/storefront-service/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const maxUploadBytes = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// UploadHandler accepts image uploads for store content and products and
// hands them to object storage under a random name.
type UploadHandler struct {
	storage domain.StoragePort
	bucket  string
	logger  *zerolog.Logger
}

func NewUploadHandler(storage domain.StoragePort, bucket string, logger *zerolog.Logger) *UploadHandler {
	return &UploadHandler{storage: storage, bucket: bucket, logger: logger}
}

func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeBadRequest(w, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeBadRequest(w, "image file is required")
		return
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		writeBadRequest(w, "image exceeds the 5MB limit")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		writeBadRequest(w, "failed to read image")
		return
	}
	if len(data) > maxUploadBytes {
		writeBadRequest(w, "image exceeds the 5MB limit")
		return
	}

	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		writeBadRequest(w, "only jpeg, png, gif and webp images are allowed")
		return
	}

	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	object, err := h.storage.Upload(r.Context(), data, h.bucket, filename, contentType)
	if err != nil {
		h.logger.Error().Err(err).Str("filename", filename).Msg("failed to store uploaded image")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"url":  object.URL,
		"path": object.Path,
	})
}
