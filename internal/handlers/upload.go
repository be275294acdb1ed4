package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"portfolio-backend/internal/media"
	"portfolio-backend/internal/models"
)

// MaxUploadSize bounds a single uploaded file.
const MaxUploadSize = 50 << 20

type Uploader interface {
	UploadProjectMedia(ctx context.Context, filename string, data []byte) (string, error)
}

type UploadHandler struct {
	uploader Uploader
}

func NewUploadHandler(uploader Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload godoc
// @Summary     Upload a project image or video
// @Description Stores the file under project-images/<unix-millis>.<ext> in the public bucket and returns its URL.
// @Description Images wider than UPLOAD_MAX_WIDTH are downscaled.
// @Tags        upload
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       file formData file true "Image or video"
// @Success     200 {object} models.UploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "No file provided"})
		return
	}
	if fileHeader.Size > MaxUploadSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "File too large",
			Message: fmt.Sprintf("maximum size is %d MB", MaxUploadSize>>20),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Failed to read file", Message: err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Failed to read file", Message: err.Error()})
		return
	}

	url, err := h.uploader.UploadProjectMedia(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		if errors.Is(err, media.ErrUnsupported) || errors.Is(err, media.ErrEmptyFile) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid file", Message: err.Error()})
			return
		}
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("upload failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to upload file", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.UploadResponse{URL: url})
}
