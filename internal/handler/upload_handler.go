package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Boldmaa4421/raffle-app/internal/service"
)

// UploadHandler handles raffle image upload endpoints.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadImage handles POST /api/v1/admin/uploads/image
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "missing file field")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "could not open uploaded file")
		return
	}
	defer f.Close()

	out, err := h.uploadService.UploadImage(c.Request.Context(), service.ImageUploadInput{
		File:   f,
		Header: fileHeader,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, out)
}
