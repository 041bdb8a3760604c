package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
	"github.com/Boldmaa4421/raffle-app/internal/service"
)

// ImportHandler handles bank statement import endpoints.
type ImportHandler struct {
	importService service.ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService service.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// importRequest is the JSON body for row-based imports. The admin UI parses
// the workbook client side and posts the raw cell values.
type importRequest struct {
	RaffleID   string          `json:"raffleId" binding:"required"`
	SourceFile string          `json:"sourceFile"`
	Rows       []domain.RawRow `json:"rows" binding:"required"`
}

// ImportRows handles POST /api/v1/admin/import
func (h *ImportHandler) ImportRows(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	raffleID, err := uuid.Parse(req.RaffleID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid raffle ID")
		return
	}

	sourceFile := req.SourceFile
	if sourceFile == "" {
		sourceFile = "manual-paste"
	}

	summary, err := h.importService.ImportRows(c.Request.Context(), service.ImportInput{
		RaffleID:   raffleID,
		SourceFile: sourceFile,
		Rows:       req.Rows,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}

// ImportFile handles POST /api/v1/admin/import/file
// Accepts a multipart xlsx upload and runs the same pipeline server side.
func (h *ImportHandler) ImportFile(c *gin.Context) {
	raffleID, err := uuid.Parse(c.PostForm("raffleId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid raffle ID")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "missing file field")
		return
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".xlsx" {
		RespondError(c, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "only .xlsx files are supported")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "could not open uploaded file")
		return
	}
	defer f.Close()

	summary, err := h.importService.ImportSpreadsheet(c.Request.Context(), raffleID, fileHeader.Filename, f)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}
