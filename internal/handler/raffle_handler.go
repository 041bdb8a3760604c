package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Boldmaa4421/raffle-app/internal/csvexport"
	"github.com/Boldmaa4421/raffle-app/internal/service"
)

// RaffleHandler handles raffle management endpoints.
type RaffleHandler struct {
	raffleService service.RaffleService
}

// NewRaffleHandler creates a new RaffleHandler.
func NewRaffleHandler(raffleService service.RaffleService) *RaffleHandler {
	return &RaffleHandler{raffleService: raffleService}
}

func parseRaffleID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid raffle ID")
		return uuid.Nil, false
	}
	return id, true
}

// Create handles POST /api/v1/admin/raffles
func (h *RaffleHandler) Create(c *gin.Context) {
	var input service.RaffleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	raffle, err := h.raffleService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, raffle)
}

// List handles GET /api/v1/raffles
func (h *RaffleHandler) List(c *gin.Context) {
	raffles, err := h.raffleService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, raffles)
}

// GetByID handles GET /api/v1/raffles/:id
func (h *RaffleHandler) GetByID(c *gin.Context) {
	id, ok := parseRaffleID(c)
	if !ok {
		return
	}

	raffle, err := h.raffleService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, raffle)
}

// Update handles PUT /api/v1/admin/raffles/:id
func (h *RaffleHandler) Update(c *gin.Context) {
	id, ok := parseRaffleID(c)
	if !ok {
		return
	}

	var input service.RaffleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	raffle, err := h.raffleService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, raffle)
}

// Delete handles DELETE /api/v1/admin/raffles/:id
func (h *RaffleHandler) Delete(c *gin.Context) {
	id, ok := parseRaffleID(c)
	if !ok {
		return
	}

	if err := h.raffleService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

// Reset handles POST /api/v1/admin/raffles/:id/reset
func (h *RaffleHandler) Reset(c *gin.Context) {
	id, ok := parseRaffleID(c)
	if !ok {
		return
	}

	result, err := h.raffleService.Reset(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Stats handles GET /api/v1/admin/raffles/:id/stats
func (h *RaffleHandler) Stats(c *gin.Context) {
	id, ok := parseRaffleID(c)
	if !ok {
		return
	}

	stats, err := h.raffleService.Stats(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}

// AnnounceWinner handles POST /api/v1/admin/raffles/:id/winner
func (h *RaffleHandler) AnnounceWinner(c *gin.Context) {
	id, ok := parseRaffleID(c)
	if !ok {
		return
	}

	var input service.WinnerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	winner, err := h.raffleService.AnnounceWinner(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, winner)
}

// Winners handles GET /api/v1/raffles/:id/winners
func (h *RaffleHandler) Winners(c *gin.Context) {
	id, ok := parseRaffleID(c)
	if !ok {
		return
	}

	winners, err := h.raffleService.Winners(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, winners)
}

// ExportCodes handles GET /api/v1/admin/raffles/:id/export
// Streams a UTF-8 BOM prefixed CSV of every allocated ticket code.
func (h *RaffleHandler) ExportCodes(c *gin.Context) {
	id, ok := parseRaffleID(c)
	if !ok {
		return
	}

	raffle, err := h.raffleService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	rows, err := h.raffleService.ExportRows(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename(raffle.Title)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	c.Writer.Write(csvexport.BOM)
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteTickets(rows); err != nil {
		return
	}
	w.Flush()
}
