package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Boldmaa4421/raffle-app/internal/service"
)

// LookupHandler handles the public ticket code lookup.
type LookupHandler struct {
	lookupService service.LookupService
}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler(lookupService service.LookupService) *LookupHandler {
	return &LookupHandler{lookupService: lookupService}
}

// ByPhone handles GET /api/v1/raffles/:id/lookup?phone=...
func (h *LookupHandler) ByPhone(c *gin.Context) {
	id, ok := parseRaffleID(c)
	if !ok {
		return
	}

	rawPhone := c.Query("phone")
	if rawPhone == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "missing phone query parameter")
		return
	}

	purchases, err := h.lookupService.ByPhone(c.Request.Context(), id, rawPhone)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, purchases)
}
