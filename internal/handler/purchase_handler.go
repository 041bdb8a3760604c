package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Boldmaa4421/raffle-app/internal/service"
)

// PurchaseHandler handles manual purchase endpoints.
type PurchaseHandler struct {
	purchaseService service.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseService service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// CreateManual handles POST /api/v1/admin/raffles/:id/purchases
func (h *PurchaseHandler) CreateManual(c *gin.Context) {
	id, ok := parseRaffleID(c)
	if !ok {
		return
	}

	var input service.ManualPurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.purchaseService.CreateManual(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, result)
}
