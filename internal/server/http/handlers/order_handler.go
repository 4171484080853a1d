package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/eshopcore/backoffice/internal/domain/errors"
	"github.com/eshopcore/backoffice/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Register handles POST /api/orders.
func (h *OrderHandler) Register(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.RegisterOrder(c.Request.Context(), req.Total)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Refunds handles GET /api/orders/:id/refunds.
func (h *OrderHandler) Refunds(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	refunds, err := h.facade.OrderRefunds(c.Request.Context(), id)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.RefundResponse, 0, len(refunds))
	for _, r := range refunds {
		response = append(response, toRefundResponse(r))
	}

	c.JSON(http.StatusOK, response)
}

// RefundTotal handles GET /api/orders/:id/refunds/total.
func (h *OrderHandler) RefundTotal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	total, err := h.facade.TotalRefunded(c.Request.Context(), id)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.RefundTotalResponse{OrderID: id, Total: total})
}
