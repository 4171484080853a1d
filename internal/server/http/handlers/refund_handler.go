package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/eshopcore/backoffice/internal/domain/errors"
	"github.com/eshopcore/backoffice/internal/domain/model"
	"github.com/eshopcore/backoffice/internal/domain/repository"
	"github.com/eshopcore/backoffice/internal/server/http/dto"
)

// RefundHandler manages refund lifecycle endpoints.
type RefundHandler struct {
	facade     RefundFacade
	windowDays int
}

// NewRefundHandler constructs RefundHandler.
func NewRefundHandler(facade RefundFacade, windowDays int) *RefundHandler {
	return &RefundHandler{facade: facade, windowDays: windowDays}
}

// Create handles POST /api/refunds.
func (h *RefundHandler) Create(c *gin.Context) {
	var req dto.CreateRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if req.OrderID <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	refund, err := h.facade.CreateRefund(c.Request.Context(), repository.CreateRefundParams{
		OrderID: req.OrderID,
		Reason:  req.Reason,
		Amount:  req.Amount,
		Status:  model.RefundStatus(req.Status),
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidStatus), errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toRefundResponse(*refund))
}

// Get handles GET /api/refunds/:id.
func (h *RefundHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	refund, err := h.facade.Refund(c.Request.Context(), id)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if refund == nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, toRefundResponse(*refund))
}

// List handles GET /api/refunds?status=...
func (h *RefundHandler) List(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	refunds, err := h.facade.RefundsByStatus(c.Request.Context(), model.RefundStatus(status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	response := make([]dto.RefundResponse, 0, len(refunds))
	for _, r := range refunds {
		response = append(response, toRefundResponse(r))
	}

	c.JSON(http.StatusOK, response)
}

// Update handles PATCH /api/refunds/:id.
func (h *RefundHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	update := repository.RefundUpdate{Reason: req.Reason, Amount: req.Amount}
	if req.Status != nil {
		status := model.RefundStatus(*req.Status)
		update.Status = &status
	}

	refund, err := h.facade.UpdateRefund(c.Request.Context(), id, update)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRefundResponse(*refund))
}

// Delete handles DELETE /api/refunds/:id.
func (h *RefundHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if !h.facade.DeleteRefund(c.Request.Context(), id) {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// Approve handles POST /api/refunds/:id/approve.
func (h *RefundHandler) Approve(c *gin.Context) {
	h.resolve(c, h.facade.ApproveRefund)
}

// Reject handles POST /api/refunds/:id/reject.
func (h *RefundHandler) Reject(c *gin.Context) {
	h.resolve(c, h.facade.RejectRefund)
}

// Cancel handles POST /api/refunds/:id/cancel.
func (h *RefundHandler) Cancel(c *gin.Context) {
	h.resolve(c, h.facade.CancelRefund)
}

// Amount handles PUT /api/refunds/:id/amount.
func (h *RefundHandler) Amount(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.RefundAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	refund, err := h.facade.IssuePartialRefund(c.Request.Context(), id, req.Amount)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRefundResponse(*refund))
}

// Eligibility handles GET /api/refunds/:id/eligibility.
func (h *RefundHandler) Eligibility(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	windowDays := h.windowDays
	if raw := c.Query("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			c.Status(http.StatusBadRequest)
			return
		}
		windowDays = days
	}

	eligible, err := h.facade.RefundEligible(c.Request.Context(), id, windowDays)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EligibilityResponse{RefundID: id, Eligible: eligible, WindowDays: windowDays})
}

func (h *RefundHandler) resolve(c *gin.Context, op func(ctx context.Context, id int64) (*model.Refund, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	refund, err := op(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRefundResponse(*refund))
}

func (h *RefundHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrIllegalTransition):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrInvalidStatus), errors.Is(err, domainErrors.ErrInvalidAmount):
		c.Status(http.StatusUnprocessableEntity)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
