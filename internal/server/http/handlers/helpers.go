package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eshopcore/backoffice/internal/domain/model"
	"github.com/eshopcore/backoffice/internal/server/http/dto"
	"github.com/eshopcore/backoffice/internal/server/http/middleware"
)

// CurrentOperator extracts the authenticated operator from context.
func CurrentOperator(c *gin.Context) string {
	val, ok := c.Get(middleware.OperatorContextKey)
	if !ok {
		return ""
	}
	operator, _ := val.(string)
	return operator
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func toRefundResponse(refund model.Refund) dto.RefundResponse {
	return dto.RefundResponse{
		ID:        refund.ID,
		OrderID:   refund.OrderID,
		Reason:    refund.Reason,
		Amount:    refund.Amount,
		Status:    string(refund.Status),
		CreatedAt: refund.CreatedAt,
		UpdatedAt: refund.UpdatedAt,
	}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:        order.ID,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
	}
}
