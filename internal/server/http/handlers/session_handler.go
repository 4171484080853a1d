package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/eshopcore/backoffice/internal/domain/errors"
	"github.com/eshopcore/backoffice/internal/server/http/dto"
	"github.com/eshopcore/backoffice/internal/server/http/middleware"
)

// SessionHandler processes operator sign-in.
type SessionHandler struct {
	facade SessionFacade
}

// NewSessionHandler creates SessionHandler instance.
func NewSessionHandler(facade SessionFacade) *SessionHandler {
	return &SessionHandler{facade: facade}
}

// Open handles POST /api/session.
func (h *SessionHandler) Open(c *gin.Context) {
	var req dto.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.facade.OpenSession(req.AccessKey)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAccessKey):
			c.Status(http.StatusUnauthorized)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.Status(http.StatusOK)
}
