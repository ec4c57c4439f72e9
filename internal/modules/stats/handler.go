package stats

import (
	"context"
	"net/http"

	"tallerlima/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// EntryCounter is satisfied by both catalog service instantiations.
type EntryCounter interface {
	Counts(ctx context.Context) (total int64, checked int64, err error)
}

type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}

// Handler serves the dashboard landing counters.
type Handler struct {
	workshops  EntryCounter
	rectifiers EntryCounter
	users      UserCounter
}

func NewHandler(workshops, rectifiers EntryCounter, users UserCounter) *Handler {
	return &Handler{workshops: workshops, rectifiers: rectifiers, users: users}
}

func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	wTotal, wChecked, err := h.workshops.Counts(ctx)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
		return
	}
	rTotal, rChecked, err := h.rectifiers.Counts(ctx)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
		return
	}
	uTotal, err := h.users.Count(ctx)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"workshops":  gin.H{"total": wTotal, "checked": wChecked},
		"rectifiers": gin.H{"total": rTotal, "checked": rChecked},
		"users":      gin.H{"total": uTotal},
	})
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.Get)
}
