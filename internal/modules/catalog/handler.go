package catalog

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"tallerlima/internal/pkg/response"
	"tallerlima/internal/pkg/validator"
	"tallerlima/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler[E any, P record[E]] struct {
	service *Service[E, P]
}

func NewHandler[E any, P record[E]](service *Service[E, P]) *Handler[E, P] {
	return &Handler[E, P]{service: service}
}

// List handles GET /{slug} with filter, sort and pagination params.
func (h *Handler[E, P]) List(c *gin.Context) {
	p := ListParams{
		Page:      repository.NormalizePage(c.DefaultQuery("page", "1")),
		Limit:     repository.NormalizeLimit(c.DefaultQuery("limit", "10")),
		Search:    c.Query("search"),
		District:  c.Query("district"),
		SortBy:    c.DefaultQuery("sortBy", "createdAt"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
	}
	switch c.Query("checked") {
	case "true":
		v := true
		p.Checked = &v
	case "false":
		v := false
		p.Checked = &v
	}

	entries, total, err := h.service.List(c.Request.Context(), p)
	if err != nil {
		h.fail(c, err)
		return
	}
	if entries == nil {
		entries = []E{}
	}

	response.List(c, entries, response.Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: repository.TotalPages(total, p.Limit),
	})
}

func (h *Handler[E, P]) Get(c *gin.Context) {
	entry, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, entry)
}

func (h *Handler[E, P]) Create(c *gin.Context) {
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fields := validator.Validate(&req); fields != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", validationMessage(fields))
		return
	}

	entry, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, entry)
}

func (h *Handler[E, P]) Update(c *gin.Context) {
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fields := validator.Validate(&req); fields != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", validationMessage(fields))
		return
	}

	entry, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, entry)
}

func (h *Handler[E, P]) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Deleted(c)
}

func validationMessage(fields map[string]string) string {
	parts := make([]string, 0, len(fields))
	for field, rule := range fields {
		parts = append(parts, fmt.Sprintf("%s failed %s", field, rule))
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

func (h *Handler[E, P]) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", h.service.def.Kind+" not found")
	case errors.Is(err, ErrNameRequired), errors.Is(err, ErrTypeInvalid), errors.Is(err, ErrDistrictRequired):
		response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
