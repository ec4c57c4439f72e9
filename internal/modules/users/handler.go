package users

import (
	"errors"
	"net/http"

	"tallerlima/internal/domain"
	"tallerlima/internal/middleware"
	"tallerlima/internal/pkg/response"
	"tallerlima/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	p := ListParams{
		Page:      repository.NormalizePage(c.DefaultQuery("page", "1")),
		Limit:     repository.NormalizeLimit(c.DefaultQuery("limit", "10")),
		Search:    c.Query("search"),
		SortBy:    c.DefaultQuery("sortBy", "createdAt"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
	}

	users, total, err := h.service.List(c.Request.Context(), p)
	if err != nil {
		h.fail(c, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}

	response.List(c, users, response.Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: repository.TotalPages(total, p.Limit),
	})
}

func (h *Handler) Get(c *gin.Context) {
	u, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, u)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Email and password are required")
		return
	}

	u, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, u)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	u, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, u)
}

func (h *Handler) Delete(c *gin.Context) {
	actorID := c.GetString(middleware.ContextUserID)
	if err := h.service.Delete(c.Request.Context(), actorID, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Deleted(c)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	case errors.Is(err, ErrEmailExists):
		response.Error(c, http.StatusBadRequest, "CONFLICT", "User already exists")
	case errors.Is(err, ErrRoleInvalid), errors.Is(err, ErrSelfDelete):
		response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
