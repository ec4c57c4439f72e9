package users

import "github.com/gin-gonic/gin"

// RegisterRoutes expects the group to already carry the session and
// SUPER_ADMIN gates.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	u := rg.Group("/users")
	{
		u.GET("", h.List)
		u.POST("", h.Create)
		u.GET("/:id", h.Get)
		u.PATCH("/:id", h.Update)
		u.DELETE("/:id", h.Delete)
	}
}
