package catalog

import "github.com/gin-gonic/gin"

func (h *Handler[E, P]) RegisterRoutes(rg *gin.RouterGroup) {
	entries := rg.Group("/" + h.service.def.Slug)
	{
		entries.GET("", h.List)
		entries.POST("", h.Create)
		entries.GET("/:id", h.Get)
		entries.PATCH("/:id", h.Update)
		entries.DELETE("/:id", h.Delete)
	}
}
