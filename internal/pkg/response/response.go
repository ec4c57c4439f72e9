package response

import "github.com/gin-gonic/gin"

// Pagination mirrors the list envelope every listing endpoint returns.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func OK(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

func List(c *gin.Context, data any, p Pagination) {
	c.JSON(200, gin.H{
		"data":       data,
		"pagination": p,
	})
}

func Deleted(c *gin.Context) {
	c.JSON(200, gin.H{"success": true})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
