package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Data writes the bare {data} envelope used by single-object endpoints.
func Data(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

// Paged writes the {data, total, page, limit} envelope used by list endpoints.
func Paged(c *gin.Context, data interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, gin.H{
		"data":  data,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func Error(c *gin.Context, status int, message string, err error) {
	resp := gin.H{"error": message}
	if err != nil {
		resp["detail"] = err.Error()
	}
	c.JSON(status, resp)
}
