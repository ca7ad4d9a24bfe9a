package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "ayambil/internal/config"
)

// GET /api/health
func Health(c *gin.Context) {
	dbOK := intconfig.EnsureDB() == nil
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "ok",
		"db":      dbOK,
	})
}
