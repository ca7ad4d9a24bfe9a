package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ayambil/internal/domain/models"
	"ayambil/internal/http/middleware"
	"ayambil/internal/services"
)

func settingsService(c *gin.Context) services.SettingsService {
	return services.SettingsService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/admin/settings
func GetSettings(c *gin.Context) {
	cfg, err := settingsService(c).Get()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": cfg})
}

// PUT /api/admin/settings
func UpdateSettings(c *gin.Context) {
	var cfg models.SystemSettings
	if !BindJSONOrError(c, &cfg) {
		return
	}
	if err := settingsService(c).Update(cfg); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": cfg})
}
