package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ayambil/internal/http/middleware"
	"ayambil/internal/services"
)

func galleryService(c *gin.Context) services.GalleryService {
	return services.GalleryService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/anumodana
func ListGallery(c *gin.Context) {
	list, err := galleryService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

type galleryCreateRequest struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	SortOrder int    `json:"sortOrder"`
}

// POST /api/anumodana
func CreateGalleryImage(c *gin.Context) {
	var req galleryCreateRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	img, err := galleryService(c).Create(req.Title, req.URL, req.SortOrder)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": img})
}

// DELETE /api/anumodana/:id
func DeleteGalleryImage(c *gin.Context) {
	if err := galleryService(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "image deleted"})
}
