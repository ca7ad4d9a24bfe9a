package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "ayambil/internal/config"
	h "ayambil/internal/http/handlers"
	"ayambil/internal/http/middleware"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"message": "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		// Public booking flow
		api.POST("/submissions", h.CreateSubmission)
		api.GET("/submissions/bookings/date-range", h.BookingCountsByRange)
		api.GET("/submissions/bookings/check/:date", h.CheckDateAvailability)
		api.GET("/calendar", h.GetCalendarRange)
		api.GET("/anumodana", h.ListGallery)

		// Admin auth
		api.POST("/admin/login", h.Login)

		admin := api.Group("")
		admin.Use(middleware.RequireAdmin(h.JWTSecret()))
		{
			admin.GET("/submissions", h.ListSubmissions)
			admin.GET("/submissions/search", h.SearchSubmissions)
			admin.GET("/submissions/stats", h.SubmissionStats)
			admin.GET("/submissions/:id", h.GetSubmission)
			admin.PUT("/submissions/:id", h.UpdateSubmission)
			admin.DELETE("/submissions/:id", h.DeleteSubmission)
			admin.GET("/submissions/:id/receipt", h.GetSubmissionReceipt)

			admin.POST("/calendar/status", h.SetCalendarStatus)
			admin.POST("/calendar/bulk", h.BulkCalendarStatus)

			admin.POST("/anumodana", h.CreateGalleryImage)
			admin.DELETE("/anumodana/:id", h.DeleteGalleryImage)

			admin.GET("/admin/settings", h.GetSettings)
			admin.PUT("/admin/settings", h.UpdateSettings)
		}
	}

	return r
}
