package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ayambil/internal/http/middleware"
	"ayambil/internal/services"
)

func calendarService(c *gin.Context) services.CalendarService {
	return services.CalendarService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/calendar?startDate&endDate
func GetCalendarRange(c *gin.Context) {
	list, err := calendarService(c).RangeStatuses(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

type dateStatusRequest struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// POST /api/calendar/status
func SetCalendarStatus(c *gin.Context) {
	var req dateStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := calendarService(c).SetStatus(req.Date, req.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "calendar updated"})
}

type bulkStatusRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
}

// POST /api/calendar/bulk
func BulkCalendarStatus(c *gin.Context) {
	var req bulkStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := calendarService(c).BulkApply(req.StartDate, req.EndDate, req.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "calendar range updated"})
}
