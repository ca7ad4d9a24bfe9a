package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ayambil/internal/domain/models"
	"ayambil/internal/http/middleware"
	"ayambil/internal/repositories"
	"ayambil/internal/services"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{RequestID: middleware.GetRequestID(c)}
}

// POST /api/submissions
func CreateSubmission(c *gin.Context) {
	var in models.SubmissionInput
	if !BindJSONOrError(c, &in) {
		return
	}

	sub, err := bookingService(c).Create(in, c.ClientIP())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": sub})
}

// GET /api/submissions
func ListSubmissions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	filter := repositories.SubmissionFilter{
		Status: c.Query("status"),
		City:   c.Query("city"),
		Date:   c.Query("date"),
		Page:   page,
		Limit:  limit,
	}

	list, total, err := bookingService(c).List(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if limit <= 0 {
		limit = 50
	}
	totalPages := (total + limit - 1) / limit
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    list,
		"pagination": gin.H{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}

// GET /api/submissions/search?q=
func SearchSubmissions(c *gin.Context) {
	list, err := bookingService(c).Search(c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// GET /api/submissions/stats
func SubmissionStats(c *gin.Context) {
	stats, err := bookingService(c).Stats()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

// GET /api/submissions/:id
func GetSubmission(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	sub, err := bookingService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": sub})
}

// PUT /api/submissions/:id
func UpdateSubmission(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	var upd models.SubmissionUpdate
	if !BindJSONOrError(c, &upd) {
		return
	}
	if err := bookingService(c).Update(id, upd); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "submission updated"})
}

// DELETE /api/submissions/:id
func DeleteSubmission(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	if err := bookingService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "submission deleted"})
}

// GET /api/submissions/:id/receipt
func GetSubmissionReceipt(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	svc := services.ReceiptService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.Generate(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/submissions/bookings/date-range?startDate&endDate
func BookingCountsByRange(c *gin.Context) {
	svc := services.CalendarService{RequestID: middleware.GetRequestID(c)}
	counts, cap, err := svc.CountsWithCap(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"bookingCounts":     counts,
		"maxBookingsPerDay": cap,
	})
}

// GET /api/submissions/bookings/check/:date
func CheckDateAvailability(c *gin.Context) {
	svc := services.CalendarService{RequestID: middleware.GetRequestID(c)}
	status, remaining, err := svc.CheckDate(c.Param("date"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"date":      c.Param("date"),
		"status":    status,
		"remaining": remaining,
	})
}
