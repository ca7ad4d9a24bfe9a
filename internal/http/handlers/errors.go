package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ayambil/internal/domain"
	"ayambil/internal/http/middleware"
)

// RespondDomainError maps domain errors to HTTP responses. Field-level
// validation failures carry the whole error list so the booking form can
// mark every bad input at once.
func RespondDomainError(c *gin.Context, err error) {
	if fields, ok := domain.AsFieldErrors(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":    false,
			"message":    "validation failed",
			"errors":     fields,
			"request_id": middleware.GetRequestID(c),
		})
		return
	}
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error(), nil)
	default:
		RespondError(c, http.StatusInternalServerError, "something went wrong", nil)
	}
}
