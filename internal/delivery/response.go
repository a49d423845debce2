package delivery

import (
	"errors"
	"net/http"

	"katana_store/internal/domain"

	"github.com/gin-gonic/gin"
)

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"detail": message})
}

// mapErrorToStatus maps domain error kinds to HTTP status codes. Anything
// outside the known kinds is an infrastructure failure.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrMalformedRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
