package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/auth"
	"hrms-backend/internal/store"
)

// respondError maps domain errors onto HTTP statuses with stable, generic
// messages. Anything unrecognized is logged server-side and surfaced as a
// plain server error.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrMissingFields), errors.Is(err, auth.ErrMissingVendor):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrDuplicateEmail), errors.Is(err, auth.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredential):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, auth.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
	case errors.Is(err, auth.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
	case errors.Is(err, auth.ErrNotFound), errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
