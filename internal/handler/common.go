package handler

import (
	"errors"
	"net/http"

	"cardboard/internal/middleware"
	"cardboard/internal/repository"
	"cardboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// subjectFrom rebuilds the acting subject from the context keys set by the
// auth middleware. A false return means the response is already written.
func subjectFrom(c *gin.Context) (service.Subject, bool) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return service.Subject{}, false
	}

	authenticatedUserID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return service.Subject{}, false
	}

	isAdmin, _ := c.Get(middleware.IsAdminKey)
	adminFlag, _ := isAdmin.(bool)

	return service.Subject{ID: authenticatedUserID, IsAdmin: adminFlag}, true
}

// respondError maps the service error taxonomy onto HTTP statuses.
// NotFound and Forbidden are terminal for the caller; anything outside the
// taxonomy is a server error.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrColumnNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
	case errors.Is(err, repository.ErrCardNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
	case errors.Is(err, service.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed"})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text cannot be empty"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}
