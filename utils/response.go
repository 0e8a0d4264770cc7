package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondWithError aborts the request with {"error": message}.
func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// RespondWithValidationError aborts with a 400 listing every offending field.
func RespondWithValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error":  "Invalid input",
		"fields": ValidationErrors(err),
	})
}
