// utils/dates.go
package utils

import (
	"net/http"

	"fitmanager-backend/models"

	"github.com/gin-gonic/gin"
)

// ParseDateParam reads a YYYY-MM-DD path parameter. On failure it has already
// written a 400 and returns false.
func ParseDateParam(c *gin.Context, name string) (models.Date, bool) {
	date, err := models.ParseDate(c.Param(name))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid input",
			"fields": []FieldError{{Field: name, Message: "must be a date in YYYY-MM-DD format"}},
		})
		return "", false
	}
	return date, true
}
