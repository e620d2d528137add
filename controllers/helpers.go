package controllers

import (
	"net/http"
	"strconv"

	"store-api/services"

	"github.com/gin-gonic/gin"
)

// respondError writes a ServiceError. Field-scoped validation failures use
// the {"errors": {field: message}} shape so clients can attach the message
// to the offending form field.
func respondError(c *gin.Context, se *services.ServiceError) {
	if se.Field != "" {
		c.JSON(se.StatusCode, gin.H{"errors": gin.H{se.Field: se.Message}})
		return
	}
	c.JSON(se.StatusCode, gin.H{"error": se.Message})
}

// parsePage extracts the page query param, defaulting to 1.
func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// parseIDParam extracts a positive integer path param. On failure it writes
// a 400 response and returns false.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
