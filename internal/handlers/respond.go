package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/visitpazar/api/internal/apperr"
)

// writeError maps tagged application errors to their status codes; anything
// untagged is a plain 500.
func writeError(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		c.JSON(ae.Status(), gin.H{"error": ae.Error()})
		return
	}
	c.JSON(apperr.StatusOf(err), gin.H{"error": err.Error()})
}

func created(c *gin.Context, id string) {
	c.JSON(200, gin.H{"id": id, "status": "ok"})
}
