package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads the :id path parameter. A non-numeric value behaves
// like an unknown identity: callers answer with their entity's
// not-found message.
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
