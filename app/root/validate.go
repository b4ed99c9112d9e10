package root

import (
	"net/http"

	"jobtrack/tracker-api/pkg/respond"

	"github.com/gin-gonic/gin"
)

// Validate runs behind the JWT middleware, so reaching it means the
// token checked out.
func Validate(c *gin.Context) {
	respond.JSON(c, http.StatusOK, gin.H{
		"userID": c.GetString("userID"),
	}, "Token valid")
}
