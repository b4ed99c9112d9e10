package application

import (
	"net/http"

	"jobtrack/tracker-api/internal"
	"jobtrack/tracker-api/pkg/respond"

	"github.com/gin-gonic/gin"
)

func ApplicationFetch(c *gin.Context, d *internal.Deps) {
	app, ok := getOwned(c, d)
	if !ok {
		return
	}

	respond.JSON(c, http.StatusOK, app, "Job Application fetched successfully")
}
