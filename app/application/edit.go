package application

import (
	"net/http"
	"strings"

	"jobtrack/tracker-api/internal"
	"jobtrack/tracker-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ApplicationEdit backs both PUT (full update, required fields enforced)
// and PATCH (partial update, only supplied fields touched).
func ApplicationEdit(c *gin.Context, d *internal.Deps, partial bool) {
	requestID := c.MustGet("requestID").(string)

	app, ok := getOwned(c, d)
	if !ok {
		return
	}

	var data applicationPayload
	if err := c.BindJSON(&data); err != nil {
		respond.JSON(c, http.StatusBadRequest, nil, "Malformed or invalid JSON request body")

		zap.L().Error("Failed to read JSON body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !partial {
		if missing := data.missingFields(); len(missing) > 0 {
			respond.JSON(c, http.StatusBadRequest, nil, "Missing fields: "+strings.Join(missing, ", "))
			return
		}
	}

	if err := data.applyTo(app, d.DB); err != nil {
		respond.JSON(c, http.StatusBadRequest, nil, err.Error())
		return
	}

	if err := d.DB.Save(app).Error; err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to update job application", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	d.Cache.InvalidateApplications(c.Request.Context())

	respond.JSON(c, http.StatusOK, app, "Job Application updated successfully")
}
