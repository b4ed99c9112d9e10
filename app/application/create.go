package application

import (
	"net/http"
	"strings"

	"jobtrack/tracker-api/internal"
	"jobtrack/tracker-api/internal/model"
	"jobtrack/tracker-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ApplicationCreate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data applicationPayload
	if err := c.BindJSON(&data); err != nil {
		respond.JSON(c, http.StatusBadRequest, nil, "Malformed or invalid JSON request body")

		zap.L().Error("Failed to read JSON body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if missing := data.missingFields(); len(missing) > 0 {
		respond.JSON(c, http.StatusBadRequest, nil, "Missing fields: "+strings.Join(missing, ", "))
		return
	}

	app := model.JobApplication{UserID: userID}

	if err := data.applyTo(&app, d.DB); err != nil {
		respond.JSON(c, http.StatusBadRequest, nil, err.Error())
		return
	}

	if err := d.DB.Create(&app).Error; err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to create job application", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	d.Cache.InvalidateApplications(c.Request.Context())

	respond.JSON(c, http.StatusCreated, app, "Job Application created successfully")
}
