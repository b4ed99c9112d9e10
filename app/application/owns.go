package application

import (
	"net/http"
	"strconv"

	"jobtrack/tracker-api/internal"
	"jobtrack/tracker-api/internal/model"
	"jobtrack/tracker-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// getOwned fetches the application in the path and enforces ownership.
// A missing id is NOT_FOUND, an existing record owned by someone else is
// FORBIDDEN - the two outcomes are deliberately distinct for direct
// application access. Writes the error response itself; callers bail out
// when ok is false.
func getOwned(c *gin.Context, d *internal.Deps) (app *model.JobApplication, ok bool) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		respond.JSON(c, http.StatusBadRequest, nil, "Invalid job application ID")
		return nil, false
	}

	app = &model.JobApplication{}

	err = d.DB.
		Preload("EmploymentType").
		Preload("WorkArrangement").
		Preload("JobApplicationStatus").
		Where("id = ?", id).
		First(app).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			respond.JSON(c, http.StatusNotFound, nil, "Job Application not found")
			return nil, false
		}

		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to fetch job application", zap.Error(err), zap.String("requestID", requestID))
		return nil, false
	}

	if app.UserID != userID {
		respond.JSON(c, http.StatusForbidden, nil, "You are not authorized to access this job application")
		return nil, false
	}

	return app, true
}
