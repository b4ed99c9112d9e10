// Package reminder contains the reminder endpoints nested under a job
// application.
package reminder

import (
	"net/http"
	"strconv"
	"time"

	"jobtrack/tracker-api/internal"
	"jobtrack/tracker-api/internal/model"
	"jobtrack/tracker-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// parentApplication resolves the :id path segment to an application the
// requester owns. Access control here is structural: the lookup is
// pre-filtered by owner, so someone else's application is
// indistinguishable from a nonexistent one (NOT_FOUND, never FORBIDDEN).
func parentApplication(c *gin.Context, d *internal.Deps) (app *model.JobApplication, ok bool) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		respond.JSON(c, http.StatusBadRequest, nil, "Invalid job application ID")
		return nil, false
	}

	app = &model.JobApplication{}

	err = d.DB.
		Where("id = ? AND user_id = ?", id, userID).
		First(app).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			respond.JSON(c, http.StatusNotFound, nil, "Job Application not found")
			return nil, false
		}

		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to fetch parent job application", zap.Error(err), zap.String("requestID", requestID))
		return nil, false
	}

	return app, true
}

// reminderPayload is the write shape for reminders. The enabled flag
// defaults to true and the reminder timestamp to "now" when unset.
type reminderPayload struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	IsEnabled   *bool      `json:"is_enabled,omitempty"`
	RemindAt    *time.Time `json:"reminder_datetime,omitempty"`
}

func (p *reminderPayload) validate() []string {
	var errs []string

	if p.Title == nil || *p.Title == "" {
		errs = append(errs, "title is required")
	} else if len(*p.Title) > 255 {
		errs = append(errs, "title must be at most 255 characters")
	}

	return errs
}

func (p *reminderPayload) toModel(parentID uint) model.Reminder {
	r := model.Reminder{
		JobApplicationID: parentID,
		IsEnabled:        true,
		RemindAt:         time.Now(),
	}

	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.IsEnabled != nil {
		r.IsEnabled = *p.IsEnabled
	}
	if p.RemindAt != nil {
		r.RemindAt = *p.RemindAt
	}

	return r
}
