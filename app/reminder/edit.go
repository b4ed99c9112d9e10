package reminder

import (
	"net/http"
	"strings"

	"jobtrack/tracker-api/internal"
	"jobtrack/tracker-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ReminderEdit(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	app, ok := parentApplication(c, d)
	if !ok {
		return
	}

	reminder, ok := getReminder(c, d, app.ID)
	if !ok {
		return
	}

	var data reminderPayload
	if err := c.BindJSON(&data); err != nil {
		respond.JSON(c, http.StatusBadRequest, nil, "Malformed or invalid JSON request body")

		zap.L().Error("Failed to read JSON body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Title != nil {
		if errs := data.validate(); len(errs) > 0 {
			respond.JSON(c, http.StatusBadRequest, nil, strings.Join(errs, "; "))
			return
		}

		reminder.Title = *data.Title
	}

	if data.Description != nil {
		reminder.Description = *data.Description
	}
	if data.IsEnabled != nil {
		reminder.IsEnabled = *data.IsEnabled
	}
	if data.RemindAt != nil {
		reminder.RemindAt = *data.RemindAt
	}

	if err := d.DB.Save(reminder).Error; err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to update reminder", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	respond.JSON(c, http.StatusOK, reminder, "Reminder updated successfully")
}
