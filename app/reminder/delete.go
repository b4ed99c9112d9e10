package reminder

import (
	"net/http"

	"jobtrack/tracker-api/internal"
	"jobtrack/tracker-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ReminderDelete(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	app, ok := parentApplication(c, d)
	if !ok {
		return
	}

	reminder, ok := getReminder(c, d, app.ID)
	if !ok {
		return
	}

	if err := d.DB.Delete(reminder).Error; err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to delete reminder", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	respond.JSON(c, http.StatusOK, nil, "Reminder deleted successfully")
}
