package reminder

import (
	"net/http"

	"jobtrack/tracker-api/internal"
	"jobtrack/tracker-api/internal/model"
	"jobtrack/tracker-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ReminderList(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	app, ok := parentApplication(c, d)
	if !ok {
		return
	}

	reminders := []model.Reminder{}

	err := d.DB.
		Where("job_application_id = ?", app.ID).
		Order("remind_at asc").
		Find(&reminders).
		Error
	if err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to list reminders", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	respond.JSON(c, http.StatusOK, reminders, "Reminders fetched successfully")
}
