package reminder

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

// getReminder resolves :reminderID under an already-gated parent.
func getReminder(c *gin.Context, d *internal.Deps, parentID uint) (r *model.Reminder, ok bool) {
	requestID := c.MustGet("requestID").(string)

	id, err := strconv.Atoi(c.Param("reminderID"))
	if err != nil || id < 1 {
		respond.JSON(c, http.StatusBadRequest, nil, "Invalid reminder ID")
		return nil, false
	}

	r = &model.Reminder{}

	err = d.DB.
		Where("id = ? AND job_application_id = ?", id, parentID).
		First(r).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			respond.JSON(c, http.StatusNotFound, nil, "Reminder not found")
			return nil, false
		}

		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to fetch reminder", zap.Error(err), zap.String("requestID", requestID))
		return nil, false
	}

	return r, true
}

func ReminderFetch(c *gin.Context, d *internal.Deps) {
	app, ok := parentApplication(c, d)
	if !ok {
		return
	}

	reminder, ok := getReminder(c, d, app.ID)
	if !ok {
		return
	}

	respond.JSON(c, http.StatusOK, reminder, "Reminder fetched successfully")
}
