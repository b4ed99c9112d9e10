package application

import (
	"net/http"

	"jobtrack/tracker-api/internal"
	"jobtrack/tracker-api/internal/model"
	"jobtrack/tracker-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func ApplicationDelete(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	app, ok := getOwned(c, d)
	if !ok {
		return
	}

	// Reminders go first so the cascade doesn't depend on foreign key
	// enforcement being switched on in SQLite
	err := d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("job_application_id = ?", app.ID).
			Delete(model.Reminder{}).
			Error; err != nil {
			return err
		}

		return tx.Delete(app).Error
	})
	if err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to delete job application", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	d.Cache.InvalidateApplications(c.Request.Context())

	respond.JSON(c, http.StatusOK, nil, "Job Application deleted successfully")
}
