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

// ApplicationDeleteAll removes every application owned by the requester,
// reminders included, as one atomic unit. Zero owned records is reported
// as NOT_FOUND rather than a vacuous success.
func ApplicationDeleteAll(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var deleted int64

	err := d.DB.Transaction(func(tx *gorm.DB) error {
		owned := tx.
			Model(&model.JobApplication{}).
			Select("id").
			Where("user_id = ?", userID)

		if err := tx.
			Where("job_application_id IN (?)", owned).
			Delete(model.Reminder{}).
			Error; err != nil {
			return err
		}

		r := tx.Where("user_id = ?", userID).Delete(model.JobApplication{})
		if r.Error != nil {
			return r.Error
		}

		deleted = r.RowsAffected
		return nil
	})
	if err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to delete job applications", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if deleted == 0 {
		respond.JSON(c, http.StatusNotFound, nil, "No job applications found")
		return
	}

	d.Cache.InvalidateApplications(c.Request.Context())

	respond.JSON(c, http.StatusOK, gin.H{
		"deleted_count": deleted,
	}, "All job applications deleted successfully")
}
