package application

import (
	"net/http"

	"jobtrack/tracker-api/internal"
	"jobtrack/tracker-api/internal/model"
	"jobtrack/tracker-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type statusCount struct {
	Label string
	Count int64
}

// ApplicationStats reports how many applications the requester has per
// status plus the overall total.
func ApplicationStats(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var total int64

	err := d.DB.
		Model(&model.JobApplication{}).
		Where("user_id = ?", userID).
		Count(&total).
		Error
	if err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to count job applications", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var rows []statusCount

	err = d.DB.
		Model(&model.JobApplication{}).
		Select("job_application_statuses.label AS label, COUNT(*) AS count").
		Joins("LEFT JOIN job_application_statuses ON job_application_statuses.id = job_applications.job_application_status_id").
		Where("job_applications.user_id = ?", userID).
		Group("job_application_statuses.label").
		Scan(&rows).
		Error
	if err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to aggregate job application statuses", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	byStatus := map[string]int64{}
	for _, row := range rows {
		label := row.Label
		if label == "" {
			label = "unspecified"
		}

		byStatus[label] = row.Count
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"total":     total,
		"by_status": byStatus,
	}, "Job application statistics")
}
