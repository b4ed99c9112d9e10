package reminder

import (
	"net/http"

	"jobtrack/tracker-api/internal"
	"jobtrack/tracker-api/internal/model"
	"jobtrack/tracker-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type bulkFailure struct {
	Index   int             `json:"index"`
	Payload reminderPayload `json:"payload"`
	Errors  []string        `json:"errors"`
}

// ReminderBulkCreate accepts an ordered list of reminder payloads.
// Elements are validated independently and reported per element. The
// batch runs in one transaction for write sequencing, but valid elements
// are committed even when others fail - partial success is durable, which
// is a deliberate deviation from delete-all's strict atomicity.
func ReminderBulkCreate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	app, ok := parentApplication(c, d)
	if !ok {
		return
	}

	var payloads []reminderPayload
	if err := c.BindJSON(&payloads); err != nil {
		respond.JSON(c, http.StatusBadRequest, nil, "Request body must be a JSON array of reminders")

		zap.L().Error("Failed to read JSON body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if len(payloads) == 0 {
		respond.JSON(c, http.StatusBadRequest, nil, "Reminder list can't be empty")
		return
	}

	created := []model.Reminder{}
	failed := []bulkFailure{}

	err := d.DB.Transaction(func(tx *gorm.DB) error {
		for i, p := range payloads {
			if errs := p.validate(); len(errs) > 0 {
				failed = append(failed, bulkFailure{Index: i, Payload: p, Errors: errs})
				continue
			}

			reminder := p.toModel(app.ID)
			if err := tx.Create(&reminder).Error; err != nil {
				return err
			}

			created = append(created, reminder)
		}

		return nil
	})
	if err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to bulk create reminders", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	data := gin.H{
		"created":       created,
		"failed":        failed,
		"created_count": len(created),
		"failed_count":  len(failed),
	}

	if len(failed) > 0 {
		respond.JSON(c, http.StatusMultiStatus, data, "Some reminders could not be created")
		return
	}

	respond.JSON(c, http.StatusCreated, data, "Reminders created successfully")
}
