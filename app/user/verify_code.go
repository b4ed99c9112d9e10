package user

import (
	"net/http"
	"time"

	"jobtrack/tracker-api/internal"
	"jobtrack/tracker-api/internal/model"
	"jobtrack/tracker-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type verifyCodeBody struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// VerifyCode consumes an email verification OTP. Codes are single-use:
// the row is deleted in the same transaction that flips the user to
// verified.
func VerifyCode(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data verifyCodeBody
	if err := c.ShouldBind(&data); err != nil {
		respond.JSON(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	if data.Email == "" || data.Code == "" {
		respond.JSON(c, http.StatusBadRequest, nil, "Email and code are required")
		return
	}

	var code model.VerificationCode

	err := d.DB.
		Where("email = ? AND code = ? AND purpose = ?", data.Email, data.Code, "email_verify").
		First(&code).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			respond.JSON(c, http.StatusNotFound, nil, "Invalid verification code")
			return
		}

		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to look up verification code", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if code.ExpiresAt.Before(time.Now()) {
		respond.JSON(c, http.StatusBadRequest, nil, "Verification code expired")
		return
	}

	err = d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&code).Error; err != nil {
			return err
		}

		return tx.Model(model.User{}).
			Where("email = ?", data.Email).
			Update("verified", true).
			Error
	})
	if err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Failed to verify user")

		zap.L().Error("Failed to update user and code in transaction", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	respond.JSON(c, http.StatusOK, nil, "User verified successfully")
}
