package user

import (
	"net/http"
	"time"

	"jobtrack/tracker-api/internal"
	"jobtrack/tracker-api/internal/model"
	"jobtrack/tracker-api/pkg/respond"
	"jobtrack/tracker-api/pkg/security"
	"jobtrack/tracker-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type forgotPasswordBody struct {
	Email string `json:"email"`
}

type resetPasswordBody struct {
	Email    string `json:"email"`
	Code     string `json:"code"`
	Password string `json:"password"`
}

// ForgotPassword checks that the email belongs to an account and mails a
// reset OTP.
func ForgotPassword(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data forgotPasswordBody
	if err := c.ShouldBind(&data); err != nil {
		respond.JSON(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		respond.JSON(c, http.StatusBadRequest, nil, err.Error())
		return
	}

	var found bool

	r := d.DB.Model(model.User{}).
		Select("count(*) > 0").
		Where("email = ?", data.Email).
		First(&found)
	if r.Error != nil && r.Error != gorm.ErrRecordNotFound {
		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to check if email is registered", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if !found {
		respond.JSON(c, http.StatusNotFound, nil, "This email does not belong to an account")
		return
	}

	code, err := security.MakeVerificationCode(&security.VerificationCodeOpts{
		Email:   data.Email,
		Purpose: "password_reset",
		TTL:     verificationCodeTTL,
	})
	if err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to generate reset code", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("email = ? AND purpose = ?", data.Email, "password_reset").
			Delete(model.VerificationCode{}).
			Error; err != nil {
			return err
		}

		return tx.Create(code).Error
	})
	if err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to store reset code", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := d.Mail.SendPasswordResetCode(data.Email, code.Code); err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Failed to send reset email")

		zap.L().Error("Failed to send reset email", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	respond.JSON(c, http.StatusOK, nil, "Password reset code sent")
}

// ResetPassword consumes a reset OTP and stores the new password hash.
func ResetPassword(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data resetPasswordBody
	if err := c.ShouldBind(&data); err != nil {
		respond.JSON(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	if data.Email == "" || data.Code == "" {
		respond.JSON(c, http.StatusBadRequest, nil, "Email and code are required")
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		respond.JSON(c, http.StatusBadRequest, nil, err.Error())
		return
	}

	var code model.VerificationCode

	err := d.DB.
		Where("email = ? AND code = ? AND purpose = ?", data.Email, data.Code, "password_reset").
		First(&code).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			respond.JSON(c, http.StatusNotFound, nil, "Invalid reset code")
			return
		}

		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to look up reset code", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if code.ExpiresAt.Before(time.Now()) {
		respond.JSON(c, http.StatusBadRequest, nil, "Reset code expired")
		return
	}

	hash, err := d.Argon.GenerateFromPassword(data.Password)
	if err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&code).Error; err != nil {
			return err
		}

		return tx.Model(model.User{}).
			Where("email = ?", data.Email).
			Update("password_hash", hash).
			Error
	})
	if err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Failed to change password")

		zap.L().Error("Failed to update password in transaction", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	respond.JSON(c, http.StatusOK, nil, "Password changed successfully")
}
