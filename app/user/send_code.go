package user

import (
	"net/http"

	"jobtrack/tracker-api/internal"
	"jobtrack/tracker-api/internal/model"
	"jobtrack/tracker-api/pkg/respond"
	"jobtrack/tracker-api/pkg/security"
	"jobtrack/tracker-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type sendCodeBody struct {
	Email string `json:"email"`
}

// SendVerificationCode (re)issues the email verification OTP. Previous
// unused codes for the address are dropped so only the newest one works.
func SendVerificationCode(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data sendCodeBody
	if err := c.ShouldBind(&data); err != nil {
		respond.JSON(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		respond.JSON(c, http.StatusBadRequest, nil, err.Error())
		return
	}

	var user model.User

	if err := d.DB.Where("email = ?", data.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			respond.JSON(c, http.StatusNotFound, nil, "User not found")
			return
		}

		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if user.Verified {
		respond.JSON(c, http.StatusBadRequest, nil, "Account is already verified")
		return
	}

	code, err := security.MakeVerificationCode(&security.VerificationCodeOpts{
		Email:   data.Email,
		Purpose: "email_verify",
		TTL:     verificationCodeTTL,
	})
	if err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to generate verification code", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("email = ? AND purpose = ?", data.Email, "email_verify").
			Delete(model.VerificationCode{}).
			Error; err != nil {
			return err
		}

		return tx.Create(code).Error
	})
	if err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to store verification code", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := d.Mail.SendVerificationCode(data.Email, code.Code); err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Failed to send verification email")

		zap.L().Error("Failed to send verification email", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	respond.JSON(c, http.StatusOK, nil, "Verification code sent")
}
