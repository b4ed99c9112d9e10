package user

import (
	"net/http"

	"jobtrack/tracker-api/internal"
	"jobtrack/tracker-api/internal/model"
	"jobtrack/tracker-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type updateProfileBody struct {
	FullName   *string `json:"full_name,omitempty"`
	ProfileURL *string `json:"profile_url,omitempty"`
}

// UserUpdate changes the profile fields a user is allowed to edit.
func UserUpdate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data updateProfileBody
	if err := c.BindJSON(&data); err != nil {
		respond.JSON(c, http.StatusBadRequest, nil, "Malformed or invalid JSON request body")

		zap.L().Error("Failed to read JSON body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.FullName == nil && data.ProfileURL == nil {
		respond.JSON(c, http.StatusBadRequest, nil, "No profile fields provided")
		return
	}

	updates := map[string]any{}
	if data.FullName != nil {
		updates["full_name"] = *data.FullName
	}
	if data.ProfileURL != nil {
		updates["profile_url"] = *data.ProfileURL
	}

	err := d.DB.
		Model(model.User{}).
		Where("id = ?", userID).
		Updates(updates).
		Error
	if err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to update user profile", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var user model.User
	if err := d.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to fetch updated profile", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	respond.JSON(c, http.StatusOK, user, "User profile updated successfully")
}
