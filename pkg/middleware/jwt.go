package middleware

import (
	"fmt"
	"net/http"
	"time"

	"jobtrack/tracker-api/internal/model"
	"jobtrack/tracker-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewJWTMiddleware authenticates requests off the auth_token cookie and
// sets userID on the context. The user row is re-checked so that deleted
// or unverified accounts can't keep using old tokens.
func NewJWTMiddleware(d *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie("auth_token")
		if err != nil {
			if err == http.ErrNoCookie {
				respond.Abort(c, http.StatusUnauthorized, "No auth_token cookie")
				return
			}

			respond.Abort(c, http.StatusUnauthorized, "Authorization token invalid")

			zap.L().Error("Failed to get token cookie", zap.Error(err))
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
			}

			return []byte(viper.GetString("jwt.secret")), nil
		})
		if err != nil || !token.Valid {
			respond.Abort(c, http.StatusUnauthorized, "Authorization token invalid")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			respond.Abort(c, http.StatusUnauthorized, "Authorization token invalid")
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok {
			respond.Abort(c, http.StatusUnauthorized, "Authorization token invalid")
			return
		}

		exp, ok := claims["exp"].(float64)
		if !ok || time.Now().Unix() >= int64(exp) {
			respond.Abort(c, http.StatusUnauthorized, "Authorization token expired. Please log in again")
			return
		}

		var user model.User
		if err := d.Where("id = ?", userID).First(&user).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				respond.Abort(c, http.StatusNotFound, "User not found")
				return
			}

			respond.Abort(c, http.StatusInternalServerError, "Internal server error")

			zap.L().Error("Failed to check if user exists", zap.Error(err))
			return
		}

		if !user.Verified {
			respond.Abort(c, http.StatusUnauthorized, "Please verify your account before using the service")
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
