package user

import (
	"errors"
	"fmt"
	"net/http"

	"jobtrack/tracker-api/internal"
	"jobtrack/tracker-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

type decodeTokenBody struct {
	Token string `json:"token"`
}

// DecodeToken lets clients inspect the claims of a token they hold.
func DecodeToken(c *gin.Context, d *internal.Deps) {
	var data decodeTokenBody
	if err := c.ShouldBind(&data); err != nil || data.Token == "" {
		respond.JSON(c, http.StatusBadRequest, nil, "Token is required")
		return
	}

	token, err := jwt.Parse(data.Token, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return []byte(viper.GetString("jwt.secret")), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			respond.JSON(c, http.StatusUnauthorized, nil, "Token has expired")
			return
		}

		respond.JSON(c, http.StatusBadRequest, nil, "Invalid token")
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		respond.JSON(c, http.StatusBadRequest, nil, "Invalid token")
		return
	}

	respond.JSON(c, http.StatusOK, claims, "Token decoded successfully")
}
