package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"jobtrack/tracker-api/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func jwtTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	viper.Set("jwt.secret", "test-secret")

	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "jwt.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&model.User{}))

	router := gin.New()
	router.GET("/protected", NewJWTMiddleware(conn), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("userID"))
	})

	return router, conn
}

func signToken(t *testing.T, secret, userID string, exp time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"type":    "auth",
		"iat":     time.Now().Unix(),
		"exp":     exp.Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func request(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestJWTMiddleware(t *testing.T) {
	router, conn := jwtTestRouter(t)

	require.NoError(t, conn.Create(&model.User{
		ID:           "verifiedUser",
		Email:        "v@example.com",
		PasswordHash: "x",
		Verified:     true,
	}).Error)

	token := signToken(t, "test-secret", "verifiedUser", time.Now().Add(time.Hour))

	w := request(router, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "verifiedUser", w.Body.String())
}

func TestJWTMiddlewareRejections(t *testing.T) {
	router, conn := jwtTestRouter(t)

	require.NoError(t, conn.Create(&model.User{
		ID:           "unverifiedUser",
		Email:        "u@example.com",
		PasswordHash: "x",
	}).Error)

	// No cookie at all
	w := request(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Signed with the wrong secret
	w = request(router, signToken(t, "other-secret", "unverifiedUser", time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Expired
	w = request(router, signToken(t, "test-secret", "unverifiedUser", time.Now().Add(-time.Hour)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token but the account never verified
	w = request(router, signToken(t, "test-secret", "unverifiedUser", time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token for a user that no longer exists
	w = request(router, signToken(t, "test-secret", "ghostUser", time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
