// Package app contains all endpoints available
package app

import (
	"fmt"
	"strings"
	"time"

	"jobtrack/tracker-api/app/application"
	"jobtrack/tracker-api/app/reminder"
	"jobtrack/tracker-api/app/root"
	"jobtrack/tracker-api/app/user"
	"jobtrack/tracker-api/db"
	"jobtrack/tracker-api/internal"
	appcache "jobtrack/tracker-api/internal/cache"
	"jobtrack/tracker-api/internal/service"
	"jobtrack/tracker-api/pkg/middleware"
	"jobtrack/tracker-api/pkg/security"

	gincache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

func NewRouter() (*gin.Engine, error) {
	makeLogger()

	d := &internal.Deps{}

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	d.DB = database
	d.Argon = security.New()
	d.Mail = service.NewMailer()

	cacheTTL := time.Duration(viper.GetInt("cache.ttl_seconds")) * time.Second

	store := newCacheStore(cacheTTL)
	d.Cache = appcache.NewInvalidator(store)

	router := gin.New()

	origins := strings.Split(viper.GetString("host.cors"), ",")

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	rateLimit := viper.GetInt("security.rate_limit")

	jwt := middleware.NewJWTMiddleware(database)
	bodyLimit := middleware.BodySizeLimiter(1 << 20)
	rateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: rateLimit,
		Burst:             rateLimit * 2,
		CleanupInterval:   time.Second,
	})

	m := router.Group("/api", rateLimiter)
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat)

		// GET /api/validate		-> Validates a JWT token
		m.GET("/validate", jwt, root.Validate)
	}

	u := m.Group("/users", bodyLimit)
	{
		// GET /api/users		-> Returns the profile of a user
		u.GET("", jwt, func(c *gin.Context) { user.UserFetch(c, d) })

		// POST /api/users 		-> Registers a new user
		u.POST("", func(c *gin.Context) { user.UserRegister(c, d) })

		// PATCH /api/users		-> Updates profile fields
		u.PATCH("", jwt, func(c *gin.Context) { user.UserUpdate(c, d) })

		// POST /api/users/login 	-> Logs in a user and returns a JWT token
		u.POST("/login", func(c *gin.Context) { user.UserLogin(c, d) })

		// POST /api/users/decode-token	-> Decodes a JWT token into its claims
		u.POST("/decode-token", func(c *gin.Context) { user.DecodeToken(c, d) })

		// POST /api/users/verify/send	-> Sends a new email verification code
		u.POST("/verify/send", func(c *gin.Context) { user.SendVerificationCode(c, d) })

		// POST /api/users/verify	-> Verifies a new user with an emailed code
		u.POST("/verify", func(c *gin.Context) { user.VerifyCode(c, d) })

		// POST /api/users/password/forgot -> Sends a password reset code
		u.POST("/password/forgot", func(c *gin.Context) { user.ForgotPassword(c, d) })

		// POST /api/users/password/reset  -> Changes the password with a valid code
		u.POST("/password/reset", func(c *gin.Context) { user.ResetPassword(c, d) })
	}

	a := m.Group("/applications", jwt, bodyLimit)
	{
		// GET /api/applications	-> Lists the user's applications with filters and pagination
		a.GET("", cachedBy(store, appcache.ListKeyPrefix, cacheTTL), func(c *gin.Context) { application.ApplicationList(c, d) })

		// POST /api/applications 	-> Creates a new job application
		a.POST("", func(c *gin.Context) { application.ApplicationCreate(c, d) })

		// DELETE /api/applications	-> Deletes every application the user owns
		a.DELETE("", func(c *gin.Context) { application.ApplicationDeleteAll(c, d) })

		// GET /api/applications/stats	-> Per-status counts for the user
		a.GET("/stats", func(c *gin.Context) { application.ApplicationStats(c, d) })

		// GET /api/applications/:id	-> Returns one application if the user owns it
		a.GET("/:id", cachedBy(store, appcache.DetailKeyPrefix, cacheTTL), func(c *gin.Context) { application.ApplicationFetch(c, d) })

		// PUT /api/applications/:id	-> Full update
		a.PUT("/:id", func(c *gin.Context) { application.ApplicationEdit(c, d, false) })

		// PATCH /api/applications/:id	-> Partial update
		a.PATCH("/:id", func(c *gin.Context) { application.ApplicationEdit(c, d, true) })

		// DELETE /api/applications/:id	-> Deletes one application
		a.DELETE("/:id", func(c *gin.Context) { application.ApplicationDelete(c, d) })
	}

	r := a.Group("/:id/reminders")
	{
		// GET /api/applications/:id/reminders		-> Lists reminders of an application
		r.GET("", func(c *gin.Context) { reminder.ReminderList(c, d) })

		// POST /api/applications/:id/reminders		-> Creates a reminder
		r.POST("", func(c *gin.Context) { reminder.ReminderCreate(c, d) })

		// POST /api/applications/:id/reminders/bulk	-> Creates many reminders at once
		r.POST("/bulk", func(c *gin.Context) { reminder.ReminderBulkCreate(c, d) })

		// GET /api/applications/:id/reminders/:reminderID	-> Returns one reminder
		r.GET("/:reminderID", func(c *gin.Context) { reminder.ReminderFetch(c, d) })

		// PUT /api/applications/:id/reminders/:reminderID	-> Updates a reminder
		r.PUT("/:reminderID", func(c *gin.Context) { reminder.ReminderEdit(c, d) })

		// DELETE /api/applications/:id/reminders/:reminderID	-> Deletes a reminder
		r.DELETE("/:reminderID", func(c *gin.Context) { reminder.ReminderDelete(c, d) })
	}

	return router, nil
}

func newCacheStore(ttl time.Duration) appcache.Store {
	if viper.GetBool("redis.enabled") {
		client := redis.NewClient(&redis.Options{
			Addr:     viper.GetString("redis.addr"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		})

		return appcache.NewRedisStore(client)
	}

	return appcache.NewMemoryStore(ttl)
}

// cachedBy caches GET responses under a namespace prefix. The user ID is
// part of the key so cached pages never leak across accounts, and the
// request URI keeps distinct filter/page combinations on distinct keys.
func cachedBy(store persist.CacheStore, prefix string, ttl time.Duration) gin.HandlerFunc {
	return gincache.Cache(store, ttl, gincache.WithCacheStrategyByRequest(
		func(c *gin.Context) (bool, gincache.Strategy) {
			return true, gincache.Strategy{
				CacheKey: prefix + c.GetString("userID") + ":" + c.Request.RequestURI,
			}
		},
	))
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
