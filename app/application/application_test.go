package application

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"jobtrack/tracker-api/db"
	"jobtrack/tracker-api/internal"
	"jobtrack/tracker-api/internal/cache"
	"jobtrack/tracker-api/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	StatusCode int             `json:"status_code"`
}

func setup(t *testing.T) (*gin.Engine, *internal.Deps) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "app.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(
		&model.User{},
		&model.EmploymentType{},
		&model.WorkArrangement{},
		&model.JobApplicationStatus{},
		&model.JobApplication{},
		&model.Reminder{},
	))
	require.NoError(t, db.Seed(conn))

	d := &internal.Deps{
		DB:    conn,
		Cache: cache.NewInvalidator(cache.NewMemoryStore(time.Minute)),
	}

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("requestID", "test")

		user := c.GetHeader("X-Test-User")
		if user == "" {
			user = "u1"
		}
		c.Set("userID", user)
	})

	router.GET("/api/applications", func(c *gin.Context) { ApplicationList(c, d) })
	router.POST("/api/applications", func(c *gin.Context) { ApplicationCreate(c, d) })
	router.DELETE("/api/applications", func(c *gin.Context) { ApplicationDeleteAll(c, d) })
	router.GET("/api/applications/stats", func(c *gin.Context) { ApplicationStats(c, d) })
	router.GET("/api/applications/:id", func(c *gin.Context) { ApplicationFetch(c, d) })
	router.PUT("/api/applications/:id", func(c *gin.Context) { ApplicationEdit(c, d, false) })
	router.PATCH("/api/applications/:id", func(c *gin.Context) { ApplicationEdit(c, d, true) })
	router.DELETE("/api/applications/:id", func(c *gin.Context) { ApplicationDelete(c, d) })

	return router, d
}

func do(t *testing.T, router *gin.Engine, method, path, user string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, w.Code, env.StatusCode)

	return w, env
}

func seedApp(t *testing.T, d *internal.Deps, userID, title string) *model.JobApplication {
	t.Helper()

	app := &model.JobApplication{
		UserID:         userID,
		PositionTitle:  title,
		CompanyName:    "Acme",
		JobPostingLink: "https://acme.example/jobs/1",
		JobLocation:    "Berlin",
		DateApplied:    model.Date(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
	}
	require.NoError(t, d.DB.Create(app).Error)

	return app
}

func TestApplicationCreate(t *testing.T) {
	router, d := setup(t)

	_, env := do(t, router, http.MethodPost, "/api/applications", "", gin.H{
		"position_title":   "Backend Engineer",
		"company_name":     "Acme",
		"job_posting_link": "https://acme.example/jobs/1",
		"date_applied":     "2024-01-10",
		"job_location":     "Berlin",
		"employment_type":  "full-time",
	})

	assert.Equal(t, http.StatusCreated, env.StatusCode)
	assert.Equal(t, "Job Application created successfully", env.Message)

	var created model.JobApplication
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Backend Engineer", created.PositionTitle)
	require.NotNil(t, created.EmploymentType)
	assert.Equal(t, "Full-Time", created.EmploymentType.Label)

	var count int64
	require.NoError(t, d.DB.Model(&model.JobApplication{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApplicationCreateMissingFields(t *testing.T) {
	router, _ := setup(t)

	_, env := do(t, router, http.MethodPost, "/api/applications", "", gin.H{
		"position_title": "Backend Engineer",
	})

	assert.Equal(t, http.StatusBadRequest, env.StatusCode)
	assert.Contains(t, env.Message, "Missing fields:")
	assert.Contains(t, env.Message, "company_name")
}

func TestApplicationCreateUnknownLabel(t *testing.T) {
	router, _ := setup(t)

	_, env := do(t, router, http.MethodPost, "/api/applications", "", gin.H{
		"position_title":   "Backend Engineer",
		"company_name":     "Acme",
		"job_posting_link": "https://acme.example/jobs/1",
		"date_applied":     "2024-01-10",
		"job_location":     "Berlin",
		"employment_type":  "quarter-time",
	})

	assert.Equal(t, http.StatusBadRequest, env.StatusCode)
	assert.Contains(t, env.Message, "unknown employment_type")
}

func TestApplicationFetchOwnership(t *testing.T) {
	router, d := setup(t)
	app := seedApp(t, d, "u1", "Backend Engineer")

	// Owner sees the record
	_, env := do(t, router, http.MethodGet, fmt.Sprintf("/api/applications/%d", app.ID), "u1", nil)
	assert.Equal(t, http.StatusOK, env.StatusCode)

	// Another user gets FORBIDDEN, not NOT_FOUND
	_, env = do(t, router, http.MethodGet, fmt.Sprintf("/api/applications/%d", app.ID), "u2", nil)
	assert.Equal(t, http.StatusForbidden, env.StatusCode)
	assert.Equal(t, "You are not authorized to access this job application", env.Message)

	// A record that does not exist at all is NOT_FOUND
	_, env = do(t, router, http.MethodGet, "/api/applications/9999", "u1", nil)
	assert.Equal(t, http.StatusNotFound, env.StatusCode)
	assert.Equal(t, "Job Application not found", env.Message)

	_, env = do(t, router, http.MethodGet, "/api/applications/nope", "u1", nil)
	assert.Equal(t, http.StatusBadRequest, env.StatusCode)
}

func TestApplicationListEnvelope(t *testing.T) {
	router, d := setup(t)
	seedApp(t, d, "u1", "Backend Engineer")
	seedApp(t, d, "u2", "Stranger")

	_, env := do(t, router, http.MethodGet, "/api/applications?company_name=acme", "u1", nil)
	require.Equal(t, http.StatusOK, env.StatusCode)
	assert.Equal(t, "All job applications", env.Message)

	var data struct {
		Results        []model.JobApplication `json:"results"`
		FiltersApplied map[string]any         `json:"filters_applied"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	assert.Len(t, data.Results, 1)
	assert.Equal(t, "acme", data.FiltersApplied["company_name"])
	assert.Nil(t, data.FiltersApplied["employment_type"])
	assert.Len(t, data.FiltersApplied, 8)
}

func TestApplicationListPaginated(t *testing.T) {
	router, d := setup(t)
	for i := 0; i < 5; i++ {
		seedApp(t, d, "u1", fmt.Sprintf("Engineer %d", i))
	}

	_, env := do(t, router, http.MethodGet, "/api/applications?page=1&page_size=2", "u1", nil)
	require.Equal(t, http.StatusOK, env.StatusCode)
	assert.Equal(t, "Paginated job applications", env.Message)

	var data struct {
		Results     []model.JobApplication `json:"results"`
		CurrentPage int                    `json:"current_page"`
		TotalPages  int                    `json:"total_pages"`
		Count       int                    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	assert.Len(t, data.Results, 2)
	assert.Equal(t, 1, data.CurrentPage)
	assert.Equal(t, 3, data.TotalPages)
	assert.Equal(t, 5, data.Count)

	_, env = do(t, router, http.MethodGet, "/api/applications?page=9", "u1", nil)
	assert.Equal(t, http.StatusNotFound, env.StatusCode)
	assert.Equal(t, "Page not found", env.Message)
}

func TestApplicationListBadDate(t *testing.T) {
	router, _ := setup(t)

	_, env := do(t, router, http.MethodGet, "/api/applications?date_from=01-01-2024", "u1", nil)
	assert.Equal(t, http.StatusBadRequest, env.StatusCode)
	assert.Contains(t, env.Message, "date_from")
}

func TestApplicationEditPartial(t *testing.T) {
	router, d := setup(t)
	app := seedApp(t, d, "u1", "Backend Engineer")

	_, env := do(t, router, http.MethodPatch, fmt.Sprintf("/api/applications/%d", app.ID), "u1", gin.H{
		"company_name": "Initech",
	})
	require.Equal(t, http.StatusOK, env.StatusCode)
	assert.Equal(t, "Job Application updated successfully", env.Message)

	var stored model.JobApplication
	require.NoError(t, d.DB.First(&stored, app.ID).Error)
	assert.Equal(t, "Initech", stored.CompanyName)
	assert.Equal(t, "Backend Engineer", stored.PositionTitle)
}

func TestApplicationEditFullRequiresAllFields(t *testing.T) {
	router, d := setup(t)
	app := seedApp(t, d, "u1", "Backend Engineer")

	_, env := do(t, router, http.MethodPut, fmt.Sprintf("/api/applications/%d", app.ID), "u1", gin.H{
		"company_name": "Initech",
	})
	assert.Equal(t, http.StatusBadRequest, env.StatusCode)
	assert.Contains(t, env.Message, "Missing fields:")
}

func TestApplicationDelete(t *testing.T) {
	router, d := setup(t)
	app := seedApp(t, d, "u1", "Backend Engineer")

	require.NoError(t, d.DB.Create(&model.Reminder{
		JobApplicationID: app.ID,
		Title:            "Follow up",
		RemindAt:         time.Now(),
	}).Error)

	_, env := do(t, router, http.MethodDelete, fmt.Sprintf("/api/applications/%d", app.ID), "u1", nil)
	require.Equal(t, http.StatusOK, env.StatusCode)

	var apps, reminders int64
	require.NoError(t, d.DB.Model(&model.JobApplication{}).Count(&apps).Error)
	require.NoError(t, d.DB.Model(&model.Reminder{}).Count(&reminders).Error)
	assert.Zero(t, apps)
	assert.Zero(t, reminders)
}

func TestApplicationDeleteAll(t *testing.T) {
	router, d := setup(t)
	seedApp(t, d, "u1", "One")
	two := seedApp(t, d, "u1", "Two")
	seedApp(t, d, "u2", "Keep")

	require.NoError(t, d.DB.Create(&model.Reminder{
		JobApplicationID: two.ID,
		Title:            "Follow up",
		RemindAt:         time.Now(),
	}).Error)

	_, env := do(t, router, http.MethodDelete, "/api/applications", "u1", nil)
	require.Equal(t, http.StatusOK, env.StatusCode)

	var data struct {
		DeletedCount int `json:"deleted_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 2, data.DeletedCount)

	var remaining int64
	require.NoError(t, d.DB.Model(&model.JobApplication{}).Where("user_id = ?", "u2").Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)

	var reminders int64
	require.NoError(t, d.DB.Model(&model.Reminder{}).Count(&reminders).Error)
	assert.Zero(t, reminders)

	// Nothing left to delete
	_, env = do(t, router, http.MethodDelete, "/api/applications", "u1", nil)
	assert.Equal(t, http.StatusNotFound, env.StatusCode)
	assert.Equal(t, "No job applications found", env.Message)
}

func TestApplicationStats(t *testing.T) {
	router, d := setup(t)

	var applied model.JobApplicationStatus
	require.NoError(t, d.DB.Where("label = ?", "Applied").First(&applied).Error)

	for i := 0; i < 2; i++ {
		app := seedApp(t, d, "u1", fmt.Sprintf("Engineer %d", i))
		require.NoError(t, d.DB.Model(app).Update("job_application_status_id", applied.ID).Error)
	}
	seedApp(t, d, "u1", "No status")

	_, env := do(t, router, http.MethodGet, "/api/applications/stats", "u1", nil)
	require.Equal(t, http.StatusOK, env.StatusCode)

	var data struct {
		Total    int            `json:"total"`
		ByStatus map[string]int `json:"by_status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	assert.Equal(t, 3, data.Total)
	assert.Equal(t, 2, data.ByStatus["Applied"])
	assert.Equal(t, 1, data.ByStatus["unspecified"])
}
