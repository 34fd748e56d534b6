package http_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	adapterHTTP "github.com/njuphywg-cyber/weight-loss-app/internal/adapters/handler/http"
	"github.com/njuphywg-cyber/weight-loss-app/internal/adapters/handler/http/middleware"
	"github.com/njuphywg-cyber/weight-loss-app/internal/adapters/repository"
	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
	"github.com/njuphywg-cyber/weight-loss-app/internal/core/services"
)

// headerAuth stands in for the JWT middleware: it reads X-User-ID straight
// into the request context so handler tests skip token minting.
func headerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		c.Set(middleware.ContextUserIDKey, userID)
		c.Next()
	}
}

func setupCheckInRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	checkins := repository.NewInMemoryCheckInRepository()
	profiles := repository.NewInMemoryProfileRepository()
	milestones := repository.NewInMemoryMilestoneRepository()

	tracker := services.NewMilestoneTracker(
		checkins, milestones,
		repository.NewInMemoryGoalRepository(),
		repository.NewInMemoryWeightRepository(),
		profiles,
	)
	svc := services.NewCheckInService(
		checkins, profiles,
		services.NewStateClassifier(), services.NewFeedbackGenerator(),
		tracker, nil,
	)
	handler := adapterHTTP.NewCheckInHandler(svc, milestones)

	r := gin.New()
	group := r.Group("/api/v1")
	group.Use(headerAuth())
	handler.RegisterRoutes(group)
	return r
}

func TestSubmitCheckIn(t *testing.T) {
	t.Run("Success: 201 Created with feedback", func(t *testing.T) {
		router := setupCheckInRouter()

		body := `{"exercises": ["running"], "diet": "controlled", "water": true, "mood": "happy"}`

		req, _ := http.NewRequest("POST", "/api/v1/checkins", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"effort_level":"high"`)
		assert.Contains(t, w.Body.String(), `"feedback"`)
	})

	t.Run("Fail: 401 Unauthorized (Missing Header)", func(t *testing.T) {
		router := setupCheckInRouter()

		req, _ := http.NewRequest("POST", "/api/v1/checkins", bytes.NewBufferString(`{"water": true}`))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Fail: 400 Bad Request (No Facet)", func(t *testing.T) {
		router := setupCheckInRouter()

		req, _ := http.NewRequest("POST", "/api/v1/checkins", bytes.NewBufferString(`{}`))
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 400 Bad Request (Future Date)", func(t *testing.T) {
		router := setupCheckInRouter()

		body := fmt.Sprintf(`{"water": true, "date": %q}`, domain.Today().AddDays(1).String())

		req, _ := http.NewRequest("POST", "/api/v1/checkins", bytes.NewBufferString(body))
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 400 Bad Request (Malformed Date)", func(t *testing.T) {
		router := setupCheckInRouter()

		req, _ := http.NewRequest("POST", "/api/v1/checkins", bytes.NewBufferString(`{"water": true, "date": "31/12/2025"}`))
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetCheckIns(t *testing.T) {
	submit := func(t *testing.T, router *gin.Engine, userID, body string) {
		t.Helper()
		req, _ := http.NewRequest("POST", "/api/v1/checkins", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", userID)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("Success: 200 OK today after submit", func(t *testing.T) {
		router := setupCheckInRouter()
		submit(t, router, "user-1", `{"mood": "happy"}`)

		req, _ := http.NewRequest("GET", "/api/v1/checkins/today", nil)
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"mood":"happy"`)
	})

	t.Run("Fail: 404 Not Found before any submit", func(t *testing.T) {
		router := setupCheckInRouter()

		req, _ := http.NewRequest("GET", "/api/v1/checkins/today", nil)
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Success: 200 OK range listing", func(t *testing.T) {
		router := setupCheckInRouter()
		submit(t, router, "user-1", `{"mood": "happy"}`)

		today := domain.Today()
		url := fmt.Sprintf("/api/v1/checkins?from=%s&to=%s", today.AddDays(-6), today)
		req, _ := http.NewRequest("GET", url, nil)
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), today.String())
	})

	t.Run("Fail: 400 Bad Request (Missing Range)", func(t *testing.T) {
		router := setupCheckInRouter()

		req, _ := http.NewRequest("GET", "/api/v1/checkins", nil)
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProgressEndpoints(t *testing.T) {
	t.Run("Success: 200 OK streak", func(t *testing.T) {
		router := setupCheckInRouter()

		body := `{"water": true}`
		req, _ := http.NewRequest("POST", "/api/v1/checkins", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)

		req, _ = http.NewRequest("GET", "/api/v1/progress/streak", nil)
		req.Header.Set("X-User-ID", "user-1")

		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"streak":1`)
	})

	t.Run("Success: 200 OK churn risk for a silent user", func(t *testing.T) {
		router := setupCheckInRouter()

		req, _ := http.NewRequest("GET", "/api/v1/progress/churn", nil)
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"risk_bucket":"mid"`)
	})

	t.Run("Success: 200 OK milestones empty at first", func(t *testing.T) {
		router := setupCheckInRouter()

		req, _ := http.NewRequest("GET", "/api/v1/progress/milestones", nil)
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
