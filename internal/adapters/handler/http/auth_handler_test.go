package http_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	adapterHTTP "github.com/njuphywg-cyber/weight-loss-app/internal/adapters/handler/http"
	"github.com/njuphywg-cyber/weight-loss-app/internal/adapters/repository"
	"github.com/njuphywg-cyber/weight-loss-app/internal/core/services"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	profiles := repository.NewInMemoryProfileRepository()
	auth := services.NewAuthService(profiles, repository.NewInMemoryPrivacySettingsRepository())
	tokens := services.NewTokenService("test-secret", "weight-loss-app", time.Hour, profiles)
	handler := adapterHTTP.NewAuthHandler(auth, tokens)

	r := gin.New()
	handler.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	t.Run("Success: 201 Created", func(t *testing.T) {
		router := setupAuthRouter()

		w := postJSON(router, "/api/v1/auth/register",
			`{"name": "Alice", "email": "alice@example.com", "password": "secret123"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"email":"alice@example.com"`)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("Fail: 400 Bad Request (Invalid Email)", func(t *testing.T) {
		router := setupAuthRouter()

		w := postJSON(router, "/api/v1/auth/register",
			`{"name": "Alice", "email": "not-an-email", "password": "secret123"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 400 Bad Request (Short Password)", func(t *testing.T) {
		router := setupAuthRouter()

		w := postJSON(router, "/api/v1/auth/register",
			`{"name": "Alice", "email": "alice@example.com", "password": "abc"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 409 Conflict (Duplicate Email)", func(t *testing.T) {
		router := setupAuthRouter()

		first := postJSON(router, "/api/v1/auth/register",
			`{"name": "Alice", "email": "alice@example.com", "password": "secret123"}`)
		assert.Equal(t, http.StatusCreated, first.Code)

		second := postJSON(router, "/api/v1/auth/register",
			`{"name": "Alice Again", "email": "alice@example.com", "password": "secret456"}`)

		assert.Equal(t, http.StatusConflict, second.Code)
	})
}

func TestLogin(t *testing.T) {
	register := func(t *testing.T, router *gin.Engine) {
		t.Helper()
		w := postJSON(router, "/api/v1/auth/register",
			`{"name": "Alice", "email": "alice@example.com", "password": "secret123"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("Success: 200 OK with token", func(t *testing.T) {
		router := setupAuthRouter()
		register(t, router)

		w := postJSON(router, "/api/v1/auth/login",
			`{"email": "alice@example.com", "password": "secret123"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":`)
		assert.Contains(t, w.Body.String(), `"email":"alice@example.com"`)
	})

	t.Run("Fail: 401 Unauthorized (Wrong Password)", func(t *testing.T) {
		router := setupAuthRouter()
		register(t, router)

		w := postJSON(router, "/api/v1/auth/login",
			`{"email": "alice@example.com", "password": "wrong-password"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Fail: 401 Unauthorized (Unknown Email)", func(t *testing.T) {
		router := setupAuthRouter()

		w := postJSON(router, "/api/v1/auth/login",
			`{"email": "nobody@example.com", "password": "secret123"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
