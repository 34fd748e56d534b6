package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/njuphywg-cyber/weight-loss-app/internal/adapters/handler/http"
	"github.com/njuphywg-cyber/weight-loss-app/internal/adapters/repository"
	"github.com/njuphywg-cyber/weight-loss-app/internal/core/services"
)

func setupBindingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := services.NewBindingService(
		repository.NewInMemoryBindingRepository(),
		repository.NewInMemoryProfileRepository(),
	)
	handler := adapterHTTP.NewBindingHandler(svc)

	r := gin.New()
	group := r.Group("/api/v1")
	group.Use(headerAuth())
	handler.RegisterRoutes(group)
	return r
}

func doBinding(router *gin.Engine, method, path, userID, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-User-ID", userID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createBinding(t *testing.T, router *gin.Engine, userID string) string {
	t.Helper()
	w := doBinding(router, "POST", "/api/v1/binding", userID, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Code, 6)
	return resp.Code
}

func TestCreateBinding(t *testing.T) {
	t.Run("Success: 201 Created with code", func(t *testing.T) {
		router := setupBindingRouter()

		code := createBinding(t, router, "alice")

		assert.Regexp(t, `^[0-9A-Z]{6}$`, code)
	})

	t.Run("Fail: 409 Conflict when already bound", func(t *testing.T) {
		router := setupBindingRouter()

		code := createBinding(t, router, "alice")
		joined := doBinding(router, "POST", "/api/v1/binding/join", "bob",
			fmt.Sprintf(`{"code": %q}`, code))
		require.Equal(t, http.StatusOK, joined.Code)

		w := doBinding(router, "POST", "/api/v1/binding", "alice", "")

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestJoinBinding(t *testing.T) {
	t.Run("Success: 200 OK activates", func(t *testing.T) {
		router := setupBindingRouter()
		code := createBinding(t, router, "alice")

		w := doBinding(router, "POST", "/api/v1/binding/join", "bob",
			fmt.Sprintf(`{"code": %q}`, code))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"active"`)
		assert.Contains(t, w.Body.String(), `"partner_id":"bob"`)
	})

	t.Run("Fail: 409 Conflict (Used Code)", func(t *testing.T) {
		router := setupBindingRouter()
		code := createBinding(t, router, "alice")

		first := doBinding(router, "POST", "/api/v1/binding/join", "bob",
			fmt.Sprintf(`{"code": %q}`, code))
		require.Equal(t, http.StatusOK, first.Code)

		w := doBinding(router, "POST", "/api/v1/binding/join", "carol",
			fmt.Sprintf(`{"code": %q}`, code))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Fail: 409 Conflict (Unknown Code)", func(t *testing.T) {
		router := setupBindingRouter()

		w := doBinding(router, "POST", "/api/v1/binding/join", "bob", `{"code": "ZZZZZZ"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Fail: 400 Bad Request (Missing Code)", func(t *testing.T) {
		router := setupBindingRouter()

		w := doBinding(router, "POST", "/api/v1/binding/join", "bob", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetAndUnbind(t *testing.T) {
	t.Run("Success: 200 OK current binding", func(t *testing.T) {
		router := setupBindingRouter()
		code := createBinding(t, router, "alice")
		joined := doBinding(router, "POST", "/api/v1/binding/join", "bob",
			fmt.Sprintf(`{"code": %q}`, code))
		require.Equal(t, http.StatusOK, joined.Code)

		w := doBinding(router, "GET", "/api/v1/binding", "bob", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"initiator_id":"alice"`)
	})

	t.Run("Fail: 404 Not Found when unbound", func(t *testing.T) {
		router := setupBindingRouter()

		w := doBinding(router, "GET", "/api/v1/binding", "alice", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Success: 204 No Content on unbind", func(t *testing.T) {
		router := setupBindingRouter()
		code := createBinding(t, router, "alice")
		joined := doBinding(router, "POST", "/api/v1/binding/join", "bob",
			fmt.Sprintf(`{"code": %q}`, code))
		require.Equal(t, http.StatusOK, joined.Code)

		w := doBinding(router, "DELETE", "/api/v1/binding", "alice", "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		after := doBinding(router, "GET", "/api/v1/binding", "bob", "")
		assert.Equal(t, http.StatusNotFound, after.Code)
	})
}
