package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func loggedRouter() *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.Use(ErrorLogger())
	router.GET("/boom", func(c *gin.Context) {
		panic("drawer exploded")
	})
	router.GET("/broken", func(c *gin.Context) {
		_ = c.Error(errors.New("db unreachable"))
		c.Status(http.StatusInternalServerError)
	})
	router.POST("/parking/entry", func(c *gin.Context) {
		c.Set(ContextEmployeeID, int64(7))
		c.Set(ContextRole, "operational_admin")
		c.Status(http.StatusCreated)
	})
	router.GET("/parking/active", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestErrorLogger_PanicBecomesEnvelope(t *testing.T) {
	buf := captureLog(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	loggedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, w.Body.String(), "drawer exploded")

	out := buf.String()
	assert.Contains(t, out, "request_panic request_id=req-123")
	assert.Contains(t, out, "drawer exploded")
}

func TestErrorLogger_LogsAttachedErrors(t *testing.T) {
	buf := captureLog(t)

	w := httptest.NewRecorder()
	loggedRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/broken", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "request_error")
	assert.Contains(t, buf.String(), `error="db unreachable"`)
}

func TestErrorLogger_WritesAreAudited(t *testing.T) {
	buf := captureLog(t)
	router := loggedRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/parking/entry", nil))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, buf.String(), "operator_action")
	assert.Contains(t, buf.String(), "route=/parking/entry employee_id=7 role=operational_admin")

	buf.Reset()
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/parking/active", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, buf.String())
}
