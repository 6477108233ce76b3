package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/todos", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })
	r.GET("/boom", func(c *gin.Context) { c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"}) })

	t.Run("logs method, path, status and duration", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/todos", nil))

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("log line not JSON: %q", buf.String())
		}
		if entry["method"] != "GET" {
			t.Errorf("method = %v", entry["method"])
		}
		if entry["path"] != "/todos" {
			t.Errorf("path = %v", entry["path"])
		}
		if entry["status"] != float64(http.StatusOK) {
			t.Errorf("status = %v", entry["status"])
		}
		if _, ok := entry["duration"]; !ok {
			t.Error("duration missing")
		}
	})

	t.Run("logs failures too", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("log line not JSON: %q", buf.String())
		}
		if entry["status"] != float64(http.StatusInternalServerError) {
			t.Errorf("status = %v", entry["status"])
		}
	})

	t.Run("does not alter the response", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/todos", nil))
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Errorf("response altered: %d %q", w.Code, w.Body.String())
		}
	})
}
