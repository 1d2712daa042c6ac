package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func bindSettings(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPatch, "/settings", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req SettingsRequest
	return c.ShouldBindJSON(&req)
}

func TestSettingsRequest_TimeoutOptional(t *testing.T) {
	// Omitting the timeout is a valid partial update.
	if err := bindSettings(t, `{"theme":"dark","auto_lock":true}`); err != nil {
		t.Fatalf("omitted timeout must bind, got %v", err)
	}

	// An explicit out-of-range value is still rejected.
	if err := bindSettings(t, `{"theme":"dark","auto_lock_timeout":500}`); err == nil {
		t.Fatalf("expected out-of-range timeout to be rejected")
	}
	if err := bindSettings(t, `{"theme":"dark","auto_lock_timeout":-5}`); err == nil {
		t.Fatalf("expected negative timeout to be rejected")
	}
}
