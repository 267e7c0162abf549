package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bhoomi2310/GreenPulse/internal/service"

	"github.com/google/uuid"
)

// minimal router wiring only the middleware + a probe endpoint
func newMiddlewareOnlyRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(&service.Service{}, nil)
	r.GET("/probe", h.requestIDMiddleware, func(c *gin.Context) {
		id, _ := c.Get("requestID")
		c.JSON(http.StatusOK, gin.H{"ok": true, "requestID": id})
	})
	return r
}

func TestRequestIDMiddleware_GeneratesIDWhenAbsent(t *testing.T) {
	r := newMiddlewareOnlyRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	echoed := w.Header().Get(requestIDHeader)
	if echoed == "" {
		t.Fatalf("response should carry a generated %s header", requestIDHeader)
	}
	if _, err := uuid.Parse(echoed); err != nil {
		t.Fatalf("generated id %q is not a UUID: %v", echoed, err)
	}

	var resp struct {
		OK        bool   `json:"ok"`
		RequestID string `json:"requestID"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK || resp.RequestID != echoed {
		t.Fatalf("context id %q does not match header %q", resp.RequestID, echoed)
	}
}

func TestRequestIDMiddleware_HonorsCallerID(t *testing.T) {
	r := newMiddlewareOnlyRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(requestIDHeader, "trace-42")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if got := w.Header().Get(requestIDHeader); got != "trace-42" {
		t.Fatalf("caller id not echoed: %q", got)
	}

	var resp struct {
		RequestID string `json:"requestID"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.RequestID != "trace-42" {
		t.Fatalf("context id = %q, want trace-42", resp.RequestID)
	}
}

func TestRequestIDMiddleware_FreshIDPerRequest(t *testing.T) {
	r := newMiddlewareOnlyRouter()

	ids := make(map[string]bool)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		r.ServeHTTP(w, req)
		id := w.Header().Get(requestIDHeader)
		if ids[id] {
			t.Fatalf("request id %q reused", id)
		}
		ids[id] = true
	}
}
