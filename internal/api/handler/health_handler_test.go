package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/liveeditor/live-editor/internal/api/handler"
)

func TestHealthHandler_Health(t *testing.T) {
	h := handler.NewHealthHandler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.Health(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/plain;charset=UTF-8" {
		t.Errorf("expected Content-Type text/plain;charset=UTF-8, got %q", ct)
	}
	if body := w.Body.String(); body != "live-editor:ok\n" {
		t.Errorf("expected body %q, got %q", "live-editor:ok\n", body)
	}
}

// Repeated calls on the same handler never vary.
func TestHealthHandler_Deterministic(t *testing.T) {
	h := handler.NewHealthHandler()

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		if w.Code != http.StatusOK || w.Body.String() != handler.HealthBody {
			t.Fatalf("call %d: got %d %q", i, w.Code, w.Body.String())
		}
	}
}

// brokenWriter simulates a client that disconnected mid-response.
type brokenWriter struct {
	header http.Header
}

func (b *brokenWriter) Header() http.Header { return b.header }
func (b *brokenWriter) WriteHeader(int) {}
func (b *brokenWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestHealthHandler_WriteFailureAbortsResponse(t *testing.T) {
	h := handler.NewHealthHandler()
	w := &brokenWriter{header: http.Header{}}

	defer func() {
		rvr := recover()
		if rvr != http.ErrAbortHandler {
			t.Fatalf("expected panic with http.ErrAbortHandler, got %v", rvr)
		}
	}()

	h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	t.Fatal("expected Health to abort")
}
