package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/liveeditor/live-editor/internal/api/handler"
)

func TestWebappHandler(t *testing.T) {
	mockFS := fstest.MapFS{
		"index.html": &fstest.MapFile{
			Data: []byte("<html><body>Live Editor</body></html>"),
		},
		"js/live-editor.js": &fstest.MapFile{
			Data: []byte("export const stage = {};"),
		},
		"css/style.css": &fstest.MapFile{
			Data: []byte("canvas { width: 100%; }"),
		},
	}

	server := httptest.NewServer(handler.NewWebappHandler(mockFS))
	defer server.Close()

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{"root returns index", "/", http.StatusOK, "<html><body>Live Editor</body></html>"},
		{"script is served", "/js/live-editor.js", http.StatusOK, "export const stage = {};"},
		{"stylesheet is served", "/css/style.css", http.StatusOK, "canvas { width: 100%; }"},
		{"missing file is 404", "/js/missing.js", http.StatusNotFound, ""},
		{"directory without index is 404", "/js/", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := http.Get(server.URL + tt.path)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer func() { _ = res.Body.Close() }()

			if res.StatusCode != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, res.StatusCode)
			}
			if tt.expectedBody == "" {
				return
			}
			body, err := io.ReadAll(res.Body)
			if err != nil {
				t.Fatalf("read body: %v", err)
			}
			if string(body) != tt.expectedBody {
				t.Errorf("expected body %q, got %q", tt.expectedBody, body)
			}
		})
	}
}

func TestWebappHandler_ContentType(t *testing.T) {
	mockFS := fstest.MapFS{
		"js/fetch.stream.js": &fstest.MapFile{Data: []byte("void 0;")},
	}

	w := httptest.NewRecorder()
	handler.NewWebappHandler(mockFS).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/js/fetch.stream.js", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "javascript") {
		t.Errorf("expected a javascript content type, got %q", ct)
	}
}
