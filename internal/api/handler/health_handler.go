package handler

import (
	"io"
	"net/http"
)

const (
	// HealthBody is the fixed liveness payload.
	HealthBody = "live-editor:ok\n"
	// HealthContentType matches what the servlet container used to emit.
	HealthContentType = "text/plain;charset=UTF-8"
)

// HealthHandler serves the liveness probe endpoint.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// Health handles GET on the configured health path.
//
// The status is left to the server default (200). A failed body write
// means the client is gone; the response is aborted via
// http.ErrAbortHandler so net/http tears the connection down without
// logging a stack trace.
//
// @Summary  Liveness probe
// @Tags     system
// @Produce  plain
// @Success  200  {string}  string  "live-editor:ok"
// @Router   /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", HealthContentType)
	if _, err := io.WriteString(w, HealthBody); err != nil {
		panic(http.ErrAbortHandler)
	}
}
