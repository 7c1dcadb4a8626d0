package handler

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
)

// Renderer writes templ components as HTTP responses. Components render into
// a buffer first so a failing component produces a clean 500 instead of a
// half-written page.
type Renderer struct {
	logger *slog.Logger
}

// NewRenderer creates a new component renderer.
func NewRenderer(logger *slog.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// Render writes c with the given status.
func (rn *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		InternalErrorResponse(w, r, rn.logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		rn.logger.Debug("response write failed", "error", err, "path", r.URL.Path)
	}
}
