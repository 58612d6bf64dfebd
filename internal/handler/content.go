package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"chefanton/internal/httputil"
	"chefanton/internal/service/content"
)

// ContentHandler serves the public, read-only site views. No auth: the
// whole point of the fallback policy is that these endpoints always have
// something complete to return.
type ContentHandler struct {
	views  *content.ViewService
	logger *slog.Logger
}

// NewContentHandler creates a new content handler.
func NewContentHandler(views *content.ViewService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{views: views, logger: logger}
}

// GetContent returns the latest raw content document.
// GET /api/content
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.views.Latest(r.Context()))
}

// GetHome returns the derived landing page view.
// GET /api/content/home
func (h *ContentHandler) GetHome(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.views.Home(r.Context()))
}

// GetClasses returns one page of the recorded-class catalog.
// GET /api/content/classes?page=N
func (h *ContentHandler) GetClasses(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page = n
		}
	}

	httputil.RespondJSON(w, http.StatusOK, h.views.Classes(r.Context(), page))
}

// HealthCheck is a simple health check endpoint.
// GET /health
func (h *ContentHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now(),
	})
}
