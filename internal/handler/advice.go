package handler

import (
	"log/slog"
	"net/http"

	"chefanton/internal/httputil"
	"chefanton/internal/service/advisor"
)

// AdviceHandler answers free-text cooking questions in the chef persona.
type AdviceHandler struct {
	advisor *advisor.Service
	logger  *slog.Logger
}

// NewAdviceHandler creates a new advice handler.
func NewAdviceHandler(service *advisor.Service, logger *slog.Logger) *AdviceHandler {
	return &AdviceHandler{advisor: service, logger: logger}
}

// GetAdvice returns persona-styled advice. Provider failures resolve to
// the static fallback string, so this endpoint never errors on the
// generation path.
// POST /api/advice
func (h *AdviceHandler) GetAdvice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"advice": h.advisor.Advise(r.Context(), req.Question),
	})
}
