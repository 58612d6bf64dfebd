package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"chefanton/internal/domain"
	"chefanton/internal/httputil"
	"chefanton/internal/service/outreach"
)

// InquiryHandler composes WhatsApp deep links for purchase and consulting
// inquiries. Purchases are not processed here - the visitor is handed off
// to the messaging app.
type InquiryHandler struct {
	composer *outreach.Composer
	logger   *slog.Logger
}

// NewInquiryHandler creates a new inquiry handler.
func NewInquiryHandler(composer *outreach.Composer, logger *slog.Logger) *InquiryHandler {
	return &InquiryHandler{composer: composer, logger: logger}
}

// Compose formats an inquiry and returns the deep link.
// POST /api/inquiry
func (h *InquiryHandler) Compose(w http.ResponseWriter, r *http.Request) {
	var inq outreach.Inquiry
	if err := httputil.ParseJSON(w, r, &inq); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	link, err := h.composer.Compose(inq)
	if err != nil {
		handleError(w, fmt.Errorf("%w: %v", domain.ErrValidation, err))
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"link": link})
}
