package handler

import (
	"log/slog"
	"net/http"

	"chefanton/internal/httputil"
	"chefanton/internal/service/assets"
)

// maxUploadBytes caps a single asset upload.
const maxUploadBytes = 10 << 20

// AssetHandler accepts image uploads for the editing surface and returns
// publicly resolvable URLs.
type AssetHandler struct {
	store  assets.Store
	logger *slog.Logger
}

// NewAssetHandler creates a new asset handler.
func NewAssetHandler(store assets.Store, logger *slog.Logger) *AssetHandler {
	return &AssetHandler{store: store, logger: logger}
}

// Upload stores one image from a multipart form ("file" field).
// POST /api/assets
func (h *AssetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	url, err := h.store.Save(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		handleError(w, err)
		return
	}

	h.logger.Info("asset uploaded", "filename", header.Filename, "url", url)
	httputil.RespondJSON(w, http.StatusCreated, map[string]string{"url": url})
}
