package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"chefanton/internal/httputil"
	"chefanton/internal/service/editor"
)

// EditorHandler exposes the editing session over HTTP. All routes sit
// behind EditorAuth; the session itself is single working copy, last
// publish wins.
type EditorHandler struct {
	session *editor.Session
	logger  *slog.Logger
}

// NewEditorHandler creates a new editor handler.
func NewEditorHandler(session *editor.Session, logger *slog.Logger) *EditorHandler {
	return &EditorHandler{session: session, logger: logger}
}

// GetDocument returns the working copy and session state.
// GET /api/editor/document
func (h *EditorHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"document": h.session.Working(),
		"state":    h.session.State(),
	})
}

// SetField replaces one scalar field in the working copy.
// PATCH /api/editor/fields
func (h *EditorHandler) SetField(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" {
		httputil.RespondError(w, http.StatusBadRequest, "field name is required")
		return
	}

	// Unknown names no-op by design; the editor UI may be ahead of or
	// behind this binary's schema.
	h.session.SetField(req.Name, req.Value)
	w.WriteHeader(http.StatusNoContent)
}

// AddListItem prepends a new entry to the named list.
// POST /api/editor/lists/{list}
func (h *EditorHandler) AddListItem(w http.ResponseWriter, r *http.Request) {
	list, ok := listName(r)
	if !ok {
		httputil.RespondError(w, http.StatusNotFound, "unknown list")
		return
	}

	item, err := rawBody(w, r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, ok := h.session.AddListItem(list, item)
	if !ok {
		httputil.RespondError(w, http.StatusBadRequest, "item does not match list schema")
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// SetListItem merges a partial patch into one list entry. An unknown id
// is a silent success: the working copy is simply unchanged.
// PATCH /api/editor/lists/{list}/{id}
func (h *EditorHandler) SetListItem(w http.ResponseWriter, r *http.Request) {
	list, ok := listName(r)
	if !ok {
		httputil.RespondError(w, http.StatusNotFound, "unknown list")
		return
	}

	patch, err := rawBody(w, r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !h.session.SetListItem(list, r.PathValue("id"), patch) {
		httputil.RespondError(w, http.StatusBadRequest, "patch does not match list schema")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveListItem deletes one list entry; absent ids no-op.
// DELETE /api/editor/lists/{list}/{id}
func (h *EditorHandler) RemoveListItem(w http.ResponseWriter, r *http.Request) {
	list, ok := listName(r)
	if !ok {
		httputil.RespondError(w, http.StatusNotFound, "unknown list")
		return
	}

	h.session.RemoveListItem(list, r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// AddLink prepends a link to a footer group.
// POST /api/editor/footers/{group}/links
func (h *EditorHandler) AddLink(w http.ResponseWriter, r *http.Request) {
	group, ok := groupName(r)
	if !ok {
		httputil.RespondError(w, http.StatusNotFound, "unknown link group")
		return
	}

	link, err := rawBody(w, r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, ok := h.session.AddLink(group, link)
	if !ok {
		httputil.RespondError(w, http.StatusBadRequest, "link does not match schema")
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// SetLink merges a patch into one footer link.
// PATCH /api/editor/footers/{group}/links/{id}
func (h *EditorHandler) SetLink(w http.ResponseWriter, r *http.Request) {
	group, ok := groupName(r)
	if !ok {
		httputil.RespondError(w, http.StatusNotFound, "unknown link group")
		return
	}

	patch, err := rawBody(w, r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !h.session.SetLink(group, r.PathValue("id"), patch) {
		httputil.RespondError(w, http.StatusBadRequest, "patch does not match schema")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveLink deletes one footer link.
// DELETE /api/editor/footers/{group}/links/{id}
func (h *EditorHandler) RemoveLink(w http.ResponseWriter, r *http.Request) {
	group, ok := groupName(r)
	if !ok {
		httputil.RespondError(w, http.StatusNotFound, "unknown link group")
		return
	}

	h.session.RemoveLink(group, r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// Publish appends the working copy to the store as the new latest
// version. Store failure surfaces as 503 and the working copy keeps
// every edit.
// POST /api/editor/publish
func (h *EditorHandler) Publish(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Publish(r.Context()); err != nil {
		handleError(w, err)
		return
	}

	h.logger.Info("publish accepted", "editor", httputil.GetUserID(r))
	w.WriteHeader(http.StatusNoContent)
}

// Restore discards all in-memory edits. The UI must obtain destructive-
// action confirmation first and send confirmed=true.
// POST /api/editor/restore
func (h *EditorHandler) Restore(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Confirmed bool `json:"confirmed"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.session.Restore(r.Context(), req.Confirmed); err != nil {
		handleError(w, err)
		return
	}

	h.logger.Info("edits discarded", "editor", httputil.GetUserID(r))
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"document": h.session.Working(),
	})
}

func listName(r *http.Request) (editor.ListName, bool) {
	list := editor.ListName(r.PathValue("list"))
	switch list {
	case editor.ListWorkshops, editor.ListRecordedClasses, editor.ListPortfolio,
		editor.ListReviews, editor.ListPartners:
		return list, true
	}
	return "", false
}

func groupName(r *http.Request) (editor.GroupName, bool) {
	group := editor.GroupName(r.PathValue("group"))
	switch group {
	case editor.GroupFooterEducation, editor.GroupFooterB2B:
		return group, true
	}
	return "", false
}

// rawBody reads the request body as a raw JSON value for the session's
// merge-patch operations.
func rawBody(w http.ResponseWriter, r *http.Request) (json.RawMessage, error) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}
