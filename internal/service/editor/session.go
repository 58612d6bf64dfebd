// Package editor holds the in-memory editing session that mediates
// between the content store and the editing UI. All mutations touch only
// the working copy; nothing reaches the store until Publish.
package editor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"chefanton/internal/domain"
	"chefanton/internal/domain/models"
	"chefanton/internal/domain/repositories"
)

// ErrPublishInFlight is returned when Publish is called while a previous
// publish is still running. The UI is expected to disable the publish
// action while one is pending; this is the backstop.
var ErrPublishInFlight = errors.New("publish already in progress")

// State is the editing session's lifecycle phase.
type State string

const (
	StateIdle       State = "idle"
	StateEditing    State = "editing"
	StatePublishing State = "publishing"
	StateRestoring  State = "restoring"
)

// ListName identifies one of the document's top-level entry lists.
type ListName string

const (
	ListWorkshops       ListName = "workshops"
	ListRecordedClasses ListName = "recordedClasses"
	ListPortfolio       ListName = "portfolio"
	ListReviews         ListName = "reviews"
	ListPartners        ListName = "partners"
)

// GroupName identifies one of the footer link groups.
type GroupName string

const (
	GroupFooterEducation GroupName = "footerEducation"
	GroupFooterB2B       GroupName = "footerB2B"
)

// Session owns exactly one working copy of the content document, scoped
// to a single editing surface. There is no multi-editor merge: the last
// publish wins by insertion order in the store.
type Session struct {
	repo   repositories.ContentRepository
	logger *slog.Logger

	mu      sync.Mutex
	working models.ContentDocument
	state   State
}

// NewSession bootstraps a session from the latest published document.
// This is the session's only blocking load; everything after it works on
// the in-memory copy.
func NewSession(ctx context.Context, repo repositories.ContentRepository, logger *slog.Logger) *Session {
	doc, origin := repo.FetchLatest(ctx)
	if origin.Fallback() {
		logger.Warn("editing session seeded from fallback document", "origin", origin)
	}

	return &Session{
		repo:    repo,
		logger:  logger,
		working: doc,
		state:   StateIdle,
	}
}

// Working returns a deep copy of the current working document.
func (s *Session) Working() models.ContentDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.working.Clone()
}

// State returns the session's current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetField replaces one scalar branding field. Unknown field names are a
// silent no-op; the operation never fails. No validation beyond type -
// the caller supplies the value it wants rendered.
func (s *Session) SetField(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if target := s.scalarField(name); target != nil {
		*target = value
		s.state = StateEditing
	}
}

// scalarField maps a wire-level field name to its slot in the working
// copy. Must be called with the lock held.
func (s *Session) scalarField(name string) *string {
	w := &s.working
	switch name {
	case "heroTitle":
		return &w.HeroTitle
	case "heroSubtitle":
		return &w.HeroSubtitle
	case "heroImage":
		return &w.HeroImage
	case "ctaWorkshopTitle":
		return &w.CTAWorkshop.Title
	case "ctaWorkshopDescription":
		return &w.CTAWorkshop.Description
	case "ctaClassTitle":
		return &w.CTAClass.Title
	case "ctaClassDescription":
		return &w.CTAClass.Description
	case "ctaConsultingTitle":
		return &w.CTAConsulting.Title
	case "ctaConsultingDescription":
		return &w.CTAConsulting.Description
	case "aboutName":
		return &w.AboutName
	case "aboutTitle":
		return &w.AboutTitle
	case "aboutBio":
		return &w.AboutBio
	case "aboutQuote":
		return &w.AboutQuote
	case "aboutPhoto":
		return &w.AboutPhoto
	case "footerEducationTitle":
		return &w.FooterEducation.Title
	case "footerB2BTitle":
		return &w.FooterB2B.Title
	}
	return nil
}

// SetListItem merges a partial JSON patch into the entry with the given
// id. An unknown list or id is a silent no-op: the editing surface stays
// forgiving of stale UI state (a list re-rendered after another tab's
// edit). Returns false only when the patch itself doesn't parse.
func (s *Session) SetListItem(list ListName, id string, patch json.RawMessage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := true
	switch list {
	case ListWorkshops:
		s.working.Workshops, ok = patchByID(s.working.Workshops, id, workshopID, patch, &s.state)
	case ListRecordedClasses:
		s.working.RecordedClasses, ok = patchByID(s.working.RecordedClasses, id, recordedClassID, patch, &s.state)
	case ListPortfolio:
		s.working.Portfolio, ok = patchByID(s.working.Portfolio, id, portfolioID, patch, &s.state)
	case ListReviews:
		s.working.Reviews, ok = patchByID(s.working.Reviews, id, reviewID, patch, &s.state)
	case ListPartners:
		s.working.Partners, ok = patchByID(s.working.Partners, id, partnerID, patch, &s.state)
	}
	return ok
}

// AddListItem decodes item and prepends it to the named list, so the
// newest work sits on top. An entry arriving without an id gets a fresh
// UUID. Returns the entry's id, or false when the list is unknown or the
// item doesn't decode.
func (s *Session) AddListItem(list ListName, item json.RawMessage) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch list {
	case ListWorkshops:
		return prepend(&s.working.Workshops, item, workshopID, func(w *models.Workshop, id string) { w.ID = id }, &s.state)
	case ListRecordedClasses:
		return prepend(&s.working.RecordedClasses, item, recordedClassID, func(c *models.RecordedClass, id string) { c.ID = id }, &s.state)
	case ListPortfolio:
		return prepend(&s.working.Portfolio, item, portfolioID, func(p *models.PortfolioItem, id string) { p.ID = id }, &s.state)
	case ListReviews:
		return prepend(&s.working.Reviews, item, reviewID, func(r *models.Review, id string) { r.ID = id }, &s.state)
	case ListPartners:
		return prepend(&s.working.Partners, item, partnerID, func(p *models.Partner, id string) { p.ID = id }, &s.state)
	}
	return "", false
}

// RemoveListItem removes the first entry with the given id. No-op when
// the list or id is unknown.
func (s *Session) RemoveListItem(list ListName, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch list {
	case ListWorkshops:
		s.working.Workshops = removeByID(s.working.Workshops, id, workshopID, &s.state)
	case ListRecordedClasses:
		s.working.RecordedClasses = removeByID(s.working.RecordedClasses, id, recordedClassID, &s.state)
	case ListPortfolio:
		s.working.Portfolio = removeByID(s.working.Portfolio, id, portfolioID, &s.state)
	case ListReviews:
		s.working.Reviews = removeByID(s.working.Reviews, id, reviewID, &s.state)
	case ListPartners:
		s.working.Partners = removeByID(s.working.Partners, id, partnerID, &s.state)
	}
}

// SetLink merges a patch into one footer link. Unknown ids no-op like
// SetListItem; an unknown group returns false, matching AddLink.
func (s *Session) SetLink(group GroupName, id string, patch json.RawMessage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	links := s.linkGroup(group)
	if links == nil {
		return false
	}
	updated, ok := patchByID(*links, id, navLinkID, patch, &s.state)
	*links = updated
	return ok
}

// AddLink prepends a link to a footer group.
func (s *Session) AddLink(group GroupName, link json.RawMessage) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	links := s.linkGroup(group)
	if links == nil {
		return "", false
	}
	return prepend(links, link, navLinkID, func(l *models.NavLink, id string) { l.ID = id }, &s.state)
}

// RemoveLink removes one footer link by id.
func (s *Session) RemoveLink(group GroupName, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if links := s.linkGroup(group); links != nil {
		*links = removeByID(*links, id, navLinkID, &s.state)
	}
}

func (s *Session) linkGroup(group GroupName) *[]models.NavLink {
	switch group {
	case GroupFooterEducation:
		return &s.working.FooterEducation.Links
	case GroupFooterB2B:
		return &s.working.FooterB2B.Links
	}
	return nil
}

// Publish appends the working copy to the store as the new latest
// version. On success the working copy is the new published baseline; on
// failure it is retained unchanged so the editor loses nothing, and the
// error propagates. Render-time historical reclassification is NOT
// persisted here - the stored flags are exactly what the editor set.
func (s *Session) Publish(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StatePublishing {
		s.mu.Unlock()
		return ErrPublishInFlight
	}
	s.state = StatePublishing
	snapshot := s.working.Clone()
	s.mu.Unlock()

	err := s.repo.Publish(ctx, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateEditing
		return fmt.Errorf("publish working copy: %w", err)
	}

	s.working.Version = models.SchemaVersion
	s.state = StateIdle
	s.logger.Info("working copy published")
	return nil
}

// Restore discards every in-memory edit and replaces the working copy
// with a fresh fetch of the latest published version. Destructive, so it
// refuses to run without the caller's explicit confirmation.
func (s *Session) Restore(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("%w: restore discards all edits and requires confirmation", domain.ErrValidation)
	}

	s.mu.Lock()
	s.state = StateRestoring
	s.mu.Unlock()

	doc, origin := s.repo.FetchLatest(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.working = doc
	s.state = StateIdle
	s.logger.Info("working copy restored", "origin", origin)
	return nil
}

// Entry id accessors for the generic list helpers.
func workshopID(w models.Workshop) string           { return w.ID }
func recordedClassID(c models.RecordedClass) string { return c.ID }
func portfolioID(p models.PortfolioItem) string     { return p.ID }
func reviewID(r models.Review) string               { return r.ID }
func partnerID(p models.Partner) string             { return p.ID }
func navLinkID(l models.NavLink) string             { return l.ID }

// patchByID merges a partial JSON patch into the entry whose id matches,
// replacing the list. Unmatched ids leave the list value-equal but are
// still returned as a fresh slice.
func patchByID[T any](items []T, id string, idOf func(T) string, patch json.RawMessage, state *State) ([]T, bool) {
	out := append([]T(nil), items...)
	for i, item := range out {
		if idOf(item) != id {
			continue
		}
		merged, err := mergePatch(item, patch)
		if err != nil {
			return items, false
		}
		out[i] = merged
		*state = StateEditing
		return out, true
	}
	return out, true
}

// mergePatch applies a partial JSON patch to base: only fields present in
// the patch change. base is round-tripped through JSON first so the merge
// target shares no slice or pointer state with the live entry - a patch
// that fails partway through decoding must leave nothing behind.
func mergePatch[T any](base T, patch json.RawMessage) (T, error) {
	var merged T
	raw, err := json.Marshal(base)
	if err != nil {
		return merged, err
	}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return merged, err
	}
	if err := json.Unmarshal(patch, &merged); err != nil {
		return merged, err
	}
	return merged, nil
}

func prepend[T any](items *[]T, raw json.RawMessage, idOf func(T) string, setID func(*T, string), state *State) (string, bool) {
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return "", false
	}
	if idOf(item) == "" {
		setID(&item, uuid.NewString())
	}
	*items = append([]T{item}, *items...)
	*state = StateEditing
	return idOf(item), true
}

func removeByID[T any](items []T, id string, idOf func(T) string, state *State) []T {
	for i, item := range items {
		if idOf(item) == id {
			*state = StateEditing
			return append(append([]T(nil), items[:i]...), items[i+1:]...)
		}
	}
	return items
}
