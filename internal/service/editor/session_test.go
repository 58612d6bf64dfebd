package editor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"chefanton/internal/domain"
	"chefanton/internal/domain/models"
	"chefanton/internal/domain/repositories"
)

// fakeRepo stores published documents in memory, newest last.
type fakeRepo struct {
	versions   []models.ContentDocument
	publishErr error
}

func (f *fakeRepo) FetchLatest(ctx context.Context) (models.ContentDocument, repositories.FetchOrigin) {
	if len(f.versions) == 0 {
		return models.DefaultDocument(), repositories.OriginEmpty
	}
	return f.versions[len(f.versions)-1].Clone(), repositories.OriginStore
}

func (f *fakeRepo) Publish(ctx context.Context, doc models.ContentDocument) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	doc.Version = models.SchemaVersion
	f.versions = append(f.versions, doc)
	return nil
}

func (f *fakeRepo) ClearAll(ctx context.Context) error {
	f.versions = nil
	return nil
}

func newTestSession(repo repositories.ContentRepository) *Session {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSession(context.Background(), repo, logger)
}

func TestSessionBootstrap(t *testing.T) {
	s := newTestSession(&fakeRepo{})

	if s.State() != StateIdle {
		t.Errorf("state = %q, want %q", s.State(), StateIdle)
	}
	if got := s.Working(); got.HeroTitle != models.DefaultDocument().HeroTitle {
		t.Errorf("working copy not seeded from fetch, hero = %q", got.HeroTitle)
	}
}

func TestSetField(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		value     string
		check     func(models.ContentDocument) string
		wantState State
	}{
		{
			name: "hero title", field: "heroTitle", value: "Baru",
			check:     func(d models.ContentDocument) string { return d.HeroTitle },
			wantState: StateEditing,
		},
		{
			name: "nested cta description", field: "ctaClassDescription", value: "Deskripsi",
			check:     func(d models.ContentDocument) string { return d.CTAClass.Description },
			wantState: StateEditing,
		},
		{
			name: "footer group title", field: "footerB2BTitle", value: "Bisnis",
			check:     func(d models.ContentDocument) string { return d.FooterB2B.Title },
			wantState: StateEditing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(&fakeRepo{})
			s.SetField(tt.field, tt.value)

			if got := tt.check(s.Working()); got != tt.value {
				t.Errorf("field %q = %q, want %q", tt.field, got, tt.value)
			}
			if s.State() != tt.wantState {
				t.Errorf("state = %q, want %q", s.State(), tt.wantState)
			}
		})
	}
}

func TestSetFieldUnknownNameIsNoop(t *testing.T) {
	s := newTestSession(&fakeRepo{})
	before := s.Working()

	s.SetField("doesNotExist", "x")

	if !reflect.DeepEqual(s.Working(), before) {
		t.Error("unknown field name changed the working copy")
	}
	if s.State() != StateIdle {
		t.Errorf("state = %q, want %q", s.State(), StateIdle)
	}
}

func TestSetListItemMergesPatch(t *testing.T) {
	s := newTestSession(&fakeRepo{})
	target := s.Working().Workshops[0]

	ok := s.SetListItem(ListWorkshops, target.ID, json.RawMessage(`{"title":"Judul Baru","price":900000}`))
	if !ok {
		t.Fatal("patch rejected")
	}

	got := s.Working().Workshops[0]
	if got.Title != "Judul Baru" {
		t.Errorf("title = %q, want %q", got.Title, "Judul Baru")
	}
	if got.Price != 900000 {
		t.Errorf("price = %d, want 900000", got.Price)
	}
	// Fields absent from the patch keep their values
	if got.Location != target.Location {
		t.Errorf("location changed: %q -> %q", target.Location, got.Location)
	}
	if got.Capacity != target.Capacity {
		t.Errorf("capacity changed: %d -> %d", target.Capacity, got.Capacity)
	}
}

// Unknown ids are a silent no-op: the list comes back value-equal, nothing
// crashes, and nothing errors. Stale editing tabs depend on this.
func TestSetListItemUnknownIDIsNoop(t *testing.T) {
	s := newTestSession(&fakeRepo{})
	before := s.Working().Workshops

	ok := s.SetListItem(ListWorkshops, "does-not-exist", json.RawMessage(`{"title":"x"}`))
	if !ok {
		t.Fatal("no-op patch reported failure")
	}

	if !reflect.DeepEqual(s.Working().Workshops, before) {
		t.Error("workshops changed after patching an unknown id")
	}
}

// A rejected patch must leave the working copy exactly as it was, even
// when the patch decodes some fields before hitting the bad one. Slice
// fields are the dangerous case: a merge target sharing a backing array
// with the live entry would keep the partially decoded values.
func TestSetListItemBadPatch(t *testing.T) {
	tests := []struct {
		name  string
		patch string
	}{
		{"scalar type mismatch", `{"price":"not a number"}`},
		{"slice decoded before bad field", `{"curriculum":["overwritten"],"price":"not a number"}`},
		{"bad field before slice", `{"capacity":"not a number","curriculum":["overwritten"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(&fakeRepo{})
			before := s.Working().Workshops

			if ok := s.SetListItem(ListWorkshops, before[0].ID, json.RawMessage(tt.patch)); ok {
				t.Error("type-mismatched patch accepted")
			}
			if !reflect.DeepEqual(s.Working().Workshops, before) {
				t.Error("failed patch still changed the list")
			}
			if got := s.Working().Workshops[0].Curriculum; !reflect.DeepEqual(got, before[0].Curriculum) {
				t.Errorf("curriculum = %v, want %v", got, before[0].Curriculum)
			}
		})
	}
}

func TestAddListItemPrepends(t *testing.T) {
	s := newTestSession(&fakeRepo{})
	before := len(s.Working().Reviews)

	id, ok := s.AddListItem(ListReviews, json.RawMessage(`{"name":"Andi","comment":"Mantap","category":"workshop"}`))
	if !ok {
		t.Fatal("add rejected")
	}
	if id == "" {
		t.Error("no id assigned to item arriving without one")
	}

	reviews := s.Working().Reviews
	if len(reviews) != before+1 {
		t.Fatalf("len = %d, want %d", len(reviews), before+1)
	}
	// Newest entry sits on top
	if reviews[0].ID != id || reviews[0].Name != "Andi" {
		t.Errorf("new entry not prepended: first = %+v", reviews[0])
	}
}

func TestAddListItemKeepsProvidedID(t *testing.T) {
	s := newTestSession(&fakeRepo{})

	id, ok := s.AddListItem(ListPartners, json.RawMessage(`{"id":"pt-new","name":"Toko Bumbu","logo":"🌶️"}`))
	if !ok || id != "pt-new" {
		t.Errorf("id = %q, ok = %v, want pt-new", id, ok)
	}
}

func TestRemoveListItem(t *testing.T) {
	s := newTestSession(&fakeRepo{})
	target := s.Working().Portfolio[0].ID
	before := len(s.Working().Portfolio)

	s.RemoveListItem(ListPortfolio, target)
	if got := s.Working().Portfolio; len(got) != before-1 {
		t.Errorf("len = %d, want %d", len(got), before-1)
	}

	// Absent id is a no-op
	s.RemoveListItem(ListPortfolio, "does-not-exist")
	if got := s.Working().Portfolio; len(got) != before-1 {
		t.Errorf("no-op removal changed length to %d", len(got))
	}
}

func TestLinkOperations(t *testing.T) {
	s := newTestSession(&fakeRepo{})

	id, ok := s.AddLink(GroupFooterEducation, json.RawMessage(`{"label":"Blog","href":"/blog"}`))
	if !ok || id == "" {
		t.Fatalf("add link: id = %q, ok = %v", id, ok)
	}

	links := s.Working().FooterEducation.Links
	if links[0].Label != "Blog" {
		t.Errorf("new link not prepended: first = %+v", links[0])
	}

	if ok := s.SetLink(GroupFooterEducation, id, json.RawMessage(`{"label":"Jurnal"}`)); !ok {
		t.Fatal("set link rejected")
	}
	links = s.Working().FooterEducation.Links
	if links[0].Label != "Jurnal" || links[0].Href != "/blog" {
		t.Errorf("patch merge wrong: %+v", links[0])
	}

	s.RemoveLink(GroupFooterEducation, id)
	for _, l := range s.Working().FooterEducation.Links {
		if l.ID == id {
			t.Error("link still present after removal")
		}
	}
}

func TestLinkOperationsUnknownGroup(t *testing.T) {
	s := newTestSession(&fakeRepo{})

	if _, ok := s.AddLink(GroupName("sidebar"), json.RawMessage(`{"label":"x"}`)); ok {
		t.Error("AddLink accepted an unknown group")
	}
	if ok := s.SetLink(GroupName("sidebar"), "any", json.RawMessage(`{"label":"x"}`)); ok {
		t.Error("SetLink accepted an unknown group")
	}
	if s.State() != StateIdle {
		t.Errorf("state = %q, want %q", s.State(), StateIdle)
	}
}

// Publish-then-fetch: the stored document is structurally equal to the
// working copy apart from the stamped schema version.
func TestPublishThenFetch(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestSession(repo)

	s.SetField("heroTitle", "Judul Publikasi")
	s.SetListItem(ListWorkshops, s.Working().Workshops[0].ID, json.RawMessage(`{"price":999000}`))

	if err := s.Publish(context.Background()); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if s.State() != StateIdle {
		t.Errorf("state after publish = %q, want %q", s.State(), StateIdle)
	}

	fetched, origin := repo.FetchLatest(context.Background())
	if origin != repositories.OriginStore {
		t.Fatalf("origin = %q, want store", origin)
	}

	want := s.Working()
	want.Version = models.SchemaVersion
	if !reflect.DeepEqual(fetched, want) {
		t.Error("fetched document differs from published working copy")
	}
}

func TestPublishFailureKeepsEdits(t *testing.T) {
	repo := &fakeRepo{publishErr: domain.ErrStoreUnavailable}
	s := newTestSession(repo)

	s.SetField("heroTitle", "Belum Tersimpan")

	err := s.Publish(context.Background())
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("err = %v, want ErrStoreUnavailable", err)
	}
	if s.State() != StateEditing {
		t.Errorf("state = %q, want %q (edits preserved)", s.State(), StateEditing)
	}
	if got := s.Working().HeroTitle; got != "Belum Tersimpan" {
		t.Errorf("in-memory edit lost: hero = %q", got)
	}

	// The store must accept the retry once it recovers
	repo.publishErr = nil
	if err := s.Publish(context.Background()); err != nil {
		t.Fatalf("retry publish: %v", err)
	}
}

func TestRestoreRequiresConfirmation(t *testing.T) {
	s := newTestSession(&fakeRepo{})
	s.SetField("heroTitle", "Draf")

	err := s.Restore(context.Background(), false)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if got := s.Working().HeroTitle; got != "Draf" {
		t.Error("unconfirmed restore discarded edits")
	}
}

func TestRestoreDiscardsEdits(t *testing.T) {
	repo := &fakeRepo{}
	baseline := models.DefaultDocument()
	baseline.HeroTitle = "Terbit"
	if err := repo.Publish(context.Background(), baseline); err != nil {
		t.Fatal(err)
	}

	s := newTestSession(repo)
	s.SetField("heroTitle", "Draf Lokal")
	s.RemoveListItem(ListWorkshops, s.Working().Workshops[0].ID)

	if err := s.Restore(context.Background(), true); err != nil {
		t.Fatalf("restore: %v", err)
	}

	got := s.Working()
	if got.HeroTitle != "Terbit" {
		t.Errorf("hero = %q, want published baseline", got.HeroTitle)
	}
	if len(got.Workshops) != len(baseline.Workshops) {
		t.Error("removed entry not restored")
	}
	if s.State() != StateIdle {
		t.Errorf("state = %q, want %q", s.State(), StateIdle)
	}
}
