package content

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"chefanton/internal/domain/models"
	"chefanton/internal/domain/repositories"
)

type fakeRepo struct {
	doc    models.ContentDocument
	origin repositories.FetchOrigin
}

func (f *fakeRepo) FetchLatest(ctx context.Context) (models.ContentDocument, repositories.FetchOrigin) {
	return f.doc, f.origin
}

func (f *fakeRepo) Publish(ctx context.Context, doc models.ContentDocument) error { return nil }
func (f *fakeRepo) ClearAll(ctx context.Context) error                            { return nil }

func catalogDoc(n int) models.ContentDocument {
	doc := models.DefaultDocument()
	doc.RecordedClasses = nil
	for i := 0; i < n; i++ {
		doc.RecordedClasses = append(doc.RecordedClasses, models.RecordedClass{
			ID:    fmt.Sprintf("rc-%d", i),
			Title: fmt.Sprintf("Class %d", i),
		})
	}
	return doc
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClassesClampsPage(t *testing.T) {
	repo := &fakeRepo{doc: catalogDoc(20), origin: repositories.OriginStore}
	views := NewViewService(repo, discard())

	tests := []struct {
		name           string
		page           int
		wantPageNumber int
		wantLen        int
	}{
		{"in range", 2, 2, 9},
		{"past the end clamps to last", 99, 3, 2},
		{"below one clamps to first", -5, 1, 9},
		{"zero clamps to first", 0, 1, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := views.Classes(context.Background(), tt.page)

			if got.PageNumber != tt.wantPageNumber {
				t.Errorf("PageNumber = %d, want %d", got.PageNumber, tt.wantPageNumber)
			}
			if len(got.Items) != tt.wantLen {
				t.Errorf("len(Items) = %d, want %d", len(got.Items), tt.wantLen)
			}
			if got.TotalPages != 3 {
				t.Errorf("TotalPages = %d, want 3", got.TotalPages)
			}
		})
	}
}

func TestClassesEmptyCatalog(t *testing.T) {
	repo := &fakeRepo{doc: catalogDoc(0), origin: repositories.OriginStore}
	views := NewViewService(repo, discard())

	got := views.Classes(context.Background(), 1)
	if got.TotalPages != 0 || len(got.Items) != 0 {
		t.Errorf("empty catalog: got %d items over %d pages", len(got.Items), got.TotalPages)
	}
}

// Even when every fetch falls back to the default document, the home view
// must come back complete - that is the whole point of the fallback
// policy.
func TestHomeOnFallback(t *testing.T) {
	repo := &fakeRepo{doc: models.DefaultDocument(), origin: repositories.OriginUnreachable}
	views := NewViewService(repo, discard())

	home := views.Home(context.Background())

	if home.Document.HeroTitle == "" {
		t.Error("fallback home view missing hero title")
	}
	if len(home.Sessions.Active)+len(home.Sessions.Historical) != len(home.Document.Workshops) {
		t.Error("session partition lost entries")
	}
	if len(home.Testimonials.All) != len(home.Document.Reviews) {
		t.Error("testimonial buckets lost entries")
	}
}
