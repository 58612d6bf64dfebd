package content

import (
	"context"
	"log/slog"
	"time"

	"chefanton/internal/domain/models"
	"chefanton/internal/domain/repositories"
)

// ClassesPageSize is the recorded-class catalog page size.
const ClassesPageSize = 9

// ViewService binds the repository to the pure derivation functions for
// the public site. Each view reads the latest document once and derives
// from it; nothing is cached between requests.
type ViewService struct {
	repo   repositories.ContentRepository
	now    func() time.Time
	logger *slog.Logger
}

// NewViewService creates a new view service.
func NewViewService(repo repositories.ContentRepository, logger *slog.Logger) *ViewService {
	return &ViewService{
		repo:   repo,
		now:    time.Now,
		logger: logger,
	}
}

// HomeView is everything the landing page renders.
type HomeView struct {
	Document     models.ContentDocument `json:"document"`
	Sessions     SessionPartition       `json:"sessions"`
	Testimonials TestimonialBuckets     `json:"testimonials"`
}

// Home returns the landing page view derived from the latest document.
func (s *ViewService) Home(ctx context.Context) HomeView {
	doc, origin := s.repo.FetchLatest(ctx)
	if origin.Fallback() {
		s.logger.Warn("home view rendered from fallback document", "origin", origin)
	}

	return HomeView{
		Document:     doc,
		Sessions:     PartitionSessions(doc.Workshops, s.now()),
		Testimonials: BucketTestimonials(doc.Reviews),
	}
}

// ClassesPage is one page of the recorded-class catalog.
type ClassesPage struct {
	Page[models.RecordedClass]
	PageNumber int `json:"pageNumber"`
}

// Classes returns one catalog page. The requested page is clamped into
// [1, totalPages] here - the list can shrink between requests and the
// pagination primitive itself does not clamp.
func (s *ViewService) Classes(ctx context.Context, page int) ClassesPage {
	doc, _ := s.repo.FetchLatest(ctx)

	totalPages := (len(doc.RecordedClasses) + ClassesPageSize - 1) / ClassesPageSize
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	return ClassesPage{
		Page:       Paginate(doc.RecordedClasses, ClassesPageSize, page),
		PageNumber: page,
	}
}

// Latest returns the raw latest document.
func (s *ViewService) Latest(ctx context.Context) models.ContentDocument {
	doc, _ := s.repo.FetchLatest(ctx)
	return doc
}
