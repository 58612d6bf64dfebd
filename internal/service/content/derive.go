// Package content computes display-ready views from a raw content
// document. Everything here is pure: no I/O, no mutation of inputs, same
// inputs always produce the same outputs.
package content

import (
	"time"

	"chefanton/internal/domain/models"
)

// SessionPartition splits workshops into upcoming and past sessions,
// both preserving the stored relative order.
type SessionPartition struct {
	Active     []models.Workshop `json:"active"`
	Historical []models.Workshop `json:"historical"`
}

// PartitionSessions classifies each workshop as active or historical at
// the given instant. A workshop whose stored flag is false but whose date
// lies strictly before now is shown as historical - on a copy, never on
// the stored record. A subsequent fetch still reports isHistorical=false
// unless an editor explicitly publishes the change.
func PartitionSessions(workshops []models.Workshop, now time.Time) SessionPartition {
	part := SessionPartition{
		Active:     []models.Workshop{},
		Historical: []models.Workshop{},
	}

	for _, w := range workshops {
		if !w.IsHistorical {
			if start, ok := w.StartTime(); ok && start.Before(now) {
				w.IsHistorical = true
			}
		}
		if w.IsHistorical {
			part.Historical = append(part.Historical, w)
		} else {
			part.Active = append(part.Active, w)
		}
	}

	return part
}

// TestimonialBuckets groups reviews for display. All always holds every
// review in stored order; ByCategory only holds the closed category set.
type TestimonialBuckets struct {
	All        []models.Review                           `json:"all"`
	ByCategory map[models.ReviewCategory][]models.Review `json:"byCategory"`
}

// BucketTestimonials groups reviews by service category. A review with an
// unknown category value stays in All but joins no bucket - bad data must
// not crash grouping, and it must not leak into a category filter either.
func BucketTestimonials(reviews []models.Review) TestimonialBuckets {
	buckets := TestimonialBuckets{
		All:        []models.Review{},
		ByCategory: make(map[models.ReviewCategory][]models.Review, 3),
	}
	for _, c := range models.Categories() {
		buckets.ByCategory[c] = []models.Review{}
	}

	for _, r := range reviews {
		buckets.All = append(buckets.All, r)
		if r.Category.Known() {
			buckets.ByCategory[r.Category] = append(buckets.ByCategory[r.Category], r)
		}
	}

	return buckets
}
