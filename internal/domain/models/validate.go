package models

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks that the document is semantically complete enough to
// publish. The store only ever holds whole documents, so a publish that
// would strand the public site without its core fields is rejected.
func (d ContentDocument) Validate() error {
	err := validation.ValidateStruct(&d,
		validation.Field(&d.Version, validation.Required),
		validation.Field(&d.HeroTitle, validation.Required),
		validation.Field(&d.HeroSubtitle, validation.Required),
		validation.Field(&d.AboutName, validation.Required),
		validation.Field(&d.AboutBio, validation.Required),
	)
	if err != nil {
		return err
	}

	for i, w := range d.Workshops {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("workshops[%d]: %w", i, err)
		}
	}
	for i, c := range d.RecordedClasses {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("recordedClasses[%d]: %w", i, err)
		}
	}
	for i, p := range d.Portfolio {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("portfolio[%d]: %w", i, err)
		}
	}
	for i, r := range d.Reviews {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("reviews[%d]: %w", i, err)
		}
	}
	for i, p := range d.Partners {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("partners[%d]: %w", i, err)
		}
	}
	return nil
}

// Validate checks a workshop entry. Historical sessions keep their stored
// pricing and capacity, so those fields stay validated either way.
func (w Workshop) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.ID, validation.Required),
		validation.Field(&w.Title, validation.Required),
		validation.Field(&w.Price, validation.Min(int64(0))),
		validation.Field(&w.Capacity, validation.Min(0)),
	)
}

func (c RecordedClass) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required),
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.Price, validation.Min(int64(0))),
		validation.Field(&c.SoldCount, validation.Min(0)),
	)
}

func (p PortfolioItem) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Title, validation.Required),
	)
}

// Validate checks a review entry. An out-of-set category is allowed in
// storage (derivation keeps such entries out of category buckets) but the
// id and comment must be present.
func (r Review) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Comment, validation.Required),
	)
}

func (p Partner) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Name, validation.Required),
	)
}
