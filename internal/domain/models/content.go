package models

import "time"

// SchemaVersion is the document schema tag stamped on every published
// document. Stored documents carrying an older tag are migrated on read.
const SchemaVersion = "3"

// ReviewCategory is the closed set of service categories a testimonial
// can be attached to.
type ReviewCategory string

const (
	CategoryWorkshop   ReviewCategory = "workshop"
	CategoryClass      ReviewCategory = "class"
	CategoryConsulting ReviewCategory = "consulting"
)

// Categories returns the closed category set in display order.
func Categories() []ReviewCategory {
	return []ReviewCategory{CategoryWorkshop, CategoryClass, CategoryConsulting}
}

// Known reports whether c is one of the closed category values.
func (c ReviewCategory) Known() bool {
	switch c {
	case CategoryWorkshop, CategoryClass, CategoryConsulting:
		return true
	}
	return false
}

// CallToAction is a title/description pair shown on a service card.
type CallToAction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Workshop is a live, date-bound, capacity-limited session offering.
// Prices are whole Indonesian Rupiah.
type Workshop struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	// OriginalPrice is the pre-discount price, shown struck through when set.
	OriginalPrice *int64 `json:"originalPrice,omitempty"`
	Location      string `json:"location"`
	Image         string `json:"image"`
	Duration      string `json:"duration"`
	Capacity      int    `json:"capacity"`
	Level         string `json:"level"`
	// Date is an ISO-8601 local datetime ("2006-01-02T15:04"); empty means
	// no scheduled date.
	Date string `json:"date,omitempty"`
	// DisplayDate overrides the human-readable rendering of Date.
	DisplayDate string   `json:"displayDate,omitempty"`
	Curriculum  []string `json:"curriculum,omitempty"`
	// IsHistorical marks a past session. Pricing and capacity stay in
	// storage but derived views stop showing them.
	IsHistorical bool `json:"isHistorical"`
	// RealAttendance is only meaningful for historical sessions.
	RealAttendance *int `json:"realAttendance,omitempty"`
}

// workshopDateLayouts are the accepted encodings of Workshop.Date.
var workshopDateLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05"}

// StartTime parses the workshop's scheduled date. ok is false when no date
// is set or the value doesn't parse.
func (w Workshop) StartTime() (t time.Time, ok bool) {
	if w.Date == "" {
		return time.Time{}, false
	}
	for _, layout := range workshopDateLayouts {
		if t, err := time.ParseInLocation(layout, w.Date, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// RecordedClass is an on-demand video lesson, always available and without
// a capacity limit.
type RecordedClass struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Duration    string `json:"duration"`
	Level       string `json:"level"`
	// SoldCount is informational only, never decremented.
	SoldCount int `json:"soldCount"`
}

// PortfolioItem is one piece of past work shown in the portfolio grid.
type PortfolioItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// Review is a customer testimonial tagged with a service category.
type Review struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Role     string         `json:"role"`
	Comment  string         `json:"comment"`
	Avatar   string         `json:"avatar"`
	Category ReviewCategory `json:"category"`
}

// Partner is a brand shown in the partner strip. Logo holds either a short
// glyph (emoji) or an image URL.
type Partner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// glyphMaxRunes separates glyph logos from image URLs. Anything longer
// than a few runes is treated as a URL or path.
const glyphMaxRunes = 4

// LogoIsGlyph reports whether the logo should render as inline text
// rather than an <img> source.
func (p Partner) LogoIsGlyph() bool {
	return len([]rune(p.Logo)) <= glyphMaxRunes
}

// NavLink is a single footer navigation entry.
type NavLink struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Href  string `json:"href"`
}

// LinkGroup is a titled footer column of navigation links.
type LinkGroup struct {
	Title string    `json:"title"`
	Links []NavLink `json:"links"`
}

// ContentDocument is the single versioned record holding all editable site
// content. Published documents are immutable; every publish appends a new
// complete document to the store.
type ContentDocument struct {
	Version string `json:"version"`

	HeroTitle    string `json:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle"`
	HeroImage    string `json:"heroImage"`

	CTAWorkshop   CallToAction `json:"ctaWorkshop"`
	CTAClass      CallToAction `json:"ctaClass"`
	CTAConsulting CallToAction `json:"ctaConsulting"`

	AboutName  string `json:"aboutName"`
	AboutTitle string `json:"aboutTitle"`
	AboutBio   string `json:"aboutBio"`
	AboutQuote string `json:"aboutQuote"`
	AboutPhoto string `json:"aboutPhoto"`

	Workshops       []Workshop      `json:"workshops"`
	RecordedClasses []RecordedClass `json:"recordedClasses"`
	Portfolio       []PortfolioItem `json:"portfolio"`
	Reviews         []Review        `json:"reviews"`
	Partners        []Partner       `json:"partners"`

	FooterEducation LinkGroup `json:"footerEducation"`
	FooterB2B       LinkGroup `json:"footerB2B"`
}

// Clone returns a deep copy. The editing session mutates its working copy
// freely, so shared slices or pointers with the source would leak edits.
func (d ContentDocument) Clone() ContentDocument {
	out := d

	out.Workshops = make([]Workshop, len(d.Workshops))
	for i, w := range d.Workshops {
		out.Workshops[i] = w.clone()
	}
	out.RecordedClasses = append([]RecordedClass(nil), d.RecordedClasses...)
	out.Portfolio = append([]PortfolioItem(nil), d.Portfolio...)
	out.Reviews = append([]Review(nil), d.Reviews...)
	out.Partners = append([]Partner(nil), d.Partners...)
	out.FooterEducation.Links = append([]NavLink(nil), d.FooterEducation.Links...)
	out.FooterB2B.Links = append([]NavLink(nil), d.FooterB2B.Links...)

	return out
}

func (w Workshop) clone() Workshop {
	out := w
	if w.OriginalPrice != nil {
		v := *w.OriginalPrice
		out.OriginalPrice = &v
	}
	if w.RealAttendance != nil {
		v := *w.RealAttendance
		out.RealAttendance = &v
	}
	out.Curriculum = append([]string(nil), w.Curriculum...)
	return out
}
