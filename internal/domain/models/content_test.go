package models

import (
	"testing"
	"time"
)

// The compiled-in default is the fallback served whenever the store can't
// produce a document, so it must always pass publish validation.
func TestDefaultDocumentIsComplete(t *testing.T) {
	doc := DefaultDocument()

	if err := doc.Validate(); err != nil {
		t.Fatalf("default document fails validation: %v", err)
	}
	if doc.Version != SchemaVersion {
		t.Errorf("Version = %q, want %q", doc.Version, SchemaVersion)
	}
	if len(doc.Workshops) == 0 || len(doc.RecordedClasses) == 0 || len(doc.Reviews) == 0 {
		t.Error("default document missing catalog entries")
	}
	if len(doc.FooterEducation.Links) == 0 || len(doc.FooterB2B.Links) == 0 {
		t.Error("default document missing footer links")
	}
}

func TestValidateRejectsIncomplete(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ContentDocument)
	}{
		{"missing hero title", func(d *ContentDocument) { d.HeroTitle = "" }},
		{"missing about name", func(d *ContentDocument) { d.AboutName = "" }},
		{"missing version", func(d *ContentDocument) { d.Version = "" }},
		{"workshop without id", func(d *ContentDocument) { d.Workshops[0].ID = "" }},
		{"negative price", func(d *ContentDocument) { d.Workshops[0].Price = -1 }},
		{"review without comment", func(d *ContentDocument) { d.Reviews[0].Comment = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := DefaultDocument()
			tt.mutate(&doc)

			if err := doc.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestWorkshopStartTime(t *testing.T) {
	tests := []struct {
		name   string
		date   string
		wantOK bool
		want   time.Time
	}{
		{
			name: "minutes precision", date: "2026-10-17T09:00",
			wantOK: true, want: time.Date(2026, 10, 17, 9, 0, 0, 0, time.Local),
		},
		{
			name: "seconds precision", date: "2026-10-17T09:00:30",
			wantOK: true, want: time.Date(2026, 10, 17, 9, 0, 30, 0, time.Local),
		},
		{name: "empty", date: "", wantOK: false},
		{name: "garbage", date: "next tuesday", wantOK: false},
		{name: "date only", date: "2026-10-17", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Workshop{Date: tt.date}.StartTime()

			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("StartTime = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPartnerLogoIsGlyph(t *testing.T) {
	tests := []struct {
		name string
		logo string
		want bool
	}{
		{"single emoji", "🍜", true},
		{"short glyph pair", "🍜🔥", true},
		{"empty", "", true},
		{"image url", "https://cdn.example.com/logo.png", false},
		{"relative path", "/assets/logo.svg", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Partner{Logo: tt.logo}).LogoIsGlyph(); got != tt.want {
				t.Errorf("LogoIsGlyph(%q) = %v, want %v", tt.logo, got, tt.want)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	original := DefaultDocument()
	clone := original.Clone()

	clone.Workshops[0].Title = "changed"
	clone.Workshops[0].Curriculum[0] = "changed"
	*clone.Workshops[0].OriginalPrice = 1
	clone.Reviews[0].Name = "changed"
	clone.FooterEducation.Links[0].Label = "changed"

	fresh := DefaultDocument()
	if original.Workshops[0].Title != fresh.Workshops[0].Title {
		t.Error("clone shares workshop backing array with source")
	}
	if original.Workshops[0].Curriculum[0] != fresh.Workshops[0].Curriculum[0] {
		t.Error("clone shares curriculum slice with source")
	}
	if *original.Workshops[0].OriginalPrice != *fresh.Workshops[0].OriginalPrice {
		t.Error("clone shares original-price pointer with source")
	}
	if original.Reviews[0].Name != fresh.Reviews[0].Name {
		t.Error("clone shares review slice with source")
	}
	if original.FooterEducation.Links[0].Label != fresh.FooterEducation.Links[0].Label {
		t.Error("clone shares footer links with source")
	}
}

func TestCategoryKnown(t *testing.T) {
	for _, c := range Categories() {
		if !c.Known() {
			t.Errorf("category %q not recognized", c)
		}
	}
	if ReviewCategory("Unknown").Known() {
		t.Error("out-of-set category recognized")
	}
}
