package postgres

import (
	"testing"

	"chefanton/internal/domain/models"
)

func TestDecodeDocumentMigrates(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "v1 gains partners and footers",
			raw:  `{"version":"1","heroTitle":"Judul","heroSubtitle":"Sub","aboutName":"Anton","aboutBio":"Bio"}`,
		},
		{
			name: "v2 gains footers",
			raw:  `{"version":"2","heroTitle":"Judul","heroSubtitle":"Sub","aboutName":"Anton","aboutBio":"Bio","partners":[{"id":"p1","name":"Toko","logo":"🍜"}]}`,
		},
		{
			name: "untagged row treated as v1",
			raw:  `{"heroTitle":"Judul","heroSubtitle":"Sub","aboutName":"Anton","aboutBio":"Bio"}`,
		},
		{
			name: "current version passes through",
			raw:  `{"version":"3","heroTitle":"Judul","heroSubtitle":"Sub","aboutName":"Anton","aboutBio":"Bio","partners":[],"footerEducation":{"title":"Belajar","links":[]},"footerB2B":{"title":"Bisnis","links":[]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := DecodeDocument([]byte(tt.raw))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}

			if doc.Version != models.SchemaVersion {
				t.Errorf("Version = %q, want %q", doc.Version, models.SchemaVersion)
			}
			if doc.HeroTitle != "Judul" {
				t.Errorf("HeroTitle = %q, migration touched unrelated fields", doc.HeroTitle)
			}
		})
	}
}

func TestDecodeDocumentV1FillsPartnerStrip(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{"version":"1","heroTitle":"J","heroSubtitle":"S","aboutName":"A","aboutBio":"B"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(doc.Partners) == 0 {
		t.Error("v1 migration left the partner strip empty")
	}
	if doc.FooterEducation.Links == nil || doc.FooterB2B.Links == nil {
		t.Error("v2 migration left footer groups nil")
	}
}

func TestDecodeDocumentV2KeepsExistingPartners(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{"version":"2","heroTitle":"J","heroSubtitle":"S","aboutName":"A","aboutBio":"B","partners":[{"id":"mine","name":"Milik Sendiri","logo":"🔥"}]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(doc.Partners) != 1 || doc.Partners[0].ID != "mine" {
		t.Errorf("stored partners replaced: %+v", doc.Partners)
	}
}

func TestDecodeDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed json", `{"version":`},
		{"not an object", `[1,2,3]`},
		{"unknown future version", `{"version":"99","heroTitle":"J"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeDocument([]byte(tt.raw)); err == nil {
				t.Error("expected decode error, got nil")
			}
		})
	}
}
