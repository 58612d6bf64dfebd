package postgres

import (
	"encoding/json"
	"fmt"

	"chefanton/internal/domain/models"
)

// migrations upgrades a decoded document one schema version forward. Keyed
// by the version the document currently carries; each function bumps the
// tag itself. Applied on read only - the stored row is never rewritten,
// the migrated shape is persisted the next time the editor publishes.
var migrations = map[string]func(*models.ContentDocument){
	// v1 predates the partner strip.
	"1": func(d *models.ContentDocument) {
		if len(d.Partners) == 0 {
			d.Partners = models.DefaultDocument().Partners
		}
		d.Version = "2"
	},
	// v2 predates the footer link groups.
	"2": func(d *models.ContentDocument) {
		def := models.DefaultDocument()
		if d.FooterEducation.Links == nil {
			d.FooterEducation = def.FooterEducation
		}
		if d.FooterB2B.Links == nil {
			d.FooterB2B = def.FooterB2B
		}
		d.Version = "3"
	},
}

// DecodeDocument parses a stored JSON payload and migrates it to the
// current schema version. Never assume the stored shape matches the latest
// schema: documents published before a schema bump stay in the store
// unchanged and are upgraded here, in memory, every read.
func DecodeDocument(raw []byte) (models.ContentDocument, error) {
	var doc models.ContentDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.ContentDocument{}, fmt.Errorf("decode document: %w", err)
	}

	// Rows written before versioning carry no tag; treat them as v1.
	if doc.Version == "" {
		doc.Version = "1"
	}

	for doc.Version != models.SchemaVersion {
		migrate, ok := migrations[doc.Version]
		if !ok {
			return models.ContentDocument{}, fmt.Errorf("unknown document schema version %q", doc.Version)
		}
		migrate(&doc)
	}

	return doc, nil
}
