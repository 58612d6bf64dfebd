// Package assets stores uploaded binary assets (images) and returns
// publicly resolvable URLs. Collision avoidance is handled here by
// timestamp-prefixing names.
package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"chefanton/internal/domain"
)

// maxImageWidth bounds stored image dimensions; uploads wider than this
// are resized down proportionally.
const maxImageWidth = 1600

// Store accepts raw asset bytes plus a filename hint and declared content
// type, and returns a public URL.
type Store interface {
	Save(ctx context.Context, filenameHint, contentType string, r io.Reader) (string, error)
}

// formats maps accepted content types to their on-disk encoding.
var formats = map[string]imaging.Format{
	"image/jpeg": imaging.JPEG,
	"image/png":  imaging.PNG,
	"image/gif":  imaging.GIF,
	"image/bmp":  imaging.BMP,
}

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/bmp":  ".bmp",
}

// DiskStore writes assets under a local directory served at baseURL.
type DiskStore struct {
	dir     string
	baseURL string
}

// NewDiskStore creates the asset directory if needed.
func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create asset directory: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save decodes the image, resizes it down to a bounded width, and writes
// it under a timestamp-prefixed name derived from the hint.
func (s *DiskStore) Save(ctx context.Context, filenameHint, contentType string, r io.Reader) (string, error) {
	format, ok := formats[contentType]
	if !ok {
		return "", fmt.Errorf("%w: unsupported content type %q", domain.ErrValidation, contentType)
	}

	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: decode image: %v", domain.ErrValidation, err)
	}
	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), sanitizeHint(filenameHint), extensions[contentType])
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create asset file: %w", err)
	}
	defer f.Close()

	if err := imaging.Encode(f, img, format); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("encode asset: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

// sanitizeHint reduces a client-supplied filename to a safe slug.
func sanitizeHint(hint string) string {
	hint = strings.ToLower(strings.TrimSuffix(filepath.Base(hint), filepath.Ext(hint)))
	var b strings.Builder
	for _, r := range hint {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == ' ':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "asset"
	}
	return b.String()
}
