// Package imaging shrinks product photos before they are uploaded.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"github.com/Pranav-019/spices-admin-panel/internal/models"
)

const (
	MaxWidth    = 800
	JPEGQuality = 80
)

// Optimize resizes PNG and JPEG images wider than MaxWidth and re-encodes
// them as JPEG under a fresh name. Other files, and images that fail to
// decode, are passed through untouched: the backend is the one that decides
// what it accepts.
func Optimize(filename string, data []byte) (models.Upload, error) {
	original := models.Upload{
		Filename:    filename,
		ContentType: http.DetectContentType(data),
		Data:        data,
	}

	var decode func(r *bytes.Reader) (image.Image, error)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		decode = func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) }
	case ".jpg", ".jpeg":
		decode = func(r *bytes.Reader) (image.Image, error) { return jpeg.Decode(r) }
	default:
		return original, nil
	}

	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return original, nil
	}
	if img.Bounds().Dx() <= MaxWidth {
		return original, nil
	}

	// Resize image (max width 800px, preserve aspect ratio)
	resized := resize.Resize(MaxWidth, 0, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return models.Upload{}, fmt.Errorf("encoding resized image: %w", err)
	}
	return models.Upload{
		Filename:    uuid.New().String() + ".jpg",
		ContentType: "image/jpeg",
		Data:        buf.Bytes(),
	}, nil
}
