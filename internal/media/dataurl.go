// Package media turns image files into data URLs for the daily image and
// image posts.
package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxImageSize is the largest image file accepted (10MB)
const MaxImageSize = 10 << 20

var (
	ErrNotImage = errors.New("not a supported image")
	ErrTooLarge = errors.New("image larger than 10MB")
)

// Image is a decoded-and-validated image ready for display
type Image struct {
	DataURL string
	MIME    string
	Width   int
	Height  int
	Size    int
}

// formats maps registered decoder names to MIME types
var formats = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
}

// DataURL reads the image at path and encodes it as a data URL
func DataURL(path string) (Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return Image{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read validates the image in r by decoding its header and encodes it as
// a base64 data URL
func Read(r io.Reader) (Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return Image{}, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > MaxImageSize {
		return Image{}, ErrTooLarge
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	mime, ok := formats[format]
	if !ok {
		return Image{}, fmt.Errorf("%w: %s", ErrNotImage, format)
	}
	// Prefer the sniffed type when it agrees on being an image
	if sniffed := http.DetectContentType(data); strings.HasPrefix(sniffed, "image/") {
		mime = sniffed
	}

	return Image{
		DataURL: "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data),
		MIME:    mime,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Size:    len(data),
	}, nil
}

// IsDataURL reports whether s looks like an image data URL
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:image/") && strings.Contains(s, ";base64,")
}

// Describe renders a short label for a data URL, e.g. "image/png, 12.3 KB"
func Describe(dataURL string) string {
	if !IsDataURL(dataURL) {
		return ""
	}
	mime := strings.TrimPrefix(dataURL[:strings.Index(dataURL, ";")], "data:")
	payload := dataURL[strings.Index(dataURL, ",")+1:]
	size := base64.StdEncoding.DecodedLen(len(payload))
	return fmt.Sprintf("%s, %.1f KB", mime, float64(size)/1024)
}
