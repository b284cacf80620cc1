// Package imageio loads and saves canvases as image files.
//
// Decoding understands PNG, JPEG, GIF, BMP, TIFF and WebP. JPEG EXIF
// orientation is applied on load. Encoding picks the format from the file
// extension; WebP is decode-only.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoding

	"github.com/gogpu/imgops"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the file extension has no encoder.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// DefaultJPEGQuality is used when no quality is given.
const DefaultJPEGQuality = 95

// Load decodes the image file at path into a new canvas.
func Load(path string) (*imgops.Canvas, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadFromBytes decodes an in-memory image into a new canvas.
func LoadFromBytes(data []byte) (*imgops.Canvas, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*imgops.Canvas, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return imgops.FromImage(img), nil
}

// SaveOption configures Save and Encode.
type SaveOption func(*saveOptions)

type saveOptions struct {
	jpegQuality int
}

// WithJPEGQuality sets the JPEG quality (1-100).
func WithJPEGQuality(q int) SaveOption {
	return func(o *saveOptions) {
		o.jpegQuality = min(max(q, 1), 100)
	}
}

// FormatFromPath returns the encoding format implied by the extension of path.
func FormatFromPath(path string) (imaging.Format, error) {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return f, nil
}

// Save encodes c to the file at path. The format follows the extension.
// A partially written file is left in place on encode failure.
func Save(c *imgops.Canvas, path string, opts ...SaveOption) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(f, c, format, opts...); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes c to w in the given format.
func Encode(w io.Writer, c *imgops.Canvas, format imaging.Format, opts ...SaveOption) error {
	o := saveOptions{jpegQuality: DefaultJPEGQuality}
	for _, opt := range opts {
		opt(&o)
	}

	img := c.ToImage()

	var err error
	switch format {
	case imaging.TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		err = imaging.Encode(w, img, format, imaging.JPEGQuality(o.jpegQuality))
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", format, err)
	}
	return nil
}

// EncodeToBytes encodes c as PNG and returns the bytes.
func EncodeToBytes(c *imgops.Canvas) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, c, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
