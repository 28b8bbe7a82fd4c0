// Package photo decodes user-selected images and produces compact
// data-URL strings suitable for embedding in a form submission.
package photo

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoding support
	"io"

	"golang.org/x/image/draw"
)

const (
	// maxDimension bounds both sides of the output bitmap.
	maxDimension = 600
	// jpegQuality trades size for fidelity; proof photos only need to be
	// recognizable.
	jpegQuality = 70
)

// ErrNotAnImage is returned when the input cannot be decoded.
var ErrNotAnImage = errors.New("file is not a valid image")

// Process decodes r, downsizes the bitmap so neither side exceeds 600px
// while preserving aspect ratio, and re-encodes it as a JPEG data URL.
func Process(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	bounds := img.Bounds()
	width, height := Fit(bounds.Dx(), bounds.Dy(), maxDimension)

	if width != bounds.Dx() || height != bounds.Dy() {
		scaled := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, bounds, draw.Src, nil)
		img = scaled
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("failed to encode JPEG: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Fit computes the dimensions of a w×h bitmap scaled down to fit a max×max
// bounding box. Images already inside the box keep their size.
func Fit(w, h, max int) (int, int) {
	if w <= max && h <= max {
		return w, h
	}
	if w > h {
		return max, int(float64(h)*float64(max)/float64(w) + 0.5)
	}
	return int(float64(w)*float64(max)/float64(h) + 0.5), max
}
