package photo

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func decodeDataURL(t *testing.T, dataURL string) image.Image {
	t.Helper()
	const prefix = "data:image/jpeg;base64,"
	if !strings.HasPrefix(dataURL, prefix) {
		t.Fatalf("data URL prefix missing: %.40s", dataURL)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, prefix))
	if err != nil {
		t.Fatal(err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestProcessDownscalesLandscape(t *testing.T) {
	dataURL, err := Process(encodePNG(t, 2000, 1000))
	if err != nil {
		t.Fatal(err)
	}
	img := decodeDataURL(t, dataURL)
	bounds := img.Bounds()
	if bounds.Dx() != 600 || bounds.Dy() != 300 {
		t.Errorf("output = %dx%d, want 600x300", bounds.Dx(), bounds.Dy())
	}
}

func TestProcessKeepsSmallImages(t *testing.T) {
	dataURL, err := Process(encodePNG(t, 320, 240))
	if err != nil {
		t.Fatal(err)
	}
	img := decodeDataURL(t, dataURL)
	bounds := img.Bounds()
	if bounds.Dx() != 320 || bounds.Dy() != 240 {
		t.Errorf("output = %dx%d, want 320x240 unchanged", bounds.Dx(), bounds.Dy())
	}
}

func TestProcessRejectsNonImage(t *testing.T) {
	if _, err := Process(strings.NewReader("definitely not an image")); err == nil {
		t.Fatal("Process accepted garbage input")
	}
}

func TestFit(t *testing.T) {
	cases := []struct {
		w, h, max      int
		wantW, wantH   int
	}{
		{2000, 1000, 600, 600, 300},
		{1000, 2000, 600, 300, 600},
		{600, 600, 600, 600, 600},
		{100, 50, 600, 100, 50},
		{1500, 1000, 600, 600, 400},
	}
	for _, c := range cases {
		gotW, gotH := Fit(c.w, c.h, c.max)
		if gotW != c.wantW || gotH != c.wantH {
			t.Errorf("Fit(%d, %d, %d) = %d, %d; want %d, %d",
				c.w, c.h, c.max, gotW, gotH, c.wantW, c.wantH)
		}
	}
}
