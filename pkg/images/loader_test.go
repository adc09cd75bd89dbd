package images

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// encodePNG returns a solid red w-by-h PNG.
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	red := color.RGBA{255, 0, 0, 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, red)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, encodePNG(t, w, h), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func pngDataURI(t *testing.T, w, h int) string {
	t.Helper()
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(encodePNG(t, w, h))
}

func TestIsDataURI(t *testing.T) {
	if !IsDataURI("data:image/png;base64,abc") {
		t.Error("expected true for data URI")
	}
	if IsDataURI("/path/to/file.png") {
		t.Error("expected false for file path")
	}
	if IsDataURI("") {
		t.Error("expected false for empty string")
	}
}

func TestLoadCachesImages(t *testing.T) {
	lib := NewLibrary()
	path := writePNG(t, t.TempDir(), "red.png", 2, 2)

	img, err := lib.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("expected 2x2 image, got %dx%d", b.Dx(), b.Dy())
	}

	// Second call should hit cache even after the file is gone.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	img2, err := lib.Load(path)
	if err != nil {
		t.Fatalf("unexpected error on cached load: %v", err)
	}
	if img != img2 {
		t.Error("expected cached image to be the same pointer")
	}
}

func TestLoadDataURI(t *testing.T) {
	lib := NewLibrary()
	img, err := lib.Load(pngDataURI(t, 2, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("expected 2x2 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestLoadDataURI_Invalid(t *testing.T) {
	lib := NewLibrary()
	tests := []string{
		"data:image/png;base64", // no comma
		"data:image/png;base64,!!!invalid-base64!!!",
		"data:image/png;base64,aGVsbG8=", // valid base64 but not an image
	}
	for _, uri := range tests {
		if _, err := lib.Load(uri); err == nil {
			t.Errorf("expected error for %q", uri)
		}
	}
}

func TestDimensionsAndAspectRatio(t *testing.T) {
	lib := NewLibrary()
	path := writePNG(t, t.TempDir(), "wide.png", 4, 2)

	w, h, err := lib.Dimensions(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 4 || h != 2 {
		t.Errorf("expected 4x2, got %dx%d", w, h)
	}

	r, err := lib.AspectRatio(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != 2 {
		t.Errorf("aspect ratio %v, want 2", r)
	}
}

func TestAspectRatioProbesWithoutFullDecode(t *testing.T) {
	lib := NewLibrary()
	path := writePNG(t, t.TempDir(), "tall.png", 2, 4)

	if _, err := lib.AspectRatio(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lib.mu.RLock()
	_, decoded := lib.images[path]
	lib.mu.RUnlock()
	if decoded {
		t.Error("ratio probe decoded pixel data")
	}
}

func TestScanGallery(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "b.png", 4, 2)
	writePNG(t, dir, "a.png", 2, 2)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := Scan(nil, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Len() != 2 {
		t.Fatalf("gallery has %d images, want 2", g.Len())
	}
	if filepath.Base(g.Path(0)) != "a.png" {
		t.Errorf("gallery not in lexical order: first is %s", g.Path(0))
	}

	if r, ok := g.AspectRatio(1); !ok || r != 2 {
		t.Errorf("AspectRatio(1) = (%v, %v), want (2, true)", r, ok)
	}
	if _, ok := g.AspectRatio(2); ok {
		t.Error("ratio reported past the gallery end")
	}
	if _, ok := g.AspectRatio(-1); ok {
		t.Error("ratio reported for a negative index")
	}
}
