// Package images loads gallery images and probes their aspect ratios.
//
// Pixel data and header probes are cached separately: laying out a gallery
// needs only the ratios, so a Library can size thousands of images without
// decoding any of them.
package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"sync"
)

// Library is a concurrency-safe image cache keyed by path or data URI.
type Library struct {
	mu      sync.RWMutex
	images  map[string]image.Image
	configs map[string]image.Config
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{
		images:  make(map[string]image.Image),
		configs: make(map[string]image.Config),
	}
}

// IsDataURI reports whether ref is an inline data URI rather than a path.
func IsDataURI(ref string) bool {
	return strings.HasPrefix(ref, "data:")
}

// decodeDataURI decodes a base64 data URI into an image.
func decodeDataURI(uri string) (image.Image, error) {
	comma := strings.Index(uri, ",")
	if comma < 0 {
		return nil, fmt.Errorf("images: malformed data URI")
	}
	raw, err := base64.StdEncoding.DecodeString(uri[comma+1:])
	if err != nil {
		return nil, fmt.Errorf("images: decoding data URI: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("images: decoding data URI payload: %w", err)
	}
	return img, nil
}

// Load returns the decoded image for ref, reading it at most once.
func (l *Library) Load(ref string) (image.Image, error) {
	l.mu.RLock()
	if img, ok := l.images[ref]; ok {
		l.mu.RUnlock()
		return img, nil
	}
	l.mu.RUnlock()

	var img image.Image
	var err error
	if IsDataURI(ref) {
		img, err = decodeDataURI(ref)
	} else {
		img, err = loadFile(ref)
	}
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.images[ref] = img
	l.mu.Unlock()
	return img, nil
}

func loadFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("images: decoding %s: %w", path, err)
	}
	return img, nil
}

// config returns the image header for ref without decoding pixel data,
// unless the full image was already cached.
func (l *Library) config(ref string) (image.Config, error) {
	l.mu.RLock()
	if c, ok := l.configs[ref]; ok {
		l.mu.RUnlock()
		return c, nil
	}
	if img, ok := l.images[ref]; ok {
		l.mu.RUnlock()
		b := img.Bounds()
		return image.Config{Width: b.Dx(), Height: b.Dy()}, nil
	}
	l.mu.RUnlock()

	var c image.Config
	if IsDataURI(ref) {
		img, err := decodeDataURI(ref)
		if err != nil {
			return image.Config{}, err
		}
		b := img.Bounds()
		c = image.Config{Width: b.Dx(), Height: b.Dy()}
	} else {
		file, err := os.Open(ref)
		if err != nil {
			return image.Config{}, err
		}
		c, _, err = image.DecodeConfig(file)
		file.Close()
		if err != nil {
			return image.Config{}, fmt.Errorf("images: probing %s: %w", ref, err)
		}
	}

	l.mu.Lock()
	l.configs[ref] = c
	l.mu.Unlock()
	return c, nil
}

// Dimensions returns the pixel size of ref from its header.
func (l *Library) Dimensions(ref string) (width, height int, err error) {
	c, err := l.config(ref)
	if err != nil {
		return 0, 0, err
	}
	return c.Width, c.Height, nil
}

// AspectRatio returns ref's width/height ratio from its header.
func (l *Library) AspectRatio(ref string) (float64, error) {
	c, err := l.config(ref)
	if err != nil {
		return 0, err
	}
	if c.Height <= 0 {
		return 0, fmt.Errorf("images: %s has no height", ref)
	}
	return float64(c.Width) / float64(c.Height), nil
}
