package images

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// imageExts are the file extensions Scan picks up; the set matches the
// decoders registered by the loader.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Gallery is an ordered set of image paths backed by a shared library. It
// satisfies the windowed layout's source interface: Len and per-index
// AspectRatio.
type Gallery struct {
	lib   *Library
	paths []string
}

// NewGallery returns a gallery over the given paths.
func NewGallery(lib *Library, paths []string) *Gallery {
	if lib == nil {
		lib = NewLibrary()
	}
	return &Gallery{lib: lib, paths: paths}
}

// Scan builds a gallery from the image files directly under dir, in
// lexical order.
func Scan(lib *Library, dir string) (*Gallery, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return NewGallery(lib, paths), nil
}

// Len returns the number of images.
func (g *Gallery) Len() int {
	return len(g.paths)
}

// AspectRatio probes image i's header. ok is false when the index is out
// of range or the file cannot be probed; the layout falls back to its
// default ratio and a later Record can correct it.
func (g *Gallery) AspectRatio(i int) (float64, bool) {
	if i < 0 || i >= len(g.paths) {
		return 0, false
	}
	r, err := g.lib.AspectRatio(g.paths[i])
	if err != nil || r <= 0 {
		return 0, false
	}
	return r, true
}

// Path returns image i's path.
func (g *Gallery) Path(i int) string {
	return g.paths[i]
}

// Library returns the backing library.
func (g *Gallery) Library() *Library {
	return g.lib
}
