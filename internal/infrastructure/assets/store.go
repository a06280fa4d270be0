// Package assets loads and caches scene background images.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	_ "image/png" // background decoder
)

// ErrAssetLoad wraps background fetch/decode failures. Non-fatal: a
// scene without its background renders on the fill color.
var ErrAssetLoad = errors.New("asset load failed")

// Store hands out background images from a filesystem, decoding each
// path at most once.
type Store struct {
	fsys fs.FS

	mu     sync.Mutex
	images map[string]*ebiten.Image
}

// NewStore creates a store over the given filesystem.
func NewStore(fsys fs.FS) *Store {
	return &Store{
		fsys:   fsys,
		images: make(map[string]*ebiten.Image),
	}
}

// Background returns the image at path, decoding on first access.
func (s *Store) Background(path string) (*ebiten.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrAssetLoad)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if img, ok := s.images[path]; ok {
		return img, nil
	}

	img, _, err := ebitenutil.NewImageFromFileSystem(s.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetLoad, path, err)
	}
	s.images[path] = img
	return img, nil
}

// Preload warms the cache for path. Implements the scene manager's
// BackgroundPreloader.
func (s *Store) Preload(path string) error {
	_, err := s.Background(path)
	return err
}

// Cached reports whether path has already been decoded.
func (s *Store) Cached(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.images[path]
	return ok
}
