package config

import (
	"github.com/yunseo/wander/internal/domain/entity"
)

// Manifest maps scene names to their raw metadata as persisted in
// scenes.json. Raw entries keep every field-name variant the existing
// manifests use; Normalize flattens them into the one canonical shape.
type Manifest map[string]RawScene

// RawScene is a scene entry as it appears on disk.
type RawScene struct {
	Width       float64          `json:"width"`
	Height      float64          `json:"height"`
	Background  string           `json:"background"`
	Collision   []RawRect        `json:"collision"`
	Interactive []RawInteractive `json:"interactive"`
}

// RawRect tolerates both the short and the long size field names.
// Pointers distinguish "absent" from zero.
type RawRect struct {
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	W      *float64 `json:"w"`
	Width  *float64 `json:"width"`
	H      *float64 `json:"h"`
	Height *float64 `json:"height"`
}

// RawInteractive additionally tolerates rect/area/zone nesting: some
// manifests inline the rectangle, others wrap it.
type RawInteractive struct {
	RawRect
	Rect *RawRect `json:"rect"`
	Area *RawRect `json:"area"`
	Zone *RawRect `json:"zone"`

	Type             string    `json:"type"`
	DestinationScene string    `json:"destinationScene"`
	SpawnPoint       *RawPoint `json:"spawnPoint"`
}

// RawPoint is a position entry.
type RawPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SceneMetadata returns freshly normalized metadata for name. Each
// call re-derives the geometry, so a scene loaded twice never shares
// rectangles with its previous incarnation. Implements the scene
// manager's MetadataSource.
func (m Manifest) SceneMetadata(name string) (*entity.Scene, bool) {
	raw, ok := m[name]
	if !ok {
		return nil, false
	}
	return Normalize(name, raw), true
}
