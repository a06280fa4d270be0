package system

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/yunseo/wander/internal/domain/entity"
)

// ErrSceneNotFound is returned when the manifest has no entry for the
// requested scene name. A failed transition keeps the previous scene.
var ErrSceneNotFound = errors.New("scene not found")

// MetadataSource resolves scene metadata by name. Each call must
// return freshly derived geometry so stale rectangles never survive a
// transition. Implemented by the config manifest.
type MetadataSource interface {
	SceneMetadata(name string) (*entity.Scene, bool)
}

// BackgroundPreloader warms the background image cache during scene
// loads. Implemented by the asset store.
type BackgroundPreloader interface {
	Preload(path string) error
}

// SceneManager owns the identity of the active scene. On every scene
// change it pushes the new geometry into the collision system, so
// movement queries never observe a half-updated scene.
type SceneManager struct {
	source      MetadataSource
	backgrounds BackgroundPreloader
	collision   *CollisionSystem

	// group deduplicates concurrent loads of the same scene name: a
	// second request while one is in flight awaits the same result.
	group singleflight.Group

	mu     sync.Mutex
	active *entity.Scene
}

// NewSceneManager creates a scene manager. backgrounds may be nil when
// no asset store is present (headless tests).
func NewSceneManager(source MetadataSource, backgrounds BackgroundPreloader, collision *CollisionSystem) *SceneManager {
	return &SceneManager{
		source:      source,
		backgrounds: backgrounds,
		collision:   collision,
	}
}

// Resolve fetches the named scene's metadata and warms its background,
// without publishing it as active. Concurrent calls for the same name
// share a single in-flight resolution. A background failure is logged
// and ignored; the scene renders on its fill color instead.
func (m *SceneManager) Resolve(name string) (*entity.Scene, error) {
	v, err, _ := m.group.Do(name, func() (interface{}, error) {
		sc, ok := m.source.SceneMetadata(name)
		if !ok {
			return nil, fmt.Errorf("load scene %q: %w", name, ErrSceneNotFound)
		}
		if m.backgrounds != nil && sc.Background != "" {
			if err := m.backgrounds.Preload(sc.Background); err != nil {
				log.Printf("scene %q: background unavailable: %v", name, err)
			}
		}
		return sc, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*entity.Scene), nil
}

// Publish makes sc the active scene and replaces the collision
// system's geometry. The simulation calls this at a tick boundary so
// the tick in flight keeps operating on the previous scene.
func (m *SceneManager) Publish(sc *entity.Scene) {
	m.mu.Lock()
	m.active = sc
	m.mu.Unlock()
	m.collision.LoadScene(sc)
}

// Load resolves and publishes the named scene in one step. This is the
// synchronous path used for the initial scene at startup.
func (m *SceneManager) Load(name string) (*entity.Scene, error) {
	sc, err := m.Resolve(name)
	if err != nil {
		return nil, err
	}
	m.Publish(sc)
	return sc, nil
}

// Active returns the currently active scene, or nil before the first
// successful load.
func (m *SceneManager) Active() *entity.Scene {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}
