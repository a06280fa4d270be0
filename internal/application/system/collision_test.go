package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunseo/wander/internal/domain/entity"
)

func TestCollisionSystemBlocked(t *testing.T) {
	sys := NewCollisionSystem()
	sys.LoadScene(&entity.Scene{
		Name: "test",
		Colliders: []entity.Rect{
			{X: 140, Y: 90, W: 20, H: 40},
			{X: 300, Y: 300, W: 50, H: 50},
		},
	})

	t.Run("overlapping rect is blocked", func(t *testing.T) {
		assert.True(t, sys.Blocked(entity.Rect{X: 130, Y: 100, W: 30, H: 30}))
	})

	t.Run("clear rect is not blocked", func(t *testing.T) {
		assert.False(t, sys.Blocked(entity.Rect{X: 0, Y: 0, W: 30, H: 30}))
	})

	t.Run("touching edge is not blocked", func(t *testing.T) {
		// Right edge flush against the collider's left edge.
		assert.False(t, sys.Blocked(entity.Rect{X: 110, Y: 100, W: 30, H: 30}))
	})

	t.Run("any collider blocks", func(t *testing.T) {
		assert.True(t, sys.Blocked(entity.Rect{X: 310, Y: 310, W: 10, H: 10}))
	})

	t.Run("zero-size collider never blocks", func(t *testing.T) {
		// A collider recovered from malformed metadata is zero-size;
		// it must not block even when its origin lies inside the
		// candidate rect.
		sys := NewCollisionSystem()
		sys.LoadScene(&entity.Scene{
			Colliders: []entity.Rect{{X: 100, Y: 100}},
		})
		assert.False(t, sys.Blocked(entity.Rect{X: 90, Y: 90, W: 20, H: 20}))
	})
}

func TestCollisionSystemNoScene(t *testing.T) {
	sys := NewCollisionSystem()

	assert.False(t, sys.Blocked(entity.Rect{X: 0, Y: 0, W: 1000, H: 1000}))

	_, ok := sys.InteractiveAt(entity.Rect{X: 0, Y: 0, W: 1000, H: 1000})
	assert.False(t, ok)
}

func TestCollisionSystemLoadSceneReplacesWholesale(t *testing.T) {
	sys := NewCollisionSystem()
	sys.LoadScene(&entity.Scene{
		Colliders:    []entity.Rect{{X: 0, Y: 0, W: 10, H: 10}},
		Interactives: []entity.Interactive{{Rect: entity.Rect{X: 0, Y: 0, W: 10, H: 10}, Type: entity.InteractiveDoor}},
	})

	sys.LoadScene(&entity.Scene{
		Colliders: []entity.Rect{{X: 500, Y: 500, W: 10, H: 10}},
	})

	assert.False(t, sys.Blocked(entity.Rect{X: 0, Y: 0, W: 10, H: 10}))
	assert.True(t, sys.Blocked(entity.Rect{X: 495, Y: 495, W: 10, H: 10}))
	_, ok := sys.InteractiveAt(entity.Rect{X: 0, Y: 0, W: 10, H: 10})
	assert.False(t, ok)
}

func TestCollisionSystemLoadNilClears(t *testing.T) {
	sys := NewCollisionSystem()
	sys.LoadScene(&entity.Scene{
		Colliders: []entity.Rect{{X: 0, Y: 0, W: 10, H: 10}},
	})

	sys.LoadScene(nil)

	assert.False(t, sys.Blocked(entity.Rect{X: 0, Y: 0, W: 10, H: 10}))
	assert.Empty(t, sys.Colliders())
}

func TestCollisionSystemInteractiveAt(t *testing.T) {
	doorA := entity.Interactive{
		Rect:        entity.Rect{X: 100, Y: 100, W: 40, H: 40},
		Type:        entity.InteractiveDoor,
		Destination: "house",
	}
	doorB := entity.Interactive{
		Rect:        entity.Rect{X: 120, Y: 100, W: 40, H: 40},
		Type:        entity.InteractiveDoor,
		Destination: "cave",
	}

	sys := NewCollisionSystem()
	sys.LoadScene(&entity.Scene{Interactives: []entity.Interactive{doorA, doorB}})

	t.Run("returns overlapping zone", func(t *testing.T) {
		iv, ok := sys.InteractiveAt(entity.Rect{X: 90, Y: 90, W: 20, H: 20})
		require.True(t, ok)
		assert.Equal(t, "house", iv.Destination)
	})

	t.Run("first in list order wins on ties", func(t *testing.T) {
		// Overlaps both doors.
		iv, ok := sys.InteractiveAt(entity.Rect{X: 125, Y: 110, W: 10, H: 10})
		require.True(t, ok)
		assert.Equal(t, "house", iv.Destination)
	})

	t.Run("no overlap returns false", func(t *testing.T) {
		_, ok := sys.InteractiveAt(entity.Rect{X: 0, Y: 0, W: 10, H: 10})
		assert.False(t, ok)
	})

	t.Run("zero-size zone never matches", func(t *testing.T) {
		sys := NewCollisionSystem()
		sys.LoadScene(&entity.Scene{Interactives: []entity.Interactive{
			{Rect: entity.Rect{X: 100, Y: 100}, Type: entity.InteractiveDoor, Destination: "void"},
		}})
		_, ok := sys.InteractiveAt(entity.Rect{X: 90, Y: 90, W: 20, H: 20})
		assert.False(t, ok)
	})
}
