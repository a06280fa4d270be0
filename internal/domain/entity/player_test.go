package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(100, 200, 96, 96, 0.2)

	assert.Equal(t, 100.0, p.X)
	assert.Equal(t, 200.0, p.Y)
	assert.Equal(t, DirDown, p.Facing)
	assert.Equal(t, MoveIdle, p.Moving)
}

func TestPlayerRect(t *testing.T) {
	p := NewPlayer(100, 100, 96, 96, 0.2)

	assert.Equal(t, Rect{X: 100, Y: 100, W: 96, H: 96}, p.Rect())
	assert.Equal(t, Rect{X: 110, Y: 100, W: 96, H: 96}, p.RectAt(110, 100))
}

func TestSceneBounds(t *testing.T) {
	t.Run("nil scene has unknown bounds", func(t *testing.T) {
		var sc *Scene
		assert.False(t, sc.Bounds().Known())
	})

	t.Run("loaded scene reports its size", func(t *testing.T) {
		sc := &Scene{Name: "village", Width: 800, Height: 600}
		assert.Equal(t, Bounds{W: 800, H: 600}, sc.Bounds())
	})
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "down", DirDown.String())
	assert.Equal(t, "up", DirUp.String())
	assert.Equal(t, "left", DirLeft.String())
	assert.Equal(t, "right", DirRight.String())
}

func TestMoveStateString(t *testing.T) {
	assert.Equal(t, "idle", MoveIdle.String())
	assert.Equal(t, "walking", MoveWalking.String())
}
