package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yunseo/wander/internal/domain/entity"
)

func TestCameraFocusOn(t *testing.T) {
	bounds := entity.Bounds{W: 800, H: 600}

	t.Run("clamps to top-left corner", func(t *testing.T) {
		cam := NewCamera(640, 480)
		cam.FocusOn(10, 10, bounds)

		assert.Equal(t, 0.0, cam.X)
		assert.Equal(t, 0.0, cam.Y)
	})

	t.Run("clamps to bottom-right corner", func(t *testing.T) {
		cam := NewCamera(640, 480)
		cam.FocusOn(790, 590, bounds)

		assert.Equal(t, 160.0, cam.X)
		assert.Equal(t, 120.0, cam.Y)
	})

	t.Run("centers when focus is well inside", func(t *testing.T) {
		cam := NewCamera(640, 480)
		cam.FocusOn(400, 300, bounds)

		assert.Equal(t, 80.0, cam.X)
		assert.Equal(t, 60.0, cam.Y)
	})

	t.Run("offset stays within bounds for any focus", func(t *testing.T) {
		cam := NewCamera(640, 480)
		for _, p := range []entity.Point{
			{X: -500, Y: -500},
			{X: 0, Y: 600},
			{X: 800, Y: 0},
			{X: 2000, Y: 2000},
			{X: 123, Y: 456},
		} {
			cam.FocusOn(p.X, p.Y, bounds)
			assert.GreaterOrEqual(t, cam.X, 0.0)
			assert.LessOrEqual(t, cam.X, bounds.W-cam.W)
			assert.GreaterOrEqual(t, cam.Y, 0.0)
			assert.LessOrEqual(t, cam.Y, bounds.H-cam.H)
		}
	})

	t.Run("scene smaller than viewport pins to origin", func(t *testing.T) {
		cam := NewCamera(640, 480)
		cam.FocusOn(100, 100, entity.Bounds{W: 320, H: 240})

		assert.Equal(t, 0.0, cam.X)
		assert.Equal(t, 0.0, cam.Y)
	})

	t.Run("unknown bounds center without clamping", func(t *testing.T) {
		cam := NewCamera(640, 480)
		cam.FocusOn(10, 10, entity.Bounds{})

		assert.Equal(t, -310.0, cam.X)
		assert.Equal(t, -230.0, cam.Y)
	})
}

func TestCameraCoordinateMapping(t *testing.T) {
	cam := NewCamera(640, 480)
	cam.X, cam.Y = 160, 120

	sx, sy := cam.WorldToScreen(200, 200)
	assert.Equal(t, 40.0, sx)
	assert.Equal(t, 80.0, sy)

	wx, wy := cam.ScreenToWorld(sx, sy)
	assert.Equal(t, 200.0, wx)
	assert.Equal(t, 200.0, wy)
}
