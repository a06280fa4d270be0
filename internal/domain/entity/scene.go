package entity

// InteractiveDoor marks a zone that requests a scene transition when
// the player overlaps it and presses the interact action.
const InteractiveDoor = "door"

// Interactive is a zone the player can act on. Doors carry the name of
// the destination scene and, optionally, the position the player
// spawns at after the transition completes.
type Interactive struct {
	Rect
	Type        string
	Destination string
	Spawn       *Point
}

// Scene is one discrete playable area: its dimensions plus the static
// geometry derived from manifest metadata. A scene is replaced, never
// mutated, when a transition completes; geometry is re-derived on
// every load so stale rectangles cannot survive a transition.
type Scene struct {
	Name         string
	Width        float64
	Height       float64
	Background   string // asset path, resolved by the asset store
	Colliders    []Rect
	Interactives []Interactive
}

// Bounds returns the playable size of the scene.
func (s *Scene) Bounds() Bounds {
	if s == nil {
		return Bounds{}
	}
	return Bounds{W: s.Width, H: s.Height}
}
