package system

import (
	"github.com/yunseo/wander/internal/domain/entity"
)

// CollisionSystem owns the active scene's static colliders and
// interactive zones. Both lists are replaced wholesale on scene change
// and are never partially updated.
type CollisionSystem struct {
	colliders    []entity.Rect
	interactives []entity.Interactive
}

// NewCollisionSystem creates an empty collision system. With no scene
// loaded there are no colliders, so nothing blocks.
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// LoadScene replaces the collider and interactive lists from the
// scene's geometry. A nil scene clears both lists.
func (s *CollisionSystem) LoadScene(sc *entity.Scene) {
	if sc == nil {
		s.colliders = nil
		s.interactives = nil
		return
	}
	s.colliders = sc.Colliders
	s.interactives = sc.Interactives
}

// Blocked reports whether r overlaps any collider. The first match
// short-circuits; collider order is irrelevant for an existence test.
func (s *CollisionSystem) Blocked(r entity.Rect) bool {
	for _, c := range s.colliders {
		if r.Intersects(c) {
			return true
		}
	}
	return false
}

// InteractiveAt returns the first interactive zone overlapping r.
// When several zones overlap, list order wins; that tie-break is part
// of the contract.
func (s *CollisionSystem) InteractiveAt(r entity.Rect) (entity.Interactive, bool) {
	for _, iv := range s.interactives {
		if r.Intersects(iv.Rect) {
			return iv, true
		}
	}
	return entity.Interactive{}, false
}

// Colliders returns the active collider list for debug rendering.
func (s *CollisionSystem) Colliders() []entity.Rect {
	return s.colliders
}

// Interactives returns the active interactive list for debug rendering.
func (s *CollisionSystem) Interactives() []entity.Interactive {
	return s.interactives
}
