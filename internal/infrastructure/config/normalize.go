package config

import (
	"log"

	"github.com/yunseo/wander/internal/domain/entity"
)

// Normalize converts a raw manifest entry into the canonical scene
// shape. This is the single place field-name variants are resolved;
// everything past this boundary sees one geometry shape.
//
// Malformed entries are recovered, not rejected: a collider missing
// its size becomes a zero-size rectangle that can never block, and a
// door without a destination is dropped. Both log a warning.
func Normalize(name string, raw RawScene) *entity.Scene {
	sc := &entity.Scene{
		Name:       name,
		Width:      raw.Width,
		Height:     raw.Height,
		Background: raw.Background,
	}

	for i, rr := range raw.Collision {
		r, ok := normalizeRect(rr)
		if !ok {
			log.Printf("scene %q: collider %d is missing size fields, disabled", name, i)
		}
		sc.Colliders = append(sc.Colliders, r)
	}

	for i, ri := range raw.Interactive {
		r, ok := normalizeRect(interactiveRect(ri))
		if !ok {
			log.Printf("scene %q: interactive %d is missing size fields, disabled", name, i)
		}
		if ri.Type == entity.InteractiveDoor && ri.DestinationScene == "" {
			log.Printf("scene %q: door %d has no destination, dropped", name, i)
			continue
		}
		iv := entity.Interactive{
			Rect:        r,
			Type:        ri.Type,
			Destination: ri.DestinationScene,
		}
		if ri.SpawnPoint != nil {
			iv.Spawn = &entity.Point{X: ri.SpawnPoint.X, Y: ri.SpawnPoint.Y}
		}
		sc.Interactives = append(sc.Interactives, iv)
	}

	return sc
}

// interactiveRect picks the rectangle source for an interactive entry:
// an explicit rect/area/zone wrapper wins over inline fields.
func interactiveRect(ri RawInteractive) RawRect {
	switch {
	case ri.Rect != nil:
		return *ri.Rect
	case ri.Area != nil:
		return *ri.Area
	case ri.Zone != nil:
		return *ri.Zone
	default:
		return ri.RawRect
	}
}

// normalizeRect resolves the w/width and h/height variants. An entry
// missing either size yields a zero-size rectangle and ok=false.
func normalizeRect(rr RawRect) (entity.Rect, bool) {
	w, wok := pickSize(rr.W, rr.Width)
	h, hok := pickSize(rr.H, rr.Height)
	if !wok || !hok {
		return entity.Rect{X: rr.X, Y: rr.Y}, false
	}
	return entity.Rect{X: rr.X, Y: rr.Y, W: w, H: h}, true
}

func pickSize(short, long *float64) (float64, bool) {
	if short != nil {
		return *short, true
	}
	if long != nil {
		return *long, true
	}
	return 0, false
}
