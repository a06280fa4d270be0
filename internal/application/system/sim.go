package system

import (
	"log"
	"math"

	"github.com/yunseo/wander/internal/domain/entity"
)

// SceneLoader is the scene manager surface the simulation needs:
// resolving a destination off-tick and publishing it at a tick
// boundary. *SceneManager implements it; tests substitute stubs.
type SceneLoader interface {
	Resolve(name string) (*entity.Scene, error)
	Publish(sc *entity.Scene)
}

// CharacterProfile is one switchable playable character.
type CharacterProfile struct {
	Name  string
	Speed float64
	W, H  float64
}

// transition carries a resolved scene change back to the tick loop.
type transition struct {
	name  string
	scene *entity.Scene
	spawn *entity.Point
	err   error
}

// Sim advances the player one tick at a time. It owns the player, the
// previous input snapshot, and the pending-transition slot; collision,
// camera and scene loading are threaded through explicitly rather than
// reached through globals.
type Sim struct {
	player    *entity.Player
	collision *CollisionSystem
	camera    *Camera
	scenes    SceneLoader // nil when running without a scene system

	active *entity.Scene

	// DefaultBounds backstops position clamping before any scene has
	// loaded, so the player stays controllable with zero scenes.
	DefaultBounds entity.Bounds

	// OnSceneChange is invoked when a transition resolves, after the
	// new scene is published and the player moved to its spawn point.
	OnSceneChange func(sc *entity.Scene)

	// OnSwitch is invoked after a character switch takes effect.
	OnSwitch func(profile CharacterProfile)

	characters []CharacterProfile
	charIndex  int

	prev    Snapshot
	pending chan transition
}

// NewSim creates a simulation for the given player and systems.
// scenes may be nil; doors are then inert.
func NewSim(player *entity.Player, collision *CollisionSystem, camera *Camera, scenes SceneLoader) *Sim {
	return &Sim{
		player:    player,
		collision: collision,
		camera:    camera,
		scenes:    scenes,
	}
}

// Player returns the simulated player for read-only consumers.
func (s *Sim) Player() *entity.Player {
	return s.player
}

// Scene returns the scene the simulation currently ticks against.
func (s *Sim) Scene() *entity.Scene {
	return s.active
}

// SetScene points the simulation at an already-published scene. Used
// for the initial scene at startup.
func (s *Sim) SetScene(sc *entity.Scene) {
	s.active = sc
}

// SetCharacters installs the switch-action roster. The player is
// assumed to already carry the first profile's stats.
func (s *Sim) SetCharacters(profiles []CharacterProfile) {
	s.characters = profiles
	s.charIndex = 0
}

// TransitionPending reports whether a scene load is in flight.
func (s *Sim) TransitionPending() bool {
	return s.pending != nil
}

// Step advances the simulation by one tick. dt is the tick duration in
// milliseconds. The order of operations is load-bearing: resolve any
// finished transition, move, clamp, focus the camera, then run the
// edge-triggered actions, and only then advance the previous-input
// buffer.
func (s *Sim) Step(dt float64, in Snapshot) {
	s.pollTransition()

	vx, vy := moveVector(in)

	// Reset to idle every tick so a released key takes effect on the
	// very next tick.
	s.player.Moving = entity.MoveIdle

	if vx != 0 || vy != 0 {
		nx := s.player.X + vx*s.player.Speed*dt
		ny := s.player.Y + vy*s.player.Speed*dt
		if !s.collision.Blocked(s.player.RectAt(nx, ny)) {
			s.player.X = nx
			s.player.Y = ny
			s.player.Moving = entity.MoveWalking
			s.player.Facing = facing(vx, vy)
		}
	}

	// Hard backstop independent of colliders: the player rectangle
	// never leaves the playable area even with no colliders loaded.
	b := s.playerBounds()
	if b.Known() {
		s.player.X = clamp(s.player.X, 0, math.Max(0, b.W-s.player.W))
		s.player.Y = clamp(s.player.Y, 0, math.Max(0, b.H-s.player.H))
	}

	cx, cy := s.player.Rect().Center()
	s.camera.FocusOn(cx, cy, s.active.Bounds())

	if in.Interact && !s.prev.Interact {
		if iv, ok := s.collision.InteractiveAt(s.player.Rect()); ok && iv.Type == entity.InteractiveDoor {
			s.requestTransition(iv)
		}
	}

	if in.Switch && !s.prev.Switch {
		s.switchCharacter()
	}

	// Advance the previous-input buffer exactly once, after all edge
	// tests for this tick.
	s.prev = in
}

// moveVector derives a unit or zero vector from the directional
// actions. Diagonals are normalized so diagonal speed equals axial
// speed; opposite inputs cancel.
func moveVector(in Snapshot) (vx, vy float64) {
	if in.Right {
		vx++
	}
	if in.Left {
		vx--
	}
	if in.Down {
		vy++
	}
	if in.Up {
		vy--
	}
	if vx != 0 && vy != 0 {
		vx /= math.Sqrt2
		vy /= math.Sqrt2
	}
	return vx, vy
}

// facing picks the direction by dominant axis. Horizontal wins only
// when strictly dominant; a perfect diagonal faces vertically.
func facing(vx, vy float64) entity.Direction {
	if math.Abs(vx) > math.Abs(vy) {
		if vx > 0 {
			return entity.DirRight
		}
		return entity.DirLeft
	}
	if vy > 0 {
		return entity.DirDown
	}
	return entity.DirUp
}

// playerBounds returns the bounds used for the position backstop: the
// active scene when one is loaded, the default otherwise.
func (s *Sim) playerBounds() entity.Bounds {
	if b := s.active.Bounds(); b.Known() {
		return b
	}
	return s.DefaultBounds
}

// requestTransition starts a scene load for the door's destination on
// its own goroutine. While a load is pending, further requests are
// ignored: the pending slot serializes transitions.
func (s *Sim) requestTransition(door entity.Interactive) {
	if s.scenes == nil || s.pending != nil {
		return
	}
	ch := make(chan transition, 1)
	s.pending = ch
	go func() {
		sc, err := s.scenes.Resolve(door.Destination)
		ch <- transition{name: door.Destination, scene: sc, spawn: door.Spawn, err: err}
	}()
}

// pollTransition applies a resolved transition, if any. Publishing
// happens here, at a tick boundary, so a tick never observes a scene
// swap mid-flight. Failures are logged and the current scene kept.
func (s *Sim) pollTransition() {
	if s.pending == nil {
		return
	}
	select {
	case tr := <-s.pending:
		s.pending = nil
		if tr.err != nil {
			log.Printf("transition to %q failed: %v", tr.name, tr.err)
			return
		}
		s.scenes.Publish(tr.scene)
		s.active = tr.scene
		if tr.spawn != nil {
			s.player.X = tr.spawn.X
			s.player.Y = tr.spawn.Y
		}
		if s.OnSceneChange != nil {
			s.OnSceneChange(tr.scene)
		}
	default:
	}
}

// switchCharacter cycles the roster, swapping the player's speed and
// size in place. The swap is reverted if the new size would embed the
// player in a collider.
func (s *Sim) switchCharacter() {
	if len(s.characters) < 2 {
		return
	}
	next := (s.charIndex + 1) % len(s.characters)
	p := s.characters[next]

	prevW, prevH := s.player.W, s.player.H
	s.player.W, s.player.H = p.W, p.H
	if s.collision.Blocked(s.player.Rect()) {
		s.player.W, s.player.H = prevW, prevH
		return
	}

	s.charIndex = next
	s.player.Character = p.Name
	s.player.Speed = p.Speed
	if s.OnSwitch != nil {
		s.OnSwitch(p)
	}
}
