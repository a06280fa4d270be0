// Package exploring provides the main gameplay screen: the player
// roaming connected scenes.
package exploring

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yunseo/wander/internal/application/replay"
	"github.com/yunseo/wander/internal/application/screen"
	"github.com/yunseo/wander/internal/application/state"
	"github.com/yunseo/wander/internal/application/system"
	"github.com/yunseo/wander/internal/domain/entity"
	"github.com/yunseo/wander/internal/infrastructure/assets"
	"github.com/yunseo/wander/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{26, 26, 46, 255}
	colorWall    = color.RGBA{80, 80, 100, 255}
	colorDoor    = color.RGBA{200, 170, 60, 180}
	colorZone    = color.RGBA{100, 140, 200, 120}
	colorPlayer  = color.RGBA{100, 200, 100, 255}
	colorFacing  = color.RGBA{230, 250, 230, 255}
	colorOverlay = color.RGBA{0, 0, 0, 140}
)

// fadeDuration is the scene-transition fade-in time in milliseconds.
const fadeDuration = 400

// Exploring is the main gameplay screen
type Exploring struct {
	config *config.GameConfig
	state  state.GameState

	sim         *system.Sim
	inputSystem *system.InputSystem
	collision   *system.CollisionSystem
	camera      *system.Camera
	scenes      *system.SceneManager

	store      *assets.Store
	background *ebiten.Image

	screenW int
	screenH int
	dt      float64

	// Scene-transition fade
	fade      *gween.Tween
	fadeAlpha float32

	showDebug bool

	// Input recording / playback
	recorder       *Recorder
	recordFilename string
	replayer       *replay.Replayer
	replayDone     bool
}

// New creates the exploring screen and loads the starting scene.
// store may be nil (headless); replayer may be nil (live input).
// If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, manifest config.Manifest, store *assets.Store, recordPath string, replayer *replay.Replayer) *Exploring {
	collision := system.NewCollisionSystem()
	camera := system.NewCamera(float64(cfg.Display.ScreenWidth), float64(cfg.Display.ScreenHeight))
	scenes := system.NewSceneManager(manifest, preloader(store), collision)

	roster := characterRoster(cfg)
	lead := roster[0]
	player := entity.NewPlayer(cfg.Player.Spawn.X, cfg.Player.Spawn.Y, lead.W, lead.H, lead.Speed)
	player.Character = lead.Name

	sim := system.NewSim(player, collision, camera, scenes)
	sim.SetCharacters(roster)
	sim.DefaultBounds = entity.Bounds{W: camera.W, H: camera.H}

	e := &Exploring{
		config:         cfg,
		state:          state.StateExploring,
		sim:            sim,
		inputSystem:    system.NewInputSystem(),
		collision:      collision,
		camera:         camera,
		scenes:         scenes,
		store:          store,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		dt:             1000.0 / float64(cfg.Display.Framerate),
		recordFilename: recordPath,
		replayer:       replayer,
	}

	sim.OnSceneChange = e.onSceneChange
	sim.OnSwitch = func(p system.CharacterProfile) {
		log.Printf("Switched to character %q", p.Name)
	}

	// A replay starts in the scene it was recorded in.
	startScene := cfg.StartScene
	if replayer != nil && replayer.Scene() != "" {
		startScene = replayer.Scene()
	}
	if startScene != "" {
		if sc, err := scenes.Load(startScene); err != nil {
			log.Printf("Failed to load scene %q: %v", startScene, err)
		} else {
			sim.SetScene(sc)
			e.background = e.lookupBackground(sc)
		}
	}

	if recordPath != "" {
		e.recorder = NewRecorder(startScene)
		log.Printf("Recording enabled: %s", recordPath)
	}

	return e
}

// characterRoster converts the configured characters into switchable
// profiles. With no characters configured the base player stats act as
// a single-entry roster.
func characterRoster(cfg *config.GameConfig) []system.CharacterProfile {
	if len(cfg.Characters) == 0 {
		return []system.CharacterProfile{{
			Name:  "wanderer",
			Speed: cfg.Player.Speed,
			W:     cfg.Player.Width,
			H:     cfg.Player.Height,
		}}
	}

	roster := make([]system.CharacterProfile, 0, len(cfg.Characters))
	for _, c := range cfg.Characters {
		p := system.CharacterProfile{Name: c.Name, Speed: c.Speed, W: c.Width, H: c.Height}
		if p.Speed <= 0 {
			p.Speed = cfg.Player.Speed
		}
		if p.W <= 0 {
			p.W = cfg.Player.Width
		}
		if p.H <= 0 {
			p.H = cfg.Player.Height
		}
		roster = append(roster, p)
	}
	return roster
}

// preloader avoids a non-nil interface wrapping a nil *Store.
func preloader(store *assets.Store) system.BackgroundPreloader {
	if store == nil {
		return nil
	}
	return store
}

// Update proceeds the game state (implements screen.Screen)
func (e *Exploring) Update(_ float64) (screen.Screen, error) {
	switch e.state {
	case state.StateExploring:
		e.updateExploring()
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			e.state = state.StateExploring
		}
	}

	return nil, nil // nil = stay on this screen
}

func (e *Exploring) updateExploring() {
	// Check for pause
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		e.state = state.StatePaused
		return
	}

	// F1: Toggle geometry debug overlay
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		e.showDebug = !e.showDebug
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && e.recorder != nil {
		e.saveRecording()
	}

	input := e.readInput()

	// Record input if recording is enabled
	if e.recorder != nil {
		e.recorder.RecordFrame(input)
	}

	e.sim.Step(e.dt, input)

	if e.fade != nil {
		v, done := e.fade.Update(float32(e.dt))
		e.fadeAlpha = v
		if done {
			e.fade = nil
			e.fadeAlpha = 0
		}
	}
}

// readInput returns this tick's action snapshot, from the replayer when
// one is attached and still has frames, from the keyboard otherwise.
func (e *Exploring) readInput() system.Snapshot {
	if e.replayer != nil && !e.replayDone {
		if ri, ok := e.replayer.GetInput(); ok {
			return system.Snapshot{
				Up:       ri.Up,
				Down:     ri.Down,
				Left:     ri.Left,
				Right:    ri.Right,
				Interact: ri.Interact,
				Switch:   ri.Switch,
			}
		}
		e.replayDone = true
		log.Printf("Replay finished (%d frames), switching to live input", e.replayer.TotalFrames())
	}
	return e.inputSystem.Read()
}

// onSceneChange swaps the background and starts the arrival fade.
// Called by the simulation after a door transition is published.
func (e *Exploring) onSceneChange(sc *entity.Scene) {
	e.background = e.lookupBackground(sc)
	e.fade = gween.New(1, 0, fadeDuration, ease.OutQuad)
	e.fadeAlpha = 1
	log.Printf("Entered scene %q", sc.Name)
}

func (e *Exploring) lookupBackground(sc *entity.Scene) *ebiten.Image {
	if e.store == nil || sc == nil || sc.Background == "" {
		return nil
	}
	img, err := e.store.Background(sc.Background)
	if err != nil {
		log.Printf("scene %q: background unavailable: %v", sc.Name, err)
		return nil
	}
	return img
}

// saveRecording saves the current recording to file
func (e *Exploring) saveRecording() {
	if e.recorder == nil {
		return
	}

	filename := e.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := e.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, e.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (e *Exploring) Draw(target *ebiten.Image) {
	target.Fill(colorBG)

	if e.background != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-e.camera.X, -e.camera.Y)
		target.DrawImage(e.background, op)
	}

	// Without a background the geometry is the scene.
	if e.background == nil || e.showDebug {
		e.drawGeometry(target)
	}

	e.drawPlayer(target)
	e.drawHUD(target)

	if e.fadeAlpha > 0 {
		a := uint8(float32(255) * e.fadeAlpha)
		ebitenutil.DrawRect(target, 0, 0, float64(e.screenW), float64(e.screenH), color.RGBA{0, 0, 0, a})
	}

	if e.state == state.StatePaused {
		e.drawPauseOverlay(target)
	}
}

func (e *Exploring) drawGeometry(target *ebiten.Image) {
	for _, r := range e.collision.Colliders() {
		sx, sy := e.camera.WorldToScreen(r.X, r.Y)
		ebitenutil.DrawRect(target, sx, sy, r.W, r.H, colorWall)
	}

	for _, iv := range e.collision.Interactives() {
		c := colorZone
		if iv.Type == entity.InteractiveDoor {
			c = colorDoor
		}
		sx, sy := e.camera.WorldToScreen(iv.X, iv.Y)
		ebitenutil.DrawRect(target, sx, sy, iv.W, iv.H, c)
	}
}

func (e *Exploring) drawPlayer(target *ebiten.Image) {
	p := e.sim.Player()
	sx, sy := e.camera.WorldToScreen(p.X, p.Y)
	ebitenutil.DrawRect(target, sx, sy, p.W, p.H, colorPlayer)

	// Facing marker: a strip along the faced edge.
	const t = 3.0
	switch p.Facing {
	case entity.DirUp:
		ebitenutil.DrawRect(target, sx, sy, p.W, t, colorFacing)
	case entity.DirDown:
		ebitenutil.DrawRect(target, sx, sy+p.H-t, p.W, t, colorFacing)
	case entity.DirLeft:
		ebitenutil.DrawRect(target, sx, sy, t, p.H, colorFacing)
	case entity.DirRight:
		ebitenutil.DrawRect(target, sx+p.W-t, sy, t, p.H, colorFacing)
	}
}

func (e *Exploring) drawHUD(target *ebiten.Image) {
	p := e.sim.Player()

	sceneName := "(no scene)"
	if sc := e.sim.Scene(); sc != nil {
		sceneName = sc.Name
	}

	msg := fmt.Sprintf("%s | %s | %s %s | (%.0f, %.0f)",
		sceneName, p.Character, p.Moving, p.Facing, p.X, p.Y)
	if e.sim.TransitionPending() {
		msg += " | loading..."
	}
	ebitenutil.DebugPrint(target, msg)

	if e.recorder != nil && e.recorder.IsRecording() {
		ebitenutil.DebugPrintAt(target, "REC", e.screenW-32, 0)
	}
	if e.replayer != nil && !e.replayDone {
		ebitenutil.DebugPrintAt(target,
			fmt.Sprintf("REPLAY %d/%d", e.replayer.CurrentFrame(), e.replayer.TotalFrames()),
			0, e.screenH-16)
	}
}

func (e *Exploring) drawPauseOverlay(target *ebiten.Image) {
	ebitenutil.DrawRect(target, 0, 0, float64(e.screenW), float64(e.screenH), colorOverlay)
	ebitenutil.DebugPrintAt(target, "PAUSED", e.screenW/2-24, e.screenH/2-8)
	ebitenutil.DebugPrintAt(target, "Press ESC to resume", e.screenW/2-60, e.screenH/2+8)
}

// OnEnter is called when entering this screen
func (e *Exploring) OnEnter() {
	log.Printf("Entering exploring screen")
}

// OnExit is called when leaving this screen
func (e *Exploring) OnExit() {
	if e.recorder != nil && e.recorder.IsRecording() {
		e.saveRecording()
		e.recorder.Stop()
	}
}
