package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yunseo/wander/internal/application/game"
	"github.com/yunseo/wander/internal/application/replay"
	"github.com/yunseo/wander/internal/application/screen/exploring"
	"github.com/yunseo/wander/internal/infrastructure/assets"
	"github.com/yunseo/wander/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay input from file (e.g., -replay replay.json)")
	sceneFlag := flag.String("scene", "", "Override the starting scene")
	assetsFlag := flag.String("assets", "assets", "Directory holding background images")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	bundle, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg := bundle.Game
	if *sceneFlag != "" {
		cfg.StartScene = *sceneFlag
	}

	// Load replay if requested
	var replayer *replay.Replayer
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer = replay.NewReplayer(*data)
		log.Printf("Replaying %s (%d frames)", *replayFlag, replayer.TotalFrames())
	}

	// Backgrounds load from disk so scenes can be reskinned without a
	// rebuild. A missing image is non-fatal.
	store := assets.NewStore(os.DirFS(*assetsFlag))

	initial := exploring.New(cfg, bundle.Scenes, store, *recordFlag, replayer)
	g := game.New(initial, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight,
		1000.0/float64(cfg.Display.Framerate))

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
