package main

import (
	"flag"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/invaderers/internal/application/game"
	"github.com/younwookim/invaderers/internal/application/scene"
	"github.com/younwookim/invaderers/internal/application/scene/playing"
	"github.com/younwookim/invaderers/internal/application/scene/title"
	"github.com/younwookim/invaderers/internal/infrastructure/assets"
	"github.com/younwookim/invaderers/internal/infrastructure/audio"
	"github.com/younwookim/invaderers/internal/infrastructure/config"
	"github.com/younwookim/invaderers/internal/infrastructure/render"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recording headless and print the result")
	configFlag := flag.String("config", "", "Override file (.json, .yaml or .yml) applied on the defaults")
	seedFlag := flag.Int64("seed", 0, "RNG seed for the first game (0 = time based)")
	muteFlag := flag.Bool("mute", false, "Disable sound")
	assetsFlag := flag.String("assets", "assets", "Directory holding textures and sounds")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		if err := runReplay(cfg, *replayFlag, os.Stdout); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	assetFS := os.DirFS(*assetsFlag)

	atlas := assets.NewAtlas()
	if err := atlas.Load(assetFS, cfg.Textures); err != nil {
		log.Fatalf("Failed to load textures: %v", err)
	}

	mixer := newMixer(cfg, assetFS, *muteFlag, seed)

	display := cfg.Display
	camera := render.NewCamera(cfg.Camera, display.ScreenWidth, display.ScreenHeight)
	text := render.NewTextRenderer(camera, cfg.HUD.Scale)

	// The first game uses the flag seed, restarts pick their own
	start := func() scene.Scene {
		return playing.New(cfg, atlas, mixer, seed, *recordFlag)
	}
	g := game.New(title.New(display.Title, text, display.ScreenWidth, display.ScreenHeight, start),
		display.ScreenWidth, display.ScreenHeight)
	g.SetDT(1.0 / float64(display.Framerate))

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	g.Shutdown()
	if err != nil {
		log.Fatal(err)
	}
}

// newMixer builds the sound bank and voice pool, or a silent mixer when
// sound is off
func newMixer(cfg *config.GameConfig, assetFS fs.FS, mute bool, seed int64) *audio.Mixer {
	if mute || !cfg.Audio.Enabled {
		return audio.NewSilentMixer()
	}

	bank := audio.NewBank(cfg.Audio.SampleRate)
	if err := bank.Load(assetFS, cfg.Audio.Sounds, rand.New(rand.NewSource(seed))); err != nil {
		log.Printf("Audio unavailable: %v", err)
		return audio.NewSilentMixer()
	}

	ctx := ebaudio.NewContext(bank.SampleRate())
	return audio.NewMixer(bank, audio.ContextFactory(ctx), cfg.Audio.Sources, cfg.Audio.Volume)
}
