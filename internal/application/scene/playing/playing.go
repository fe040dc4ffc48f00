// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/invaderers/internal/application/scene"
	"github.com/younwookim/invaderers/internal/application/state"
	"github.com/younwookim/invaderers/internal/application/system"
	"github.com/younwookim/invaderers/internal/infrastructure/audio"
	"github.com/younwookim/invaderers/internal/infrastructure/config"
	"github.com/younwookim/invaderers/internal/infrastructure/render"
)

// Colors for rendering
var (
	colorBG       = color.Black
	colorHUD      = colornames.White
	colorPause    = color.RGBA{0, 0, 0, 128}
	colorGameOver = color.RGBA{100, 0, 0, 120}
	colorVictory  = color.RGBA{0, 60, 100, 120}
)

// Playing is the main gameplay scene
type Playing struct {
	config      *config.GameConfig
	state       state.GameState
	invasion    *system.Invasion
	inputSystem *system.InputSystem
	sprites     *render.SpriteRenderer
	text        *render.TextRenderer
	mixer       *audio.Mixer
	screenW     int
	screenH     int

	// Deterministic RNG
	seed int64

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene.
// If recordPath is not empty, gameplay will be recorded.
// A nil mixer plays nothing.
func New(cfg *config.GameConfig, textures render.TextureSource, mixer *audio.Mixer, seed int64, recordPath string) *Playing {
	if mixer == nil {
		mixer = audio.NewSilentMixer()
	}

	screenW := cfg.Display.ScreenWidth
	screenH := cfg.Display.ScreenHeight
	camera := render.NewCamera(cfg.Camera, screenW, screenH)

	p := &Playing{
		config:         cfg,
		inputSystem:    system.NewInputSystem(),
		sprites:        render.NewSpriteRenderer(camera, textures),
		text:           render.NewTextRenderer(camera, cfg.HUD.Scale),
		mixer:          mixer,
		screenW:        screenW,
		screenH:        screenH,
		recordFilename: recordPath,
	}
	p.start(seed)

	if recordPath != "" {
		log.Printf("Recording enabled: %s (seed: %d)", recordPath, seed)
	}

	return p
}

// start begins a fresh game from seed
func (p *Playing) start(seed int64) {
	p.seed = seed
	p.state = state.StatePlaying

	p.invasion = system.NewInvasion(p.config, rand.New(rand.NewSource(seed)))
	p.invasion.OnSound = p.mixer.Play
	p.invasion.OnGameOver = p.onGameOver

	if p.recordFilename != "" {
		p.recorder = NewRecorder(seed)
	}
}

func (p *Playing) onGameOver(victory bool) {
	if victory {
		p.state = state.StateVictory
	} else {
		p.state = state.StateGameOver
	}

	// Auto-save recording on game over
	if p.recorder != nil {
		p.saveRecording()
		p.recorder.Stop()
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ scene.Tick) (scene.Scene, error) {
	switch {
	case p.state == state.StatePlaying:
		p.updatePlaying()
	case p.state == state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	case p.state.Finished():
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			p.restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying() {
	// Check for pause
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	p.step(p.inputSystem.GetInput())
}

// step records and simulates one frame
func (p *Playing) step(input system.InputState) {
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}
	p.invasion.Step(input)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

func (p *Playing) restart() {
	p.mixer.Stop()
	p.start(time.Now().UnixNano())

	if p.recorder != nil {
		log.Printf("Recording restarted (seed: %d)", p.seed)
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.sprites.Draw(screen, p.invasion.Sprites())
	p.drawHUD(screen)

	switch {
	case p.state == state.StatePaused:
		p.drawPauseOverlay(screen)
	case p.state.Finished():
		p.drawGameOverOverlay(screen)
	}
}

// HUDLines returns the status lines shown in the top-left corner
func (p *Playing) HUDLines() []string {
	lines := []string{
		fmt.Sprintf("score: %d", p.invasion.Score()),
		fmt.Sprintf("time: %d", p.invasion.Timer()),
		fmt.Sprintf("lives: %d", p.invasion.Lives()),
	}
	if p.invasion.BossExists() {
		lines = append(lines, fmt.Sprintf("boss: %d", p.invasion.BossLives()))
	}
	return lines
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	hud := p.config.HUD
	for i, line := range p.HUDLines() {
		p.text.DrawWorld(screen, line, hud.X, hud.Y-float32(i)*hud.LineHeight, colorHUD)
	}

	ebitenutil.DebugPrintAt(screen, "Arrows/WASD: Move | Space: Fire | ESC: Pause", 4, p.screenH-16)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	// Semi-transparent overlay
	vector.FillRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorPause, false)

	cx, cy := float64(p.screenW)/2, float64(p.screenH)/2
	p.text.DrawCentered(screen, "PAUSED", cx, cy-p.text.LineHeight(), colorHUD)
	p.text.DrawCentered(screen, "Press ESC to resume", cx, cy+p.text.LineHeight(), colorHUD)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	overlay, title := colorGameOver, "The invaderers won"
	if p.state == state.StateVictory {
		overlay, title = colorVictory, "Boss destroyed!"
	}
	vector.FillRect(screen, 0, float32(p.screenH)*3/4-40, float32(p.screenW), 80, overlay, false)

	cx, y := float64(p.screenW)/2, float64(p.screenH)*3/4
	lh := p.text.LineHeight()
	p.text.DrawCentered(screen, title, cx, y-lh*1.5, colorHUD)
	p.text.DrawCentered(screen, fmt.Sprintf("score: %d  time: %d", p.invasion.Score(), p.invasion.Timer()), cx, y, colorHUD)
	p.text.DrawCentered(screen, "Press R to restart", cx, y+lh*1.5, colorHUD)
}

// State returns the current scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Invasion returns the running game
func (p *Playing) Invasion() *system.Invasion {
	return p.invasion
}

// Seed returns the seed of the running game
func (p *Playing) Seed() int64 {
	return p.seed
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	p.mixer.Stop()
}
