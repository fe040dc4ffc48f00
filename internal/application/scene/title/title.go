// Package title provides the start screen.
package title

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/younwookim/invaderers/internal/application/scene"
	"github.com/younwookim/invaderers/internal/application/state"
	"github.com/younwookim/invaderers/internal/infrastructure/render"
)

// Controls lists the key bindings shown under the title
var Controls = []string{
	"Arrows / WASD: move",
	"Space: fire",
	"ESC: pause   F5: save replay",
	"F11: fullscreen",
}

// Title shows the game name until the player starts a game
type Title struct {
	name    string
	text    *render.TextRenderer
	start   func() scene.Scene
	screenW int
	screenH int
	blink   int
}

// New creates the title scene. start builds the scene entered on Space or Enter.
func New(name string, text *render.TextRenderer, screenW, screenH int, start func() scene.Scene) *Title {
	return &Title{
		name:    name,
		text:    text,
		start:   start,
		screenW: screenW,
		screenH: screenH,
	}
}

// State always reports the title state
func (t *Title) State() state.GameState {
	return state.StateTitle
}

// Update waits for the start key (implements scene.Scene)
func (t *Title) Update(tick scene.Tick) (scene.Scene, error) {
	t.blink = tick.Frame

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return t.start(), nil
	}
	return nil, nil
}

// Draw renders the title and the controls
func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	cx := float64(t.screenW) / 2
	lh := t.text.LineHeight()
	y := float64(t.screenH) / 3

	t.text.DrawCentered(screen, t.name, cx, y, colornames.Lime)

	y += lh * 3
	for _, line := range Controls {
		t.text.DrawCentered(screen, line, cx, y, colornames.White)
		y += lh * 1.5
	}

	// Blink at roughly 1 Hz
	if (t.blink/30)%2 == 0 {
		t.text.DrawCentered(screen, "Press SPACE to start", cx, float64(t.screenH)*3/4, colornames.Yellow)
	}
}

// OnEnter is called when entering this scene
func (t *Title) OnEnter() {}

// OnExit is called when leaving this scene
func (t *Title) OnExit() {}
