package title

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/younwookim/invaderers/internal/application/scene"
	"github.com/younwookim/invaderers/internal/application/state"
)

type stubScene struct{}

func (stubScene) Update(scene.Tick) (scene.Scene, error) { return nil, nil }
func (stubScene) Draw(*ebiten.Image)                     {}
func (stubScene) OnEnter()                               {}
func (stubScene) OnExit()                                {}

func TestTitle_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Title)(nil)
}

func TestTitle_StaysWithoutKey(t *testing.T) {
	started := 0
	ti := New("Invaderers", nil, 480, 480, func() scene.Scene {
		started++
		return stubScene{}
	})

	next, err := ti.Update(scene.Tick{DT: 1.0 / 60.0, Frame: 42})

	assert.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, 0, started, "start factory runs only on key press")
	assert.Equal(t, 42, ti.blink)
	assert.Equal(t, state.StateTitle, ti.State())
}

func TestTitle_Controls(t *testing.T) {
	assert.Contains(t, Controls, "Space: fire")
	assert.NotEmpty(t, Controls)
}
