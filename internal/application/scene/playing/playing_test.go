package playing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/locomotion/internal/application/replay"
	"github.com/younwookim/locomotion/internal/application/state"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// walkForward holds W
type walkForward struct{}

func (walkForward) Axis() mgl64.Vec2           { return mgl64.Vec2{0, 1} }
func (walkForward) Held(entity.Button) bool    { return false }
func (walkForward) Pressed(entity.Button) bool { return false }

// createTestConfig creates a flat arena with the default tuning
func createTestConfig() *config.GameConfig {
	return &config.GameConfig{
		Controller: config.Default(),
		Arena: &config.ArenaConfig{
			ID:      "flat",
			Gravity: 9.81,
			Drag:    8,
			Boxes: []config.BoxConfig{
				{Name: "ground", Min: [3]float64{-50, -1, -50}, Max: [3]float64{50, 0, 50}},
			},
		},
	}
}

func TestNew(t *testing.T) {
	p, err := New(createTestConfig(), Options{Input: walkForward{}})
	require.NoError(t, err)

	assert.Equal(t, state.StatePlaying, p.State())
	assert.NotNil(t, p.Session())
}

func TestPlaying_UpdateAdvancesSession(t *testing.T) {
	p, err := New(createTestConfig(), Options{Input: walkForward{}})
	require.NoError(t, err)

	for i := 0; i < 60; i++ {
		next, err := p.Update(1.0 / 60.0)
		require.NoError(t, err)
		assert.Nil(t, next)
	}

	assert.Equal(t, 60, p.Session().Frames())
	assert.Greater(t, p.Session().Body().Position().Z(), 1.0, "character walked forward")
}

func TestPlaying_RecordsAndSavesOnExit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	p, err := New(createTestConfig(), Options{Input: walkForward{}, RecordPath: path})
	require.NoError(t, err)

	for i := 0; i < 30; i++ {
		_, err := p.Update(1.0 / 60.0)
		require.NoError(t, err)
	}
	p.OnExit()

	_, err = os.Stat(path)
	require.NoError(t, err)

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 30)
	assert.Equal(t, "flat", data.Arena)
	assert.NotEmpty(t, data.Checksum)
}

func TestPlaying_ReplayFinishes(t *testing.T) {
	data := replay.CreateTestReplayData(10, replay.FrameInput{Y: 1})
	p, err := New(createTestConfig(), Options{Replay: &data})
	require.NoError(t, err)
	assert.Equal(t, state.StateReplaying, p.State())

	for i := 0; i < 11; i++ {
		_, err := p.Update(1.0 / 60.0)
		require.NoError(t, err)
	}

	assert.Equal(t, state.StateFinished, p.State())
	assert.Equal(t, 10, p.Session().Frames())

	// Finished scenes stop advancing
	_, err = p.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Session().Frames())
}

func TestPlaying_NoRecordingWithoutPath(t *testing.T) {
	p, err := New(createTestConfig(), Options{Input: walkForward{}})
	require.NoError(t, err)

	_, err = p.Update(1.0 / 60.0)
	require.NoError(t, err)

	assert.Nil(t, p.recorder)
	p.OnExit()
}

func TestPlaying_ToScreen(t *testing.T) {
	p, err := New(createTestConfig(), Options{Input: walkForward{}})
	require.NoError(t, err)

	x, y := p.toScreen(0, 0, 0, 0)
	assert.Equal(t, float32(p.screenW)/2, x)
	assert.Equal(t, float32(p.screenH)/2, y)

	_, y = p.toScreen(0, 0, 0, 1)
	assert.Less(t, y, float32(p.screenH)/2, "forward is up the screen")
}

func TestPlaying_HUDShowsInputAndState(t *testing.T) {
	p, err := New(createTestConfig(), Options{Input: walkForward{}})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := p.Update(1.0 / 60.0)
		require.NoError(t, err)
	}

	hud := p.hudText()
	assert.Contains(t, hud, "input (0.00, 1.00) |1.00| sprint=false")
	assert.Contains(t, hud, "Grounded Walk")
	assert.Contains(t, hud, "[IsWalking]")
}
