package renderer

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opengl-labs/core"
	"opengl-labs/scene"
)

// steppingClock returns a Now func advancing by step on every call.
func steppingClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		now := t
		t = t.Add(step)
		return now
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAppHoldingForwardWalksAlongX(t *testing.T) {
	const (
		frames    = 100
		frameMs   = 10
		moveSpeed = 0.001 // units per ms
	)
	surface := newFakeSurface(nil, frames)
	surface.held[core.KeyW] = true
	surface.cursorX, surface.cursorY = 640, 400

	app := NewApp(surface, &fakeDevice{}, AppConfig{
		FrameTimeMs: frameMs,
		Now:         steppingClock(frameMs * time.Millisecond),
		Logger:      quietLogger(),
	})
	player := scene.NewPlayer(mgl32.Vec3{0, 0, 1.2})
	rig := NewCameraRig(player, 1280, 800, moveSpeed, 0.05)
	app.AddController(rig)
	app.Add(rig)

	app.Run()

	require.Equal(t, frames, app.Frames())
	elapsedMs := float32(frames * frameMs)
	assert.InDelta(t, moveSpeed*elapsedMs, player.Position.X(), 1e-4)
	assert.Equal(t, float32(0), player.Position.Y())
	assert.Equal(t, float32(1.2), player.Position.Z())
	assert.Equal(t, float32(0), player.Theta)
	assert.Equal(t, float32(0), player.Phi)
}

func TestAppFrameOrder(t *testing.T) {
	log := &eventLog{}
	surface := newFakeSurface(log, 1)
	app := NewApp(surface, &fakeDevice{log: log}, AppConfig{
		FrameTimeMs: 16,
		Now:         steppingClock(time.Millisecond),
		Logger:      quietLogger(),
	})
	app.AddController(&fakeController{log: log})
	app.Add(&fakeDrawable{name: "crate", log: log})
	app.Add(&fakeDrawable{name: "marker", log: log})

	app.Run()

	assert.Equal(t, []string{
		"control 16",
		"update crate",
		"update marker",
		"begin",
		"draw crate",
		"draw marker",
		"swap",
	}, log.events)
}

func TestAppUpdatesTitleOncePerWindow(t *testing.T) {
	surface := newFakeSurface(nil, 150)
	app := NewApp(surface, &fakeDevice{}, AppConfig{
		FrameTimeMs: 1000.0 / 60,
		Now:         steppingClock(10 * time.Millisecond),
		Logger:      quietLogger(),
	})

	app.Run()

	assert.Equal(t, "Running at 100 fps.", surface.title)
	assert.Equal(t, 100, app.Clock().FPS())
	assert.Equal(t, float32(10), app.Clock().FrameTime())
}

func TestAppStopsOnAnyQuitKey(t *testing.T) {
	for _, key := range []core.Key{core.KeyEscape, core.KeyQ} {
		t.Run(key.String(), func(t *testing.T) {
			surface := newFakeSurface(nil, 1000)
			surface.held[key] = true
			app := NewApp(surface, &fakeDevice{}, AppConfig{
				QuitKeys: []core.Key{core.KeyEscape, core.KeyQ},
				Logger:   quietLogger(),
			})

			app.Run()

			assert.Equal(t, 0, app.Frames())
			assert.Equal(t, 1, surface.polls)
		})
	}
}

func TestAppIgnoresOtherKeys(t *testing.T) {
	surface := newFakeSurface(nil, 3)
	surface.held[core.KeyW] = true
	app := NewApp(surface, &fakeDevice{}, AppConfig{
		QuitKeys: []core.Key{core.KeyEscape, core.KeyQ},
		Logger:   quietLogger(),
	})

	app.Run()

	assert.Equal(t, 3, app.Frames())
}

func TestAppCloseReleasesInReverseOrderOnce(t *testing.T) {
	log := &eventLog{}
	surface := newFakeSurface(log, 0)
	app := NewApp(surface, &fakeDevice{log: log}, AppConfig{Logger: quietLogger()})

	lit := newFakeProgram("lit", log)
	unlit := newFakeProgram("unlit", log)
	material := &fakeBinder{log: log}
	app.Own(lit)
	app.Own(unlit)
	app.Own(material)
	app.Add(&fakeDrawable{name: "crate", log: log})
	app.Add(&fakeDrawable{name: "light", log: log})

	app.Close()
	app.Close()

	assert.Equal(t, []string{
		"destroy light",
		"destroy crate",
		"destroy material",
		"destroy unlit",
		"destroy lit",
		"destroy surface",
	}, log.events)
	assert.Equal(t, 1, surface.destroyed)
	assert.Equal(t, 1, lit.destroyed)
}

func TestAppCloseWithoutRun(t *testing.T) {
	surface := newFakeSurface(nil, 0)
	app := NewApp(surface, &fakeDevice{}, AppConfig{Logger: quietLogger()})
	app.Close()
	assert.Equal(t, 1, surface.destroyed)
}
