package renderer

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"opengl-labs/core"
)

// AppConfig configures the frame loop.
type AppConfig struct {
	QuitKeys    []core.Key    // any one held stops the loop
	FrameWindow time.Duration // fps averaging window
	FrameTimeMs float32       // frame time assumed before the first window closes
	Now         func() time.Time
	Logger      *slog.Logger
}

// App drives one window: poll input, run controllers, update and draw every
// drawable, present, and measure the frame rate.
type App struct {
	surface Surface
	device  Device

	controllers []Controller
	drawables   []Drawable
	resources   []Destroyer // acquisition order, drawables included

	quitKeys []core.Key
	clock    *core.FrameClock
	now      func() time.Time
	log      *slog.Logger
	frames   int

	closeOnce sync.Once
}

func NewApp(surface Surface, device Device, cfg AppConfig) *App {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		surface:  surface,
		device:   device,
		quitKeys: cfg.QuitKeys,
		clock:    core.NewFrameClock(now(), cfg.FrameWindow, cfg.FrameTimeMs),
		now:      now,
		log:      logger,
	}
}

// Own hands r to the app for release on Close.
func (a *App) Own(r Destroyer) {
	a.resources = append(a.resources, r)
}

// Add registers a drawable. Drawables are updated and drawn in the order
// they were added, and released with the other resources on Close.
func (a *App) Add(d Drawable) {
	a.drawables = append(a.drawables, d)
	a.resources = append(a.resources, d)
}

func (a *App) AddController(c Controller) {
	a.controllers = append(a.controllers, c)
}

// Clock exposes the frame clock.
func (a *App) Clock() *core.FrameClock { return a.clock }

// Frames returns how many frames have been presented.
func (a *App) Frames() int { return a.frames }

// Run loops until the window is closed or a quit key is held.
func (a *App) Run() {
	a.log.Info("entering main loop", "drawables", len(a.drawables), "controllers", len(a.controllers))
	for {
		a.surface.PollEvents()
		if a.surface.ShouldClose() {
			break
		}
		if key, ok := a.quitPressed(); ok {
			a.log.Debug("quit key pressed", "key", key)
			break
		}
		a.frame()
	}
	a.log.Info("main loop finished", "frames", a.frames)
}

func (a *App) quitPressed() (core.Key, bool) {
	for _, k := range a.quitKeys {
		if a.surface.IsKeyPressed(k) {
			return k, true
		}
	}
	return core.KeyUnknown, false
}

func (a *App) frame() {
	ft := a.clock.FrameTime()
	for _, c := range a.controllers {
		c.Control(a.surface, ft)
	}
	for _, d := range a.drawables {
		d.Update()
	}

	a.device.BeginFrame()
	for _, d := range a.drawables {
		d.Draw()
	}
	a.surface.SwapBuffers()
	a.frames++

	if a.clock.Tick(a.now()) {
		a.surface.SetTitle(fmt.Sprintf("Running at %d fps.", a.clock.FPS()))
		a.log.Debug("frame rate", "fps", a.clock.FPS(), "frame_ms", a.clock.FrameTime())
	}
}

// Close releases every resource in reverse acquisition order, then the
// surface. Later calls do nothing.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		for i := len(a.resources) - 1; i >= 0; i-- {
			a.resources[i].Destroy()
		}
		a.resources = nil
		a.drawables = nil
		a.surface.Destroy()
		a.log.Debug("released graphics resources")
	})
}
