package renderer

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"opengl-labs/core"
	"opengl-labs/scene"
)

// eventLog records calls across fakes so tests can assert ordering.
type eventLog struct {
	events []string
}

func (l *eventLog) add(format string, args ...any) {
	if l != nil {
		l.events = append(l.events, fmt.Sprintf(format, args...))
	}
}

type fakeSurface struct {
	log       *eventLog
	held      map[core.Key]bool
	cursorX   float64
	cursorY   float64
	maxFrames int // ShouldClose turns true after this many polls
	polls     int
	title     string
	destroyed int
}

func newFakeSurface(log *eventLog, maxFrames int) *fakeSurface {
	return &fakeSurface{log: log, held: map[core.Key]bool{}, maxFrames: maxFrames}
}

func (s *fakeSurface) IsKeyPressed(k core.Key) bool { return s.held[k] }
func (s *fakeSurface) CursorPos() (float64, float64) { return s.cursorX, s.cursorY }
func (s *fakeSurface) SetCursorPos(x, y float64) { s.cursorX, s.cursorY = x, y }
func (s *fakeSurface) PollEvents() { s.polls++ }
func (s *fakeSurface) ShouldClose() bool { return s.polls > s.maxFrames }
func (s *fakeSurface) SetTitle(t string) { s.title = t }
func (s *fakeSurface) SwapBuffers() { s.log.add("swap") }
func (s *fakeSurface) Destroy() {
	s.destroyed++
	s.log.add("destroy surface")
}

type fakeDevice struct{ log *eventLog }

func (d *fakeDevice) BeginFrame() { d.log.add("begin") }

type fakeProgram struct {
	name      string
	log       *eventLog
	ints      map[string]int32
	floats    map[string]float32
	vec3s     map[string]mgl32.Vec3
	mat4s     map[string]mgl32.Mat4
	uses      int
	destroyed int
}

func newFakeProgram(name string, log *eventLog) *fakeProgram {
	return &fakeProgram{
		name:   name,
		log:    log,
		ints:   map[string]int32{},
		floats: map[string]float32{},
		vec3s:  map[string]mgl32.Vec3{},
		mat4s:  map[string]mgl32.Mat4{},
	}
}

func (p *fakeProgram) SetInt(n string, v int32) { p.ints[n] = v }
func (p *fakeProgram) SetFloat(n string, v float32) { p.floats[n] = v }
func (p *fakeProgram) SetVec3(n string, v mgl32.Vec3) { p.vec3s[n] = v }
func (p *fakeProgram) SetMat4(n string, m mgl32.Mat4) { p.mat4s[n] = m }
func (p *fakeProgram) Use() { p.uses++; p.log.add("use %s", p.name) }
func (p *fakeProgram) Destroy() {
	p.destroyed++
	p.log.add("destroy %s", p.name)
}

type fakeGeometry struct {
	name      string
	log       *eventLog
	draws     []scene.Primitive
	destroyed int
}

func (g *fakeGeometry) Draw(mode scene.Primitive) {
	g.draws = append(g.draws, mode)
	g.log.add("draw %s %s", g.name, mode)
}

func (g *fakeGeometry) Destroy() {
	g.destroyed++
	g.log.add("destroy %s", g.name)
}

type fakeBinder struct {
	log       *eventLog
	binds     int
	destroyed int
}

func (b *fakeBinder) Bind() { b.binds++; b.log.add("bind material") }
func (b *fakeBinder) Destroy() {
	b.destroyed++
	b.log.add("destroy material")
}

// fakeDrawable logs every lifecycle call under its name.
type fakeDrawable struct {
	name string
	log  *eventLog
}

func (d *fakeDrawable) Update() { d.log.add("update %s", d.name) }
func (d *fakeDrawable) Draw() { d.log.add("draw %s", d.name) }
func (d *fakeDrawable) Destroy() { d.log.add("destroy %s", d.name) }

type fakeController struct{ log *eventLog }

func (c *fakeController) Control(_ Input, ft float32) { c.log.add("control %g", ft) }

func assertVec3Near(t *testing.T, want, got mgl32.Vec3, msgAndArgs ...any) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], 1e-5, msgAndArgs...)
}
