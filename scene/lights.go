package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights is the capacity of the shader's lights[] array.
const MaxLights = 8

// ErrLightCapacity is returned by Register once every slot is taken.
var ErrLightCapacity = errors.New("light array is full")

// LightSlot is the CPU mirror of one element of the shader's lights[] array.
type LightSlot struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Strength float32
	Enabled  bool
}

// LightArray is a bounded registry of point-light slots backed by a
// fixed-size uniform array in one shader program.
type LightArray struct {
	writer UniformWriter
	slots  [MaxLights]LightSlot
	next   int
}

// NewLightArray returns a registry writing to w. Call Reset before the
// first light registers.
func NewLightArray(w UniformWriter) *LightArray {
	return &LightArray{writer: w}
}

// Reset disables every slot in the shader so unused slots are inert.
// Registrations are kept.
func (a *LightArray) Reset() {
	for i := range a.slots {
		a.slots[i] = LightSlot{}
		a.writer.SetInt(uniformName(i, "enabled"), 0)
	}
}

// Register reserves the next free slot.
func (a *LightArray) Register() (int, error) {
	if a.next >= MaxLights {
		return -1, fmt.Errorf("register light %d: %w", a.next+1, ErrLightCapacity)
	}
	slot := a.next
	a.next++
	return slot, nil
}

// Registered returns how many slots have been handed out.
func (a *LightArray) Registered() int { return a.next }

// Set pushes s to slot i and marks it enabled. Only slot i changes.
func (a *LightArray) Set(i int, s LightSlot) {
	if i < 0 || i >= a.next {
		return
	}
	s.Enabled = true
	a.slots[i] = s
	a.writer.SetVec3(uniformName(i, "pos"), s.Position)
	a.writer.SetVec3(uniformName(i, "color"), s.Color)
	a.writer.SetFloat(uniformName(i, "strength"), s.Strength)
	a.writer.SetInt(uniformName(i, "enabled"), 1)
}

// Slot returns the last state pushed to slot i.
func (a *LightArray) Slot(i int) LightSlot {
	if i < 0 || i >= MaxLights {
		return LightSlot{}
	}
	return a.slots[i]
}

func uniformName(i int, field string) string {
	return fmt.Sprintf("lights[%d].%s", i, field)
}
