package opengl

import (
	"fmt"
	"os"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"opengl-labs/core"
)

// ShaderCompileError carries the driver's info log for a stage that failed
// to compile.
type ShaderCompileError struct {
	Program string
	Stage   string // "vertex" or "fragment"
	Log     string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("program %q: %s shader compile failed: %s", e.Program, e.Stage, e.Log)
}

// ShaderLinkError carries the driver's info log for a failed link.
type ShaderLinkError struct {
	Program string
	Log     string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("program %q: link failed: %s", e.Program, e.Log)
}

// Program is a linked vertex+fragment program. Values written through the
// setters are remembered and replayed after Reload.
type Program struct {
	name      string
	id        uint32
	locations map[string]int32
	values    map[string]any
	order     []string
}

// NewProgram compiles and links a program from GLSL sources.
func NewProgram(name, vertSrc, fragSrc string) (*Program, error) {
	id, err := linkProgram(name, vertSrc, fragSrc)
	if err != nil {
		return nil, err
	}
	return &Program{
		name:      name,
		id:        id,
		locations: make(map[string]int32),
		values:    make(map[string]any),
	}, nil
}

// LoadProgram reads both shader files before compiling anything.
func LoadProgram(name, vertPath, fragPath string) (*Program, error) {
	vert, frag, err := readSources(vertPath, fragPath)
	if err != nil {
		return nil, err
	}
	return NewProgram(name, vert, frag)
}

func (p *Program) Name() string { return p.name }
func (p *Program) ID() uint32 { return p.id }

func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// UniformLocation returns -1 when the program has no active uniform name.
func (p *Program) UniformLocation(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *Program) SetInt(name string, v int32) { p.set(name, v) }
func (p *Program) SetFloat(name string, v float32) { p.set(name, v) }
func (p *Program) SetVec3(name string, v mgl32.Vec3) { p.set(name, v) }
func (p *Program) SetMat4(name string, m mgl32.Mat4) { p.set(name, m) }

func (p *Program) set(name string, v any) {
	if _, ok := p.values[name]; !ok {
		p.order = append(p.order, name)
	}
	p.values[name] = v
	p.apply(name, v)
}

func (p *Program) apply(name string, v any) {
	if p.id == 0 {
		return
	}
	gl.UseProgram(p.id)
	loc := p.UniformLocation(name)
	if loc < 0 {
		return
	}
	switch v := v.(type) {
	case int32:
		gl.Uniform1i(loc, v)
	case float32:
		gl.Uniform1f(loc, v)
	case mgl32.Vec3:
		gl.Uniform3f(loc, v[0], v[1], v[2])
	case mgl32.Mat4:
		gl.UniformMatrix4fv(loc, 1, false, &v[0])
	}
}

// Reload relinks from new sources. On failure the old program stays in
// use and the error is returned.
func (p *Program) Reload(vertSrc, fragSrc string) error {
	id, err := linkProgram(p.name, vertSrc, fragSrc)
	if err != nil {
		return err
	}
	if p.id != 0 {
		gl.DeleteProgram(p.id)
	}
	p.id = id
	p.locations = make(map[string]int32)
	for _, name := range p.order {
		p.apply(name, p.values[name])
	}
	return nil
}

// ReloadFiles reads both files and calls Reload.
func (p *Program) ReloadFiles(vertPath, fragPath string) error {
	vert, frag, err := readSources(vertPath, fragPath)
	if err != nil {
		return err
	}
	return p.Reload(vert, frag)
}

func (p *Program) Destroy() {
	if p.id == 0 {
		return
	}
	gl.DeleteProgram(p.id)
	p.id = 0
}

// ── Shader helpers ────────────────────────────────────────────────────────────

func readSources(vertPath, fragPath string) (vert, frag string, err error) {
	if vert, err = readSource(vertPath); err != nil {
		return "", "", err
	}
	if frag, err = readSource(fragPath); err != nil {
		return "", "", err
	}
	return vert, frag, nil
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &core.AssetLoadError{Kind: "shader", Path: path, Err: err}
	}
	return string(data), nil
}

func linkProgram(name, vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(name, "vertex", vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vert)
	frag, err := compileShader(name, "fragment", fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(frag)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, &ShaderLinkError{Program: name, Log: cleanInfoLog(log)}
	}
	return prog, nil
}

func compileShader(program, stage, src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, &ShaderCompileError{Program: program, Stage: stage, Log: cleanInfoLog(log)}
	}
	return shader, nil
}

func cleanInfoLog(log string) string {
	return strings.TrimSpace(strings.TrimRight(log, "\x00"))
}
