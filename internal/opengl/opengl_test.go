package opengl

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opengl-labs/core"
	"opengl-labs/scene"
)

func TestShaderErrorsCarryInfoLog(t *testing.T) {
	var err error = &ShaderCompileError{Program: "lit", Stage: "fragment", Log: "0:12: 'vec5' : syntax error"}
	var compileErr *ShaderCompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, "fragment", compileErr.Stage)
	assert.Contains(t, err.Error(), `program "lit"`)
	assert.Contains(t, err.Error(), "vec5")

	err = &ShaderLinkError{Program: "unlit", Log: "undefined symbol main"}
	assert.Equal(t, `program "unlit": link failed: undefined symbol main`, err.Error())
}

func TestCleanInfoLog(t *testing.T) {
	assert.Equal(t, "ERROR: 0:1: bad", cleanInfoLog("ERROR: 0:1: bad\n\x00\x00"))
	assert.Equal(t, "", cleanInfoLog("\x00"))
}

func TestReadSourcesReportsMissingFile(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "vertex.glsl")
	require.NoError(t, os.WriteFile(vert, []byte("#version 410 core\n"), 0o644))
	frag := filepath.Join(dir, "fragment.glsl")

	_, _, err := readSources(vert, frag)
	var assetErr *core.AssetLoadError
	require.True(t, errors.As(err, &assetErr))
	assert.Equal(t, "shader", assetErr.Kind)
	assert.Equal(t, frag, assetErr.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	require.NoError(t, os.WriteFile(frag, []byte("void main() {}\n"), 0o644))
	v, f, err := readSources(vert, frag)
	require.NoError(t, err)
	assert.Equal(t, "#version 410 core\n", v)
	assert.Equal(t, "void main() {}\n", f)
}

func TestPrimitiveAndClearMask(t *testing.T) {
	assert.Equal(t, uint32(gl.TRIANGLES), glPrimitive(scene.Triangles))
	assert.Equal(t, uint32(gl.LINES), glPrimitive(scene.Lines))
	assert.Equal(t, uint32(gl.COLOR_BUFFER_BIT), clearMask(false))
	assert.Equal(t, uint32(gl.COLOR_BUFFER_BIT|gl.DEPTH_BUFFER_BIT), clearMask(true))
}

func TestUploadsRejectBadInputBeforeTouchingGL(t *testing.T) {
	_, err := NewGeometryBuffer(&scene.Mesh{Name: "broken", Layout: scene.LayoutPositionColor, Vertices: []float32{1, 2}})
	assert.ErrorContains(t, err, "not a multiple")

	_, err = UploadTexture(nil)
	assert.Error(t, err)
	_, err = UploadTexture(&scene.Texture{Name: "short", Width: 2, Height: 2, Pixels: make([]byte, 4)})
	assert.ErrorContains(t, err, "2x2")

	_, err = LoadMaterial(filepath.Join(t.TempDir(), "crate"), "png")
	var assetErr *core.AssetLoadError
	require.True(t, errors.As(err, &assetErr))
	assert.Equal(t, "texture", assetErr.Kind)
}

type fakeReloadable struct {
	mu      sync.Mutex
	reloads int
	fail    error
}

func (f *fakeReloadable) Name() string { return "lit" }

func (f *fakeReloadable) ReloadFiles(vert, frag string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reloads++
	return f.fail
}

func (f *fakeReloadable) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reloads
}

func TestShaderWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "vertex.glsl")
	frag := filepath.Join(dir, "fragment.glsl")
	other := filepath.Join(dir, "notes.txt")
	for _, p := range []string{vert, frag, other} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}

	w, err := NewShaderWatcher(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer w.Destroy()

	program := &fakeReloadable{}
	require.NoError(t, w.Watch(program, vert, frag))

	w.Update()
	assert.Equal(t, 0, program.count())

	require.NoError(t, os.WriteFile(other, []byte("y"), 0o644))
	require.NoError(t, os.WriteFile(frag, []byte("void main() {}"), 0o644))
	assert.Eventually(t, func() bool {
		w.Update()
		return program.count() > 0
	}, 2*time.Second, 10*time.Millisecond)

	program.fail = &ShaderCompileError{Program: "lit", Stage: "fragment", Log: "bad"}
	before := program.count()
	require.NoError(t, os.WriteFile(vert, []byte("broken"), 0o644))
	assert.Eventually(t, func() bool {
		w.Update()
		return program.count() > before
	}, 2*time.Second, 10*time.Millisecond)

	w.Destroy()
	w.Update()
}
