package core

import "fmt"

// AssetLoadError reports a shader or texture file that could not be read or
// decoded. It is fatal at startup.
type AssetLoadError struct {
	Kind string // "shader" or "texture"
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("load %s %q: %v", e.Kind, e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

// GraphicsContextError reports a failure to create the window, the GL
// context, or to load the GL entry points.
type GraphicsContextError struct {
	Op  string
	Err error
}

func (e *GraphicsContextError) Error() string {
	return fmt.Sprintf("graphics context: %s: %v", e.Op, e.Err)
}

func (e *GraphicsContextError) Unwrap() error { return e.Err }
