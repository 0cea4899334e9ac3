package blitfx

import (
	"errors"
	"time"
)

// RefreshCommand is the name under which hosts expose ShaderWriter.Refresh as
// a manual command.
const RefreshCommand = "Update RenderTexture"

// ShaderWriter writes the full-screen output of a shader into a target
// surface. It runs once when its owner activates it (Start) and again whenever
// Refresh is invoked.
//
// Target and Shader are assigned by the owner before activation. If either is
// absent the pass is skipped silently; the untouched target makes the failure
// obvious to whoever inspects it.
type ShaderWriter struct {
	// Target receives the shader output. It is owned by the caller.
	Target Surface
	// Shader is the program run over every pixel of Target.
	Shader *Shader
	// Debug logs the duration of each completed pass to stderr.
	Debug bool

	started bool
	passes  int
}

// NewShaderWriter creates a writer for target and shader. Either may be nil.
func NewShaderWriter(target Surface, shader *Shader) *ShaderWriter {
	return &ShaderWriter{Target: target, Shader: shader}
}

// Start runs the pass the first time it is called. Later calls do nothing;
// use Refresh to run the pass again.
func (w *ShaderWriter) Start() {
	if w.started {
		return
	}
	w.started = true
	w.Refresh()
}

// Started reports whether Start has been called.
func (w *ShaderWriter) Started() bool {
	return w.started
}

// Refresh runs the pass: a fresh Material with default parameters is bound to
// Shader and blitted, with no source image, over the whole of Target.
// Failures other than a missing resource are logged, never returned.
func (w *ShaderWriter) Refresh() {
	if !Present(w.Target) || w.Shader == nil {
		return
	}

	start := time.Now()
	if err := Blit(nil, w.Target, NewMaterial(w.Shader)); err != nil {
		if !errors.Is(err, ErrMissingResource) {
			logf("%s: %v", RefreshCommand, err)
		}
		return
	}
	w.passes++

	if w.Debug {
		logf("%s: shader %q into %dx%d in %v",
			RefreshCommand, w.Shader.Name, w.Target.Width(), w.Target.Height(), time.Since(start))
	}
}

// Passes returns the number of passes that have completed.
func (w *ShaderWriter) Passes() int {
	return w.passes
}
