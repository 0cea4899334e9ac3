package blitfx

// Material binds a Shader to its uniform values for one pass. A new Material
// starts with every uniform at its default (zero) value and Blend set to
// BlendCopy.
type Material struct {
	// Blend selects how the pass combines with the destination.
	Blend BlendMode

	shader   *Shader
	uniforms map[string]any
}

// NewMaterial creates a material bound to shader with default parameters.
func NewMaterial(shader *Shader) *Material {
	return &Material{
		shader:   shader,
		uniforms: make(map[string]any),
	}
}

// Shader returns the bound shader.
func (m *Material) Shader() *Shader {
	return m.shader
}

// SetFloat sets a float uniform.
func (m *Material) SetFloat(name string, v float64) {
	m.uniforms[name] = float32(v)
}

// SetFloats sets a float array or vector uniform.
func (m *Material) SetFloats(name string, v ...float64) {
	f := make([]float32, len(v))
	for i, x := range v {
		f[i] = float32(x)
	}
	m.uniforms[name] = f
}

// SetVec2 sets a vec2 uniform.
func (m *Material) SetVec2(name string, v Vec2) {
	m.SetFloats(name, v.X, v.Y)
}

// SetColor sets a vec4 uniform to c, premultiplied to match Ebitengine's
// color convention.
func (m *Material) SetColor(name string, c Color) {
	a := clamp01(c.A)
	m.SetFloats(name, clamp01(c.R)*a, clamp01(c.G)*a, clamp01(c.B)*a, a)
}

// Uniforms is the read-only view of a material handed to a FragmentFunc.
type Uniforms struct {
	// Size is the destination size in pixels.
	Size Vec2

	values map[string]any
}

func (m *Material) view(w, h int) Uniforms {
	return Uniforms{Size: Vec2{X: float64(w), Y: float64(h)}, values: m.uniforms}
}

// Float returns a float uniform, or 0 if unset.
func (u Uniforms) Float(name string) float64 {
	switch v := u.values[name].(type) {
	case float32:
		return float64(v)
	case []float32:
		if len(v) > 0 {
			return float64(v[0])
		}
	}
	return 0
}

// Floats returns an array or vector uniform, or nil if unset.
func (u Uniforms) Floats(name string) []float64 {
	switch v := u.values[name].(type) {
	case float32:
		return []float64{float64(v)}
	case []float32:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out
	}
	return nil
}

// Color returns a vec4 uniform set with SetColor as a straight-alpha Color.
// Unset uniforms return ColorTransparent.
func (u Uniforms) Color(name string) Color {
	f := u.Floats(name)
	if len(f) < 4 {
		return ColorTransparent
	}
	c := Color{R: f[0], G: f[1], B: f[2], A: f[3]}
	if c.A > 0 {
		c.R /= c.A
		c.G /= c.A
		c.B /= c.A
	}
	return c
}
