package blitfx

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrNoKageSource is returned when a shader without Kage source is run on
	// a GPU surface.
	ErrNoKageSource = errors.New("shader has no kage source")
	// ErrNoReference is returned when a shader without a CPU reference is run
	// on a Canvas.
	ErrNoReference = errors.New("shader has no cpu reference")
)

// FragmentFunc is the CPU reference of a shader. It is evaluated once per
// destination pixel: dst is the pixel center in destination coordinates and
// src is the straight-alpha source sample at that pixel (ColorWhite when the
// blit has no source). It returns a straight-alpha color.
type FragmentFunc func(dst Vec2, src Color, u Uniforms) Color

// Shader is a handle to a pixel program. It carries Kage source for GPU
// surfaces and, optionally, an equivalent FragmentFunc for Canvas surfaces.
// A Shader is borrowed by materials; it is never modified by a blit.
type Shader struct {
	Name string

	src      []byte
	ref      FragmentFunc
	compiled *ebiten.Shader
	builtin  bool
}

// NewShader creates a shader from Kage source and an optional CPU reference.
// Either may be nil, but a shader with neither can not be run anywhere.
// Compilation of the Kage source is deferred until first GPU use; call
// Compile to surface errors early.
func NewShader(name string, kage []byte, ref FragmentFunc) *Shader {
	return &Shader{Name: name, src: kage, ref: ref}
}

// LoadShaderFile reads a Kage source file. The shader is named after the file
// and has no CPU reference.
func LoadShaderFile(path string) (*Shader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load shader: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return NewShader(name, data, nil), nil
}

// Source returns the Kage source, or nil.
func (s *Shader) Source() []byte {
	return s.src
}

// HasReference reports whether the shader can run on a Canvas.
func (s *Shader) HasReference() bool {
	return s.ref != nil
}

// Compile compiles the Kage source if it has not been compiled yet.
func (s *Shader) Compile() error {
	_, err := s.ebitenShader()
	return err
}

// Dispose releases the compiled GPU shader. The Shader may be compiled again
// on next use.
func (s *Shader) Dispose() {
	if s.compiled != nil {
		s.compiled.Deallocate()
		s.compiled = nil
	}
}

// ebitenShader lazily compiles the Kage source (no sync.Once; blits are
// single-threaded).
func (s *Shader) ebitenShader() (*ebiten.Shader, error) {
	if s.compiled != nil {
		return s.compiled, nil
	}
	if len(s.src) == 0 {
		return nil, fmt.Errorf("shader %q: %w", s.Name, ErrNoKageSource)
	}
	c, err := ebiten.NewShader(s.src)
	if err != nil {
		if s.builtin {
			panic("blitfx: failed to compile built-in " + s.Name + " shader: " + err.Error())
		}
		return nil, fmt.Errorf("compile shader %q: %w", s.Name, err)
	}
	s.compiled = c
	return c, nil
}

// --- Built-in shaders ---
// All Kage sources use //kage:unit pixels. Ebitengine expects premultiplied
// output, so constant colors are premultiplied when the source is generated.

const kageHeader = "//kage:unit pixels\npackage main\n\n"

// SolidColorShader returns a shader that writes c to every pixel.
func SolidColorShader(c Color) *Shader {
	src := kageHeader + "func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {\n" +
		"\treturn " + kageVec4(c) + "\n}\n"
	s := NewShader("solid", []byte(src), func(Vec2, Color, Uniforms) Color {
		return c
	})
	s.builtin = true
	return s
}

const gradientShaderSrc = kageHeader + `func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	pos := dstPos.xy - imageDstOrigin()
	size := imageDstSize()
	return vec4(pos.x/size.x, pos.y/size.y, 0, 1)
}
`

// GradientShader returns a shader whose red channel follows x/width and green
// channel follows y/height, sampled at pixel centers.
func GradientShader() *Shader {
	s := NewShader("gradient", []byte(gradientShaderSrc), func(dst Vec2, _ Color, u Uniforms) Color {
		if u.Size.X == 0 || u.Size.Y == 0 {
			return ColorBlack
		}
		return Color{R: dst.X / u.Size.X, G: dst.Y / u.Size.Y, A: 1}
	})
	s.builtin = true
	return s
}

// CheckerShader returns a shader that tiles cell-sized squares alternating
// between a (at the origin) and b. Cells smaller than one pixel are clamped.
func CheckerShader(cell int, a, b Color) *Shader {
	if cell < 1 {
		cell = 1
	}
	size := float64(cell)
	src := kageHeader + "func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {\n" +
		"\tp := floor((dstPos.xy - imageDstOrigin()) / " + kageFloat(size) + ")\n" +
		"\tif mod(p.x+p.y, 2) < 1 {\n" +
		"\t\treturn " + kageVec4(a) + "\n" +
		"\t}\n" +
		"\treturn " + kageVec4(b) + "\n}\n"
	s := NewShader("checker", []byte(src), func(dst Vec2, _ Color, _ Uniforms) Color {
		px := math.Floor(dst.X / size)
		py := math.Floor(dst.Y / size)
		if math.Mod(px+py, 2) < 1 {
			return a
		}
		return b
	})
	s.builtin = true
	return s
}

const passthroughShaderSrc = kageHeader + `func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	return imageSrc0At(srcPos)
}
`

// PassthroughShader returns a shader that outputs its source sample. With no
// source image the output is opaque white.
func PassthroughShader() *Shader {
	s := NewShader("passthrough", []byte(passthroughShaderSrc), func(_ Vec2, src Color, _ Uniforms) Color {
		return src
	})
	s.builtin = true
	return s
}

// BuiltinParams configures BuiltinShader. Fields a shader does not use are
// ignored.
type BuiltinParams struct {
	// Color is the solid color, or the first checker color.
	Color Color
	// Alt is the second checker color.
	Alt Color
	// Cell is the checker cell size in pixels.
	Cell int
}

// BuiltinShaderNames lists the names accepted by BuiltinShader.
var BuiltinShaderNames = []string{"solid", "gradient", "checker", "passthrough"}

// BuiltinShader returns the named built-in shader. It reports false for an
// unknown name.
func BuiltinShader(name string, p BuiltinParams) (*Shader, bool) {
	switch name {
	case "solid":
		return SolidColorShader(p.Color), true
	case "gradient":
		return GradientShader(), true
	case "checker":
		return CheckerShader(p.Cell, p.Color, p.Alt), true
	case "passthrough":
		return PassthroughShader(), true
	}
	return nil, false
}

// kageVec4 formats c as a premultiplied Kage vec4 literal.
func kageVec4(c Color) string {
	a := clamp01(c.A)
	return "vec4(" + kageFloat(clamp01(c.R)*a) + ", " + kageFloat(clamp01(c.G)*a) + ", " +
		kageFloat(clamp01(c.B)*a) + ", " + kageFloat(a) + ")"
}

func kageFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
