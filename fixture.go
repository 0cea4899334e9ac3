package blitfx

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// fixtureEntry is one fixture in a JSON fixture file.
type fixtureEntry struct {
	Name   string    `json:"name"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Shader string    `json:"shader,omitempty"`
	Kage   string    `json:"kage,omitempty"`
	Color  []float64 `json:"color,omitempty"`
	Alt    []float64 `json:"alt,omitempty"`
	Cell   int       `json:"cell,omitempty"`
	Output string    `json:"output,omitempty"`
}

// fixtureFile is the top-level JSON structure for a fixture file.
type fixtureFile struct {
	Fixtures []fixtureEntry `json:"fixtures"`
}

// SurfaceFactory allocates the target surface for a fixture.
type SurfaceFactory func(w, h int) Surface

// GPUSurfaces allocates RenderTextures.
func GPUSurfaces(w, h int) Surface { return NewRenderTexture(w, h) }

// CPUSurfaces allocates Canvases.
func CPUSurfaces(w, h int) Surface { return NewCanvas(w, h) }

// Fixture is a configured ShaderWriter plus where its output should go.
type Fixture struct {
	Name   string
	Output string
	Writer *ShaderWriter
}

// LoadFixtures parses a JSON fixture file. Kage paths and outputs are resolved
// relative to baseDir. Each fixture gets its own target from newSurface; none
// are started.
//
//	{"fixtures": [
//	  {"name": "red", "width": 256, "height": 256, "shader": "solid", "color": [1, 0, 0, 1]},
//	  {"name": "custom", "width": 64, "height": 64, "kage": "shaders/wave.kage", "output": "out/wave.png"}
//	]}
func LoadFixtures(jsonData []byte, baseDir string, newSurface SurfaceFactory) ([]*Fixture, error) {
	var file fixtureFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	if len(file.Fixtures) == 0 {
		return nil, fmt.Errorf("parse fixtures: no fixtures")
	}

	fixtures := make([]*Fixture, 0, len(file.Fixtures))
	for i, e := range file.Fixtures {
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("fixture%d", i)
		}
		shader, err := e.shader(baseDir)
		if err != nil {
			return nil, fmt.Errorf("parse fixtures: %s: %w", name, err)
		}
		if e.Width <= 0 || e.Height <= 0 {
			return nil, fmt.Errorf("parse fixtures: %s: invalid size %dx%d", name, e.Width, e.Height)
		}
		out := e.Output
		if out != "" && !filepath.IsAbs(out) {
			out = filepath.Join(baseDir, out)
		}
		fixtures = append(fixtures, &Fixture{
			Name:   name,
			Output: out,
			Writer: NewShaderWriter(newSurface(e.Width, e.Height), shader),
		})
	}
	return fixtures, nil
}

func (e fixtureEntry) shader(baseDir string) (*Shader, error) {
	switch {
	case e.Shader != "" && e.Kage != "":
		return nil, fmt.Errorf("both shader and kage set")
	case e.Kage != "":
		path := e.Kage
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		return LoadShaderFile(path)
	case e.Shader == "":
		return nil, fmt.Errorf("one of shader or kage is required")
	}

	p := BuiltinParams{Color: ColorWhite, Alt: ColorBlack, Cell: 8}
	if e.Color != nil {
		c, err := parseColor(e.Color)
		if err != nil {
			return nil, fmt.Errorf("color: %w", err)
		}
		p.Color = c
	}
	if e.Alt != nil {
		c, err := parseColor(e.Alt)
		if err != nil {
			return nil, fmt.Errorf("alt: %w", err)
		}
		p.Alt = c
	}
	if e.Cell > 0 {
		p.Cell = e.Cell
	}
	s, ok := BuiltinShader(e.Shader, p)
	if !ok {
		return nil, fmt.Errorf("unknown shader %q (want one of %s)", e.Shader, strings.Join(BuiltinShaderNames, ", "))
	}
	return s, nil
}

func parseColor(v []float64) (Color, error) {
	if len(v) != 4 {
		return Color{}, fmt.Errorf("want 4 components, got %d", len(v))
	}
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

// StartAll activates every fixture's writer.
func StartAll(fixtures []*Fixture) {
	for _, f := range fixtures {
		f.Writer.Start()
	}
}
