package blitfx

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Canvas is a CPU-backed surface holding premultiplied RGBA pixels, the same
// layout Ebitengine uses. Passes run the shader's FragmentFunc once per pixel,
// so results are deterministic and readable without a running game.
type Canvas struct {
	img *image.RGBA

	// scratch holds a source scaled to this canvas's size.
	scratch *image.RGBA
}

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	if c.img == nil {
		return 0
	}
	return c.img.Rect.Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	if c.img == nil {
		return 0
	}
	return c.img.Rect.Dy()
}

// RGBA returns the backing image. Its pixels are premultiplied.
func (c *Canvas) RGBA() *image.RGBA {
	return c.img
}

// At returns the straight-alpha color at (x, y). Out-of-range coordinates
// return ColorTransparent.
func (c *Canvas) At(x, y int) Color {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return ColorTransparent
	}
	return straight(c.img.RGBAAt(x, y))
}

// Clear fills the canvas with transparent black.
func (c *Canvas) Clear() {
	clear(c.img.Pix)
}

// Fill fills the entire canvas with the given color.
func (c *Canvas) Fill(col Color) {
	r, g, b, a := col.premultiplied()
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
	}
}

// Dispose releases the pixel buffer. A disposed Canvas is treated as absent.
func (c *Canvas) Dispose() {
	c.img = nil
	c.scratch = nil
}

func (c *Canvas) present() bool {
	return c != nil && c.img != nil
}

func (c *Canvas) blit(src Surface, mat *Material) error {
	var srcImg *image.RGBA
	switch s := src.(type) {
	case nil:
	case *Canvas:
		srcImg = c.fitSource(s)
	default:
		return fmt.Errorf("blit %T into canvas: %w", src, ErrSurfaceMismatch)
	}

	var (
		ref   FragmentFunc
		u     Uniforms
		blend = BlendCopy
	)
	w, h := c.Width(), c.Height()
	if mat != nil {
		ref = mat.shader.ref
		if ref == nil {
			return fmt.Errorf("shader %q: %w", mat.shader.Name, ErrNoReference)
		}
		u = mat.view(w, h)
		blend = mat.Blend
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			in := ColorWhite
			if srcImg != nil {
				in = straight(srcImg.RGBAAt(x, y))
			}
			out := in
			if ref != nil {
				out = ref(Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}, in, u)
			}
			c.write(x, y, out, blend)
		}
	}
	return nil
}

// fitSource returns src's pixels if they already match this canvas's size,
// otherwise a copy scaled into the scratch buffer.
func (c *Canvas) fitSource(src *Canvas) *image.RGBA {
	if src.img.Rect.Size() == c.img.Rect.Size() {
		return src.img
	}
	if c.scratch == nil || c.scratch.Rect != c.img.Rect {
		c.scratch = image.NewRGBA(c.img.Rect)
	}
	draw.ApproxBiLinear.Scale(c.scratch, c.scratch.Rect, src.img, src.img.Rect, draw.Src, nil)
	return c.scratch
}

func (c *Canvas) write(x, y int, col Color, blend BlendMode) {
	r, g, b, a := col.premultiplied()
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	switch blend {
	case BlendNormal:
		inv := 255 - uint32(a)
		p[0] = r + uint8((uint32(p[0])*inv+127)/255)
		p[1] = g + uint8((uint32(p[1])*inv+127)/255)
		p[2] = b + uint8((uint32(p[2])*inv+127)/255)
		p[3] = a + uint8((uint32(p[3])*inv+127)/255)
	case BlendAdd:
		p[0] = addSat(p[0], r)
		p[1] = addSat(p[1], g)
		p[2] = addSat(p[2], b)
		p[3] = addSat(p[3], a)
	default:
		p[0], p[1], p[2], p[3] = r, g, b, a
	}
}

func addSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// straight converts a premultiplied pixel to a straight-alpha Color.
func straight(p color.RGBA) Color {
	if p.A == 0 {
		return ColorTransparent
	}
	a := float64(p.A)
	return Color{
		R: float64(p.R) / a,
		G: float64(p.G) / a,
		B: float64(p.B) / a,
		A: a / 255,
	}
}
