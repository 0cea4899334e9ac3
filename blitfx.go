package blitfx

import "github.com/hajimehoshi/ebiten/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a pixel is written to a surface.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorWhite is the implicit source color of a blit with no source image.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorBlack is opaque black.
	ColorBlack = Color{0, 0, 0, 1}
	// ColorRed is opaque red.
	ColorRed = Color{1, 0, 0, 1}
	// ColorTransparent is fully transparent black.
	ColorTransparent = Color{}
)

// Vec2 is a 2D vector used for pixel positions and sizes.
type Vec2 struct {
	X, Y float64
}

// BlendMode selects how a pass combines with the destination. The zero value
// is BlendCopy: the destination is fully overwritten.
type BlendMode uint8

const (
	BlendCopy   BlendMode = iota // overwrite destination (no blending)
	BlendNormal                  // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendNormal:
		return ebiten.BlendSourceOver
	case BlendAdd:
		return ebiten.BlendLighter
	default:
		return ebiten.BlendCopy
	}
}

// premultiplied returns the color as premultiplied 8-bit components, rounded
// to nearest.
func (c Color) premultiplied() (r, g, b, a uint8) {
	alpha := clamp01(c.A)
	return toByte(clamp01(c.R) * alpha), toByte(clamp01(c.G) * alpha),
		toByte(clamp01(c.B) * alpha), toByte(alpha)
}

// toRGBA converts a Color to a premultiplied colorRGBA for image.Fill.
func (c Color) toRGBA() colorRGBA {
	r, g, b, a := c.premultiplied()
	return colorRGBA{R: r, G: g, B: b, A: a}
}

// colorRGBA implements the color.Color interface for premultiplied fills.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func toByte(v float64) uint8 {
	return uint8(v*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
