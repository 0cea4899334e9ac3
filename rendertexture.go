package blitfx

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RenderTexture is a GPU-backed offscreen image that passes can target. It is
// owned by the caller; blits only write into it.
type RenderTexture struct {
	image *ebiten.Image
	w, h  int

	// scratch holds a source scaled to this texture's size.
	scratch *ebiten.Image
}

// NewRenderTexture creates an offscreen image of the given size.
func NewRenderTexture(w, h int) *RenderTexture {
	return &RenderTexture{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
	}
}

// Image returns the underlying *ebiten.Image for direct manipulation.
func (rt *RenderTexture) Image() *ebiten.Image {
	return rt.image
}

// Width returns the texture width in pixels.
func (rt *RenderTexture) Width() int {
	return rt.w
}

// Height returns the texture height in pixels.
func (rt *RenderTexture) Height() int {
	return rt.h
}

// Clear fills the texture with transparent black.
func (rt *RenderTexture) Clear() {
	rt.image.Clear()
}

// Fill fills the entire texture with the given color.
func (rt *RenderTexture) Fill(c Color) {
	rt.image.Fill(c.toRGBA())
}

// Resize deallocates the old image and creates a new one at the given dimensions.
func (rt *RenderTexture) Resize(width, height int) {
	if rt.image != nil {
		rt.image.Deallocate()
	}
	rt.disposeScratch()
	rt.image = ebiten.NewImage(width, height)
	rt.w = width
	rt.h = height
}

// Dispose deallocates the underlying image. A disposed RenderTexture is
// treated as absent by Blit and ShaderWriter.
func (rt *RenderTexture) Dispose() {
	if rt.image != nil {
		rt.image.Deallocate()
		rt.image = nil
	}
	rt.disposeScratch()
}

func (rt *RenderTexture) disposeScratch() {
	if rt.scratch != nil {
		rt.scratch.Deallocate()
		rt.scratch = nil
	}
}

func (rt *RenderTexture) present() bool {
	return rt != nil && rt.image != nil
}

func (rt *RenderTexture) blit(src Surface, mat *Material) error {
	var srcImg *ebiten.Image
	switch s := src.(type) {
	case nil:
		srcImg = ensureWhiteSource(rt.w, rt.h)
	case *RenderTexture:
		srcImg = rt.fitSource(s)
	default:
		return fmt.Errorf("blit %T into render texture: %w", src, ErrSurfaceMismatch)
	}

	if mat == nil {
		var op ebiten.DrawImageOptions
		op.Blend = ebiten.BlendCopy
		rt.image.DrawImage(srcImg, &op)
		return nil
	}

	shader, err := mat.shader.ebitenShader()
	if err != nil {
		return err
	}
	var op ebiten.DrawRectShaderOptions
	op.Images[0] = srcImg
	op.Uniforms = mat.uniforms
	op.Blend = mat.Blend.EbitenBlend()
	rt.image.DrawRectShader(rt.w, rt.h, shader, &op)
	return nil
}

// fitSource returns src's image if it already matches this texture's size,
// otherwise a copy scaled into the scratch image. DrawRectShader requires
// every source image to match the rectangle size.
func (rt *RenderTexture) fitSource(src *RenderTexture) *ebiten.Image {
	if src.w == rt.w && src.h == rt.h {
		return src.image
	}
	if rt.scratch == nil {
		rt.scratch = ebiten.NewImage(rt.w, rt.h)
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(rt.w)/float64(src.w), float64(rt.h)/float64(src.h))
	op.Filter = ebiten.FilterLinear
	op.Blend = ebiten.BlendCopy
	rt.scratch.DrawImage(src.image, &op)
	return rt.scratch
}

// whiteSource stands in for an absent source image. It is reallocated
// whenever a blit needs a different size (no sync; blits are single-threaded).
var whiteSource *ebiten.Image

func ensureWhiteSource(w, h int) *ebiten.Image {
	if whiteSource != nil {
		b := whiteSource.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return whiteSource
		}
		whiteSource.Deallocate()
	}
	whiteSource = ebiten.NewImage(w, h)
	whiteSource.Fill(ColorWhite.toRGBA())
	return whiteSource
}
