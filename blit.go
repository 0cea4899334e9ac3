package blitfx

import "errors"

var (
	// ErrMissingResource is returned by Blit when the destination is absent
	// or the material has no shader.
	ErrMissingResource = errors.New("missing blit resource")
	// ErrSurfaceMismatch is returned when source and destination use
	// different backends.
	ErrSurfaceMismatch = errors.New("source and destination surfaces use different backends")
	// ErrSelfBlit is returned when source and destination are the same surface.
	ErrSelfBlit = errors.New("source and destination are the same surface")
)

// Surface is a writable 2D pixel buffer a pass can target. It is implemented
// by *RenderTexture (GPU) and *Canvas (CPU).
type Surface interface {
	Width() int
	Height() int

	present() bool
	blit(src Surface, mat *Material) error
}

// Present reports whether s can be drawn to. Nil interfaces, typed nil
// pointers and disposed surfaces are all absent.
func Present(s Surface) bool {
	return s != nil && s.present()
}

// Blit runs a full-screen pass into dst.
//
// Every destination pixel is covered. If src is absent, an opaque white image
// the size of dst is used in its place, so a shader that ignores its input
// still runs once per pixel. A src of a different size is scaled to dst. If
// mat is nil the source is copied as is. With the default BlendCopy the
// previous contents of dst are fully replaced.
func Blit(src, dst Surface, mat *Material) error {
	if !Present(dst) {
		return ErrMissingResource
	}
	if mat != nil && mat.shader == nil {
		return ErrMissingResource
	}
	if !Present(src) {
		src = nil
	} else if src == dst {
		return ErrSelfBlit
	}
	return dst.blit(src, mat)
}
