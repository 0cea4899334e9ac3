package blitfx

import (
	"errors"
	"testing"
)

func TestNewRenderTextureDimensions(t *testing.T) {
	rt := NewRenderTexture(128, 64)
	defer rt.Dispose()

	if rt.Width() != 128 {
		t.Errorf("Width = %d, want 128", rt.Width())
	}
	if rt.Height() != 64 {
		t.Errorf("Height = %d, want 64", rt.Height())
	}
	if rt.Image() == nil {
		t.Error("Image() should not be nil")
	}
	if !Present(rt) {
		t.Error("new render texture should be present")
	}
}

func TestRenderTextureResize(t *testing.T) {
	rt := NewRenderTexture(16, 16)
	defer rt.Dispose()
	old := rt.Image()

	rt.Resize(32, 8)
	if rt.Width() != 32 || rt.Height() != 8 {
		t.Errorf("size = %dx%d, want 32x8", rt.Width(), rt.Height())
	}
	if rt.Image() == old {
		t.Error("Resize should allocate a new image")
	}
	b := rt.Image().Bounds()
	if b.Dx() != 32 || b.Dy() != 8 {
		t.Errorf("image bounds = %v, want 32x8", b)
	}
}

func TestRenderTextureDispose(t *testing.T) {
	rt := NewRenderTexture(8, 8)
	rt.Dispose()
	if rt.Image() != nil {
		t.Error("Image should be nil after Dispose")
	}
	if Present(rt) {
		t.Error("disposed render texture should not be present")
	}
	rt.Dispose() // second call is a no-op
}

func TestShaderWriterSkipsDisposedRenderTexture(t *testing.T) {
	rt := NewRenderTexture(8, 8)
	rt.Dispose()
	w := NewShaderWriter(rt, SolidColorShader(ColorRed))
	w.Start()
	if w.Passes() != 0 {
		t.Errorf("Passes = %d, want 0", w.Passes())
	}
}

func TestRenderTextureRejectsCanvasSource(t *testing.T) {
	rt := NewRenderTexture(4, 4)
	defer rt.Dispose()

	if err := Blit(NewCanvas(4, 4), rt, nil); !errors.Is(err, ErrSurfaceMismatch) {
		t.Errorf("err = %v, want ErrSurfaceMismatch", err)
	}
}
