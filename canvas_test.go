package blitfx

import (
	"errors"
	"testing"
)

func TestNewCanvasDimensions(t *testing.T) {
	c := NewCanvas(128, 64)
	if c.Width() != 128 {
		t.Errorf("Width = %d, want 128", c.Width())
	}
	if c.Height() != 64 {
		t.Errorf("Height = %d, want 64", c.Height())
	}
	if got := c.At(0, 0); got != ColorTransparent {
		t.Errorf("new canvas pixel = %+v, want transparent", got)
	}
}

func TestCanvasFillAndClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Fill(ColorRed)
	if got := c.At(3, 3); got != ColorRed {
		t.Errorf("At(3,3) after Fill = %+v, want red", got)
	}
	c.Clear()
	for i, v := range c.RGBA().Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %d after Clear, want 0", i, v)
		}
	}
}

func TestCanvasAtOutOfRange(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Fill(ColorWhite)
	if got := c.At(5, 0); got != ColorTransparent {
		t.Errorf("At(5,0) = %+v, want transparent", got)
	}
}

func TestCanvasFillPremultiplies(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Fill(Color{R: 1, G: 0, B: 0, A: 0.5})
	p := c.RGBA().RGBAAt(0, 0)
	if p.R != 128 || p.G != 0 || p.B != 0 || p.A != 128 {
		t.Errorf("pixel = %v, want {128 0 0 128}", p)
	}
}

func TestCanvasBlitNoSourceNoMaterialIsWhite(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Fill(ColorBlack)
	if err := Blit(nil, c, nil); err != nil {
		t.Fatalf("Blit: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := c.At(x, y); got != ColorWhite {
				t.Fatalf("At(%d,%d) = %+v, want white", x, y, got)
			}
		}
	}
}

func TestCanvasPassthroughSeesWhiteWithoutSource(t *testing.T) {
	c := NewCanvas(2, 2)
	if err := Blit(nil, c, NewMaterial(PassthroughShader())); err != nil {
		t.Fatalf("Blit: %v", err)
	}
	if got := c.At(1, 1); got != ColorWhite {
		t.Errorf("At(1,1) = %+v, want white", got)
	}
}

func TestCanvasBlitCopiesSource(t *testing.T) {
	src := NewCanvas(4, 4)
	src.Fill(ColorRed)
	dst := NewCanvas(4, 4)
	dst.Fill(ColorWhite)

	if err := Blit(src, dst, NewMaterial(PassthroughShader())); err != nil {
		t.Fatalf("Blit: %v", err)
	}
	if got := dst.At(2, 2); got != ColorRed {
		t.Errorf("At(2,2) = %+v, want red", got)
	}
}

func TestCanvasBlitScalesSource(t *testing.T) {
	src := NewCanvas(2, 2)
	src.Fill(ColorRed)
	dst := NewCanvas(8, 8)

	if err := Blit(src, dst, nil); err != nil {
		t.Fatalf("Blit: %v", err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			p := dst.RGBA().RGBAAt(x, y)
			if p.R < 254 || p.G != 0 || p.B != 0 || p.A < 254 {
				t.Fatalf("pixel (%d,%d) = %v, want red", x, y, p)
			}
		}
	}
}

func TestCanvasBlendNormal(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Fill(Color{B: 1, A: 1})
	m := NewMaterial(SolidColorShader(Color{R: 1, A: 0.5}))
	m.Blend = BlendNormal
	if err := Blit(nil, c, m); err != nil {
		t.Fatalf("Blit: %v", err)
	}
	p := c.RGBA().RGBAAt(0, 0)
	if p.R != 128 || p.G != 0 || p.B != 127 || p.A != 255 {
		t.Errorf("pixel = %v, want {128 0 127 255}", p)
	}
}

func TestCanvasBlendAddSaturates(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Fill(Color{R: 0.8, G: 0.2, A: 1})
	m := NewMaterial(SolidColorShader(Color{R: 0.8, G: 0.2, A: 1}))
	m.Blend = BlendAdd
	if err := Blit(nil, c, m); err != nil {
		t.Fatalf("Blit: %v", err)
	}
	p := c.RGBA().RGBAAt(0, 0)
	if p.R != 255 || p.G != 102 || p.A != 255 {
		t.Errorf("pixel = %v, want {255 102 0 255}", p)
	}
}

func TestCanvasBlitRequiresReference(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Fill(ColorBlack)
	err := Blit(nil, c, NewMaterial(NewShader("gpu-only", []byte(passthroughShaderSrc), nil)))
	if !errors.Is(err, ErrNoReference) {
		t.Fatalf("err = %v, want ErrNoReference", err)
	}
	if got := c.At(0, 0); got != ColorBlack {
		t.Errorf("canvas modified on error: %+v", got)
	}
}

func TestCanvasBlitRejectsGPUSource(t *testing.T) {
	rt := NewRenderTexture(2, 2)
	defer rt.Dispose()
	c := NewCanvas(2, 2)

	if err := Blit(rt, c, nil); !errors.Is(err, ErrSurfaceMismatch) {
		t.Errorf("err = %v, want ErrSurfaceMismatch", err)
	}
}

func TestDisposedCanvasIsAbsent(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Dispose()
	if Present(c) {
		t.Error("disposed canvas should not be present")
	}
	if c.Width() != 0 || c.Height() != 0 {
		t.Errorf("disposed size = %dx%d, want 0x0", c.Width(), c.Height())
	}
}
