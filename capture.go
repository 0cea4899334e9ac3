package blitfx

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Snapshot copies the contents of s into a straight-alpha image. For a
// RenderTexture this reads pixels back from the GPU, which Ebitengine only
// allows once the game loop is running.
func Snapshot(s Surface) (*image.NRGBA, error) {
	if !Present(s) {
		return nil, ErrMissingResource
	}
	switch t := s.(type) {
	case *RenderTexture:
		pixels := make([]byte, 4*t.w*t.h)
		t.image.ReadPixels(pixels)
		return unpremultiply(pixels, t.w, t.h), nil
	case *Canvas:
		return unpremultiply(t.img.Pix, t.Width(), t.Height()), nil
	}
	return nil, fmt.Errorf("snapshot %T: %w", s, ErrSurfaceMismatch)
}

// unpremultiply converts tightly packed premultiplied RGBA to straight-alpha
// NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// WritePNG snapshots s and encodes it to a PNG file at path, creating parent
// directories as needed.
func WritePNG(path string, s Surface) error {
	img, err := Snapshot(s)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	return writePNG(path, img)
}

// Capture writes s into dir as <timestamp>_<label>.png and returns the path.
func Capture(dir, label string, s Surface) (string, error) {
	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, stamp+"_"+sanitizeLabel(label)+".png")
	if err := WritePNG(path, s); err != nil {
		return "", err
	}
	return path, nil
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
