package diablo

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SaveScreenshot captures the rendered frame and writes it to dir as a
// timestamped PNG, returning the path. Ebiten stores pixels with
// premultiplied alpha; the file gets straight alpha.
func SaveScreenshot(screen *ebiten.Image, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("diablo: screenshot: %w", err)
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	unpremultiply(img.Pix, pixels)

	path := filepath.Join(dir, fmt.Sprintf("screenshot-%s.png", time.Now().Format("20060102_150405")))
	if err := writePNG(path, img); err != nil {
		return "", fmt.Errorf("diablo: screenshot: %w", err)
	}
	return path, nil
}

// unpremultiply converts premultiplied RGBA bytes to straight alpha.
// dst and src must be the same length.
func unpremultiply(dst, src []byte) {
	for i := 0; i < len(src); i += 4 {
		r, g, b, a := src[i], src[i+1], src[i+2], src[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		dst[i] = r
		dst[i+1] = g
		dst[i+2] = b
		dst[i+3] = a
	}
}

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
