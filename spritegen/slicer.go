package spritegen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	diablo "github.com/techgnosis/diablo-clone"
)

// DecodeSheet decodes PNG bytes and checks them against the spec's grid:
// the image must be frames*frame_w by directions*frame_h, and every
// frame cell must contain at least one visible pixel. An oversized
// image with the grid's aspect ratio is downscaled to the grid first,
// since the API renders at fixed sizes such as 1024x1024.
func DecodeSheet(data []byte, spec SheetSpec) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("spritegen: sheet %s: decode png: %w", spec.Name, err)
	}

	b := img.Bounds()
	wantW := spec.Frames * spec.FrameW
	wantH := diablo.DirectionCount * spec.FrameH
	if b.Dx() != wantW || b.Dy() != wantH {
		if b.Dx()*wantH != b.Dy()*wantW || b.Dx() < wantW {
			return nil, fmt.Errorf("spritegen: sheet %s: image %dx%d does not fit %d×%d grid of %dx%d frames",
				spec.Name, b.Dx(), b.Dy(), spec.Frames, diablo.DirectionCount, spec.FrameW, spec.FrameH)
		}
		img = downscale(img, wantW, wantH)
	}

	for row := 0; row < diablo.DirectionCount; row++ {
		for col := 0; col < spec.Frames; col++ {
			if frameEmpty(img, col*spec.FrameW, row*spec.FrameH, spec.FrameW, spec.FrameH) {
				return nil, fmt.Errorf("spritegen: sheet %s: frame (row %d, col %d) is fully transparent",
					spec.Name, row, col)
			}
		}
	}
	return img, nil
}

// downscale resamples an image to w by h. Nearest neighbor keeps
// pixel-art edges crisp.
func downscale(src image.Image, w, h int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// frameEmpty reports whether the cell at (x0, y0) has no visible pixels.
func frameEmpty(img image.Image, x0, y0, w, h int) bool {
	min := img.Bounds().Min
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if _, _, _, a := img.At(min.X+x, min.Y+y).RGBA(); a != 0 {
				return false
			}
		}
	}
	return true
}

// InstallSheet writes the validated sheet PNG and its metadata JSON into
// dir as <name>.png and <name>.json, the pair the game loads.
func InstallSheet(dir string, spec SheetSpec, img image.Image) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("spritegen: sheet %s: %w", spec.Name, err)
	}

	pngPath := filepath.Join(dir, spec.Name+".png")
	f, err := os.Create(pngPath)
	if err != nil {
		return fmt.Errorf("spritegen: sheet %s: %w", spec.Name, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("spritegen: sheet %s: encode png: %w", spec.Name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("spritegen: sheet %s: %w", spec.Name, err)
	}

	meta, err := json.MarshalIndent(spec.Meta(), "", "  ")
	if err != nil {
		return fmt.Errorf("spritegen: sheet %s: marshal meta: %w", spec.Name, err)
	}
	metaPath := filepath.Join(dir, spec.Name+".json")
	if err := os.WriteFile(metaPath, append(meta, '\n'), 0o644); err != nil {
		return fmt.Errorf("spritegen: sheet %s: write meta: %w", spec.Name, err)
	}
	return nil
}
