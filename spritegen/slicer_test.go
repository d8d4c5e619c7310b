package spritegen

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	diablo "github.com/techgnosis/diablo-clone"
)

func testSpec() SheetSpec {
	return SheetSpec{Name: "goblin", Subject: "a goblin", FrameW: 8, FrameH: 8, Frames: 4}
}

// sheetPNG builds a valid sheet for spec: one visible pixel per frame cell.
func sheetPNG(t *testing.T, spec SheetSpec) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, spec.Frames*spec.FrameW, diablo.DirectionCount*spec.FrameH))
	for row := 0; row < diablo.DirectionCount; row++ {
		for col := 0; col < spec.Frames; col++ {
			img.Set(col*spec.FrameW+spec.FrameW/2, row*spec.FrameH+spec.FrameH/2,
				color.NRGBA{0, 255, 0, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test sheet: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeSheetAcceptsExactGrid(t *testing.T) {
	spec := testSpec()
	img, err := DecodeSheet(sheetPNG(t, spec), spec)
	if err != nil {
		t.Fatalf("DecodeSheet: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("decoded bounds %v", b)
	}
}

func TestDecodeSheetDownscalesOversizedImage(t *testing.T) {
	spec := testSpec()
	// Render at 4x the grid, the way a fixed-size API output arrives.
	big := image.NewNRGBA(image.Rect(0, 0, 4*spec.Frames*spec.FrameW, 4*diablo.DirectionCount*spec.FrameH))
	cw, ch := 4*spec.FrameW, 4*spec.FrameH
	for row := 0; row < diablo.DirectionCount; row++ {
		for col := 0; col < spec.Frames; col++ {
			for y := row * ch; y < (row+1)*ch; y++ {
				for x := col * cw; x < (col+1)*cw; x++ {
					big.Set(x, y, color.NRGBA{0, 255, 0, 255})
				}
			}
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, big); err != nil {
		t.Fatal(err)
	}

	img, err := DecodeSheet(buf.Bytes(), spec)
	if err != nil {
		t.Fatalf("DecodeSheet: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != spec.Frames*spec.FrameW || b.Dy() != diablo.DirectionCount*spec.FrameH {
		t.Errorf("downscaled bounds %v, want %dx%d", b, spec.Frames*spec.FrameW, diablo.DirectionCount*spec.FrameH)
	}
}

func TestDecodeSheetRejectsWrongAspect(t *testing.T) {
	spec := testSpec()
	img := image.NewNRGBA(image.Rect(0, 0, 2*spec.Frames*spec.FrameW, diablo.DirectionCount*spec.FrameH))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeSheet(buf.Bytes(), spec); err == nil {
		t.Error("DecodeSheet accepted an image with the wrong aspect ratio")
	}
}

func TestDecodeSheetRejectsUndersizedImage(t *testing.T) {
	spec := testSpec()
	w, h := spec.Frames*spec.FrameW/2, diablo.DirectionCount*spec.FrameH/2
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeSheet(buf.Bytes(), spec); err == nil {
		t.Error("DecodeSheet accepted an image smaller than its grid")
	}
}

func TestDecodeSheetRejectsWrongSize(t *testing.T) {
	spec := testSpec()
	data := sheetPNG(t, spec)
	spec.Frames = 5 // grid no longer matches the image
	if _, err := DecodeSheet(data, spec); err == nil {
		t.Error("DecodeSheet accepted a sheet that does not fit its grid")
	}
}

func TestDecodeSheetRejectsEmptyFrame(t *testing.T) {
	spec := testSpec()
	img := image.NewNRGBA(image.Rect(0, 0, spec.Frames*spec.FrameW, diablo.DirectionCount*spec.FrameH))
	// Fill every cell except (row 2, col 1).
	for row := 0; row < diablo.DirectionCount; row++ {
		for col := 0; col < spec.Frames; col++ {
			if row == 2 && col == 1 {
				continue
			}
			img.Set(col*spec.FrameW, row*spec.FrameH, color.NRGBA{255, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	_, err := DecodeSheet(buf.Bytes(), spec)
	if err == nil {
		t.Fatal("DecodeSheet accepted a fully transparent frame")
	}
}

func TestDecodeSheetRejectsGarbage(t *testing.T) {
	if _, err := DecodeSheet([]byte("not a png"), testSpec()); err == nil {
		t.Error("DecodeSheet accepted non-PNG bytes")
	}
}

func TestInstallSheetWritesLoadablePair(t *testing.T) {
	dir := t.TempDir()
	spec := testSpec()
	img, err := DecodeSheet(sheetPNG(t, spec), spec)
	if err != nil {
		t.Fatal(err)
	}

	if err := InstallSheet(dir, spec, img); err != nil {
		t.Fatalf("InstallSheet: %v", err)
	}

	metaBytes, err := os.ReadFile(filepath.Join(dir, "goblin.json"))
	if err != nil {
		t.Fatalf("meta not written: %v", err)
	}
	meta, err := diablo.LoadSheetMeta(metaBytes)
	if err != nil {
		t.Fatalf("game rejects installed meta: %v", err)
	}
	if meta.FrameW != spec.FrameW || meta.Frames != spec.Frames || meta.Directions != diablo.DirectionCount {
		t.Errorf("round-tripped meta = %+v", meta)
	}

	f, err := os.Open(filepath.Join(dir, "goblin.png"))
	if err != nil {
		t.Fatalf("png not written: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("installed png does not decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("installed png bounds %v", b)
	}
}
