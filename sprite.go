package diablo

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultSheetFPS = 8.0

// SheetPivot is the anchor point within a frame, in fractions of the
// frame size. (0.5, 1.0) is bottom-center: the sprite's feet.
type SheetPivot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PivotBottomCenter is the anchor convention every generated sheet uses.
var PivotBottomCenter = SheetPivot{X: 0.5, Y: 1.0}

// SheetMeta describes a sprite sheet grid: one row per facing direction
// in row order down-left, down-right, up-left, up-right, and one column
// per walk frame. Frames anchor at the pivot, bottom-center by default,
// so the sprite's feet sit on its world position. Tags optionally name
// rows ("walk-down-left" and friends in generated sheets).
type SheetMeta struct {
	Image      string         `json:"image,omitempty"`
	FrameW     int            `json:"frame_w"`
	FrameH     int            `json:"frame_h"`
	Frames     int            `json:"frames"`
	Directions int            `json:"directions"`
	Pivot      *SheetPivot    `json:"pivot,omitempty"`
	Tags       map[string]int `json:"tags,omitempty"`
	FPS        float64        `json:"fps,omitempty"`
	Scale      float64        `json:"scale,omitempty"`
}

func (m *SheetMeta) applyDefaults() {
	if m.FPS == 0 {
		m.FPS = defaultSheetFPS
	}
	if m.Scale == 0 {
		m.Scale = 1
	}
	if m.Pivot == nil {
		p := PivotBottomCenter
		m.Pivot = &p
	}
}

func (m SheetMeta) validate() error {
	if m.FrameW <= 0 || m.FrameH <= 0 {
		return fmt.Errorf("diablo: sheet frame size %dx%d must be positive", m.FrameW, m.FrameH)
	}
	if m.Frames < 1 {
		return fmt.Errorf("diablo: sheet needs at least 1 frame, got %d", m.Frames)
	}
	if m.Directions != DirectionCount {
		return fmt.Errorf("diablo: sheet needs %d direction rows, got %d", DirectionCount, m.Directions)
	}
	if m.FPS <= 0 {
		return fmt.Errorf("diablo: sheet fps %v must be positive", m.FPS)
	}
	if m.Scale <= 0 {
		return fmt.Errorf("diablo: sheet scale %v must be positive", m.Scale)
	}
	if p := m.Pivot; p != nil {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			return fmt.Errorf("diablo: sheet pivot (%v, %v) must be within [0, 1]", p.X, p.Y)
		}
	}
	for tag, row := range m.Tags {
		if row < 0 || row >= m.Directions {
			return fmt.Errorf("diablo: sheet tag %q row %d outside %d direction rows", tag, row, m.Directions)
		}
	}
	return nil
}

// LoadSheetMeta parses and validates sheet metadata JSON. Omitted fps
// and scale fall back to defaults.
func LoadSheetMeta(data []byte) (SheetMeta, error) {
	var m SheetMeta
	if err := json.Unmarshal(data, &m); err != nil {
		return SheetMeta{}, fmt.Errorf("diablo: parse sheet meta: %w", err)
	}
	m.applyDefaults()
	if err := m.validate(); err != nil {
		return SheetMeta{}, err
	}
	return m, nil
}

// gridError reports why an image of the given size cannot host the
// meta's frame grid.
func gridError(w, h int, m SheetMeta) error {
	if w != m.Frames*m.FrameW || h != m.Directions*m.FrameH {
		return fmt.Errorf("diablo: sheet image %dx%d does not fit %d×%d grid of %dx%d frames",
			w, h, m.Frames, m.Directions, m.FrameW, m.FrameH)
	}
	return nil
}

// frameIndex picks the walk-cycle column. Idle entities hold frame 0;
// moving entities cycle every column at the sheet's fps.
func frameIndex(animTime, fps float64, frames int, moving bool) int {
	if !moving || frames <= 1 {
		return 0
	}
	return int(animTime*fps) % frames
}

// Sheet is a sliced sprite sheet ready to draw.
type Sheet struct {
	img  *ebiten.Image
	meta SheetMeta
}

// NewSheet wraps a sheet image, validating that it exactly fits the
// meta's grid.
func NewSheet(img *ebiten.Image, meta SheetMeta) (*Sheet, error) {
	meta.applyDefaults()
	if err := meta.validate(); err != nil {
		return nil, err
	}
	b := img.Bounds()
	if err := gridError(b.Dx(), b.Dy(), meta); err != nil {
		return nil, err
	}
	return &Sheet{img: img, meta: meta}, nil
}

// Meta returns the sheet's grid description.
func (s *Sheet) Meta() SheetMeta {
	return s.meta
}

// Draw renders the walk frame for the given facing with the sprite's
// pivot at screen (x, y).
func (s *Sheet) Draw(dst *ebiten.Image, x, y float64, dir Direction, animTime float64, moving bool) {
	col := frameIndex(animTime, s.meta.FPS, s.meta.Frames, moving)
	s.DrawFrame(dst, x, y, dir.Row(), col)
}

// anchorOffset translates a pivot position into the top-left corner of
// a scaled frame whose pivot sits at the origin.
func anchorOffset(fw, fh, scale float64, p SheetPivot) (dx, dy float64) {
	return -fw * scale * p.X, -fh * scale * p.Y
}

// DrawFrame renders one grid cell with its pivot at (x, y).
func (s *Sheet) DrawFrame(dst *ebiten.Image, x, y float64, row, col int) {
	fw, fh := s.meta.FrameW, s.meta.FrameH
	r := image.Rect(col*fw, row*fh, (col+1)*fw, (row+1)*fh)
	sub := s.img.SubImage(r).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	sc := s.meta.Scale
	op.GeoM.Scale(sc, sc)
	dx, dy := anchorOffset(float64(fw), float64(fh), sc, *s.meta.Pivot)
	op.GeoM.Translate(x+dx, y+dy)
	dst.DrawImage(sub, op)
}

// TagRow resolves a named row tag, such as "walk-down-left".
func (s *Sheet) TagRow(tag string) (int, bool) {
	row, ok := s.meta.Tags[tag]
	return row, ok
}

// SpriteSet holds loaded sheets keyed by subject name ("player",
// "goblin", ...). Subjects without a sheet render with their shape
// fallback instead.
type SpriteSet struct {
	sheets map[string]*Sheet
}

// Sheet returns the named sheet, or nil when the subject has none.
// A nil set is a valid empty set.
func (ss *SpriteSet) Sheet(name string) *Sheet {
	if ss == nil {
		return nil
	}
	return ss.sheets[name]
}

// Len returns the number of loaded sheets.
func (ss *SpriteSet) Len() int {
	if ss == nil {
		return 0
	}
	return len(ss.sheets)
}

// LoadSpriteSet loads every <name>.json + <name>.png pair under dir.
// A meta's image field overrides the .png name when set. A missing
// directory yields an empty set, so the game runs on shape fallbacks
// until sheets are generated.
func LoadSpriteSet(dir string) (*SpriteSet, error) {
	set := &SpriteSet{sheets: make(map[string]*Sheet)}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return set, nil
	}
	if err != nil {
		return nil, fmt.Errorf("diablo: read sprite dir: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		base := strings.TrimSuffix(name, ".json")

		metaBytes, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("diablo: read sheet meta %s: %w", name, err)
		}
		meta, err := LoadSheetMeta(metaBytes)
		if err != nil {
			return nil, fmt.Errorf("diablo: sheet %s: %w", base, err)
		}

		imgName := meta.Image
		if imgName == "" {
			imgName = base + ".png"
		}
		f, err := os.Open(filepath.Join(dir, imgName))
		if err != nil {
			return nil, fmt.Errorf("diablo: sheet %s has meta but no image: %w", base, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("diablo: decode sheet %s.png: %w", base, err)
		}

		sheet, err := NewSheet(ebiten.NewImageFromImage(img), meta)
		if err != nil {
			return nil, fmt.Errorf("diablo: sheet %s: %w", base, err)
		}
		set.sheets[base] = sheet
	}
	return set, nil
}

// SpriteKey is the sheet name a species looks up under the sprite dir.
func (k MonsterKind) SpriteKey() string {
	switch k {
	case MonsterSnowGoblin:
		return "snow_goblin"
	case MonsterSnowOgre:
		return "snow_ogre"
	default:
		return k.String()
	}
}
