// Package spritegen turns a YAML plan of prompts into sprite sheets via
// an image-generation HTTP API, validates each sheet against its frame
// grid, and installs PNG plus metadata JSON where the game loads them.
package spritegen

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	diablo "github.com/techgnosis/diablo-clone"
)

// defaultPromptTemplate is the request sent for sheets that do not
// carry their own prompt. Tokens in braces are substituted per sheet.
const defaultPromptTemplate = "Pixel-art sprite sheet of {subject} for an isometric action RPG, " +
	"3/4 isometric view, {directions} rows of walk animations facing down-left, down-right, " +
	"up-left and up-right, {frames} frames per row on an exact {frame_w}x{frame_h} pixel grid, " +
	"bottom-center anchored so the feet touch the bottom of each cell, transparent background, " +
	"no outlines bleeding between cells, no text"

// SheetSpec is one sheet in the plan.
type SheetSpec struct {
	// Name is the output base name; the pipeline writes Name.png and
	// Name.json into the sprite directory.
	Name string `yaml:"name"`
	// Subject fills the {subject} prompt token ("the hero", "a goblin").
	Subject string `yaml:"subject"`
	// Prompt overrides the default template for this sheet.
	Prompt string `yaml:"prompt,omitempty"`

	FrameW int     `yaml:"frame_w"`
	FrameH int     `yaml:"frame_h"`
	Frames int     `yaml:"frames"`
	FPS    float64 `yaml:"fps,omitempty"`
	Scale  float64 `yaml:"scale,omitempty"`

	// Model, Size and Quality override the plan-level API parameters
	// for this sheet.
	Model   string `yaml:"model,omitempty"`
	Size    string `yaml:"size,omitempty"`
	Quality string `yaml:"quality,omitempty"`
}

// Meta is the sheet's grid description as the game loads it.
func (s SheetSpec) Meta() diablo.SheetMeta {
	pivot := diablo.PivotBottomCenter
	tags := make(map[string]int, diablo.DirectionCount)
	for d := 0; d < diablo.DirectionCount; d++ {
		dir := diablo.Direction(d)
		tags["walk-"+dir.String()] = dir.Row()
	}
	return diablo.SheetMeta{
		Image:      s.Name + ".png",
		FrameW:     s.FrameW,
		FrameH:     s.FrameH,
		Frames:     s.Frames,
		Directions: diablo.DirectionCount,
		Pivot:      &pivot,
		Tags:       tags,
		FPS:        s.FPS,
		Scale:      s.Scale,
	}
}

// RenderPrompt substitutes the grid tokens into the sheet's prompt.
func (s SheetSpec) RenderPrompt() string {
	t := s.Prompt
	if t == "" {
		t = defaultPromptTemplate
	}
	r := strings.NewReplacer(
		"{subject}", s.Subject,
		"{frames}", strconv.Itoa(s.Frames),
		"{directions}", strconv.Itoa(diablo.DirectionCount),
		"{frame_w}", strconv.Itoa(s.FrameW),
		"{frame_h}", strconv.Itoa(s.FrameH),
	)
	return r.Replace(t)
}

func (s SheetSpec) validate() error {
	if s.Name == "" {
		return fmt.Errorf("spritegen: sheet needs a name")
	}
	if s.Prompt == "" && s.Subject == "" {
		return fmt.Errorf("spritegen: sheet %s needs a subject or a prompt", s.Name)
	}
	if s.FrameW <= 0 || s.FrameH <= 0 {
		return fmt.Errorf("spritegen: sheet %s frame size %dx%d must be positive", s.Name, s.FrameW, s.FrameH)
	}
	if s.Frames < 1 {
		return fmt.Errorf("spritegen: sheet %s needs at least 1 frame", s.Name)
	}
	return nil
}

// Plan is the full generation request: API parameters shared by every
// sheet, plus the sheets themselves.
type Plan struct {
	Model   string      `yaml:"model"`
	Size    string      `yaml:"size"`
	Quality string      `yaml:"quality"`
	Sheets  []SheetSpec `yaml:"sheets"`
}

func (p Plan) validate() error {
	if len(p.Sheets) == 0 {
		return fmt.Errorf("spritegen: plan has no sheets")
	}
	seen := make(map[string]bool, len(p.Sheets))
	for _, s := range p.Sheets {
		if err := s.validate(); err != nil {
			return err
		}
		if seen[s.Name] {
			return fmt.Errorf("spritegen: duplicate sheet name %q", s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

// Request builds the API request for one sheet. Sheet-level model,
// size and quality take precedence over the plan's.
func (p Plan) Request(s SheetSpec) ImageRequest {
	req := ImageRequest{
		Prompt:  s.RenderPrompt(),
		Size:    p.Size,
		Model:   p.Model,
		Quality: p.Quality,
	}
	if s.Model != "" {
		req.Model = s.Model
	}
	if s.Size != "" {
		req.Size = s.Size
	}
	if s.Quality != "" {
		req.Quality = s.Quality
	}
	return req
}

func (p *Plan) applyDefaults() {
	if p.Model == "" {
		p.Model = "gpt-image-1"
	}
	if p.Size == "" {
		p.Size = "1024x1024"
	}
	if p.Quality == "" {
		p.Quality = "medium"
	}
}

// LoadPlan reads and validates a YAML plan file.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("spritegen: read plan: %w", err)
	}
	return ParsePlan(data)
}

// ParsePlan parses plan YAML, filling in API defaults.
func ParsePlan(data []byte) (Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("spritegen: parse plan: %w", err)
	}
	p.applyDefaults()
	if err := p.validate(); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// DefaultPlan covers the hero and the six monster species, one
// four-frame walk cycle each on a 64x64 grid.
func DefaultPlan() Plan {
	subjects := []struct{ name, subject string }{
		{"player", "an armored human hero with a sword"},
		{"goblin", "a small green goblin"},
		{"ogre", "a hulking brown ogre"},
		{"orc", "a tusked desert orc"},
		{"wyrm", "a sand-gold desert wyrm"},
		{"snow_goblin", "a pale blue snow goblin"},
		{"snow_ogre", "a frost-covered ogre"},
	}
	p := Plan{}
	p.applyDefaults()
	for _, s := range subjects {
		p.Sheets = append(p.Sheets, SheetSpec{
			Name:    s.name,
			Subject: s.subject,
			FrameW:  64,
			FrameH:  64,
			Frames:  4,
		})
	}
	return p
}
