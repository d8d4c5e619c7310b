package spritegen

import (
	"strings"
	"testing"

	diablo "github.com/techgnosis/diablo-clone"
)

func TestParsePlanAppliesAPIDefaults(t *testing.T) {
	p, err := ParsePlan([]byte(`
sheets:
  - name: player
    subject: the hero
    frame_w: 64
    frame_h: 64
    frames: 4
`))
	if err != nil {
		t.Fatalf("ParsePlan: %v", err)
	}
	if p.Model == "" || p.Size == "" || p.Quality == "" {
		t.Errorf("API defaults not applied: model=%q size=%q quality=%q", p.Model, p.Size, p.Quality)
	}
	if len(p.Sheets) != 1 || p.Sheets[0].Name != "player" {
		t.Errorf("unexpected sheets: %+v", p.Sheets)
	}
}

func TestParsePlanKeepsExplicitAPIValues(t *testing.T) {
	p, err := ParsePlan([]byte(`
model: some-model
size: 512x512
quality: high
sheets:
  - name: goblin
    subject: a goblin
    frame_w: 32
    frame_h: 32
    frames: 6
`))
	if err != nil {
		t.Fatalf("ParsePlan: %v", err)
	}
	if p.Model != "some-model" || p.Size != "512x512" || p.Quality != "high" {
		t.Errorf("explicit values overridden: model=%q size=%q quality=%q", p.Model, p.Size, p.Quality)
	}
}

func TestParsePlanRejectsBadPlans(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"no sheets", `model: m`},
		{"missing name", "sheets:\n  - subject: x\n    frame_w: 8\n    frame_h: 8\n    frames: 1"},
		{"missing subject and prompt", "sheets:\n  - name: a\n    frame_w: 8\n    frame_h: 8\n    frames: 1"},
		{"zero frame size", "sheets:\n  - name: a\n    subject: x\n    frame_w: 0\n    frame_h: 8\n    frames: 1"},
		{"zero frames", "sheets:\n  - name: a\n    subject: x\n    frame_w: 8\n    frame_h: 8\n    frames: 0"},
		{"duplicate names", "sheets:\n" +
			"  - {name: a, subject: x, frame_w: 8, frame_h: 8, frames: 1}\n" +
			"  - {name: a, subject: y, frame_w: 8, frame_h: 8, frames: 1}"},
		{"not yaml", `{{{{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParsePlan([]byte(tc.yaml)); err == nil {
				t.Error("ParsePlan accepted an invalid plan")
			}
		})
	}
}

func TestRenderPromptSubstitutesTokens(t *testing.T) {
	s := SheetSpec{
		Name:    "player",
		Subject: "the hero",
		Prompt:  "{subject} with {frames} frames in {directions} rows of {frame_w}x{frame_h}",
		FrameW:  64, FrameH: 48, Frames: 6,
	}
	got := s.RenderPrompt()
	want := "the hero with 6 frames in 4 rows of 64x48"
	if got != want {
		t.Errorf("RenderPrompt = %q, want %q", got, want)
	}
}

func TestRenderPromptDefaultTemplate(t *testing.T) {
	s := SheetSpec{Name: "goblin", Subject: "a small green goblin", FrameW: 64, FrameH: 64, Frames: 4}
	got := s.RenderPrompt()
	for _, want := range []string{"a small green goblin", "isometric", "4 frames", "64x64", "transparent background"} {
		if !strings.Contains(got, want) {
			t.Errorf("default prompt missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "{") {
		t.Errorf("unsubstituted token left in prompt:\n%s", got)
	}
}

func TestSheetSpecMetaMatchesGame(t *testing.T) {
	s := SheetSpec{Name: "orc", Subject: "x", FrameW: 64, FrameH: 64, Frames: 4}
	m := s.Meta()
	if m.Directions != diablo.DirectionCount {
		t.Errorf("meta directions = %d, want %d", m.Directions, diablo.DirectionCount)
	}
	if m.FrameW != 64 || m.FrameH != 64 || m.Frames != 4 {
		t.Errorf("meta grid = %+v", m)
	}
	if m.Image != "orc.png" {
		t.Errorf("meta image = %q, want orc.png", m.Image)
	}
	if m.Pivot == nil || *m.Pivot != diablo.PivotBottomCenter {
		t.Errorf("meta pivot = %+v, want bottom-center", m.Pivot)
	}
	want := map[string]int{
		"walk-down-left": 0, "walk-down-right": 1,
		"walk-up-left": 2, "walk-up-right": 3,
	}
	for tag, row := range want {
		if m.Tags[tag] != row {
			t.Errorf("meta tag %q = %d, want %d", tag, m.Tags[tag], row)
		}
	}
}

func TestPlanRequestSheetOverrides(t *testing.T) {
	p := Plan{Model: "plan-model", Size: "1024x1024", Quality: "medium"}

	req := p.Request(SheetSpec{Name: "a", Prompt: "x", FrameW: 8, FrameH: 8, Frames: 1})
	if req.Model != "plan-model" || req.Size != "1024x1024" || req.Quality != "medium" {
		t.Errorf("plan-level request = %+v", req)
	}

	req = p.Request(SheetSpec{
		Name: "b", Prompt: "x", FrameW: 8, FrameH: 8, Frames: 1,
		Model: "sheet-model", Size: "256x256", Quality: "high",
	})
	if req.Model != "sheet-model" || req.Size != "256x256" || req.Quality != "high" {
		t.Errorf("sheet overrides ignored: %+v", req)
	}
}

func TestParsePlanSheetAPIOverrides(t *testing.T) {
	p, err := ParsePlan([]byte(`
size: 1024x1024
sheets:
  - name: goblin
    subject: a goblin
    frame_w: 32
    frame_h: 32
    frames: 6
    size: 512x512
    quality: low
`))
	if err != nil {
		t.Fatalf("ParsePlan: %v", err)
	}
	req := p.Request(p.Sheets[0])
	if req.Size != "512x512" || req.Quality != "low" {
		t.Errorf("parsed overrides not applied: %+v", req)
	}
}

func TestDefaultPlanCoversEverySpecies(t *testing.T) {
	p := DefaultPlan()
	if err := p.validate(); err != nil {
		t.Fatalf("default plan invalid: %v", err)
	}

	names := make(map[string]bool, len(p.Sheets))
	for _, s := range p.Sheets {
		names[s.Name] = true
	}
	if !names["player"] {
		t.Error("default plan has no player sheet")
	}
	kinds := []diablo.MonsterKind{
		diablo.MonsterGoblin, diablo.MonsterOgre, diablo.MonsterOrc,
		diablo.MonsterWyrm, diablo.MonsterSnowGoblin, diablo.MonsterSnowOgre,
	}
	for _, k := range kinds {
		if !names[k.SpriteKey()] {
			t.Errorf("default plan has no sheet named %q for %v", k.SpriteKey(), k)
		}
	}
}
