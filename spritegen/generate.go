package spritegen

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	diablo "github.com/techgnosis/diablo-clone"
)

// defaultParallel bounds in-flight API calls.
const defaultParallel = 3

// Options tunes a pipeline run.
type Options struct {
	// OutDir is the sprite directory sheets install into.
	OutDir string
	// DryRun renders and prints prompts without calling the API or
	// writing files.
	DryRun bool
	// DryRunOut receives dry-run prompt listings. Defaults to discard.
	DryRunOut io.Writer
	// Parallel bounds concurrent generations; 0 means the default.
	Parallel int
}

// Generate runs the plan: render each sheet's prompt, call the API,
// validate the result against its grid, and install PNG + metadata.
// Sheets run concurrently; the first failure cancels the rest.
func Generate(ctx context.Context, plan Plan, gen Generator, opts Options) error {
	if err := plan.validate(); err != nil {
		return err
	}

	if opts.DryRun {
		return dryRun(plan, opts.DryRunOut)
	}

	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = defaultParallel
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for _, spec := range plan.Sheets {
		g.Go(func() error {
			return generateOne(ctx, plan, spec, gen, opts.OutDir)
		})
	}
	return g.Wait()
}

func generateOne(ctx context.Context, plan Plan, spec SheetSpec, gen Generator, outDir string) error {
	req := plan.Request(spec)
	slog.Info("generating sheet", "name", spec.Name,
		"grid", fmt.Sprintf("%dx%d", spec.Frames, diablo.DirectionCount),
		"frame", fmt.Sprintf("%dx%d", spec.FrameW, spec.FrameH),
		"size", req.Size)
	slog.Debug("rendered prompt", "name", spec.Name, "prompt", req.Prompt)

	data, err := gen.GenerateImage(ctx, req)
	if err != nil {
		return err
	}

	img, err := DecodeSheet(data, spec)
	if err != nil {
		return err
	}
	if err := InstallSheet(outDir, spec, img); err != nil {
		return err
	}
	slog.Info("installed sheet", "name", spec.Name, "dir", outDir)
	return nil
}

func dryRun(plan Plan, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	for _, spec := range plan.Sheets {
		if _, err := fmt.Fprintf(out, "%s:\n  %s\n", spec.Name, spec.RenderPrompt()); err != nil {
			return fmt.Errorf("spritegen: dry run: %w", err)
		}
	}
	return nil
}
