// Command spritegen generates the game's sprite sheets from a YAML plan
// via an image-generation API and installs them into the sprite
// directory. Run with -dry-run to inspect the rendered prompts first.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/techgnosis/diablo-clone/spritegen"
)

const apiKeyEnv = "OPENAI_API_KEY"

var (
	planFlag     = flag.String("plan", "", "plan YAML path (empty uses the built-in default plan)")
	outFlag      = flag.String("out", "assets/sprites", "sprite output directory")
	baseURLFlag  = flag.String("base-url", spritegen.DefaultBaseURL, "images API base URL")
	parallelFlag = flag.Int("parallel", 0, "concurrent generations (0 = default)")
	dryRunFlag   = flag.Bool("dry-run", false, "print rendered prompts and exit")
	levelFlag    logLevelFlag
)

func init() {
	levelFlag.value = slog.LevelInfo
	flag.Var(&levelFlag, "level", "log level name")
}

func main() {
	flag.Parse()
	slog.SetLogLoggerLevel(levelFlag.value)

	plan := spritegen.DefaultPlan()
	if *planFlag != "" {
		var err error
		plan, err = spritegen.LoadPlan(*planFlag)
		if err != nil {
			log.Fatal(err)
		}
	}

	var gen spritegen.Generator
	if !*dryRunFlag {
		key := os.Getenv(apiKeyEnv)
		if key == "" {
			log.Fatalf("spritegen: %s not set", apiKeyEnv)
		}
		gen = spritegen.NewClient(*baseURLFlag, key)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := spritegen.Generate(ctx, plan, gen, spritegen.Options{
		OutDir:    *outFlag,
		DryRun:    *dryRunFlag,
		DryRunOut: os.Stdout,
		Parallel:  *parallelFlag,
	})
	if err != nil {
		log.Fatal(err)
	}
}
