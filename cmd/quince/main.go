// quince is a chess engine built around iterative-deepening alpha-beta
// search with quiescence extension, history-table move ordering and a
// transposition table of cached evaluations.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/herohde/quince/pkg/config"
	"github.com/herohde/quince/pkg/engine"
	"github.com/herohde/quince/pkg/engine/console"
	"github.com/pkg/profile"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var (
	configFile = flag.String("config", "", "Settings file in TOML format (optional)")
	budget     = flag.Duration("budget", 0, "Computation budget per turn (overrides config)")
	depth      = flag.Uint("depth", 0, "Search depth limit (zero if no limit)")
	seed       = flag.Int64("seed", 0, "Random seed (overrides config)")
	cpuprofile = flag.Bool("cpuprofile", false, "Write a CPU profile to the current directory")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: quince [options]

QUINCE is a chess engine. It plays over a console protocol on stdin/stdout.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	settings := config.Default()
	if *configFile != "" {
		s, err := config.Load(*configFile)
		if err != nil {
			logw.Exitf(ctx, "Invalid config: %v", err)
		}
		settings = s
	}

	opts := engine.Options{
		Budget:     settings.Budget(),
		Quiescence: settings.Search.QuiescenceLimit,
		Seed:       settings.Search.Seed,
		Weights:    settings.Weights(),
	}
	if *budget > 0 {
		opts.Budget = *budget
	}
	if *seed != 0 {
		opts.Seed = *seed
	}
	if limit := settings.Search.DepthLimit; limit > 0 {
		opts.Depth = lang.Some(limit)
	}
	if *depth > 0 {
		opts.Depth = lang.Some(*depth)
	}

	e := engine.New(ctx, "quince", "herohde", engine.WithOptions(opts))

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case console.ProtocolName:
		driver, out := console.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
