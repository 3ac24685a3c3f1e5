package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/BeatGlow/rawsensor/batch"
	"github.com/BeatGlow/rawsensor/bayer"
	"github.com/BeatGlow/rawsensor/internal/config"
	"github.com/BeatGlow/rawsensor/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "TOML configuration file")
	layoutFlag := flag.String("layout", "", "CFA layout (rggb, diagonal)")
	depthFlag := flag.Int("depth", 0, "Channel depth read from the source image (8, 16)")
	workersFlag := flag.Int("workers", 0, "Concurrent conversions")
	outFlag := flag.String("out", "", "Output directory (default: next to each input)")
	failFastFlag := flag.Bool("fail-fast", false, "Stop at the first failed conversion")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <image>...\n", os.Args[0])
		os.Exit(1)
	}

	log := logging.New("raw-convert", *debugFlag)

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			log.Fatal().Err(err).Msg("configuration")
		}
	}
	if *layoutFlag != "" {
		layout, err := bayer.ParseLayout(*layoutFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid layout")
		}
		cfg.Sampler.Layout = layout
	}
	if *depthFlag != 0 {
		depth, err := bayer.ParseDepth(*depthFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid depth")
		}
		cfg.Sampler.Depth = depth
	}
	if *workersFlag > 0 {
		cfg.Workers = *workersFlag
	}
	if *outFlag != "" {
		cfg.OutputDir = *outFlag
	}
	if *failFastFlag {
		cfg.FailFast = true
	}
	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			log.Fatal().Err(err).Msg("output directory")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info().
		Stringer("layout", cfg.Sampler.Layout).
		Int("depth", int(cfg.Sampler.Depth)).
		Int("workers", cfg.Workers).
		Int("jobs", flag.NArg()).
		Msg("starting")

	results, err := batch.Convert(ctx, log, batch.Config{
		Sampler:  cfg.Sampler,
		Workers:  cfg.Workers,
		FailFast: cfg.FailFast,
	}, batch.Jobs(cfg.OutputDir, flag.Args()...))

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if err != nil {
		log.Error().Err(err).Msg("batch aborted")
	}
	log.Info().Int("converted", len(results)-failed).Int("failed", failed).Msg("done")
	if failed > 0 || err != nil {
		os.Exit(1)
	}
}
