package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BeatGlow/rawsensor/bayer"
	"github.com/BeatGlow/rawsensor/internal/config"
	"github.com/BeatGlow/rawsensor/internal/logging"
	"github.com/BeatGlow/rawsensor/preview"
	"github.com/BeatGlow/rawsensor/rawfile"
)

func main() {
	configFlag := flag.String("config", "", "TOML configuration file")
	layoutFlag := flag.String("layout", "", "CFA layout used to tint the preview (rggb, diagonal)")
	modeFlag := flag.String("mode", "", "Preview mode (cfa, gray)")
	scaleFlag := flag.Int("scale", 0, "Preview upscaling factor")
	gridFlag := flag.Bool("grid", false, "Outline the 2x2 filter tiles")
	outFlag := flag.String("o", "", "Output PNG (default: input with .png extension)")
	infoFlag := flag.Bool("info", false, "Only print the header")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <raw file>\n", os.Args[0])
		os.Exit(1)
	}
	input := flag.Arg(0)
	log := logging.New("raw-view", *debugFlag)

	if *infoFlag {
		h, err := rawfile.Stat(input)
		if err != nil {
			log.Fatal().Err(err).Str("input", input).Msg("read header")
		}
		fmt.Printf("%s: %dx%d, %d bytes\n", input, h.Width, h.Height, h.Size())
		return
	}

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
	if *modeFlag != "" {
		mode, err := preview.ParseMode(*modeFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid mode")
		}
		cfg.Preview.Mode = mode
	}
	if *scaleFlag > 0 {
		cfg.Preview.Scale = *scaleFlag
	}
	if *gridFlag {
		cfg.Preview.Grid = true
	}

	raw, err := rawfile.ReadFile[uint16](input)
	if err != nil {
		log.Fatal().Err(err).Str("input", input).Msg("read raw image")
	}

	output := *outFlag
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
	}
	opts := preview.Options{
		Mode:     cfg.Preview.Mode,
		Layout:   cfg.Sampler.Layout,
		Scale:    cfg.Preview.Scale,
		Grid:     cfg.Preview.Grid,
		FontSize: cfg.Preview.FontSize,
	}
	if cfg.Preview.Caption {
		opts.Caption = preview.Caption(raw, cfg.Sampler.Layout)
	}
	if err = preview.WriteFile(output, raw, opts); err != nil {
		log.Fatal().Err(err).Str("output", output).Msg("write preview")
	}
	log.Info().
		Str("input", input).
		Str("output", output).
		Int("width", raw.Width()).
		Int("height", raw.Height()).
		Msg("preview written")
}
