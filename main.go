package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/pji/life/codec"
	"github.com/pji/life/model"
	"github.com/pji/life/ui"
	"github.com/pji/life/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	cfg, err := utils.LoadConfig("config.json")
	if err != nil {
		cfg = utils.DefaultConfig()
	}

	cfg, ruleFlagSet, err := parseFlags(cfg)
	if err != nil {
		fatal(err)
	}

	grid, err := model.NewGrid(cfg.Width, cfg.Height, cfg.Rule, cfg.Wrap)
	if err != nil {
		fatal(err)
	}

	if cfg.File != "" {
		if err := loadFile(grid, cfg.File, ruleFlagSet); err != nil {
			fatal(err)
		}
	}

	if cfg.Autorun {
		runAutorun(grid, cfg)
		return
	}
	ui.Run(grid, cfg)
}

// parseFlags overlays the command line onto the configuration. Every flag
// is registered under its short and long name.
func parseFlags(cfg utils.Config) (utils.Config, bool, error) {
	var dims string
	flag.StringVar(&dims, "d", "", "the dimensions for the grid, as COLSxROWS")
	flag.StringVar(&dims, "dimensions", "", "the dimensions for the grid, as COLSxROWS")
	flag.StringVar(&cfg.File, "f", cfg.File, "a pattern file to load into the game")
	flag.StringVar(&cfg.File, "file", cfg.File, "a pattern file to load into the game")
	flag.StringVar(&cfg.Rule, "r", cfg.Rule, "the rule for the game, in B/S notation")
	flag.StringVar(&cfg.Rule, "rule", cfg.Rule, "the rule for the game, in B/S notation")
	flag.Float64Var(&cfg.Pace, "p", cfg.Pace, "the delay in seconds between ticks when running")
	flag.Float64Var(&cfg.Pace, "pace", cfg.Pace, "the delay in seconds between ticks when running")
	noWrap := flag.Bool("W", false, "the grid should not wrap at the edges")
	flag.BoolVar(noWrap, "no_wrap", false, "the grid should not wrap at the edges")
	flag.BoolVar(&cfg.ShowGeneration, "g", cfg.ShowGeneration, "show the current generation")
	flag.BoolVar(&cfg.ShowGeneration, "show_generation", cfg.ShowGeneration, "show the current generation")
	flag.BoolVar(&cfg.Autorun, "a", cfg.Autorun, "run without the interactive UI")
	flag.BoolVar(&cfg.Autorun, "autorun", cfg.Autorun, "run without the interactive UI")
	flag.Parse()

	if *noWrap {
		cfg.Wrap = false
	}
	if dims != "" {
		width, height, err := parseDimensions(dims)
		if err != nil {
			return cfg, false, err
		}
		cfg.Width, cfg.Height = width, height
	}

	ruleFlagSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "r" || f.Name == "rule" {
			ruleFlagSet = true
		}
	})
	return cfg, ruleFlagSet, nil
}

func parseDimensions(dims string) (int, int, error) {
	cols, rows, found := strings.Cut(strings.ToLower(dims), "x")
	if !found {
		return 0, 0, errors.Errorf("[parseDimensions] dimensions must be COLSxROWS, got %q", dims)
	}
	width, err := strconv.Atoi(cols)
	if err != nil || width <= 0 {
		return 0, 0, errors.Errorf("[parseDimensions] bad width in %q", dims)
	}
	height, err := strconv.Atoi(rows)
	if err != nil || height <= 0 {
		return 0, 0, errors.Errorf("[parseDimensions] bad height in %q", dims)
	}
	return width, height, nil
}

// loadFile decodes a pattern file by extension and centers it on the
// board. A rule carried by the file applies unless -r was given.
func loadFile(grid *model.Grid, path string, ruleFlagSet bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[loadFile] failed to read file: %+v", path)
	}

	matrix, info, err := codec.Decode(string(data), codec.FormatForPath(path))
	if err != nil {
		return errors.Wrapf(err, "[loadFile] failed to decode file: %+v", path)
	}
	if info.Rule != "" && !ruleFlagSet {
		if err := grid.SetRule(info.Rule); err != nil {
			return errors.Wrapf(err, "[loadFile] file carries a bad rule: %+v", path)
		}
	}
	grid.Replace(matrix)
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
