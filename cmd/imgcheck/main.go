package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/uriel-s/image-comparison-tool/internal/checker"
	"github.com/uriel-s/image-comparison-tool/internal/inspect"
	"github.com/uriel-s/image-comparison-tool/internal/logger"
)

func main() {
	logFile, err := logger.Init("imgcheck.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	cfg, err := parseFlags()
	if err == nil {
		err = validateConfig(cfg)
	}
	if err != nil {
		log.Printf("Configuration error: %v", err)
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err = checker.Run(cfg); err != nil {
		log.Printf("Application error: %v", err)
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags defines and parses command-line flags, returning them in a
// Config struct. The two positional arguments are the reference and
// test image paths.
func parseFlags() (*checker.Config, error) {
	cfg := &checker.Config{}

	var method string
	var custom []string
	var noSave bool

	pflag.StringVarP(&method, "method", "m", string(inspect.MethodStrategic), "Point selection method (strategic, grid, random, custom).")
	pflag.IntVarP(&cfg.Points, "points", "p", 8, "Number of test points to sample.")
	pflag.StringArrayVar(&custom, "custom", nil, "Custom point coordinate for --method=custom, format x,y (repeatable).")
	pflag.Float64VarP(&cfg.Threshold, "threshold", "t", inspect.DefaultThreshold, "Difference threshold below which a point passes.")
	pflag.Int64Var(&cfg.Seed, "seed", 1, "Seed for the random selection method.")
	pflag.StringVar(&cfg.Metric, "metric", inspect.MetricRGB, "Per-point difference metric (rgb, ciede2000).")
	pflag.IntVarP(&cfg.Workers, "workers", "c", runtime.NumCPU(), "Number of comparison goroutines.")
	pflag.StringVar(&cfg.ImageType, "type", "", "Type of the input images (e.g. jpeg, png, bmp, tiff). Inferred if not specified.")
	pflag.StringVarP(&cfg.OutputDirectory, "output", "o", "./reports", "Directory to save report artifacts.")
	pflag.BoolVar(&noSave, "no-save", false, "Do not save the report and visualization files.")
	pflag.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Quiet mode, minimal terminal output.")

	pflag.Parse()

	if pflag.NArg() != 2 {
		return nil, fmt.Errorf("expected exactly two arguments: <reference-image> <test-image>")
	}
	cfg.ReferencePath = pflag.Arg(0)
	cfg.TestPath = pflag.Arg(1)
	cfg.Save = !noSave

	m, err := inspect.ParseMethod(method)
	if err != nil {
		return nil, err
	}
	cfg.Method = m

	cfg.CustomPoints, err = parseCustomPoints(custom)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseCustomPoints converts "x,y" strings into coordinates.
func parseCustomPoints(raw []string) ([]inspect.Coordinate, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	points := make([]inspect.Coordinate, 0, len(raw))
	for _, s := range raw {
		parts := strings.SplitN(s, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid point format %q, use x,y", s)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
		y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("invalid point format %q, use x,y", s)
		}
		points = append(points, inspect.Coordinate{X: x, Y: y})
	}
	return points, nil
}

// validateConfig checks if the provided configuration is valid.
func validateConfig(cfg *checker.Config) error {
	for _, path := range []string{cfg.ReferencePath, cfg.TestPath} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("input file does not exist: %s", path)
		}
	}
	if cfg.Method == inspect.MethodCustom && len(cfg.CustomPoints) == 0 {
		return fmt.Errorf("--method=custom requires --custom points")
	}
	if cfg.Method != inspect.MethodCustom && len(cfg.CustomPoints) > 0 {
		return fmt.Errorf("--custom is only valid with --method=custom")
	}
	if cfg.Points <= 0 && cfg.Method != inspect.MethodCustom {
		return fmt.Errorf("--points must be a positive integer")
	}
	if cfg.Threshold < 0 {
		return fmt.Errorf("--threshold must not be negative")
	}
	if cfg.Workers <= 0 {
		return fmt.Errorf("--workers must be a positive integer")
	}
	if cfg.ImageType != "" {
		switch strings.ToLower(cfg.ImageType) {
		case "jpeg", "jpg", "png", "bmp", "tiff", "tif":
		default:
			return fmt.Errorf("unsupported image type: %s", cfg.ImageType)
		}
	}
	return nil
}
