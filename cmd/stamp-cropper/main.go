package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	stampcropper "github.com/menta2k/stamp-cropper"
	"github.com/menta2k/stamp-cropper/internal/config"
	"github.com/menta2k/stamp-cropper/internal/utils"
	"github.com/menta2k/stamp-cropper/pkg/cropper"
	"github.com/menta2k/stamp-cropper/pkg/types"
)

const usage = `usage: %s [-config file] <command> [flags]

commands:
  crop   -in file|dir|URL [-out dir] [-debug]   crop single images
  batch  -db dir [-workers N]               crop every image of a stamps database in place
  fetch  -url URL -out file                 download an image and crop it
`

func main() {
	log.SetFlags(log.LstdFlags)

	var configPath string
	flag.StringVar(&configPath, "config", config.GetConfigPath(), "configuration file (JSON)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, usage, filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	args := flag.Args()
	switch args[0] {
	case "crop":
		err = runCrop(ctx, cfg, args[1:])
	case "batch":
		err = runBatch(ctx, cfg, args[1:])
	case "fetch":
		err = runFetch(ctx, cfg, args[1:])
	default:
		flag.Usage()
		log.Fatalf("Unknown command: %s", args[0])
	}
	if err != nil {
		log.Fatal(err)
	}
}

// outputFlags registers the flags that override the output section of the config
func outputFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.Output.DefaultFormat, "ext", cfg.Output.DefaultFormat, "output format: jpg|png|webp")
	fs.IntVar(&cfg.Output.Quality, "quality", cfg.Output.Quality, "JPEG/WebP output quality (1-100)")
	fs.BoolVar(&cfg.Output.Lossless, "lossless", cfg.Output.Lossless, "WebP output lossless mode")
}

func newStampCropper(cfg *config.Config) (*stampcropper.StampCropper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return stampcropper.NewWithOptions(stampcropper.Options{
		Save: types.SaveOptions{
			Format:   strings.ToLower(cfg.Output.DefaultFormat),
			Quality:  cfg.Output.Quality,
			Lossless: cfg.Output.Lossless,
		},
		Workers:      cfg.Batch.Workers,
		FetchTimeout: cfg.Fetch.Timeout(),
		UserAgent:    cfg.Fetch.UserAgent,
		MinImageSize: cfg.Fetch.MinImageSize,
	}), nil
}

func runCrop(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("crop", flag.ExitOnError)
	var in, outDir string
	var debug, verbose bool
	fs.StringVar(&in, "in", "", "input image, image URL or directory of images")
	fs.StringVar(&outDir, "out", "out", "output directory")
	fs.StringVar(&cfg.Output.Suffix, "suffix", cfg.Output.Suffix, "suffix added to output file names")
	fs.StringVar(&cfg.Output.DebugDir, "dbgdir", cfg.Output.DebugDir, "directory for debug overlays (defaults to -out)")
	fs.BoolVar(&debug, "debug", false, "write debug overlay images")
	fs.BoolVar(&verbose, "v", false, "print the detection log of every image")
	outputFlags(fs, cfg)
	fs.Parse(args)

	if in == "" {
		return fmt.Errorf("crop: -in is required")
	}

	sc, err := newStampCropper(cfg)
	if err != nil {
		return err
	}

	inputs := []string{in}
	if utils.DirExists(in) {
		if inputs, err = utils.ListImageFiles(in); err != nil {
			return fmt.Errorf("failed to list %s: %w", in, err)
		}
	}

	debugDir := cfg.Output.DebugDir
	if debugDir == "" {
		debugDir = outDir
	}
	for _, dir := range []string{outDir, debugDir} {
		if err := utils.EnsureDir(dir); err != nil {
			return err
		}
	}

	cropped := 0
	for _, input := range inputs {
		output := utils.GenerateOutputFilename(input, outDir, cfg.Output.Suffix, cfg.Output.DefaultFormat)
		result, err := sc.CropFile(ctx, input, output, debug)
		if err != nil {
			log.Printf("%s: %v", input, err)
			continue
		}

		if verbose {
			for _, line := range result.Log {
				log.Printf("=> %s", line)
			}
		}

		if result.Rect != nil {
			cropped++
			log.Printf("cropped %s to %v (%s frame) -> %s", input, *result.Rect, result.Hypothesis, output)
		} else {
			log.Printf("no frame found in %s, copied -> %s", input, output)
		}

		if debug && result.DebugImage != nil {
			writeDebugImage(sc, result, input, debugDir)
		}
	}

	log.Printf("cropped %d of %d images", cropped, len(inputs))
	return nil
}

func writeDebugImage(sc *stampcropper.StampCropper, result cropper.CropResult, input, dir string) {
	path := utils.GenerateOutputFilename(input, dir, "-debug", "png")
	if err := sc.SaveImage(result.DebugImage, path); err != nil {
		log.Printf("debug overlay save failed: %v", err)
		return
	}
	log.Printf("wrote %s", path)
}

func runBatch(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	var db, report string
	fs.StringVar(&db, "db", "", "stamps database directory containing stamps.json")
	fs.IntVar(&cfg.Batch.Workers, "workers", cfg.Batch.Workers, "number of workers (0 = one per CPU)")
	fs.StringVar(&report, "report", "", "write a JSON summary to this file")
	outputFlags(fs, cfg)
	fs.Parse(args)

	if db == "" {
		return fmt.Errorf("batch: -db is required")
	}

	sc, err := newStampCropper(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	results, summary, err := sc.CropCatalog(ctx, db)
	if err != nil {
		return err
	}

	for _, r := range results {
		switch {
		case r.Err != nil:
			log.Printf("%s: %v", r.Path, r.Err)
		case r.Cropped:
			log.Printf("Cropped %s", r.Path)
		}
	}

	log.Printf("batch done in %s: %d images, %d cropped, %d unchanged, %d failed, mean coverage %.3f (sd %.3f)",
		time.Since(start).Round(time.Millisecond), summary.Total, summary.Cropped, summary.Unchanged,
		summary.Failed, summary.MeanCoverage, summary.StdDevCoverage)

	if report != "" {
		js, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(report, js, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

func runFetch(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	var url, out string
	fs.StringVar(&url, "url", "", "image URL")
	fs.StringVar(&out, "out", "", "destination file")
	fs.IntVar(&cfg.Fetch.TimeoutSeconds, "timeout", cfg.Fetch.TimeoutSeconds, "download timeout in seconds")
	outputFlags(fs, cfg)
	fs.Parse(args)

	if url == "" || out == "" {
		return fmt.Errorf("fetch: -url and -out are required")
	}

	sc, err := newStampCropper(cfg)
	if err != nil {
		return err
	}
	if err := utils.EnsureDir(filepath.Dir(out)); err != nil {
		return err
	}

	result, err := sc.FetchAndCrop(ctx, url, out)
	if err != nil {
		return err
	}
	if result.Rect != nil {
		log.Printf("wrote %s cropped to %v", out, *result.Rect)
	} else {
		log.Printf("wrote %s (no frame found)", out)
	}
	return nil
}
