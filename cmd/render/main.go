package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"hypercube-ar/internal/background"
	"hypercube-ar/internal/batch"
	"hypercube-ar/internal/config"
	"hypercube-ar/internal/hypercube"
	"hypercube-ar/internal/mathutil"
	"hypercube-ar/internal/raster"
	"hypercube-ar/internal/tracking"
)

// anchorSpacing separates simulated anchors along x, in meters.
const anchorSpacing = 0.3

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json, .yaml)")
	testN := flag.Int("test", 0, "Render only the first N frames")
	frames := flag.Int("frames", 0, "Number of frames (default: 90)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	baseDir := flag.String("data", "", "Base directory for relative paths")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	bgPath := flag.String("background", "", "Camera image or directory of images")
	format := flag.String("format", "", "Output format: webp or tga (default: webp)")
	width := flag.Int("width", 0, "Output width (default: 640)")
	height := flag.Int("height", 0, "Output height (default: 480)")
	wireframe := flag.Bool("wireframe", false, "Render edges as tubes instead of solid cells")
	hplane := flag.String("hplane", "", "Plane rotated by horizontal pans: XY, YZ, ZX, XW, YW, ZW or ID (default: XW)")
	vplane := flag.String("vplane", "", "Plane rotated by vertical pans (default: ZW)")
	noProgress := flag.Bool("no-progress", false, "Disable the progress bar")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			logger.Error("load config", "error", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		BaseDir:    *baseDir,
		OutputDir:  *outputDir,
		Background: *bgPath,
		Format:     *format,
		Frames:     *frames,
		Workers:    *workers,
		Width:      *width,
		Height:     *height,
		Wireframe:  *wireframe,

		HorizontalPlane: *hplane,
		VerticalPlane:   *vplane,
	})
	if *testN > 0 && *testN < cfg.Frames {
		cfg.Frames = *testN
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	mesh, err := hypercube.Build(cfg.MeshOptions(), raster.NewDevice(0))
	if err != nil {
		logger.Error("build mesh", "error", err)
		os.Exit(1)
	}
	logger.Debug("mesh", "label", mesh.Label(), "vertices", mesh.VertexCount(),
		"triangles", mesh.TriangleCount(), "wireframe", mesh.Wireframe())

	var bg *background.Source
	if cfg.Background != "" {
		bg, err = background.Open(cfg.Background)
		if err != nil {
			logger.Error("open background", "error", err)
			os.Exit(1)
		}
		logger.Info("background", "path", cfg.Background, "images", bg.Len())
	}

	anchors := tracking.NewAnchors(cfg.Anchors)
	for k := 0; k < cfg.Anchors; k++ {
		offset := (float32(k) - float32(cfg.Anchors-1)/2) * anchorSpacing
		anchors.Place(tracking.AnchorAt(0, mathutil.Vec3{offset, 0, 0}, 0, 0, 0))
	}

	vx, vy := cfg.PanVelocity()
	batchCfg := batch.Config{
		OutputDir:    cfg.OutputDir,
		Format:       cfg.Format,
		Width:        cfg.Width,
		Height:       cfg.Height,
		Supersample:  cfg.Supersample,
		Workers:      cfg.Workers,
		Frames:       cfg.Frames,
		Mesh:         mesh,
		Settings:     cfg.UpdaterSettings(),
		Orbit:        cfg.Orbit(),
		Anchors:      anchors.List(),
		PanVelocityX: vx,
		PanVelocityY: vy,
		Background:   bg,
		Clear:        [4]uint8{0, 0, 0, 255},
		Logger:       logger,
	}
	if !*noProgress {
		batchCfg.Progress = os.Stderr
	}

	fmt.Printf("Hypercube AR → %s\n", cfg.Format)
	fmt.Printf("Frames: %d, Workers: %d, Size: %dx%d\n", cfg.Frames, cfg.Workers, cfg.Width, cfg.Height)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(batchCfg)
	elapsed := time.Since(start)
	fmt.Println()
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, batch.NewManifest(batchCfg, results)); err != nil {
		logger.Warn("manifest write failed", "error", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
