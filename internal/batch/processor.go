// Package batch renders hypercube animations offline with a worker pool.
package batch

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/schollz/progressbar/v3"

	"hypercube-ar/internal/background"
	"hypercube-ar/internal/frame"
	"hypercube-ar/internal/hypercube"
	"hypercube-ar/internal/postprocess"
	"hypercube-ar/internal/raster"
	"hypercube-ar/internal/tracking"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Format      string // "webp" or "tga"
	Width       int
	Height      int
	Supersample int
	Workers     int
	Frames      int

	// Mesh is shared read-only by every worker.
	Mesh     *hypercube.Mesh
	Settings frame.Settings
	Orbit    tracking.Orbit
	Anchors  []tracking.Anchor
	// PanVelocityX/Y is one pan gesture per frame, in gesture units.
	PanVelocityX float32
	PanVelocityY float32

	// Background is optional; without it frames are cleared to Clear.
	Background *background.Source
	Clear      [4]uint8

	Logger   *slog.Logger
	Progress io.Writer // nil disables the progress bar
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame    int
	Image    string // path relative to OutputDir
	Rotation frame.Rotation
	Success  bool
	Error    string
}

// FrameName returns the output file name of frame i.
func FrameName(i int, format string) string {
	return fmt.Sprintf("frame_%04d.%s", i, format)
}

// Run renders all frames using a worker pool.
func Run(cfg Config) []Result {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if cfg.Supersample < 1 {
		cfg.Supersample = 1
	}

	total := cfg.Frames
	results := make([]Result, total)
	var failed atomic.Int64

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		for i := range results {
			results[i] = Result{Frame: i, Error: err.Error()}
		}
		return results
	}

	var bar *progressbar.ProgressBar
	if cfg.Progress != nil {
		bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(cfg.Progress),
			progressbar.OptionSetDescription("rendering"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
		)
		defer bar.Close()
	}

	start := time.Now()
	logger.Info("batch start", "frames", total, "workers", workers,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), "supersample", cfg.Supersample)

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each worker owns its interaction state and updater.
			state := &frame.Interaction{}
			updater := frame.NewUpdater(cfg.Settings, state)
			updater.Resize(cfg.Width*cfg.Supersample, cfg.Height*cfg.Supersample)
			for idx := range frameChan {
				res := processFrame(cfg, updater, idx)
				results[idx] = res
				if !res.Success {
					failed.Add(1)
					logger.Warn("frame failed", "frame", idx, "error", res.Error)
				} else {
					logger.Debug("frame done", "frame", idx, "image", res.Image)
				}
				if bar != nil {
					bar.Add(1)
				}
			}
		}()
	}

	// Send work
	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()

	logger.Info("batch done", "frames", total, "failed", failed.Load(),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return results
}

// Rotation returns the accumulated rotation after i pan gestures of the
// configured velocity, replayed on state.
func Rotation(state *frame.Interaction, i int, vx, vy float32) frame.Rotation {
	state.Reset()
	for k := 0; k < i; k++ {
		state.PanVelocity(vx, vy)
	}
	return state.Snapshot()
}

func processFrame(cfg Config, updater *frame.Updater, i int) Result {
	res := Result{Frame: i, Image: FrameName(i, cfg.Format)}
	res.Rotation = Rotation(updater.Interaction(), i, cfg.PanVelocityX, cfg.PanVelocityY)

	img, err := renderFrame(cfg, updater, i)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	if err := writeImage(filepath.Join(cfg.OutputDir, res.Image), cfg.Format, img); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}

func renderFrame(cfg Config, updater *frame.Updater, i int) (*image.NRGBA, error) {
	w, h := updater.Viewport()
	uniforms := updater.Update(cfg.Orbit.Pose(i, w, h), cfg.Anchors)

	var bg *image.NRGBA
	if cfg.Background != nil {
		var err error
		if bg, err = cfg.Background.Frame(i); err != nil {
			return nil, err
		}
	}

	r := raster.Renderer{Width: w, Height: h, Clear: cfg.Clear}
	img, err := r.Render(cfg.Mesh, &uniforms, bg)
	if err != nil {
		return nil, err
	}

	// Post-processing: supersample downsample
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}
	return img, nil
}

func writeImage(path, format string, img *image.NRGBA) error {
	var encode func(io.Writer, image.Image) error
	switch format {
	case "webp":
		encode = func(w io.Writer, m image.Image) error {
			if err := nativewebp.Encode(w, m, nil); err != nil {
				return fmt.Errorf("WebP encode: %w", err)
			}
			return nil
		}
	case "tga":
		encode = func(w io.Writer, m image.Image) error {
			if err := tga.Encode(w, m); err != nil {
				return fmt.Errorf("TGA encode: %w", err)
			}
			return nil
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := encode(f, img); err != nil {
		return err
	}
	return f.Close()
}
