package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"hypercube-ar/internal/frame"
	"hypercube-ar/internal/hypercube"
	"hypercube-ar/internal/mathutil"
	"hypercube-ar/internal/tracking"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Output formats.
const (
	FormatWebP = "webp"
	FormatTGA  = "tga"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir    string `json:"base_dir" yaml:"base_dir"`
	OutputDir  string `json:"output_dir" yaml:"output_dir"`
	Background string `json:"background" yaml:"background"`

	// Render settings
	Width       int    `json:"width" yaml:"width"`
	Height      int    `json:"height" yaml:"height"`
	Supersample int    `json:"supersample" yaml:"supersample"`
	Frames      int    `json:"frames" yaml:"frames"`
	Workers     int    `json:"workers" yaml:"workers"`
	Format      string `json:"format" yaml:"format"`

	// Mesh
	Wireframe bool    `json:"wireframe" yaml:"wireframe"`
	Thickness float32 `json:"thickness" yaml:"thickness"`

	// 4D projection
	HorizontalPlane string  `json:"horizontal_plane" yaml:"horizontal_plane"`
	VerticalPlane   string  `json:"vertical_plane" yaml:"vertical_plane"`
	FOV4D           float32 `json:"fov_4d" yaml:"fov_4d"` // degrees
	Distance4D      float32 `json:"distance_4d" yaml:"distance_4d"`
	MaxInstances    int     `json:"max_instances" yaml:"max_instances"`

	// Pan gesture velocity applied once per frame, in gesture units
	// (points per second); scaled by frame.PanScale. Pointers so that an
	// explicit 0 holds the hypercube at rest.
	PanVelocityX *float32 `json:"pan_velocity_x" yaml:"pan_velocity_x"`
	PanVelocityY *float32 `json:"pan_velocity_y" yaml:"pan_velocity_y"`

	// Tracking simulator
	Anchors     int      `json:"anchors" yaml:"anchors"`
	OrbitRadius float32  `json:"orbit_radius" yaml:"orbit_radius"`
	OrbitHeight *float32 `json:"orbit_height" yaml:"orbit_height"`
	OrbitStep   *float32 `json:"orbit_step" yaml:"orbit_step"` // degrees per frame
	CameraFOV   float32  `json:"camera_fov" yaml:"camera_fov"` // degrees
}

// Float returns a pointer to v, for the optional fields of Config.
func Float(v float32) *float32 { return &v }

// Load reads a JSON or YAML (.yaml, .yml) config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	BaseDir    string
	OutputDir  string
	Background string
	Format     string
	Frames     int
	Workers    int
	Width      int
	Height     int
	Wireframe  bool

	HorizontalPlane string
	VerticalPlane   string
}

// Resolve applies CLI overrides, then fills every unset field with its
// default. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.BaseDir != "" {
		c.BaseDir = flags.BaseDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Background != "" {
		c.Background = flags.Background
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Wireframe {
		c.Wireframe = true
	}
	if flags.HorizontalPlane != "" {
		c.HorizontalPlane = flags.HorizontalPlane
	}
	if flags.VerticalPlane != "" {
		c.VerticalPlane = flags.VerticalPlane
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	// Resolve relative paths against base dir
	if c.BaseDir != "" {
		if !filepath.IsAbs(c.OutputDir) {
			c.OutputDir = filepath.Join(c.BaseDir, c.OutputDir)
		}
		if c.Background != "" && !filepath.IsAbs(c.Background) {
			c.Background = filepath.Join(c.BaseDir, c.Background)
		}
	}

	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 90
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Format == "" {
		c.Format = FormatWebP
	}
	c.Format = strings.ToLower(c.Format)
	if c.Thickness == 0 {
		c.Thickness = hypercube.DefaultThickness
	}
	if c.HorizontalPlane == "" {
		c.HorizontalPlane = mathutil.PlaneXW.String()
	}
	if c.VerticalPlane == "" {
		c.VerticalPlane = mathutil.PlaneZW.String()
	}
	if c.FOV4D == 0 {
		c.FOV4D = mathutil.FOV4DDegrees
	}
	if c.Distance4D == 0 {
		c.Distance4D = mathutil.ViewDistance4D
	}
	if c.MaxInstances <= 0 {
		c.MaxInstances = 1
	}
	if c.PanVelocityX == nil {
		c.PanVelocityX = Float(400)
	}
	if c.PanVelocityY == nil {
		c.PanVelocityY = Float(150)
	}
	if c.Anchors <= 0 {
		c.Anchors = 1
	}

	orbit := tracking.DefaultOrbit()
	if c.OrbitRadius == 0 {
		c.OrbitRadius = orbit.Radius
	}
	if c.OrbitHeight == nil {
		c.OrbitHeight = Float(orbit.Height)
	}
	if c.OrbitStep == nil {
		c.OrbitStep = Float(1)
	}
	if c.CameraFOV == 0 {
		c.CameraFOV = 60
	}
}

// Validate checks a resolved config.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Width <= 0 || c.Height <= 0 {
		bad("size %dx%d", c.Width, c.Height)
	}
	if c.Supersample < 1 || c.Supersample > 8 {
		bad("supersample %d not in [1,8]", c.Supersample)
	}
	if c.Frames <= 0 {
		bad("frames %d", c.Frames)
	}
	if c.Format != FormatWebP && c.Format != FormatTGA {
		bad("format %q", c.Format)
	}
	if !(c.Thickness > 0) || math.IsInf(float64(c.Thickness), 0) {
		bad("thickness %v", c.Thickness)
	}
	if _, err := mathutil.ParsePlane(c.HorizontalPlane); err != nil {
		bad("horizontal_plane: %v", err)
	}
	if _, err := mathutil.ParsePlane(c.VerticalPlane); err != nil {
		bad("vertical_plane: %v", err)
	}
	if !(c.FOV4D > 0 && c.FOV4D < 180) {
		bad("fov_4d %v not in (0,180)", c.FOV4D)
	}
	if !(c.CameraFOV > 0 && c.CameraFOV < 180) {
		bad("camera_fov %v not in (0,180)", c.CameraFOV)
	}
	if !(c.Distance4D > 0) {
		bad("distance_4d %v", c.Distance4D)
	}
	if c.MaxInstances <= 0 {
		bad("max_instances %d", c.MaxInstances)
	}
	if !(c.OrbitRadius > 0) {
		bad("orbit_radius %v", c.OrbitRadius)
	}

	return errors.Join(errs...)
}

// UpdaterSettings converts the 4D section into frame updater settings.
// Call after Validate.
func (c *Config) UpdaterSettings() frame.Settings {
	h, _ := mathutil.ParsePlane(c.HorizontalPlane)
	v, _ := mathutil.ParsePlane(c.VerticalPlane)
	return frame.Settings{
		HorizontalPlane: h,
		VerticalPlane:   v,
		Distance:        c.Distance4D,
		FOV:             mathutil.Deg2Rad(c.FOV4D),
		MaxInstances:    c.MaxInstances,
	}
}

// MeshOptions returns the hypercube generation options.
func (c *Config) MeshOptions() hypercube.Options {
	return hypercube.Options{Wireframe: c.Wireframe, Thickness: c.Thickness}
}

// Orbit returns the simulated camera path. Call after Resolve.
func (c *Config) Orbit() tracking.Orbit {
	return tracking.Orbit{
		Radius: c.OrbitRadius,
		Height: *c.OrbitHeight,
		Step:   mathutil.Deg2Rad(*c.OrbitStep),
		FOV:    mathutil.Deg2Rad(c.CameraFOV),
	}
}

// PanVelocity returns the per-frame pan gesture. Call after Resolve.
func (c *Config) PanVelocity() (vx, vy float32) {
	return *c.PanVelocityX, *c.PanVelocityY
}
