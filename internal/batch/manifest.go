package batch

import (
	"encoding/json"
	"os"

	"hypercube-ar/internal/mathutil"
)

// Manifest describes a rendered animation.
type Manifest struct {
	Width           int              `json:"width"`
	Height          int              `json:"height"`
	Format          string           `json:"format"`
	Wireframe       bool             `json:"wireframe"`
	HorizontalPlane mathutil.Plane4D `json:"horizontal_plane"`
	VerticalPlane   mathutil.Plane4D `json:"vertical_plane"`
	Frames          []ManifestEntry  `json:"frames"`
}

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame      int     `json:"frame"`
	Image      string  `json:"image"`
	RotationX  float32 `json:"rotation_x"`
	RotationY  float32 `json:"rotation_y"`
	Background string  `json:"background,omitempty"`
}

// NewManifest collects the successful frames of a run.
func NewManifest(cfg Config, results []Result) Manifest {
	m := Manifest{
		Width:           cfg.Width,
		Height:          cfg.Height,
		Format:          cfg.Format,
		HorizontalPlane: cfg.Settings.HorizontalPlane,
		VerticalPlane:   cfg.Settings.VerticalPlane,
		Frames:          []ManifestEntry{},
	}
	if cfg.Mesh != nil {
		m.Wireframe = cfg.Mesh.Wireframe()
	}
	for _, r := range results {
		if !r.Success {
			continue
		}
		e := ManifestEntry{
			Frame:     r.Frame,
			Image:     r.Image,
			RotationX: r.Rotation.X,
			RotationY: r.Rotation.Y,
		}
		if cfg.Background != nil {
			e.Background = cfg.Background.Path(r.Frame)
		}
		m.Frames = append(m.Frames, e)
	}
	return m
}

// WriteManifest writes manifest.json to path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
