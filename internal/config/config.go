package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// All texture slots are resampled to this size before upload.
	TextureWidth  = 1024
	TextureHeight = 512

	// Panel dimensions
	PanelWidth     = 280
	PanelPadding   = 10
	RowHeight      = 18
	FolderGap      = 6
	LabelWidth     = 84
	SliderBarWidth = 116
	SwatchWidth    = 40
	CheckboxSize   = 12
	ThumbWidth     = 78
	ThumbHeight    = 40
	ButtonWidth    = 40
	ButtonHeight   = 19
	CharWidth      = 6 // debug font glyph width

	DefaultTPS   = 60
	FetchTimeout = 20 * time.Second

	// Specular power control scale; the shader receives MaxSpecularPower - value.
	MaxSpecularPower = 36.0

	// Disc sizing: a plane of PlanetSize units seen from
	// CameraDistance units with a vertical field of view of CameraFOV degrees.
	CameraDistance = 10.0
	CameraFOV      = 55.0

	ZoomStep = 0.5
)

// Default parameter values.
const (
	DefaultAntialias     = 0.98
	DefaultRotationSpeed = 0.02
	DefaultPlanetSize    = 10.0
	DefaultAuraSize      = 0.3
	DefaultLightPosX     = 1.0
	DefaultLightPosY     = 0.0
	DefaultLightPosZ     = 0.3
	DefaultSpecularPower = 16.0
	DefaultNormalWeight  = 1.0
)

var (
	DefaultLightColor   = [3]float64{255, 255, 255}
	DefaultAuraColor    = [3]float64{255, 255, 255}
	DefaultAmbientColor = [3]float64{10, 10, 10}
)

// Range describes a panel control: its bounds and step.
type Range struct {
	Min, Max, Step float64
}

var (
	RotationRange      = Range{-180, 180, 1}
	RotationSpeedRange = Range{0, 0.5, 0.001}
	LightPosRange      = Range{-1, 1, 0.001}
	AuraSizeRange      = Range{0, 1, 0.001}
	AntialiasRange     = Range{0.5, 1, 0.001}
	SpecularRange      = Range{0, MaxSpecularPower, 1}
	NormalWeightRange  = Range{0, 1, 0.01}
	PlanetSizeRange    = Range{2, 20, ZoomStep}
)

// Flags holds CLI flag values.
type Flags struct {
	Day          string
	Night        string
	Normal       string
	Specular     string
	SnapshotsDir string
	TPS          int
}

// Options is the resolved startup configuration.
type Options struct {
	// Startup image sources per slot, in slot order (day, night, normal,
	// specular). Empty means a generated placeholder. Entries starting with
	// http:// or https:// are fetched.
	Sources      [4]string
	SnapshotsDir string
	TPS          int
}

// Resolve fills in defaults for anything the flags leave empty and checks
// that local startup images exist.
func Resolve(flags Flags) (Options, error) {
	opts := Options{
		Sources:      [4]string{flags.Day, flags.Night, flags.Normal, flags.Specular},
		SnapshotsDir: flags.SnapshotsDir,
		TPS:          flags.TPS,
	}

	for _, src := range opts.Sources {
		if src == "" || IsURL(src) {
			continue
		}
		if _, err := os.Stat(src); err != nil {
			return Options{}, fmt.Errorf("config: startup image: %w", err)
		}
	}

	if opts.SnapshotsDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Options{}, fmt.Errorf("config: working directory: %w", err)
		}
		opts.SnapshotsDir = filepath.Join(cwd, "snapshots")
	}
	if opts.TPS <= 0 {
		opts.TPS = DefaultTPS
	}
	return opts, nil
}

// IsURL reports whether src should be fetched rather than read from disk.
func IsURL(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
