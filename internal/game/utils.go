package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/iburimskiy/planet-shader/internal/config"
	"github.com/iburimskiy/planet-shader/internal/params"
)

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// quadSide is the on-screen edge, in pixels, of the square holding the disc
// and its aura: a plane planetSize units wide seen from the camera distance.
func quadSide(planetSize, viewportHeight float64) float64 {
	visible := 2 * config.CameraDistance * math.Tan(config.CameraFOV/2*math.Pi/180)
	return planetSize / visible * viewportHeight
}

func toColor(c params.RGB) color.Color {
	return color.NRGBA{R: toByte(c[0]), G: toByte(c[1]), B: toByte(c[2]), A: 255}
}

func fromColor(c color.Color) params.RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return params.RGB{float64(n.R), float64(n.G), float64(n.B)}
}

func toByte(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

func clamp(v float64, r config.Range) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}
