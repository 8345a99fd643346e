// Package uniform projects the parameter record onto the values the planet
// shader consumes.
package uniform

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/planet-shader/internal/config"
	"github.com/iburimskiy/planet-shader/internal/mathutil"
	"github.com/iburimskiy/planet-shader/internal/params"
	"github.com/iburimskiy/planet-shader/internal/shader"
)

// Uniforms is the full value set for one draw.
type Uniforms struct {
	Time          float64
	Antialias     float64
	RotationSpeed float64
	PlanetSize    float64
	AuraSize      float64
	LightPos      mgl64.Vec3
	LightColor    mgl64.Vec3
	AuraColor     mgl64.Vec3
	AmbientColor  mgl64.Vec3
	Rotation      mgl64.Mat3
	SpecularPower float64
	NormalWeight  float64

	Features shader.FeatureSet
}

// Project derives the uniforms from p. seconds is the time since start.
func Project(p params.Params, seconds float64) Uniforms {
	return Uniforms{
		Time:          seconds,
		Antialias:     p.Antialias,
		RotationSpeed: -p.RotationSpeed,
		PlanetSize:    p.PlanetSize,
		AuraSize:      p.AuraSize,
		LightPos:      normalize(mgl64.Vec3{p.LightPosX, p.LightPosY, p.LightPosZ}),
		LightColor:    Color(p.LightColor),
		AuraColor:     Color(p.AuraColor),
		AmbientColor:  Color(p.AmbientColor),
		Rotation:      mathutil.Rotate(p.RotationX, p.RotationY, p.RotationZ),
		SpecularPower: Specular(p.SpecularPower),
		NormalWeight:  p.NormalWeight,
		Features:      p.Features,
	}
}

// Color maps byte channels to [0,1].
func Color(c params.RGB) mgl64.Vec3 {
	return mgl64.Vec3{c[0] / 255, c[1] / 255, c[2] / 255}
}

// Specular inverts the panel scale: 0 on the panel is the sharpest highlight.
func Specular(v float64) float64 {
	return config.MaxSpecularPower - v
}

// The zero vector has no direction and is passed through unchanged.
func normalize(v mgl64.Vec3) mgl64.Vec3 {
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}

// Map returns the Kage uniform map. Keys match the shader's uniform names.
func (u Uniforms) Map() map[string]any {
	return map[string]any{
		"Time":          float32(u.Time),
		"Antialias":     float32(u.Antialias),
		"RotationSpeed": float32(u.RotationSpeed),
		"AuraSize":      float32(u.AuraSize),
		"LightPos":      vec3(u.LightPos),
		"LightColor":    vec3(u.LightColor),
		"AuraColor":     vec3(u.AuraColor),
		"AmbientColor":  vec3(u.AmbientColor),
		"Rotation":      mathutil.Float32(u.Rotation),
		"SpecularPower": float32(u.SpecularPower),
		"NormalWeight":  float32(u.NormalWeight),
	}
}

func vec3(v mgl64.Vec3) []float32 {
	return []float32{float32(v[0]), float32(v[1]), float32(v[2])}
}
