package params

import (
	"github.com/iburimskiy/planet-shader/internal/config"
	"github.com/iburimskiy/planet-shader/internal/shader"
)

// RGB is a colour with channels in [0,255].
type RGB [3]float64

// Params holds every user-adjustable rendering parameter.
type Params struct {
	RotationX, RotationY, RotationZ float64 // degrees
	RotationSpeed                   float64 // turns per second, as shown on the panel

	LightPosX, LightPosY, LightPosZ float64

	LightColor   RGB
	AuraColor    RGB
	AmbientColor RGB

	AuraSize      float64
	Antialias     float64
	SpecularPower float64 // panel scale; see uniform.Project
	NormalWeight  float64
	PlanetSize    float64

	Features shader.FeatureSet
}

// Defaults returns the parameters of the initial render.
func Defaults() Params {
	return Params{
		RotationSpeed: config.DefaultRotationSpeed,
		LightPosX:     config.DefaultLightPosX,
		LightPosY:     config.DefaultLightPosY,
		LightPosZ:     config.DefaultLightPosZ,
		LightColor:    RGB(config.DefaultLightColor),
		AuraColor:     RGB(config.DefaultAuraColor),
		AmbientColor:  RGB(config.DefaultAmbientColor),
		AuraSize:      config.DefaultAuraSize,
		Antialias:     config.DefaultAntialias,
		SpecularPower: config.DefaultSpecularPower,
		NormalWeight:  config.DefaultNormalWeight,
		PlanetSize:    config.DefaultPlanetSize,
		Features:      shader.DefaultFeatures,
	}
}
