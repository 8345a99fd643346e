package shader

import "strings"

// Feature is one compile-time shader code path.
type Feature uint8

const (
	FeatureTexture Feature = 1 << iota
	FeatureNight
	FeatureNormal
	FeatureSpec
)

// AllFeatures lists every feature in define order.
var AllFeatures = []Feature{FeatureTexture, FeatureNight, FeatureNormal, FeatureSpec}

// Define returns the preprocessor name that enables f.
func (f Feature) Define() string {
	switch f {
	case FeatureTexture:
		return "USE_TEXTURE"
	case FeatureNight:
		return "USE_NIGHT"
	case FeatureNormal:
		return "USE_NORMAL"
	case FeatureSpec:
		return "USE_SPEC"
	}
	return ""
}

// Label is the panel caption.
func (f Feature) Label() string {
	switch f {
	case FeatureTexture:
		return "Day texture"
	case FeatureNight:
		return "Night lights"
	case FeatureNormal:
		return "Normal map"
	case FeatureSpec:
		return "Specular map"
	}
	return ""
}

// FeatureSet is a set of enabled features.
type FeatureSet uint8

// DefaultFeatures has every code path enabled.
const DefaultFeatures = FeatureSet(FeatureTexture | FeatureNight | FeatureNormal | FeatureSpec)

func (s FeatureSet) Has(f Feature) bool { return s&FeatureSet(f) != 0 }

func (s FeatureSet) With(f Feature) FeatureSet { return s | FeatureSet(f) }

func (s FeatureSet) Without(f Feature) FeatureSet { return s &^ FeatureSet(f) }

// Toggle flips f.
func (s FeatureSet) Toggle(f Feature) FeatureSet { return s ^ FeatureSet(f) }

func (s FeatureSet) String() string {
	defs := Defines(s)
	if len(defs) == 0 {
		return "none"
	}
	return strings.Join(defs, "|")
}

// Defines maps a feature set to its preprocessor definition list.
func Defines(s FeatureSet) []string {
	defs := make([]string, 0, len(AllFeatures))
	for _, f := range AllFeatures {
		if s.Has(f) {
			defs = append(defs, f.Define())
		}
	}
	return defs
}
