package params

import (
	"testing"

	"github.com/iburimskiy/planet-shader/internal/shader"
)

func TestDefaults(t *testing.T) {
	p := Defaults()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"antialias", p.Antialias, 0.98},
		{"rotation speed", p.RotationSpeed, 0.02},
		{"planet size", p.PlanetSize, 10},
		{"aura size", p.AuraSize, 0.3},
		{"light x", p.LightPosX, 1},
		{"light y", p.LightPosY, 0},
		{"light z", p.LightPosZ, 0.3},
		{"specular", p.SpecularPower, 16},
		{"normal weight", p.NormalWeight, 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, tt.got)
		}
	}
	if p.LightColor != (RGB{255, 255, 255}) || p.AuraColor != (RGB{255, 255, 255}) {
		t.Errorf("Expected white light and aura, got %v %v", p.LightColor, p.AuraColor)
	}
	if p.AmbientColor != (RGB{10, 10, 10}) {
		t.Errorf("Expected ambient 10,10,10, got %v", p.AmbientColor)
	}
	if p.Features != shader.DefaultFeatures {
		t.Errorf("Expected all features enabled, got %s", p.Features)
	}
}

func TestSetNotifiesSynchronously(t *testing.T) {
	s := NewStore(Defaults())

	var calls int
	var seen Params
	s.Subscribe(func(p Params) {
		calls++
		seen = p
	})

	s.Set(func(p *Params) { p.RotationX = 45 })
	if calls != 1 {
		t.Fatalf("Expected 1 notification, got %d", calls)
	}
	if seen.RotationX != 45 {
		t.Errorf("Listener saw RotationX %v, want 45", seen.RotationX)
	}

	s.Set(func(p *Params) { p.Features = p.Features.Without(shader.FeatureSpec) })
	if calls != 2 {
		t.Fatalf("Expected 2 notifications, got %d", calls)
	}
	if seen.Features.Has(shader.FeatureSpec) {
		t.Error("Listener should see specular disabled")
	}
}

func TestSetDoesNotClamp(t *testing.T) {
	s := NewStore(Defaults())
	s.Set(func(p *Params) { p.AuraSize = 7 })
	if got := s.Get().AuraSize; got != 7 {
		t.Errorf("Expected out-of-range write to be kept, got %v", got)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewStore(Defaults())
	p := s.Get()
	p.LightColor[0] = 0
	if s.Get().LightColor[0] != 255 {
		t.Error("Mutating a copy must not change the store")
	}
}
