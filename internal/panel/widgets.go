package panel

import (
	"fmt"
	"image"
	"math"

	"github.com/iburimskiy/planet-shader/internal/config"
	"github.com/iburimskiy/planet-shader/internal/params"
	"github.com/iburimskiy/planet-shader/internal/shader"
	"github.com/iburimskiy/planet-shader/internal/texture"
)

type widget interface {
	bounds() image.Rectangle
}

type header struct {
	rect  image.Rectangle
	title string
}

type slider struct {
	rect  image.Rectangle
	bar   image.Rectangle
	label string
	rng   config.Range
	get   func(params.Params) float64
	set   func(*params.Params, float64)
}

type colorControl struct {
	rect   image.Rectangle
	swatch image.Rectangle
	label  string
	get    func(params.Params) params.RGB
	set    func(*params.Params, params.RGB)
}

type checkbox struct {
	rect    image.Rectangle
	box     image.Rectangle
	feature shader.Feature
}

type textureCell struct {
	rect  image.Rectangle
	thumb image.Rectangle
	file  image.Rectangle
	url   image.Rectangle
	slot  texture.Slot
}

func (w *header) bounds() image.Rectangle       { return w.rect }
func (w *slider) bounds() image.Rectangle       { return w.rect }
func (w *colorControl) bounds() image.Rectangle { return w.rect }
func (w *checkbox) bounds() image.Rectangle     { return w.rect }
func (w *textureCell) bounds() image.Rectangle  { return w.rect }

// builder stacks rows top to bottom in panel coordinates.
type builder struct {
	x, y, w int
	out     []widget
}

func (b *builder) row() image.Rectangle {
	r := image.Rect(b.x, b.y, b.x+b.w, b.y+config.RowHeight)
	b.y += config.RowHeight
	return r
}

func (b *builder) folder(title string) {
	if len(b.out) > 0 {
		b.y += config.FolderGap
	}
	b.out = append(b.out, &header{rect: b.row(), title: title})
}

func (b *builder) slider(label string, rng config.Range, get func(params.Params) float64, set func(*params.Params, float64)) {
	r := b.row()
	bar := image.Rect(r.Min.X+config.LabelWidth, r.Min.Y+5, r.Min.X+config.LabelWidth+config.SliderBarWidth, r.Max.Y-5)
	b.out = append(b.out, &slider{rect: r, bar: bar, label: label, rng: rng, get: get, set: set})
}

func (b *builder) color(label string, get func(params.Params) params.RGB, set func(*params.Params, params.RGB)) {
	r := b.row()
	sw := image.Rect(r.Min.X+config.LabelWidth, r.Min.Y+3, r.Min.X+config.LabelWidth+config.SwatchWidth, r.Max.Y-3)
	b.out = append(b.out, &colorControl{rect: r, swatch: sw, label: label, get: get, set: set})
}

func (b *builder) checkbox(f shader.Feature) {
	r := b.row()
	off := (config.RowHeight - config.CheckboxSize) / 2
	box := image.Rect(r.Min.X, r.Min.Y+off, r.Min.X+config.CheckboxSize, r.Min.Y+off+config.CheckboxSize)
	b.out = append(b.out, &checkbox{rect: r, box: box, feature: f})
}

// textures lays the four slots out two per row.
func (b *builder) textures() {
	const labelH = 14
	cellW := b.w / 2
	cellH := labelH + config.ThumbHeight + config.FolderGap
	for i, s := range texture.Slots {
		x := b.x + (i%2)*cellW
		y := b.y + (i/2)*cellH
		thumb := image.Rect(x, y+labelH, x+config.ThumbWidth, y+labelH+config.ThumbHeight)
		bx := thumb.Max.X + 3
		file := image.Rect(bx, thumb.Min.Y, bx+config.ButtonWidth, thumb.Min.Y+config.ButtonHeight)
		url := image.Rect(bx, thumb.Max.Y-config.ButtonHeight, bx+config.ButtonWidth, thumb.Max.Y)
		b.out = append(b.out, &textureCell{
			rect:  image.Rect(x, y, x+cellW, y+cellH),
			thumb: thumb,
			file:  file,
			url:   url,
			slot:  s,
		})
	}
	b.y += 2 * cellH
}

// controls builds the panel in folder order.
func controls(width int) ([]widget, int) {
	b := &builder{x: config.PanelPadding, y: config.PanelPadding, w: width - 2*config.PanelPadding}

	b.folder("Color")
	b.color("Light",
		func(p params.Params) params.RGB { return p.LightColor },
		func(p *params.Params, c params.RGB) { p.LightColor = c })
	b.color("Ambient",
		func(p params.Params) params.RGB { return p.AmbientColor },
		func(p *params.Params, c params.RGB) { p.AmbientColor = c })
	b.color("Aura",
		func(p params.Params) params.RGB { return p.AuraColor },
		func(p *params.Params, c params.RGB) { p.AuraColor = c })

	b.folder("Light Position")
	b.slider("X", config.LightPosRange,
		func(p params.Params) float64 { return p.LightPosX },
		func(p *params.Params, v float64) { p.LightPosX = v })
	b.slider("Y", config.LightPosRange,
		func(p params.Params) float64 { return p.LightPosY },
		func(p *params.Params, v float64) { p.LightPosY = v })
	b.slider("Z", config.LightPosRange,
		func(p params.Params) float64 { return p.LightPosZ },
		func(p *params.Params, v float64) { p.LightPosZ = v })

	b.folder("Axis Rotation")
	b.slider("X", config.RotationRange,
		func(p params.Params) float64 { return p.RotationX },
		func(p *params.Params, v float64) { p.RotationX = v })
	b.slider("Y", config.RotationRange,
		func(p params.Params) float64 { return p.RotationY },
		func(p *params.Params, v float64) { p.RotationY = v })
	b.slider("Z", config.RotationRange,
		func(p params.Params) float64 { return p.RotationZ },
		func(p *params.Params, v float64) { p.RotationZ = v })

	b.folder("Misc control")
	b.slider("Aura Size", config.AuraSizeRange,
		func(p params.Params) float64 { return p.AuraSize },
		func(p *params.Params, v float64) { p.AuraSize = v })
	b.slider("Rot. Speed", config.RotationSpeedRange,
		func(p params.Params) float64 { return p.RotationSpeed },
		func(p *params.Params, v float64) { p.RotationSpeed = v })
	b.slider("Feathering", config.AntialiasRange,
		func(p params.Params) float64 { return p.Antialias },
		func(p *params.Params, v float64) { p.Antialias = v })

	b.folder("Surface")
	b.slider("Specular", config.SpecularRange,
		func(p params.Params) float64 { return p.SpecularPower },
		func(p *params.Params, v float64) { p.SpecularPower = v })
	b.slider("Normal Wt.", config.NormalWeightRange,
		func(p params.Params) float64 { return p.NormalWeight },
		func(p *params.Params, v float64) { p.NormalWeight = v })

	b.folder("Features")
	for _, f := range shader.AllFeatures {
		b.checkbox(f)
	}

	b.folder("Textures")
	b.textures()

	return b.out, b.y + config.PanelPadding
}

// sliderValue maps a bar fraction to a value snapped to the range's step.
func sliderValue(r config.Range, frac float64) float64 {
	v := r.Min + clamp01(frac)*(r.Max-r.Min)
	if r.Step > 0 {
		v = r.Min + math.Round((v-r.Min)/r.Step)*r.Step
	}
	return math.Max(r.Min, math.Min(r.Max, v))
}

// fraction is where v sits on the bar.
func fraction(r config.Range, v float64) float64 {
	if r.Max == r.Min {
		return 0
	}
	return clamp01((v - r.Min) / (r.Max - r.Min))
}

// formatValue prints v with as many decimals as the step needs.
func formatValue(r config.Range, v float64) string {
	decimals := 0
	if r.Step > 0 && r.Step < 1 {
		decimals = int(math.Ceil(-math.Log10(r.Step) - 1e-9))
	}
	return fmt.Sprintf("%.*f", decimals, v)
}

func formatRGB(c params.RGB) string {
	return fmt.Sprintf("%d,%d,%d", int(math.Round(c[0])), int(math.Round(c[1])), int(math.Round(c[2])))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
