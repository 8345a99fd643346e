package panel

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/planet-shader/internal/config"
	"github.com/iburimskiy/planet-shader/internal/params"
	"github.com/iburimskiy/planet-shader/internal/texture"
)

var (
	backgroundColor = color.RGBA{R: 20, G: 25, B: 35, A: 220}
	borderColor     = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	headerColor     = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	hoverColor      = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	pressedColor    = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	trackColor      = color.RGBA{R: 45, G: 52, B: 68, A: 255}
	fillColor       = color.RGBA{R: 150, G: 170, B: 200, A: 255}
)

// Draw renders the panel. thumb returns the GPU image bound to a slot.
func (p *Panel) Draw(dst *ebiten.Image, thumb func(texture.Slot) *ebiten.Image) {
	if p.hidden {
		return
	}
	b := p.Bounds()
	vector.DrawFilledRect(dst, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), backgroundColor, false)
	vector.StrokeRect(dst, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), 1, borderColor, false)

	cur := p.store.Get()
	for _, w := range p.widgets {
		switch w := w.(type) {
		case *header:
			p.fillRect(dst, w.rect, headerColor)
			p.text(dst, w.title, w.rect.Min.X+4, w.rect.Min.Y)
		case *slider:
			p.drawSlider(dst, w, cur)
		case *colorControl:
			c := w.get(cur)
			p.text(dst, w.label, w.rect.Min.X, w.rect.Min.Y)
			p.fillRect(dst, w.swatch, color.RGBA{R: byteOf(c[0]), G: byteOf(c[1]), B: byteOf(c[2]), A: 255})
			p.strokeRect(dst, w.swatch, p.edge(w))
			p.text(dst, formatRGB(c), w.swatch.Max.X+6, w.rect.Min.Y)
		case *checkbox:
			p.strokeRect(dst, w.box, p.edge(w))
			if cur.Features.Has(w.feature) {
				p.fillRect(dst, w.box.Inset(3), fillColor)
			}
			p.text(dst, w.feature.Label(), w.box.Max.X+6, w.rect.Min.Y)
		case *textureCell:
			p.drawTextureCell(dst, w, thumb)
		}
	}
}

func (p *Panel) drawSlider(dst *ebiten.Image, s *slider, cur params.Params) {
	v := s.get(cur)
	p.text(dst, s.label, s.rect.Min.X, s.rect.Min.Y)
	p.fillRect(dst, s.bar, trackColor)

	filled := s.bar
	filled.Max.X = s.bar.Min.X + int(fraction(s.rng, v)*float64(s.bar.Dx()))
	fc := fillColor
	if p.active == s {
		fc = headerColor
	}
	p.fillRect(dst, filled, fc)
	p.strokeRect(dst, s.bar, p.edge(s))
	p.text(dst, formatValue(s.rng, v), s.bar.Max.X+6, s.rect.Min.Y)
}

func (p *Panel) drawTextureCell(dst *ebiten.Image, c *textureCell, thumb func(texture.Slot) *ebiten.Image) {
	p.text(dst, c.slot.String(), c.rect.Min.X, c.rect.Min.Y-2)

	if thumb != nil {
		if img := thumb(c.slot); img != nil {
			op := &ebiten.DrawImageOptions{}
			sz := img.Bounds().Size()
			op.GeoM.Scale(float64(c.thumb.Dx())/float64(sz.X), float64(c.thumb.Dy())/float64(sz.Y))
			op.GeoM.Translate(float64(p.origin.X+c.thumb.Min.X), float64(p.origin.Y+c.thumb.Min.Y))
			op.Filter = ebiten.FilterLinear
			dst.DrawImage(img, op)
		}
	}
	p.strokeRect(dst, c.thumb, p.edge(c))

	p.button(dst, c.file, "File")
	p.button(dst, c.url, "URL")
}

// button follows the look of the visualizer's Open File button.
func (p *Panel) button(dst *ebiten.Image, r image.Rectangle, label string) {
	bg := headerColor
	if p.hovered != nil {
		local := r.Add(p.origin)
		x, y := ebiten.CursorPosition()
		if image.Pt(x, y).In(local) {
			bg = hoverColor
			if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
				bg = pressedColor
			}
		}
	}
	p.fillRect(dst, r, bg)
	p.strokeRect(dst, r, fillColor)
	textX := r.Min.X + (r.Dx()-len(label)*config.CharWidth)/2
	p.text(dst, label, textX, r.Min.Y+1)
}

func (p *Panel) edge(w widget) color.Color {
	if p.hovered == w {
		return fillColor
	}
	return borderColor
}

func (p *Panel) fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	r = r.Add(p.origin)
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func (p *Panel) strokeRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	r = r.Add(p.origin)
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, c, false)
}

func (p *Panel) text(dst *ebiten.Image, s string, x, y int) {
	ebitenutil.DebugPrintAt(dst, s, p.origin.X+x, p.origin.Y+y)
}

func byteOf(v float64) uint8 {
	return uint8(clamp01(v/255)*255 + 0.5)
}
