// Package panel is the parameter panel: folders of sliders, colour swatches,
// feature checkboxes and texture slots drawn down the right edge of the window.
package panel

import (
	"image"

	"github.com/iburimskiy/planet-shader/internal/params"
	"github.com/iburimskiy/planet-shader/internal/texture"
)

// Input is one tick of pointer state in screen coordinates.
type Input struct {
	Cursor       image.Point
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// Actions are the controls that need a dialog or a texture load. The panel
// only reports the request; the game decides how to serve it.
type Actions struct {
	PickColor func(label string, current params.RGB, apply func(params.RGB))
	PickFile  func(slot texture.Slot)
	EnterURL  func(slot texture.Slot)
}

// Panel binds controls to a parameter store. Each control change goes
// through Store.Set, so subscribers see it before Update returns.
type Panel struct {
	store   *params.Store
	actions Actions

	origin  image.Point
	size    image.Point
	widgets []widget
	hidden  bool

	active  *slider // slider being dragged
	hovered widget
}

// New lays the panel out with its top-left corner at origin.
func New(store *params.Store, origin image.Point, width int, actions Actions) *Panel {
	widgets, height := controls(width)
	return &Panel{
		store:   store,
		actions: actions,
		origin:  origin,
		size:    image.Pt(width, height),
		widgets: widgets,
	}
}

// Bounds is the panel area in screen coordinates.
func (p *Panel) Bounds() image.Rectangle {
	return image.Rectangle{Min: p.origin, Max: p.origin.Add(p.size)}
}

func (p *Panel) Hidden() bool { return p.hidden }

func (p *Panel) ToggleHidden() {
	p.hidden = !p.hidden
	p.active = nil
	p.hovered = nil
}

// Contains reports whether pt is over the visible panel.
func (p *Panel) Contains(pt image.Point) bool {
	return !p.hidden && pt.In(p.Bounds())
}

// SlotAt returns the texture slot whose cell is under pt.
func (p *Panel) SlotAt(pt image.Point) (texture.Slot, bool) {
	if !p.Contains(pt) {
		return 0, false
	}
	local := pt.Sub(p.origin)
	for _, w := range p.widgets {
		if c, ok := w.(*textureCell); ok && local.In(c.rect) {
			return c.slot, true
		}
	}
	return 0, false
}

// Busy reports whether a slider drag is in progress.
func (p *Panel) Busy() bool { return p.active != nil }

// Update handles one tick of input.
func (p *Panel) Update(in Input) {
	if p.hidden {
		return
	}
	local := in.Cursor.Sub(p.origin)

	p.hovered = nil
	for _, w := range p.widgets {
		if local.In(w.bounds()) {
			p.hovered = w
			break
		}
	}

	if in.JustPressed && p.hovered != nil {
		p.press(p.hovered, local)
	}
	if p.active != nil && in.Pressed {
		p.drag(p.active, local.X)
	}
	if in.JustReleased {
		p.active = nil
	}
}

func (p *Panel) press(w widget, local image.Point) {
	switch w := w.(type) {
	case *slider:
		if local.In(w.bar.Inset(-4)) {
			p.active = w
		}
	case *checkbox:
		f := w.feature
		p.store.Set(func(pp *params.Params) { pp.Features = pp.Features.Toggle(f) })
	case *colorControl:
		if p.actions.PickColor != nil {
			set := w.set
			p.actions.PickColor(w.label, w.get(p.store.Get()), func(c params.RGB) {
				p.store.Set(func(pp *params.Params) { set(pp, c) })
			})
		}
	case *textureCell:
		switch {
		case local.In(w.file) && p.actions.PickFile != nil:
			p.actions.PickFile(w.slot)
		case local.In(w.url) && p.actions.EnterURL != nil:
			p.actions.EnterURL(w.slot)
		}
	}
}

func (p *Panel) drag(s *slider, x int) {
	frac := float64(x-s.bar.Min.X) / float64(s.bar.Dx())
	v := sliderValue(s.rng, frac)
	if v == s.get(p.store.Get()) {
		return
	}
	p.store.Set(func(pp *params.Params) { s.set(pp, v) })
}
