package texture

import "image"

// Bank holds the image bound to each slot plus the default it reverts to.
// Images are never modified in place; replacing a slot swaps its pointer and
// bumps its version, leaving the other slots untouched.
type Bank struct {
	defaults [SlotCount]*image.RGBA
	current  [SlotCount]*image.RGBA
	versions [SlotCount]uint64
	size     image.Point
}

// NewBank starts every slot on its default. All defaults must share one size.
func NewBank(defaults [SlotCount]*image.RGBA) *Bank {
	b := &Bank{defaults: defaults, current: defaults}
	if defaults[0] != nil {
		b.size = defaults[0].Bounds().Size()
	}
	for i := range b.versions {
		b.versions[i] = 1
	}
	return b
}

// Size is the common texture size new images must be fitted to.
func (b *Bank) Size() image.Point { return b.size }

func (b *Bank) Image(s Slot) *image.RGBA { return b.current[s] }

// Version changes every time the slot's image does.
func (b *Bank) Version(s Slot) uint64 { return b.versions[s] }

func (b *Bank) IsDefault(s Slot) bool { return b.current[s] == b.defaults[s] }

func (b *Bank) Set(s Slot, img *image.RGBA) {
	b.current[s] = img
	b.versions[s]++
}

// Reset puts the slot back on its default image.
func (b *Bank) Reset(s Slot) {
	b.Set(s, b.defaults[s])
}
