package game

import (
	"errors"
	"log"
	"strings"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/planet-shader/internal/params"
	"github.com/iburimskiy/planet-shader/internal/texture"
)

var imageFilters = zenity.FileFilters{{
	Name:     "Images",
	Patterns: []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.tif", "*.tiff", "*.webp", "*.tga"},
}}

// Dialogs block, so each one runs as a queue task and hands its answer back
// to the game goroutine.

func (g *Game) pickColor(label string, current params.RGB, apply func(params.RGB)) {
	g.queue.Go(func() func() {
		c, err := zenity.SelectColor(
			zenity.Title(label+" colour"),
			zenity.Color(toColor(current)),
		)
		if err != nil {
			return g.dialogError(err)
		}
		return func() { apply(fromColor(c)) }
	})
}

func (g *Game) pickFile(slot texture.Slot) {
	g.queue.Go(func() func() {
		filename, err := zenity.SelectFile(
			zenity.Title("Open "+slot.String()+" map"),
			imageFilters,
		)
		if err != nil {
			return g.dialogError(err)
		}
		log.Printf("game: chose %s for %s", filename, slot)
		return func() { g.loader.LoadFile(slot, filename) }
	})
}

func (g *Game) enterURL(slot texture.Slot) {
	g.queue.Go(func() func() {
		url, err := zenity.Entry(
			"Image URL for the "+slot.String()+" map:",
			zenity.Title("Load from URL"),
		)
		if err != nil {
			return g.dialogError(err)
		}
		url = strings.TrimSpace(url)
		if url == "" {
			return nil
		}
		return func() { g.loader.LoadURL(slot, url) }
	})
}

// notify shows a blocking error box. It is called from task goroutines.
func (g *Game) notify(msg string) {
	if err := zenity.Error(msg, zenity.Title("Image load failed"), zenity.ErrorIcon); err != nil {
		log.Printf("game: notification: %v", err)
	}
}

func (g *Game) dialogError(err error) func() {
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	return func() { g.lastErr = err }
}
