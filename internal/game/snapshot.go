package game

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/hajimehoshi/ebiten/v2"
)

const snapshotSize = 1024

// snapshot renders the planet alone into an offscreen square and writes it
// as WebP in the background. Must run inside Draw.
func (g *Game) snapshot() {
	off := ebiten.NewImage(snapshotSize, snapshotSize)
	defer off.Deallocate()
	off.Fill(color.Black)
	g.drawPlanet(off, snapshotSize, snapshotSize/2, snapshotSize/2)

	img := image.NewRGBA(image.Rect(0, 0, snapshotSize, snapshotSize))
	off.ReadPixels(img.Pix)

	dir := g.opts.SnapshotsDir
	name := filepath.Join(dir, fmt.Sprintf("planet-%s.webp", time.Now().Format("20060102-150405")))
	g.queue.Go(func() func() {
		if err := writeWebP(name, img); err != nil {
			return func() { g.lastErr = err }
		}
		return func() { g.status = "saved " + name }
	})
}

func writeWebP(name string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: encode %s: %w", name, err)
	}
	return f.Close()
}
