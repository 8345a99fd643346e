package main

import (
	"context"
	"flag"
	"image"
	"log"
	"net/http"

	"github.com/iburimskiy/planet-shader/internal/config"
	"github.com/iburimskiy/planet-shader/internal/game"
	"github.com/iburimskiy/planet-shader/internal/texture"
)

func main() {
	log.SetPrefix("planet: ")
	log.SetFlags(log.Ltime)

	day := flag.String("day", "", "Day (diffuse) map: file path or http(s) URL")
	night := flag.String("night", "", "Night (emissive) map: file path or http(s) URL")
	normal := flag.String("normal", "", "Normal map: file path or http(s) URL")
	specular := flag.String("specular", "", "Specular map: file path or http(s) URL")
	snapshots := flag.String("snapshots", "", "Directory for WebP snapshots (default: ./snapshots)")
	tps := flag.Int("tps", 0, "Ticks per second (default: 60)")
	flag.Parse()

	opts, err := config.Resolve(config.Flags{
		Day:          *day,
		Night:        *night,
		Normal:       *normal,
		Specular:     *specular,
		SnapshotsDir: *snapshots,
		TPS:          *tps,
	})
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	bank, err := loadBank(opts)
	if err != nil {
		log.Fatalf("Error loading startup images: %v", err)
	}

	g, err := game.New(opts, bank)
	if err != nil {
		log.Fatalf("Error building shader: %v", err)
	}
	if err := g.Run(); err != nil {
		log.Fatal(err)
	}
}

// loadBank resolves each slot's startup image; slots without one get a
// generated placeholder. Startup images become the slots' defaults.
func loadBank(opts config.Options) (*texture.Bank, error) {
	dims := image.Pt(config.TextureWidth, config.TextureHeight)
	defaults := texture.Placeholders(dims)
	client := &http.Client{Timeout: config.FetchTimeout}
	for _, s := range texture.Slots {
		src := opts.Sources[s]
		if src == "" {
			continue
		}
		img, err := texture.LoadSource(context.Background(), client, src, dims)
		if err != nil {
			return nil, err
		}
		log.Printf("loaded %s map from %s", s, src)
		defaults[s] = img
	}
	return texture.NewBank(defaults), nil
}
