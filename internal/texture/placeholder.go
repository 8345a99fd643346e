package texture

import (
	"image"
	"image/color"
	"math"
)

// Placeholders generates a default image per slot: a stylised day map, a
// matching night map with scattered lights, a flat normal map and an ocean
// specular mask.
func Placeholders(size image.Point) [SlotCount]*image.RGBA {
	var out [SlotCount]*image.RGBA
	for i := range out {
		out[i] = image.NewRGBA(image.Rectangle{Max: size})
	}

	for y := 0; y < size.Y; y++ {
		v := (float64(y) + 0.5) / float64(size.Y)
		lat := (0.5 - v) * math.Pi
		for x := 0; x < size.X; x++ {
			u := (float64(x) + 0.5) / float64(size.X)
			lon := (u - 0.5) * 2 * math.Pi

			h := elevation(lon, lat)
			land := h > 0
			ice := math.Abs(lat) > 1.25+0.1*math.Sin(lon*3)

			var day color.RGBA
			switch {
			case ice:
				day = color.RGBA{R: 235, G: 240, B: 245, A: 255}
			case land:
				// Greener near the equator, browner towards the tropics.
				r, g, b := hsvToRgb(110-60*math.Abs(math.Sin(lat*2)), 0.55, 0.35+0.25*h)
				day = color.RGBA{R: r, G: g, B: b, A: 255}
			default:
				r, g, b := hsvToRgb(215, 0.75, 0.45+0.2*h)
				day = color.RGBA{R: r, G: g, B: b, A: 255}
			}
			out[SlotDay].SetRGBA(x, y, day)

			night := color.RGBA{A: 255}
			if land && !ice && hash(x, y)%97 == 0 {
				night = color.RGBA{R: 255, G: 200, B: 120, A: 255}
			}
			out[SlotNight].SetRGBA(x, y, night)

			out[SlotNormal].SetRGBA(x, y, color.RGBA{R: 128, G: 128, B: 255, A: 255})

			spec := color.RGBA{A: 255}
			if !land && !ice {
				spec = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}
			out[SlotSpecular].SetRGBA(x, y, spec)
		}
	}
	return out
}

// elevation is a cheap periodic height field; positive values are land.
func elevation(lon, lat float64) float64 {
	h := math.Sin(lon*2+0.5)*math.Cos(lat*3) +
		0.5*math.Sin(lon*5-lat*4) +
		0.25*math.Cos(lon*11+lat*7)
	return h * 0.5
}

func hash(x, y int) uint32 {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	v = math.Max(0, math.Min(1, v))
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}
