// Package render draws the analysis charts as PNG files.
package render

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Theme is the explicit styling configuration handed to the renderer. Chart
// styling is never ambient process state; callers pass a Theme and can swap
// it per render call.
type Theme struct {
	Background color.Color
	Text       color.Color

	// Fixed colors for the gender split lines.
	Combined color.Color
	Male     color.Color
	Female   color.Color

	// Palette cycled through per-name series.
	Palette []color.Color

	Width  vg.Length
	Height vg.Length
}

// DefaultTheme reproduces the published mauve look: dark background, white
// text, yellow/light blue/pink gender lines.
func DefaultTheme() Theme {
	return Theme{
		Background: color.RGBA{R: 0x44, G: 0x39, B: 0x41, A: 0xff}, // #443941
		Text:       color.White,
		Combined:   color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}, // yellow
		Male:       color.RGBA{R: 0xad, G: 0xd8, B: 0xe6, A: 0xff}, // light blue
		Female:     color.RGBA{R: 0xff, G: 0xc0, B: 0xcb, A: 0xff}, // pink
		Palette: []color.Color{
			color.RGBA{R: 0x4f, G: 0x46, B: 0xe5, A: 0xff},
			color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff},
			color.RGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff},
			color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff},
			color.RGBA{R: 0x8b, G: 0x5c, B: 0xf6, A: 0xff},
			color.RGBA{R: 0x06, G: 0xb6, B: 0xd4, A: 0xff},
			color.RGBA{R: 0xec, G: 0x48, B: 0x99, A: 0xff},
			color.RGBA{R: 0x84, G: 0xcc, B: 0x16, A: 0xff},
			color.RGBA{R: 0xf9, G: 0x73, B: 0x16, A: 0xff},
			color.RGBA{R: 0x63, G: 0x66, B: 0xf1, A: 0xff},
		},
		Width:  12 * vg.Inch,
		Height: 7 * vg.Inch,
	}
}
