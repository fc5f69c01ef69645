package theme

import "image/color"

// Palette is the set of colors applied to every visual element
type Palette struct {
	Background       color.NRGBA
	Foreground       color.NRGBA
	InputBackground  color.NRGBA
	ListBackground   color.NRGBA
	ButtonBackground color.NRGBA
	Highlight        color.NRGBA
	// Muted renders completed tasks
	Muted       color.NRGBA
	Placeholder color.NRGBA
}

var (
	lightPalette = Palette{
		Background:       color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff},
		Foreground:       color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		InputBackground:  color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		ListBackground:   color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		ButtonBackground: color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
		Highlight:        color.NRGBA{R: 0xa6, G: 0xa6, B: 0xa6, A: 0xff},
		Muted:            color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
		Placeholder:      color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff},
	}

	darkPalette = Palette{
		Background:       color.NRGBA{R: 0x2d, G: 0x2d, B: 0x2d, A: 0xff},
		Foreground:       color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		InputBackground:  color.NRGBA{R: 0x3d, G: 0x3d, B: 0x3d, A: 0xff},
		ListBackground:   color.NRGBA{R: 0x3d, G: 0x3d, B: 0x3d, A: 0xff},
		ButtonBackground: color.NRGBA{R: 0x5d, G: 0x5d, B: 0x5d, A: 0xff},
		Highlight:        color.NRGBA{R: 0x7d, G: 0x7d, B: 0x7d, A: 0xff},
		Muted:            color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
		Placeholder:      color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff},
	}
)

// PaletteFor returns the fixed palette of a theme
func PaletteFor(t Theme) Palette {
	if t == Dark {
		return darkPalette
	}
	return lightPalette
}
