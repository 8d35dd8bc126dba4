package theme

import "image/color"

type Theme int

const (
	Dark Theme = iota
	Light
)

func (t Theme) String() string {
	if t == Light {
		return "light"
	}
	return "dark"
}

// Parse maps a config name to a Theme. ok is false for unknown names.
func Parse(name string) (Theme, bool) {
	switch name {
	case "", "dark":
		return Dark, true
	case "light":
		return Light, true
	}
	return Dark, false
}

func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// Accent is the brand cyan.
var Accent = color.NRGBA{R: 0x00, G: 0xB3, B: 0xFF, A: 0xFF}

// Palette is the set of colors a frame is drawn with.
type Palette struct {
	Background color.NRGBA
	Particle   color.NRGBA
	Sphere     color.NRGBA
	Text       color.NRGBA
	Muted      color.NRGBA
	Panel      color.NRGBA
	Vignette   color.NRGBA
}

func (t Theme) Palette() Palette {
	if t == Light {
		return Palette{
			Background: color.NRGBA{R: 0xF4, G: 0xF4, B: 0xF5, A: 0xFF},
			Particle:   color.NRGBA{R: 0x18, G: 0x18, B: 0x1B, A: 0xFF},
			Sphere:     Accent,
			Text:       color.NRGBA{R: 0x09, G: 0x09, B: 0x0B, A: 0xFF},
			Muted:      color.NRGBA{R: 0x52, G: 0x52, B: 0x5B, A: 0xFF},
			Panel:      color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xCC},
			Vignette:   color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x66},
		}
	}
	return Palette{
		Background: color.NRGBA{A: 0xFF},
		Particle:   color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Sphere:     color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Text:       color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Muted:      color.NRGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 0xFF},
		Panel:      color.NRGBA{A: 0xCC},
		Vignette:   color.NRGBA{A: 0x66},
	}
}
