package game

import (
	"image/color"

	"github.com/iburimskiy/blxck-backdrop/internal/page"
	"github.com/iburimskiy/blxck-backdrop/internal/theme"
)

func styleColor(pal theme.Palette, st page.Style) color.NRGBA {
	switch st {
	case page.Accent:
		return theme.Accent
	case page.Muted:
		return pal.Muted
	default:
		return pal.Text
	}
}

// withAlpha scales a straight-alpha color's opacity (alpha: 0-1)
func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(float64(c.A) * clamp01(alpha))
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
