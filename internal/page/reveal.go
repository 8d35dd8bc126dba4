package page

// Reveal timing at 60 ticks per second: each section fades up over half a
// second, staggered by 0.15s.
const (
	revealFrames  = 30
	staggerFrames = 9
	revealSlide   = 20.0
)

// Reveal returns the opacity and downward slide in pixels of a section
// frame ticks after the page appeared.
func Reveal(frame int, sec Section) (alpha, slide float64) {
	t := clamp01(float64(frame-int(sec)*staggerFrames) / revealFrames)
	e := easeOutCubic(t)
	return e, (1 - e) * revealSlide
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
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
