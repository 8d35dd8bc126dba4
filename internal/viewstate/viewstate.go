// Package viewstate holds the UI state cells of the backdrop. Each cell has a
// single writer (the input handler that owns it) and is read by the update
// and draw code through value snapshots.
package viewstate

// View is the pointer/scroll snapshot consumed by the update rule.
type View struct {
	MouseX  float64 // [-1, 1], right is positive
	MouseY  float64 // [-1, 1], up is positive
	ScrollY float64 // pixels, >= 0
}

// NewView builds a snapshot from an already normalized pointer, clamping it
// to [-1, 1] and the scroll offset to >= 0.
func NewView(mouseX, mouseY, scrollY float64) View {
	return View{MouseX: clampUnit(mouseX), MouseY: clampUnit(mouseY), ScrollY: max(0, scrollY)}
}

// Pointer stores the normalized cursor position.
type Pointer struct {
	x, y float64
}

// Move records a cursor position in pixels within a w×h viewport.
func (p *Pointer) Move(px, py, w, h int) {
	p.x, p.y = NormalizePointer(px, py, w, h)
}

func (p *Pointer) Position() (x, y float64) { return p.x, p.y }

// NormalizePointer maps pixel coordinates to [-1, 1] on both axes with y up.
// A degenerate viewport maps to the center.
func NormalizePointer(px, py, w, h int) (x, y float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	x = float64(px)/float64(w)*2 - 1
	y = -(float64(py)/float64(h))*2 + 1
	return clampUnit(x), clampUnit(y)
}

// Scroll accumulates the vertical page offset.
type Scroll struct {
	y   float64
	max float64
}

// NewScroll returns a scroll cell bounded to [0, max]. max <= 0 means unbounded.
func NewScroll(max float64) *Scroll {
	return &Scroll{max: max}
}

// By adds delta pixels (positive scrolls down the page).
func (s *Scroll) By(delta float64) {
	s.Set(s.y + delta)
}

func (s *Scroll) Set(y float64) {
	if y < 0 {
		y = 0
	}
	if s.max > 0 && y > s.max {
		y = s.max
	}
	s.y = y
}

func (s *Scroll) Y() float64 { return s.y }

func (s *Scroll) SetMax(max float64) {
	s.max = max
	s.Set(s.y)
}

// ScrollBound is how far a page of pageHeight pixels can scroll in a
// viewport of viewHeight pixels, capped at limit when limit > 0. A page that
// fits still gets one pixel so the bound stays positive.
func ScrollBound(pageHeight, viewHeight int, limit float64) float64 {
	b := max(1, float64(pageHeight-viewHeight))
	if limit > 0 {
		b = min(b, limit)
	}
	return b
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
