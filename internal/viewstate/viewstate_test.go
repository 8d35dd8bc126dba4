package viewstate

import (
	"testing"

	"github.com/iburimskiy/blxck-backdrop/internal/content"
	"github.com/iburimskiy/blxck-backdrop/internal/theme"
)

func TestNormalizePointer(t *testing.T) {
	tests := []struct {
		name         string
		px, py, w, h int
		wantX, wantY float64
	}{
		{"Top left", 0, 0, 1000, 500, -1, 1},
		{"Center", 500, 250, 1000, 500, 0, 0},
		{"Bottom right", 1000, 500, 1000, 500, 1, -1},
		{"Quarter", 250, 125, 1000, 500, -0.5, 0.5},
		{"Outside clamps", -100, 900, 1000, 500, -1, -1},
		{"Degenerate viewport", 10, 10, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := NormalizePointer(tt.px, tt.py, tt.w, tt.h)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("NormalizePointer = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPointerMove(t *testing.T) {
	var p Pointer
	p.Move(750, 125, 1000, 500)
	x, y := p.Position()
	if x != 0.5 || y != 0.5 {
		t.Errorf("Expected (0.5, 0.5), got (%v, %v)", x, y)
	}
}

func TestScrollBounds(t *testing.T) {
	s := NewScroll(2000)
	s.By(-50)
	if s.Y() != 0 {
		t.Errorf("Expected scroll to stay at 0, got %v", s.Y())
	}

	s.By(1200)
	if s.Y() != 1200 {
		t.Errorf("Expected 1200, got %v", s.Y())
	}

	s.By(5000)
	if s.Y() != 2000 {
		t.Errorf("Expected scroll clamped to 2000, got %v", s.Y())
	}

	s.SetMax(1500)
	if s.Y() != 1500 {
		t.Errorf("Expected scroll reclamped to 1500, got %v", s.Y())
	}
}

func TestScrollUnbounded(t *testing.T) {
	s := NewScroll(0)
	s.By(1e6)
	if s.Y() != 1e6 {
		t.Errorf("Expected unbounded scroll to reach 1e6, got %v", s.Y())
	}
}

func TestNewViewKeepsNormalizedPointer(t *testing.T) {
	tests := []struct {
		name            string
		x, y, scroll    float64
		wantX, wantY, s float64
	}{
		{"Exact values", 0.3, 0.77, 1234.5, 0.3, 0.77, 1234.5},
		{"Negative", -0.125, -0.999, 0, -0.125, -0.999, 0},
		{"Clamped", 1.5, -3, -20, 1, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView(tt.x, tt.y, tt.scroll)
			if v.MouseX != tt.wantX || v.MouseY != tt.wantY || v.ScrollY != tt.s {
				t.Errorf("NewView = %+v, want (%v, %v, %v)", v, tt.wantX, tt.wantY, tt.s)
			}
		})
	}
}

func TestScrollBound(t *testing.T) {
	tests := []struct {
		name       string
		page, view int
		limit      float64
		want       float64
	}{
		{"Page taller than view", 3000, 720, 0, 2280},
		{"Limit caps the page", 9000, 720, 4000, 4000},
		{"Limit above page", 3000, 720, 4000, 2280},
		{"Page fits", 500, 720, 4000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScrollBound(tt.page, tt.view, tt.limit); got != tt.want {
				t.Errorf("ScrollBound(%d, %d, %v) = %v, want %v", tt.page, tt.view, tt.limit, got, tt.want)
			}
		})
	}

	s := NewScroll(0)
	s.SetMax(ScrollBound(9000, 720, 4000))
	s.By(1e6)
	if s.Y() != 4000 {
		t.Errorf("Expected scroll held at the configured limit, got %v", s.Y())
	}
}

func TestUICells(t *testing.T) {
	u := NewUI(content.Spanish, theme.Dark, 5)

	if u.ToggleLanguage() != content.English {
		t.Error("Expected language to switch to English")
	}
	if u.Content().Nav.Home != "Home" {
		t.Errorf("Expected English copy after toggle, got %q", u.Content().Nav.Home)
	}

	if u.ToggleTheme() != theme.Light {
		t.Error("Expected theme to switch to light")
	}

	if !u.ToggleFAQ(2) || !u.FAQOpen(2) {
		t.Error("Expected FAQ item 2 to open")
	}
	if !u.ToggleFAQ(0) || !u.FAQOpen(2) {
		t.Error("Expected items to open independently")
	}
	if u.ToggleFAQ(2) || u.FAQOpen(2) {
		t.Error("Expected FAQ item 2 to close")
	}
	if u.ToggleFAQ(9) || u.FAQOpen(-1) {
		t.Error("Expected out of range items to be ignored")
	}
}
