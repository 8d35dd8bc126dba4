package theme

import "testing"

func TestParseAndToggle(t *testing.T) {
	tests := []struct {
		name   string
		want   Theme
		wantOK bool
	}{
		{"", Dark, true},
		{"dark", Dark, true},
		{"light", Light, true},
		{"sepia", Dark, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.name)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Parse(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if Dark.Toggle() != Light || Light.Toggle() != Dark {
		t.Error("Expected Toggle to swap themes")
	}
}

func TestPaletteContrast(t *testing.T) {
	for _, th := range []Theme{Dark, Light} {
		pal := th.Palette()
		if pal.Background.A != 0xFF {
			t.Errorf("%s: expected opaque background", th)
		}
		diff := int(pal.Particle.R) - int(pal.Background.R)
		if diff < 0 {
			diff = -diff
		}
		if diff < 128 {
			t.Errorf("%s: particles too close to background (%d)", th, diff)
		}
	}
}
