package audio

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func drain(t *testing.T, s beep.Streamer, chunk int) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, chunk)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
			if smp[0] != smp[1] {
				t.Fatalf("Expected identical channels, got %v", smp)
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestToneLength(t *testing.T) {
	tests := []struct {
		name  string
		d     time.Duration
		chunk int
	}{
		{"One chunk", 10 * time.Millisecond, 1024},
		{"Many chunks", 180 * time.Millisecond, 512},
		{"Uneven chunk", 50 * time.Millisecond, 333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := SampleRate.N(tt.d)
			total, peak := drain(t, Tone(SampleRate, 880, tt.d), tt.chunk)
			if total != want {
				t.Errorf("Expected %d samples, got %d", want, total)
			}
			if peak <= 0 || peak > chimeGain {
				t.Errorf("Expected peak in (0, %v], got %v", chimeGain, peak)
			}
		})
	}
}

func TestToneDecays(t *testing.T) {
	s := Tone(SampleRate, 440, 200*time.Millisecond)
	head := make([][2]float64, 1000)
	s.Stream(head)

	skip := make([][2]float64, SampleRate.N(150*time.Millisecond)-2000)
	s.Stream(skip)

	tail := make([][2]float64, 1000)
	s.Stream(tail)

	peak := func(buf [][2]float64) float64 {
		var p float64
		for _, smp := range buf {
			p = math.Max(p, math.Abs(smp[0]))
		}
		return p
	}
	if peak(tail) >= peak(head) {
		t.Errorf("Expected tone to decay: head=%v tail=%v", peak(head), peak(tail))
	}
}

func TestSilentPlayer(t *testing.T) {
	var p Player
	p.Chime(true)
	if p.Enabled() {
		t.Error("Expected zero player to be disabled")
	}
	if !p.ToggleMute() || !p.Muted() {
		t.Error("Expected a disabled player to report muted")
	}
	p.Close()
}
