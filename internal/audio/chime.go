// Package audio plays the short UI chime heard when the language or theme
// is switched.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	SampleRate = beep.SampleRate(44100)

	chimeLength = 180 * time.Millisecond
	chimeGain   = 0.18
	decay       = 18.0 // 1/s
)

// Tone returns a decaying sine of the given frequency that ends after d.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			t := float64(pos) / float64(sr)
			v := chimeGain * math.Exp(-decay*t) * math.Sin(2*math.Pi*freq*t)
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}

// Player owns the speaker. The zero value is a silent player.
type Player struct {
	ctrl    *beep.Ctrl
	mixer   *beep.Mixer
	enabled bool
}

// NewPlayer initializes the speaker. On failure the returned player is
// silent and the error says why.
func NewPlayer(muted bool) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return &Player{}, fmt.Errorf("audio: speaker init: %w", err)
	}
	mixer := &beep.Mixer{}
	ctrl := &beep.Ctrl{Streamer: mixer, Paused: muted}
	speaker.Play(ctrl)
	return &Player{ctrl: ctrl, mixer: mixer, enabled: true}, nil
}

func (p *Player) Enabled() bool { return p.enabled }

// Chime plays a tone pitched by the new state: higher for on/English/light.
func (p *Player) Chime(high bool) {
	if !p.enabled {
		return
	}
	freq := 660.0
	if high {
		freq = 880.0
	}
	speaker.Lock()
	p.mixer.Add(Tone(SampleRate, freq, chimeLength))
	speaker.Unlock()
}

// ToggleMute flips the mute flag and reports whether the player is now muted.
func (p *Player) ToggleMute() bool {
	if !p.enabled {
		return true
	}
	speaker.Lock()
	p.ctrl.Paused = !p.ctrl.Paused
	muted := p.ctrl.Paused
	speaker.Unlock()
	return muted
}

func (p *Player) Muted() bool {
	if !p.enabled {
		return true
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.ctrl.Paused
}

func (p *Player) Close() {
	if !p.enabled {
		return
	}
	speaker.Clear()
	p.enabled = false
}
