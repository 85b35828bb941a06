package main

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/katalvlaran/islewalk/tilemap"
)

const sampleRate = beep.SampleRate(44100)

// footsteps plays a short tone per reached waypoint. A zero value is silent.
type footsteps struct {
	enabled bool
	volume  float64
}

// newFootsteps opens the speaker. The returned value is always usable; when
// the speaker cannot be opened it stays silent and the error is returned.
func newFootsteps(volume float64) (*footsteps, error) {
	f := &footsteps{volume: volume}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return f, err
	}
	f.enabled = true

	return f, nil
}

// stepTone returns the tone frequency for entering t. Heavier terrain
// sounds lower.
func stepTone(t *tilemap.Tile) float64 {
	switch t.Type() {
	case tilemap.Tree:
		return 660
	case tilemap.Hill:
		return 440
	case tilemap.Dungeon:
		return 220
	}

	return 880
}

// withVolume scales s by vol in [0,1]; non-positive volumes silence it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}

	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone returns a sine of freq Hz lasting d.
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}

	return beep.Take(sampleRate.N(d), sine)
}

// Step plays the footstep for t. Reaching the castle plays a rising
// two-note chime instead.
func (f *footsteps) Step(t *tilemap.Tile) {
	if !f.enabled {
		return
	}
	if t.Is(tilemap.Castle) {
		chime := beep.Seq(tone(660, 80*time.Millisecond), tone(990, 160*time.Millisecond))
		speaker.Play(withVolume(chime, f.volume))
		return
	}
	speaker.Play(withVolume(tone(stepTone(t), 50*time.Millisecond), f.volume))
}

// Close releases the speaker.
func (f *footsteps) Close() {
	if f.enabled {
		speaker.Close()
		f.enabled = false
	}
}
