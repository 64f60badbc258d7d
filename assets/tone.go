package assets

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// fade is the attack and release length applied to every tone.
const fade = 5 * time.Millisecond

type Tone struct {
	Freq     float64
	Duration time.Duration
	Volume   float64
	Slide    float64
}

// Samples returns the tone length in frames at rate.
func (t Tone) Samples(rate int) int {
	return int(t.Duration.Seconds() * float64(rate))
}

// Sample returns frame i of the tone in [-Volume, Volume].
func (t Tone) Sample(i, rate int) float64 {
	n := t.Samples(rate)
	if i < 0 || i >= n {
		return 0
	}
	slide := t.Slide
	if slide == 0 {
		slide = 1
	}
	progress := float64(i) / float64(n)
	freq := t.Freq * (1 + (slide-1)*progress)
	// integrate the linear sweep so the phase stays continuous
	secs := float64(i) / float64(rate)
	phase := 2 * math.Pi * (t.Freq*secs + (freq-t.Freq)*secs/2)

	env := 1.0
	edge := fade.Seconds() * float64(rate)
	if edge > 0 {
		env = math.Min(env, float64(i)/edge)
		env = math.Min(env, float64(n-1-i)/edge)
	}
	return math.Sin(phase) * t.Volume * math.Max(env, 0)
}

// PCM16 renders the tone as interleaved 16-bit little-endian stereo.
func (t Tone) PCM16(rate int) []byte {
	n := t.Samples(rate)
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		v := int16(t.Sample(i, rate) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}

// CueName maps a simulation event to the cue played for it.
func CueName(ev ecs.Event) (string, bool) {
	switch ev.Type {
	case ecs.EventJumped:
		return "jumped", true
	case ecs.EventLanded:
		return "landed", true
	case ecs.EventRoundStarted:
		return "restart", true
	case ecs.EventRoundEnded:
		switch ev.Data {
		case component.OutcomeWin:
			return "win", true
		case component.OutcomeLose:
			return "lose", true
		}
	}
	return "", false
}
