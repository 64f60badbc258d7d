package main

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/ecs"
)

const sampleRate = beep.SampleRate(44100)

// cuePlayer mixes cue tones into the speaker.
type cuePlayer struct {
	tones map[string]assets.Tone
	mixer *beep.Mixer
}

func newCuePlayer() (*cuePlayer, error) {
	tones, err := assets.LoadCues()
	if err != nil {
		return nil, err
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("speaker: %w", err)
	}
	c := &cuePlayer{tones: tones, mixer: &beep.Mixer{}}
	speaker.Play(c.mixer)
	return c, nil
}

func (c *cuePlayer) play(ev ecs.Event) {
	if c == nil {
		return
	}
	name, ok := assets.CueName(ev)
	if !ok {
		return
	}
	tone, ok := c.tones[name]
	if !ok {
		return
	}
	speaker.Lock()
	c.mixer.Add(toneStreamer(tone))
	speaker.Unlock()
}

func (c *cuePlayer) close() {
	if c == nil {
		return
	}
	speaker.Clear()
	speaker.Close()
}

func toneStreamer(t assets.Tone) beep.Streamer {
	rate := int(sampleRate)
	n := t.Samples(rate)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		i := 0
		for ; i < len(samples) && pos < n; i++ {
			v := t.Sample(pos, rate)
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return i, true
	})
}
