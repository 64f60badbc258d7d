package assets

import (
	"math"
	"testing"
	"time"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func TestLoadCues(t *testing.T) {
	cues, err := LoadCues()
	if err != nil {
		t.Fatalf("LoadCues: %v", err)
	}
	for _, name := range []string{"jumped", "landed", "win", "lose", "restart"} {
		if _, ok := cues[name]; !ok {
			t.Fatalf("missing cue %q", name)
		}
	}
	if r := cues["restart"]; r.Slide != 1 {
		t.Fatalf("expected default slide 1, got %v", r.Slide)
	}
}

func TestParseCuesRejectsBadTone(t *testing.T) {
	if _, err := ParseCues([]byte("x:\n  freq: 0\n  duration_ms: 10\n")); err == nil {
		t.Fatalf("expected error for zero frequency")
	}
	if _, err := ParseCues([]byte("not: [a map")); err == nil {
		t.Fatalf("expected error for bad yaml")
	}
}

func TestToneSamples(t *testing.T) {
	tone := Tone{Freq: 440, Duration: 100 * time.Millisecond, Volume: 0.5, Slide: 1}
	const rate = 44100

	n := tone.Samples(rate)
	if n != 4410 {
		t.Fatalf("expected 4410 frames, got %d", n)
	}
	if tone.Sample(0, rate) != 0 || tone.Sample(n, rate) != 0 || tone.Sample(-1, rate) != 0 {
		t.Fatalf("expected silence at the edges")
	}
	peak := 0.0
	for i := 0; i < n; i++ {
		peak = math.Max(peak, math.Abs(tone.Sample(i, rate)))
	}
	if peak > 0.5 || peak < 0.4 {
		t.Fatalf("expected peak near volume 0.5, got %v", peak)
	}

	pcm := tone.PCM16(rate)
	if len(pcm) != n*4 {
		t.Fatalf("expected %d bytes, got %d", n*4, len(pcm))
	}
}

func TestCueName(t *testing.T) {
	cases := []struct {
		ev   ecs.Event
		want string
		ok   bool
	}{
		{ecs.Event{Type: ecs.EventJumped}, "jumped", true},
		{ecs.Event{Type: ecs.EventLanded}, "landed", true},
		{ecs.Event{Type: ecs.EventRoundEnded, Data: component.OutcomeWin}, "win", true},
		{ecs.Event{Type: ecs.EventRoundEnded, Data: component.OutcomeLose}, "lose", true},
		{ecs.Event{Type: ecs.EventRoundStarted, Data: 2}, "restart", true},
		{ecs.Event{Type: ecs.EventClamped}, "", false},
	}
	for _, c := range cases {
		got, ok := CueName(c.ev)
		if got != c.want || ok != c.ok {
			t.Fatalf("CueName(%v) = %q/%v, want %q/%v", c.ev.Type, got, ok, c.want, c.ok)
		}
	}
}
