package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/ecs"
)

const sampleRate = 44100

// Sound plays the cue of each simulation event.
type Sound struct {
	players map[string]*audio.Player
}

// NewSound builds one player per cue. A muted Sound plays nothing.
func NewSound(mute bool) *Sound {
	s := &Sound{players: map[string]*audio.Player{}}
	if mute {
		return s
	}
	cues, err := assets.LoadCues()
	if err != nil {
		log.Printf("sound: %v", err)
		return s
	}
	ctx := audio.NewContext(sampleRate)
	for name, tone := range cues {
		s.players[name] = ctx.NewPlayerFromBytes(tone.PCM16(sampleRate))
	}
	return s
}

func (s *Sound) Play(ev ecs.Event) {
	if s == nil {
		return
	}
	name, ok := assets.CueName(ev)
	if !ok {
		return
	}
	p := s.players[name]
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("sound: rewind %s: %v", name, err)
		return
	}
	p.Play()
}
