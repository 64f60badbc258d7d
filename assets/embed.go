// Package assets holds the sound cue table shared by the front ends. Cues are
// synthesized tones, so the package carries no audio files.
package assets

import (
	"embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed cues.yaml
var assetsFS embed.FS

// CueSpec is one entry of cues.yaml.
type CueSpec struct {
	Freq     float64 `yaml:"freq"`
	Duration int     `yaml:"duration_ms"`
	Volume   float64 `yaml:"volume"`
	// Slide bends the pitch linearly to Freq*Slide over the duration.
	Slide float64 `yaml:"slide"`
}

// LoadCues decodes the embedded cue table keyed by cue name.
func LoadCues() (map[string]Tone, error) {
	b, err := assetsFS.ReadFile("cues.yaml")
	if err != nil {
		return nil, fmt.Errorf("assets: read cues: %w", err)
	}
	return ParseCues(b)
}

func ParseCues(data []byte) (map[string]Tone, error) {
	var specs map[string]CueSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("assets: unmarshal cues: %w", err)
	}
	tones := make(map[string]Tone, len(specs))
	for name, s := range specs {
		if s.Freq <= 0 || s.Duration <= 0 {
			return nil, fmt.Errorf("assets: cue %q: freq and duration_ms must be positive", name)
		}
		slide := s.Slide
		if slide == 0 {
			slide = 1
		}
		vol := s.Volume
		if vol == 0 {
			vol = 0.3
		}
		tones[name] = Tone{
			Freq:     s.Freq,
			Duration: time.Duration(s.Duration) * time.Millisecond,
			Volume:   vol,
			Slide:    slide,
		}
	}
	return tones, nil
}
