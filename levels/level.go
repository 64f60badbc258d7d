// Package levels loads level descriptions: fixed bounds, a goal offset and
// the platform list, optionally produced by a tengo layout script.
package levels

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoPlatforms   = errors.New("levels: level has no platforms and no floor")
	ErrInvalidBounds = errors.New("levels: invalid level bounds")
	ErrInvalidLayout = errors.New("levels: invalid platform")
)

type Level struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Left, Right and Bottom default to 0, Width and Height.
	Left   float64  `json:"left"`
	Right  *float64 `json:"right,omitempty"`
	Bottom *float64 `json:"bottom,omitempty"`
	WinX   float64  `json:"win_x"`
	// Floor adds a full-width platform at Bottom.
	Floor        bool       `json:"floor"`
	Spawn        Point      `json:"spawn"`
	Platforms    []Platform `json:"platforms,omitempty"`
	LayoutScript string     `json:"layout_script,omitempty"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Platform struct {
	Label  string  `json:"label"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FloorLabel names the platform added by Level.Floor.
const FloorLabel = "floor"

// LoadLevel reads name (".json" optional), runs its layout script and validates it.
func LoadLevel(ctx context.Context, name string) (*Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := readFile(name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	if err := lvl.Resolve(ctx); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return lvl, nil
}

// Parse decodes a level without running its script.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	return &lvl, nil
}

// Resolve appends the platforms produced by the layout script, if any.
func (l *Level) Resolve(ctx context.Context) error {
	if l.LayoutScript == "" {
		return nil
	}
	src, err := readFile(l.LayoutScript)
	if err != nil {
		return fmt.Errorf("read layout %s: %w", l.LayoutScript, err)
	}
	scripted, err := RunLayout(ctx, src, l)
	if err != nil {
		return fmt.Errorf("layout %s: %w", l.LayoutScript, err)
	}
	l.Platforms = append(l.Platforms, scripted...)
	l.LayoutScript = ""
	return nil
}

func (l *Level) RightBound() float64 {
	if l.Right != nil {
		return *l.Right
	}
	return l.Width
}

func (l *Level) BottomBound() float64 {
	if l.Bottom != nil {
		return *l.Bottom
	}
	return l.Height
}

// AllPlatforms returns the declared platforms followed by the floor, if enabled.
func (l *Level) AllPlatforms() []Platform {
	out := append([]Platform(nil), l.Platforms...)
	if l.Floor {
		out = append(out, Platform{
			Label:  FloorLabel,
			X:      l.Left,
			Y:      l.BottomBound(),
			Width:  l.RightBound() - l.Left,
			Height: l.Height - l.BottomBound(),
		})
	}
	return out
}

func (l *Level) Validate() error {
	if l.Height <= 0 || l.RightBound() <= l.Left {
		return fmt.Errorf("%w: left=%v right=%v height=%v", ErrInvalidBounds, l.Left, l.RightBound(), l.Height)
	}
	if l.BottomBound() > l.Height {
		return fmt.Errorf("%w: bottom %v below height %v", ErrInvalidBounds, l.BottomBound(), l.Height)
	}
	if len(l.Platforms) == 0 && !l.Floor {
		return ErrNoPlatforms
	}
	for i, p := range l.Platforms {
		if p.Width <= 0 || p.Height < 0 {
			return fmt.Errorf("%w: #%d %q size %vx%v", ErrInvalidLayout, i, p.Label, p.Width, p.Height)
		}
	}
	// win_x has no default; a missing value decodes as 0
	if l.WinX <= l.Left || l.WinX >= l.RightBound() {
		return fmt.Errorf("%w: win_x %v outside (%v, %v)", ErrInvalidBounds, l.WinX, l.Left, l.RightBound())
	}
	return nil
}
