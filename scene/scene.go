// Package scene is the simulation core: one player actor moving over static
// platforms, a scrolling camera and the round state. It owns an ecs.World and
// advances it one step per Update. Nothing in here draws.
package scene

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

var (
	ErrNilLevel     = errors.New("scene: nil level")
	ErrInvalidActor = errors.New("scene: invalid actor")
	ErrNilSceneSpec = errors.New("scene: nil scene spec")
)

type Scene struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	mapper    *input.Mapper
	events    <-chan input.Event

	level      *levels.Level
	playerSpec *prefabs.PlayerSpec
	sceneSpec  *prefabs.SceneSpec

	player ecs.Entity
}

// New builds the scene. events may be nil; otherwise it is drained without
// blocking at the start of every Update.
func New(level *levels.Level, player *prefabs.PlayerSpec, spec *prefabs.SceneSpec, events <-chan input.Event) (*Scene, error) {
	if level == nil {
		return nil, ErrNilLevel
	}
	if player == nil {
		return nil, ErrInvalidActor
	}
	if spec == nil {
		return nil, ErrNilSceneSpec
	}
	if err := player.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidActor, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	s := &Scene{
		mapper:     input.NewMapper(),
		events:     events,
		level:      level,
		playerSpec: player,
		sceneSpec:  spec,
	}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) build() error {
	w := ecs.NewWorld()
	if _, err := entity.NewLevel(w, s.level, s.sceneSpec); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	spawn := cp.Vector{X: s.level.Spawn.X, Y: s.level.Spawn.Y}
	player, err := entity.NewPlayer(w, s.playerSpec, spawn)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidActor, err)
	}
	if _, err := entity.NewCamera(w, s.sceneSpec); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if _, err := entity.NewRound(w); err != nil {
		return fmt.Errorf("scene: %w", err)
	}

	s.world = w
	s.player = player
	s.scheduler = ecs.NewScheduler(
		system.NewInputSystem(s.mapper),
		system.NewResolverSystem(),
		system.NewAnimationSystem(),
		system.NewCameraSystem(),
		system.NewRoundSystem(s.mapper.Reset),
	)
	return nil
}

// Update advances the simulation by one tick. Events queued during the
// previous tick are dropped, so read Events after each Update.
func (s *Scene) Update() {
	s.world.Advance()
	s.drainInput()
	s.scheduler.Update(s.world)
}

func (s *Scene) drainInput() {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.events = nil
				return
			}
			s.mapper.Apply(ev, s.Bounds())
		default:
			return
		}
	}
}

// SetDirectionPressed sets one direction flag for the next tick.
func (s *Scene) SetDirectionPressed(d input.Direction, pressed bool) {
	s.mapper.SetDirectionPressed(d, pressed)
}

// HandlePointer feeds the pointer state at world position (x, y). A press
// while already pressed counts as a move; a release clears all intent.
func (s *Scene) HandlePointer(pressed bool, x, y float64) {
	phase := input.PointerUp
	switch {
	case pressed && s.mapper.PointerDown():
		phase = input.PointerMove
	case pressed:
		phase = input.PointerDown
	}
	s.mapper.HandlePointer(phase, x, y, s.Bounds())
}

// Restart puts the actor back at the level start and begins a new round.
// It may be called in any phase.
func (s *Scene) Restart() {
	system.RestartRound(s.world)
	s.mapper.Reset()
}

// Reload rebuilds the scene with a new level. Nil specs keep the current
// ones. On error the running scene is left untouched.
func (s *Scene) Reload(level *levels.Level, player *prefabs.PlayerSpec, spec *prefabs.SceneSpec) error {
	next := *s
	if level != nil {
		next.level = level
	}
	if player != nil {
		if err := player.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidActor, err)
		}
		next.playerSpec = player
	}
	if spec != nil {
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("scene: %w", err)
		}
		next.sceneSpec = spec
	}
	next.mapper = input.NewMapper()
	if err := next.build(); err != nil {
		return err
	}
	*s = next
	return nil
}

// Close detaches the input channel. The scene stays usable through the
// direct setters.
func (s *Scene) Close() {
	s.events = nil
}
