package component

// AnimationState names the clip the renderer should play.
type AnimationState int

const (
	IdleRight AnimationState = iota
	IdleLeft
	RunRight
	RunLeft
)

func (s AnimationState) String() string {
	switch s {
	case IdleLeft:
		return "idleLeft"
	case IdleRight:
		return "idleRight"
	case RunLeft:
		return "runLeft"
	case RunRight:
		return "runRight"
	default:
		return "unknown"
	}
}

// Running reports whether the state is one of the run clips.
func (s AnimationState) Running() bool {
	return s == RunLeft || s == RunRight
}

type Animation struct {
	State      AnimationState
	FacingLeft bool
	// Ticks counts ticks spent in State; renderers derive the frame from it.
	Ticks int
}

var AnimationComponent = NewComponent[Animation]()
