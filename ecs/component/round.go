package component

type RoundPhase int

const (
	RoundPlaying RoundPhase = iota
	RoundEnded
)

func (p RoundPhase) String() string {
	if p == RoundEnded {
		return "ended"
	}
	return "playing"
}

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "none"
	}
}

// Round is the play-through state. Restart is the only way out of RoundEnded.
type Round struct {
	Phase   RoundPhase
	Outcome Outcome
	// Number counts started rounds, starting at 1.
	Number int
	// EndedAt is the world tick of the last transition to RoundEnded.
	EndedAt uint64
	// RestartRequested is consumed by the round system on the next tick.
	RestartRequested bool
}

func (r Round) Ended() bool {
	return r.Phase == RoundEnded
}

var RoundComponent = NewComponent[Round]()
