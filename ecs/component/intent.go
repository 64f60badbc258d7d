package component

// Intent is the directional request of an entity for the current tick,
// independent of what the physics makes of it.
type Intent struct {
	Top    bool
	Right  bool
	Bottom bool
	Left   bool
}

// Any reports whether any direction is requested.
func (i Intent) Any() bool {
	return i.Top || i.Right || i.Bottom || i.Left
}

var IntentComponent = NewComponent[Intent]()
