package input

var keyDirections = map[string]Direction{
	"KeyW":       Top,
	"ArrowUp":    Top,
	"Space":      Top,
	"ShiftLeft":  Top,
	"KeyA":       Left,
	"ArrowLeft":  Left,
	"KeyD":       Right,
	"ArrowRight": Right,
	"KeyS":       Bottom,
	"ArrowDown":  Bottom,
}

var restartKeys = map[string]bool{
	"Enter":       true,
	"NumpadEnter": true,
}

// DirectionForKey maps a key code to the direction it drives.
func DirectionForKey(code string) (Direction, bool) {
	d, ok := keyDirections[code]
	return d, ok
}

// IsRestartKey reports whether code triggers a restart.
func IsRestartKey(code string) bool {
	return restartKeys[code]
}
