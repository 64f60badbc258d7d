package component

// Platform marks a static box the player can land on from above.
// Order is the declaration index; collision tests run in that order.
type Platform struct {
	Label string
	Order int
}

var PlatformComponent = NewComponent[Platform]()
