package component

type Camera struct {
	// Offset is the horizontal scroll applied to the world layer. Never negative.
	Offset float64
	// Parallax is the fraction of Offset applied to the background layer.
	Parallax float64
	// BandLeft and BandRight delimit the on-screen follow band.
	BandLeft  float64
	BandRight float64
}

// ParallaxOffset is the scroll of the background layer.
func (c Camera) ParallaxOffset() float64 {
	return c.Offset * c.Parallax
}

var CameraComponent = NewComponent[Camera]()
