package config

const (
	WindowWidth  = 900
	WindowHeight = 900

	// Shape construction
	PointCount = 10
	Radius     = 280.0

	// Oscillation parameters
	MaxSweepDeg     = 30
	OscillationStep = 0.06

	// Whole-shape rotation
	RotationStep       = 0.004
	RotationFlipChance = 0.008

	// Interaction and overlays
	PickRadius   = 10.0
	MarkerRadius = 10.0

	ColorShiftSpeed = 0.01
)
