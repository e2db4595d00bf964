package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// FloorCheckInterval is the fixed heartbeat for floor crossing detection
	// Kept shorter than the fastest tier interval so loss detection is independent of tier speed
	FloorCheckInterval = 100 * time.Millisecond
)

// Play Field Geometry (logical units)
const (
	// FieldWidth is the logical width of the play field
	FieldWidth = 400

	// FieldHeight is the logical height of the play field
	FieldHeight = 500

	// TargetRadius is the radius of a falling target
	TargetRadius = 20

	// FloorThreshold is the Y at which a live target is forfeited
	FloorThreshold = FieldHeight - TargetRadius

	// MinSpawnSeparation is the minimum center distance between a new target and any other
	MinSpawnSeparation = 2 * TargetRadius
)
