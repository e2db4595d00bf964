package constants

import "time"

// UI Timing
const (
	// BannerDuration is how long a notification banner stays on screen
	BannerDuration = 2 * time.Second
)

// UI Layout
const (
	// HeaderHeight is the number of rows above the play field
	HeaderHeight = 2

	// FooterHeight is the number of rows below the play field
	FooterHeight = 1
)

// Minimum Terminal Size
const (
	// MinScreenWidth is the narrowest terminal the game draws in
	MinScreenWidth = 40

	// MinScreenHeight is the shortest terminal the game draws in
	MinScreenHeight = 16
)
