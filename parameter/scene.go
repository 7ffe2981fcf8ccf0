package parameter

// Scene Geometry
const (
	// SceneWidth is the logical scene width in pixels
	SceneWidth = 1200

	// SceneHeight is the logical scene height in pixels
	SceneHeight = 800

	// SceneTitle is the window title
	SceneTitle = "Animated Solar System"
)

// Loop Timing
const (
	// FrameRate is the iteration cap of the main loop
	FrameRate = 60

	// EventQueueSize bounds the forwarded terminal event channel
	EventQueueSize = 100
)

// Star Field
const (
	// StarCount is the number of single-pixel stars scattered per draw
	StarCount = 100

	// StarModeFlicker regenerates stars on every draw
	StarModeFlicker = "flicker"

	// StarModeFixed generates stars once at startup
	StarModeFixed = "fixed"
)

// Trails
const (
	// TrailLength caps the number of recorded planet positions
	TrailLength = 100
)

// Labels
const (
	// LabelOffsetX is added to the planet radius to place its label right of the body
	LabelOffsetX = 5

	// LabelOffsetY lifts the label above the planet center
	LabelOffsetY = -10
)
