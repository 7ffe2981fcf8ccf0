package parameter

// Scene palette, stored as raw channels to keep this package dependency free
var (
	// ColorBackground is the dark space fill
	ColorBackground = [3]uint8{0, 0, 20}

	// ColorStar is the star pixel color
	ColorStar = [3]uint8{255, 255, 255}

	// ColorSun is the sun disc color
	ColorSun = [3]uint8{255, 255, 0}

	// ColorOrbitGuide is the thin orbit outline color
	ColorOrbitGuide = [3]uint8{50, 50, 50}

	// ColorLabel is the planet name text color
	ColorLabel = [3]uint8{255, 255, 255}
)
