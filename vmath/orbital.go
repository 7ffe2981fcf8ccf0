package vmath

import "math"

// FullTurn is one revolution in radians
const FullTurn = 2 * math.Pi

// OrbitPoint returns the point at distance r and angle theta around (cx, cy)
// x = cx + r*cos(theta), y = cy + r*sin(theta)
func OrbitPoint(cx, cy, r, theta float64) (x, y float64) {
	return cx + r*math.Cos(theta), cy + r*math.Sin(theta)
}

// Turns returns the number of completed revolutions represented by angle
// Negative angles count toward negative infinity
func Turns(angle float64) int64 {
	return int64(math.Floor(angle / FullTurn))
}

// Pixel converts a scene coordinate to integer pixel space, truncating toward zero
func Pixel(v float64) int {
	return int(v)
}

// PixelPoint truncates both coordinates
func PixelPoint(x, y float64) (int, int) {
	return int(x), int(y)
}
