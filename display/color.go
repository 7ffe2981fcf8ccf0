package display

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orrery/core"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// ParseColorMode maps a flag value; "auto" and unknown values detect from the environment
func ParseColorMode(s string) ColorMode {
	switch s {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// palette256 holds the xterm colors 16-255 in Lab-comparable form
// Indices 0-15 are skipped, their RGB values vary per terminal theme
var palette256 = func() []colorful.Color {
	p := make([]colorful.Color, 240)
	for i := range p {
		r, g, b := tcell.PaletteColor(i + 16).RGB()
		p[i] = colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	}
	return p
}()

// colorMapper converts scene colors to tcell colors for a given mode
// The 256 mode result is cached per RGB, the scene uses few distinct colors
type colorMapper struct {
	mode  ColorMode
	cache map[core.RGB]tcell.Color
}

func newColorMapper(mode ColorMode) *colorMapper {
	return &colorMapper{mode: mode, cache: make(map[core.RGB]tcell.Color, 256)}
}

// Color returns the tcell color for c
func (m *colorMapper) Color(c core.RGB) tcell.Color {
	if m.mode == ColorModeTrueColor {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	if tc, ok := m.cache[c]; ok {
		return tc
	}
	tc := tcell.PaletteColor(nearest256(c))
	m.cache[c] = tc
	return tc
}

// nearest256 returns the xterm palette index closest to c in Lab space
func nearest256(c core.RGB) int {
	target := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	best, bestDist := 0, 1e9
	for i, p := range palette256 {
		if d := target.DistanceLab(p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best + 16
}
