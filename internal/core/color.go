package core

// Color represents a foreground color for a screen cell.
// Front-ends map it to ANSI codes (TUI) or RGBA (window).
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightYellow
	ColorGray
)

// Semantic colours used by the platformer renderers.
const (
	ColorPlayer   = ColorRed
	ColorPlatform = ColorGreen
	ColorToken    = ColorBrightYellow
	ColorHUD      = ColorWhite
)
