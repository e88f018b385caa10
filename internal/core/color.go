package core

// Color is a foreground color for a screen cell, mapped to ANSI 256-color
// codes by the terminal front-end.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorOrange
	ColorGray
)

// Palette roles used when drawing the tower.
const (
	ColorSolid  = ColorCyan
	ColorHazard = ColorBrightRed
	ColorBall   = ColorBrightYellow
	ColorHUD    = ColorWhite
	ColorShard  = ColorGray
)
