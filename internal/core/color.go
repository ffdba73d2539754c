package core

// Color is the foreground color of a screen cell. The platform maps it to a
// terminal style; games only pick from this palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorDim
	ColorWhite
	ColorYellow
	ColorOrange
	ColorRed
	ColorCyan
	ColorGreen
	ColorMagenta
)
