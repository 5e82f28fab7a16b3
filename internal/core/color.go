package core

// Color represents a foreground color for a screen cell.
// The front end maps it to an ANSI 256-color code.
type Color uint8

// Predefined colors for frame elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorGray
)
