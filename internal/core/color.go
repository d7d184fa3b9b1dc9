package core

// Color is a foreground colour for a screen cell.
// The platform maps each value to an ANSI 256-colour code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorBrightRed
	ColorOrange
	ColorBrightYellow
	ColorBrightGreen
	ColorBrightBlue
	ColorBrightMagenta
	ColorCyan
	ColorBrightWhite
	ColorGray
)
