package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI 256-color code.
type Color uint8

// Basic colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Extended palette used by the piece color schemes.
const (
	ColorGold Color = iota + ColorGray + 1
	ColorAzure
	ColorPurple
	ColorEmerald
	ColorNavy
	ColorPink
	ColorLime
	ColorSkyBlue
	ColorPowderBlue
	ColorSteelBlue
	ColorCadetBlue
	ColorDeepSkyBlue
	ColorDodgerBlue
	ColorCornflower
	ColorOrangeRed
	ColorTomato
	ColorCrimson
	ColorFirebrick
	ColorDeepPink
	ColorHotPink
)
