package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorAmber
	ColorOrange
	ColorPurple
	ColorEmerald
	ColorStone
	ColorGray
)

// String returns the name of the color, used by the web bridge.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightGreen:
		return "bright-green"
	case ColorAmber:
		return "amber"
	case ColorOrange:
		return "orange"
	case ColorPurple:
		return "purple"
	case ColorEmerald:
		return "emerald"
	case ColorStone:
		return "stone"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}
