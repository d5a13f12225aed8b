package core

// Color is a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal front end and to RGB in the window build.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorGray      // #aeaeae panel / credit text
	ColorLightGray // #dedede hovered button
	ColorPanelEdge // #447744 display outline
)

// String returns the color name, mostly for test failures.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorWhite:
		return "white"
	case ColorBlack:
		return "black"
	case ColorBrightRed:
		return "bright-red"
	case ColorBrightGreen:
		return "bright-green"
	case ColorBrightWhite:
		return "bright-white"
	case ColorGray:
		return "gray"
	case ColorLightGray:
		return "light-gray"
	case ColorPanelEdge:
		return "panel-edge"
	default:
		return "unknown"
	}
}
