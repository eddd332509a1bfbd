package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the runner. ColorDefault leaves the terminal color alone.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
)

// Cell is a single styled character in a Screen.
type Cell struct {
	Rune  rune
	Color Color
}

// blankCell is what Clear writes into every cell.
var blankCell = Cell{Rune: ' ', Color: ColorDefault}
