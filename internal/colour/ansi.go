package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for 24-bit terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"

	// SwatchWidth is the default width of a preview swatch in cells.
	SwatchWidth = 4
)

// Swatch returns a solid block of the given colour, width cells wide.
func Swatch(c RGB, width int) string {
	if width <= 0 {
		width = SwatchWidth
	}
	return background(c) + strings.Repeat(" ", width) + ansiReset
}

func background(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}
