// Package colour finds and decodes hexadecimal colour literals.
package colour

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// hexLiteral matches a '#' followed by exactly six hex digits. It is
// deliberately unanchored: "#1234567" still yields "#123456".
var hexLiteral = regexp.MustCompile(`#[0-9A-Fa-f]{6}`)

// FindHex returns every non-overlapping #RRGGBB literal in s, in order of
// appearance. It returns nil when s contains no literal.
func FindHex(s string) []string {
	return hexLiteral.FindAllString(s, -1)
}

// NormaliseHex converts a literal such as "#ff00aa" into its report form
// "#FF00AA". The leading '#' is kept.
func NormaliseHex(literal string) string {
	return strings.ToUpper(literal)
}

// ParseHex parses a colour in "#RRGGBB" or "RRGGBB" form.
func ParseHex(hex string) (RGB, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")

	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour length: expected 6 characters, got %d", len(hex))
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid red component: %w", err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid green component: %w", err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid blue component: %w", err)
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}
