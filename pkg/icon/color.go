// color.go — Palette and hex colour parsing.
package icon

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette. Hex values follow Catppuccin Mocha.
var (
	BG     = mustParseHex("#1e1e2e") // dark background
	Green1 = mustParseHex("#a6e3a1") // green, centre tree and prompt
	Green2 = mustParseHex("#94e2d5") // teal, left tree
	Green3 = mustParseHex("#89b4fa") // blue, right tree
	Trunk  = mustParseHex("#bac2de") // trunks
)

// ParseHex parses "#rrggbb" (the '#' is optional) into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected 6-char hex", s)
	}

	rv, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid red channel in %q: %w", s, err)
	}
	gv, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid green channel in %q: %w", s, err)
	}
	bv, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid blue channel in %q: %w", s, err)
	}

	return color.RGBA{R: uint8(rv), G: uint8(gv), B: uint8(bv), A: 255}, nil
}

func mustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
