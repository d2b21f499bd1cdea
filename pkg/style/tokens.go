// Package style resolves compact theme tokens (color "name-shade/opacity",
// radius, shadow, blur, saturation) into concrete visual values through
// fixed lookup tables. Unknown tokens resolve to documented defaults; the
// package never returns an error. A mis-themed panel beats a crashed
// interaction loop.
package style

import (
	"strconv"
	"strings"
)

// Color is a resolved color token: a palette triple plus an alpha in [0,1].
type Color struct {
	RGB   RGB
	Alpha float64
}

// ParseColor resolves a color token of the form "name-shade" or
// "name-shade/opacity". An unknown name-shade resolves to DefaultRGB; an
// absent or unparseable opacity means fully opaque.
func ParseColor(token string) Color {
	base, alpha := splitAlpha(token)
	rgb, ok := palette[base]
	if !ok {
		rgb = DefaultRGB
	}
	return Color{RGB: rgb, Alpha: alpha}
}

// ParseShadow resolves a shadow token ("key" or "key/opacity") into its
// preset layers and opacity. Unknown keys fall back to "md".
func ParseShadow(token string) Shadow {
	base, alpha := splitAlpha(token)
	layers, ok := shadowPresets[base]
	if !ok {
		layers = shadowPresets["md"]
	}
	return Shadow{Layers: layers, Alpha: alpha}
}

func splitAlpha(token string) (string, float64) {
	base, frac, found := strings.Cut(token, "/")
	if !found {
		return base, 1.0
	}
	pct, err := strconv.Atoi(frac)
	if err != nil {
		return base, 1.0
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return base, float64(pct) / 100
}
