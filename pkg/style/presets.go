package style

// Radius, shadow, and blur preset tables. Unknown keys resolve to the "md"
// entry of each table.

// radiusScale maps radius keys to corner radii on a linear scale.
var radiusScale = map[string]int{
	"none": 0,
	"sm":   2,
	"md":   4,
	"lg":   8,
	"xl":   12,
	"2xl":  16,
	"3xl":  24,
	"full": 9999,
}

// ShadowLayer is one layer of a drop shadow preset.
type ShadowLayer struct {
	OffsetX, OffsetY int
	Blur, Spread     int
}

// Shadow is a resolved shadow: preset layers plus the token's opacity.
type Shadow struct {
	Layers []ShadowLayer
	Alpha  float64
}

// None reports whether the shadow draws nothing.
func (s Shadow) None() bool { return len(s.Layers) == 0 || s.Alpha <= 0 }

// shadowPresets maps shadow keys to their layered offsets.
var shadowPresets = map[string][]ShadowLayer{
	"none": nil,
	"sm":   {{0, 1, 2, 0}},
	"md":   {{0, 4, 6, -1}, {0, 2, 4, -2}},
	"lg":   {{0, 10, 15, -3}, {0, 4, 6, -4}},
	"xl":   {{0, 20, 25, -5}, {0, 8, 10, -6}},
	"2xl":  {{0, 25, 50, -12}},
}

// blurScale maps blur keys to backdrop blur radii.
var blurScale = map[string]int{
	"none": 0,
	"sm":   4,
	"md":   12,
	"lg":   16,
	"xl":   24,
	"2xl":  40,
	"3xl":  64,
}

// RadiusCells resolves a radius key, falling back to "md".
func RadiusCells(key string) int {
	if r, ok := radiusScale[key]; ok {
		return r
	}
	return radiusScale["md"]
}

// BlurRadius resolves a blur key, falling back to "md".
func BlurRadius(key string) int {
	if r, ok := blurScale[key]; ok {
		return r
	}
	return blurScale["md"]
}
