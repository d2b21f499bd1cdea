package style

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Tokens is the immutable style configuration of a panel.
type Tokens struct {
	Color       string // background, "name-shade/opacity"
	Border      string // border color token
	Radius      string // radius key
	BorderWidth int    // 0 disables the border
	Shadow      string // shadow key, optionally "/opacity"
	Blur        string // backdrop blur key
	Saturation  int    // percent; 0 means 100
}

// Resolved is the concrete attribute bundle the rendering sink consumes.
// Terminals have no alpha channel, so translucent colors are composited
// over the backdrop color up front.
type Resolved struct {
	Background       lipgloss.Color
	BorderForeground lipgloss.Color
	Border           lipgloss.Border
	BorderWidth      int
	Radius           int
	Shadow           Shadow
	ShadowColor      lipgloss.Color
	BlurRadius       int
	Saturation       float64
}

// Resolve maps tokens to a concrete bundle against the given backdrop.
func Resolve(t Tokens, backdrop RGB) Resolved {
	sat := float64(t.Saturation) / 100
	if t.Saturation == 0 {
		sat = 1
	}

	shadow := ParseShadow(t.Shadow)
	radius := RadiusCells(t.Radius)

	r := Resolved{
		Background:       Composite(ParseColor(t.Color), backdrop, sat),
		BorderForeground: Composite(ParseColor(t.Border), backdrop, sat),
		BorderWidth:      t.BorderWidth,
		Radius:           radius,
		Shadow:           shadow,
		ShadowColor:      Composite(Color{RGB: RGB{}, Alpha: shadow.Alpha}, backdrop, 1),
		BlurRadius:       BlurRadius(t.Blur),
		Saturation:       sat,
	}
	if radius > 0 {
		r.Border = lipgloss.RoundedBorder()
	} else {
		r.Border = lipgloss.NormalBorder()
	}
	return r
}

// Composite realizes a translucent color against a backdrop: saturation is
// applied in HSL space, then the color is alpha-blended over the backdrop.
func Composite(c Color, backdrop RGB, saturation float64) lipgloss.Color {
	fg := toColorful(c.RGB)
	if saturation != 1 {
		h, s, l := fg.Hsl()
		s *= saturation
		if s > 1 {
			s = 1
		}
		fg = colorful.Hsl(h, s, l)
	}
	out := toColorful(backdrop).BlendRgb(fg, c.Alpha)
	return lipgloss.Color(out.Hex())
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
