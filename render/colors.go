package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette, Tokyo Night base
var (
	RgbBackground  = colorful.Color{R: 26.0 / 255, G: 27.0 / 255, B: 38.0 / 255}
	RgbLaneBg      = colorful.Color{R: 36.0 / 255, G: 40.0 / 255, B: 59.0 / 255}
	RgbHeaderText  = colorful.Color{R: 192.0 / 255, G: 202.0 / 255, B: 245.0 / 255}
	RgbHeaderDim   = colorful.Color{R: 86.0 / 255, G: 95.0 / 255, B: 137.0 / 255}
	RgbPlaceholder = colorful.Color{R: 65.0 / 255, G: 72.0 / 255, B: 104.0 / 255}
	RgbDropFlash   = colorful.Color{R: 224.0 / 255, G: 175.0 / 255, B: 104.0 / 255}
	RgbStatusBg    = colorful.Color{R: 122.0 / 255, G: 162.0 / 255, B: 247.0 / 255}
	RgbStatusDrag  = colorful.Color{R: 158.0 / 255, G: 206.0 / 255, B: 106.0 / 255}
	RgbStatusText  = colorful.Color{R: 0, G: 0, B: 0}
	RgbTextDark    = colorful.Color{R: 0.08, G: 0.08, B: 0.1}
	RgbTextLight   = colorful.Color{R: 0.95, G: 0.95, B: 0.97}
)

// toTcell converts a colour to a 24-bit tcell colour
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Blend performs alpha blending in RGB: result = src*alpha + dst*(1-alpha)
func Blend(dst, src colorful.Color, alpha float64) colorful.Color {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	return dst.BlendRgb(src, alpha)
}

// Max returns the per-channel maximum
func Max(dst, src colorful.Color) colorful.Color {
	return colorful.Color{R: max(dst.R, src.R), G: max(dst.G, src.G), B: max(dst.B, src.B)}
}

// TextOn picks a readable text colour for bg
func TextOn(bg colorful.Color) colorful.Color {
	l, _, _ := bg.Lab()
	if l > 0.6 {
		return RgbTextDark
	}
	return RgbTextLight
}
