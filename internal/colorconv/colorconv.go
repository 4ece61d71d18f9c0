// Package colorconv converts between RGB, HSV, and HSL color spaces.
// Hue is degrees in [0,360); saturation, value, and lightness are in
// [0,1]. RGB values ride in image/color.RGBA; round trips through HSV
// or HSL land within ±1 per channel from byte rounding.
//
// HSL and HSV convert to each other through closed-form identities
// rather than independent derivations, so the two paths cannot drift
// apart.
package colorconv

import (
	"fmt"
	"image/color"
	"math"

	"github.com/san-kum/physkit/internal/quant"
)

// HSV is hue-saturation-value.
type HSV struct {
	H float64
	S float64
	V float64
}

// HSL is hue-saturation-lightness.
type HSL struct {
	H float64
	S float64
	L float64
}

func checkUnit(name string, v float64) error {
	if err := quant.CheckFinite(name, v); err != nil {
		return err
	}
	if v < 0 || v > 1 {
		return fmt.Errorf("%w: %s = %g outside [0,1]", quant.ErrOutOfRange, name, v)
	}
	return nil
}

// RGBToHSV converts a byte-valued color to HSV. Alpha is ignored.
func RGBToHSV(c color.RGBA) HSV {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	diff := maxC - minC

	h := 0.0
	switch {
	case diff == 0:
		h = 0
	case maxC == r:
		h = 60 * math.Mod((g-b)/diff, 6)
	case maxC == g:
		h = 60 * ((b-r)/diff + 2)
	default:
		h = 60 * ((r-g)/diff + 4)
	}
	if h < 0 {
		h += 360
	}

	s := 0.0
	if maxC > 0 {
		s = diff / maxC
	}
	return HSV{H: h, S: s, V: maxC}
}

// HSVToRGB converts HSV back to a byte-valued color with full alpha.
// Hue wraps; saturation and value must be in [0,1].
func HSVToRGB(c HSV) (color.RGBA, error) {
	if err := quant.CheckFinite("h", c.H); err != nil {
		return color.RGBA{}, err
	}
	if err := checkUnit("s", c.S); err != nil {
		return color.RGBA{}, err
	}
	if err := checkUnit("v", c.V); err != nil {
		return color.RGBA{}, err
	}

	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	chroma := c.V * c.S
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := c.V - chroma

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return color.RGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 0xff,
	}, nil
}

// HSVToHSL converts via the closed-form identity L = V·(1−S/2).
func HSVToHSL(c HSV) (HSL, error) {
	if err := quant.CheckFinite("h", c.H); err != nil {
		return HSL{}, err
	}
	if err := checkUnit("s", c.S); err != nil {
		return HSL{}, err
	}
	if err := checkUnit("v", c.V); err != nil {
		return HSL{}, err
	}

	l := c.V * (1 - c.S/2)
	s := 0.0
	if l > 0 && l < 1 {
		s = (c.V - l) / math.Min(l, 1-l)
	}
	return HSL{H: c.H, S: s, L: l}, nil
}

// HSLToHSV converts via the closed-form identity V = L + S·min(L,1−L).
func HSLToHSV(c HSL) (HSV, error) {
	if err := quant.CheckFinite("h", c.H); err != nil {
		return HSV{}, err
	}
	if err := checkUnit("s", c.S); err != nil {
		return HSV{}, err
	}
	if err := checkUnit("l", c.L); err != nil {
		return HSV{}, err
	}

	v := c.L + c.S*math.Min(c.L, 1-c.L)
	s := 0.0
	if v > 0 {
		s = 2 * (1 - c.L/v)
	}
	return HSV{H: c.H, S: s, V: v}, nil
}

// RGBToHSL converts a byte-valued color to HSL, via HSV.
func RGBToHSL(c color.RGBA) (HSL, error) {
	return HSVToHSL(RGBToHSV(c))
}

// HSLToRGB converts HSL back to a byte-valued color, via HSV.
func HSLToRGB(c HSL) (color.RGBA, error) {
	hsv, err := HSLToHSV(c)
	if err != nil {
		return color.RGBA{}, err
	}
	return HSVToRGB(hsv)
}
