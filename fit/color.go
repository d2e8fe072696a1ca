package fit

import "math"

// srgbToLinear maps an 8-bit sRGB channel to linear light in [0, 1].
var srgbToLinear [256]float64

func init() {
	for i := range srgbToLinear {
		s := float64(i) / 255
		if s <= 0.04045 {
			srgbToLinear[i] = s / 12.92
		} else {
			srgbToLinear[i] = math.Pow((s+0.055)/1.055, 2.4)
		}
	}
}

// luminance returns the relative luminance of an sRGB color (Rec. 709
// weights on linear channels).
func luminance(r, g, b uint8) float64 {
	return 0.2126*srgbToLinear[r] + 0.7152*srgbToLinear[g] + 0.0722*srgbToLinear[b]
}

// hsv converts an 8-bit RGB color to hue in degrees [0, 360) and
// saturation and value in [0, 1].
func hsv(r, g, b uint8) (h, s, v float64) {
	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255
	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	delta := maxC - minC

	v = maxC
	if maxC > 0 {
		s = delta / maxC
	}
	if delta == 0 {
		return 0, s, v
	}
	switch maxC {
	case rf:
		h = 60 * math.Mod((gf-bf)/delta, 6)
	case gf:
		h = 60 * ((bf-rf)/delta + 2)
	default:
		h = 60 * ((rf-gf)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}
