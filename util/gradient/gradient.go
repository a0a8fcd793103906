package gradient

import (
	"fmt"
	"math"
	"strings"

	"github.com/boolean-maybe/todos/config"
	"github.com/gdamore/tcell/v2"
)

// InterpolateRGB performs linear RGB interpolation with proper rounding.
// t should be in [0, 1] range (automatically clamped).
func InterpolateRGB(from, to [3]int, t float64) [3]int {
	// Clamp t to [0, 1]
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	return [3]int{
		int(math.Round(float64(from[0]) + t*float64(to[0]-from[0]))),
		int(math.Round(float64(from[1]) + t*float64(to[1]-from[1]))),
		int(math.Round(float64(from[2]) + t*float64(to[2]-from[2]))),
	}
}

// InterpolateColor is a convenience wrapper returning tcell.Color.
func InterpolateColor(gradient config.Gradient, t float64) tcell.Color {
	rgb := InterpolateRGB(gradient.Start, gradient.End, t)
	//nolint:gosec // G115: RGB values are 0-255, safe to convert to int32
	return tcell.NewRGBColor(int32(ClampRGB(rgb[0])), int32(ClampRGB(rgb[1])), int32(ClampRGB(rgb[2])))
}

// ClampRGB ensures RGB value stays within [0, 255].
func ClampRGB(value int) int {
	if value < 0 {
		return 0
	}
	if value > 255 {
		return 255
	}
	return value
}

// EdgeDistance maps column col of a band width cells wide to [0, 1]:
// 0 at the center, 1 at either edge.
func EdgeDistance(col, width int) float64 {
	if width <= 1 {
		return 0
	}
	center := float64(width) / 2.0
	d := (float64(col) - center) / center
	if d < 0 {
		d = -d
	}
	if d > 1 {
		d = 1
	}
	return d
}

// RenderGradientText renders text with character-by-character gradient coloring.
func RenderGradientText(text string, gradient config.Gradient) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, char := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		rgb := InterpolateRGB(gradient.Start, gradient.End, t)
		fmt.Fprintf(&builder, "[#%02x%02x%02x]%c", rgb[0], rgb[1], rgb[2], char)
	}
	return builder.String()
}

// RenderAdaptiveGradientText renders text with a gradient, or in the solid fallback color
// when gradients are disabled.
func RenderAdaptiveGradientText(text string, gradient config.Gradient, fallbackColor tcell.Color, useGradients bool) string {
	if len(text) == 0 {
		return ""
	}

	if !useGradients {
		r, g, b := fallbackColor.RGB()
		return fmt.Sprintf("[#%02x%02x%02x]%s", r, g, b, text)
	}

	return RenderGradientText(text, gradient)
}
