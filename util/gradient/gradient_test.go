package gradient

import (
	"testing"

	"github.com/boolean-maybe/todos/config"
	"github.com/gdamore/tcell/v2"
)

func TestInterpolateRGB(t *testing.T) {
	tests := []struct {
		name string
		from [3]int
		to   [3]int
		t    float64
		want [3]int
	}{
		{
			name: "t=0 returns from color",
			from: [3]int{0, 0, 0},
			to:   [3]int{100, 200, 250},
			t:    0,
			want: [3]int{0, 0, 0},
		},
		{
			name: "t=1 returns to color",
			from: [3]int{0, 0, 0},
			to:   [3]int{100, 200, 250},
			t:    1,
			want: [3]int{100, 200, 250},
		},
		{
			name: "t=0.5 midpoint with rounding",
			from: [3]int{0, 0, 0},
			to:   [3]int{100, 200, 250},
			t:    0.5,
			want: [3]int{50, 100, 125},
		},
		{
			name: "t clamped below 0",
			from: [3]int{50, 100, 150},
			to:   [3]int{100, 200, 250},
			t:    -0.5,
			want: [3]int{50, 100, 150},
		},
		{
			name: "t clamped above 1",
			from: [3]int{50, 100, 150},
			to:   [3]int{100, 200, 250},
			t:    1.5,
			want: [3]int{100, 200, 250},
		},
		{
			name: "odd value rounding",
			from: [3]int{0, 0, 0},
			to:   [3]int{99, 99, 99},
			t:    0.5,
			want: [3]int{50, 50, 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpolateRGB(tt.from, tt.to, tt.t)
			if got != tt.want {
				t.Errorf("InterpolateRGB(%v, %v, %v) = %v, want %v",
					tt.from, tt.to, tt.t, got, tt.want)
			}
		})
	}
}

func TestClampRGB(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  int
	}{
		{"below zero", -10, 0},
		{"zero", 0, 0},
		{"mid range", 128, 128},
		{"max value", 255, 255},
		{"above max", 300, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampRGB(tt.value)
			if got != tt.want {
				t.Errorf("ClampRGB(%d) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestRenderGradientText(t *testing.T) {
	gradient := config.Gradient{
		Start: [3]int{0, 0, 0},
		End:   [3]int{255, 255, 255},
	}

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "empty string",
			text: "",
			want: "",
		},
		{
			name: "single character",
			text: "A",
			want: "[#000000]A",
		},
		{
			name: "two characters",
			text: "AB",
			want: "[#000000]A[#ffffff]B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderGradientText(tt.text, gradient)
			if got != tt.want {
				t.Errorf("RenderGradientText(%q, gradient) = %q, want %q",
					tt.text, got, tt.want)
			}
		})
	}
}

func TestInterpolateColor(t *testing.T) {
	gradient := config.Gradient{
		Start: [3]int{0, 0, 0},
		End:   [3]int{100, 200, 250},
	}

	color := InterpolateColor(gradient, 0.5)
	r, g, b := color.RGB()

	// Should match InterpolateRGB result
	if r != 50 || g != 100 || b != 125 {
		t.Errorf("InterpolateColor returned RGB(%d, %d, %d), want RGB(50, 100, 125)",
			r, g, b)
	}
}

func TestRenderGradientText_Unicode(t *testing.T) {
	gradient := config.Gradient{
		Start: [3]int{0, 0, 0},
		End:   [3]int{255, 255, 255},
	}

	got := RenderGradientText("✓✓", gradient)
	want := "[#000000]✓[#ffffff]✓"
	if got != want {
		t.Errorf("RenderGradientText = %q, want %q", got, want)
	}
}

func TestEdgeDistance(t *testing.T) {
	tests := []struct {
		name  string
		col   int
		width int
		want  float64
	}{
		{"left edge", 0, 10, 1},
		{"center", 5, 10, 0},
		{"halfway right", 7, 8, 0.75},
		{"single column", 0, 1, 0},
		{"zero width", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EdgeDistance(tt.col, tt.width); got != tt.want {
				t.Errorf("EdgeDistance(%d, %d) = %v, want %v", tt.col, tt.width, got, tt.want)
			}
		})
	}
}

func TestRenderAdaptiveGradientText(t *testing.T) {
	gradient := config.Gradient{
		Start: [3]int{30, 144, 255}, // Dodger Blue
		End:   [3]int{0, 191, 255},  // Deep Sky Blue
	}
	fallback := tcell.NewRGBColor(0, 191, 255)

	if got := RenderAdaptiveGradientText("", gradient, fallback, true); got != "" {
		t.Errorf("empty text rendered as %q", got)
	}

	solid := RenderAdaptiveGradientText("todos", gradient, fallback, false)
	if solid != "[#00bfff]todos" {
		t.Errorf("solid = %q, want [#00bfff]todos", solid)
	}

	graded := RenderAdaptiveGradientText("todos", gradient, fallback, true)
	if graded != RenderGradientText("todos", gradient) {
		t.Errorf("gradient = %q, want per-character gradient", graded)
	}
	if len(solid) >= len(graded) {
		t.Error("expected solid color result to be shorter than gradient result")
	}
}
