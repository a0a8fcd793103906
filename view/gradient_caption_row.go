package view

import (
	"github.com/boolean-maybe/todos/config"
	"github.com/boolean-maybe/todos/util/gradient"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// GradientCaptionRow is a tview primitive that renders a centered caption
// on a horizontal background gradient spanning the entire width
type GradientCaptionRow struct {
	*tview.Box
	caption   []rune
	gradient  config.Gradient
	textColor tcell.Color
	solid     bool
}

// NewGradientCaptionRow creates a new gradient caption row widget
func NewGradientCaptionRow(caption string, gradient config.Gradient, textColor tcell.Color) *GradientCaptionRow {
	return &GradientCaptionRow{
		Box:       tview.NewBox(),
		caption:   []rune(caption),
		gradient:  gradient,
		textColor: textColor,
		solid:     !config.UseGradients(),
	}
}

// SetSolid switches between the gradient and a single background color
func (gcr *GradientCaptionRow) SetSolid(solid bool) *GradientCaptionRow {
	gcr.solid = solid
	return gcr
}

// Caption returns the caption text
func (gcr *GradientCaptionRow) Caption() string {
	return string(gcr.caption)
}

// Draw renders the caption with a gradient running from the center to both edges
func (gcr *GradientCaptionRow) Draw(screen tcell.Screen) {
	gcr.DrawForSubclass(screen, gcr)

	x, y, width, height := gcr.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	textWidth := len(gcr.caption)
	textStart := 0
	if textWidth < width {
		textStart = (width - textWidth) / 2
	}

	for col := 0; col < width; col++ {
		// Wide gradients show visible banding on 256-color terminals
		bgColor := gradient.InterpolateColor(gcr.gradient, 0.0)
		if !gcr.solid {
			bgColor = gradient.InterpolateColor(gcr.gradient, gradient.EdgeDistance(col, width))
		}

		char := ' '
		if i := col - textStart; i >= 0 && i < textWidth {
			char = gcr.caption[i]
		}

		style := tcell.StyleDefault.Foreground(gcr.textColor).Background(bgColor).Bold(true)
		for row := 0; row < height; row++ {
			screen.SetContent(x+col, y+row, char, nil, style)
		}
	}
}
