package config

// Color and style definitions for the UI: gradients, tcell colors, tview color tags.

import (
	"github.com/gdamore/tcell/v2"
)

// Gradient defines a start and end RGB color for a gradient transition
type Gradient struct {
	Start [3]int // R, G, B (0-255)
	End   [3]int // R, G, B (0-255)
}

// ColorConfig holds all color and style definitions per view
type ColorConfig struct {
	// Caption colors
	CaptionText       tcell.Color
	CaptionBackground tcell.Color
	CaptionGradient   Gradient

	// Search box colors
	SearchBoxLabelColor      tcell.Color
	SearchBoxBackgroundColor tcell.Color
	SearchBoxTextColor       tcell.Color
	SearchBoxPlaceholder     tcell.Color

	// Add row colors
	InputFieldBackgroundColor tcell.Color
	InputFieldTextColor       tcell.Color
	InputFieldPlaceholder     tcell.Color
	AddButtonEnabled          tcell.Color
	AddButtonDisabled         tcell.Color

	// Task row colors
	RowText             tcell.Color
	RowCompletedText    tcell.Color
	RowSelectedText     tcell.Color
	RowSelectedBg       tcell.Color
	RowCheckboxColor    tcell.Color
	RowDeleteGlyphColor tcell.Color
	PlaceholderText     tcell.Color

	// Header view colors
	HeaderInfoLabel  string // tview color string like "[orange]"
	HeaderInfoValue  string // tview color string like "[white]"
	HeaderKeyBinding string // tview color string like "[yellow]"
	HeaderKeyText    string // tview color string like "[white]"
	HeaderError      string // tview color string like "[red]"

	// Header context help action colors
	HeaderActionGlobalKeyColor   string // tview color string for global action keys
	HeaderActionGlobalLabelColor string // tview color string for global action labels
	HeaderActionViewKeyColor     string // tview color string for view action keys
	HeaderActionViewLabelColor   string // tview color string for view action labels
}

// DefaultColors returns the default color configuration
func DefaultColors() *ColorConfig {
	return &ColorConfig{
		// Caption
		CaptionText:       tcell.PaletteColor(153), // Sky Blue (ANSI 153)
		CaptionBackground: tcell.ColorNavy,
		CaptionGradient: Gradient{
			Start: [3]int{25, 25, 112},  // Midnight Blue (center)
			End:   [3]int{65, 105, 225}, // Royal Blue (edges)
		},

		// Search box
		SearchBoxLabelColor:      tcell.ColorWhite,
		SearchBoxBackgroundColor: tcell.ColorDefault, // Transparent
		SearchBoxTextColor:       tcell.ColorWhite,
		SearchBoxPlaceholder:     tcell.NewRGBColor(128, 128, 128),

		// Add row
		InputFieldBackgroundColor: tcell.ColorDefault, // Transparent
		InputFieldTextColor:       tcell.ColorWhite,
		InputFieldPlaceholder:     tcell.NewRGBColor(128, 128, 128),
		AddButtonEnabled:          tcell.ColorGreen,
		AddButtonDisabled:         tcell.NewRGBColor(80, 80, 80),

		// Task rows
		RowText:             tcell.NewRGBColor(184, 184, 184), // Light gray
		RowCompletedText:    tcell.NewRGBColor(118, 118, 118), // Darker gray
		RowSelectedText:     tcell.PaletteColor(117),          // Light Blue (ANSI 117)
		RowSelectedBg:       tcell.PaletteColor(33),           // Blue (ANSI 33)
		RowCheckboxColor:    tcell.NewRGBColor(90, 170, 255),
		RowDeleteGlyphColor: tcell.NewRGBColor(215, 95, 95),
		PlaceholderText:     tcell.NewRGBColor(128, 128, 128),

		// Header
		HeaderInfoLabel:  "[orange]",
		HeaderInfoValue:  "[#cccccc]",
		HeaderKeyBinding: "[yellow]",
		HeaderKeyText:    "[white]",
		HeaderError:      "[red]",

		// Header context help actions
		HeaderActionGlobalKeyColor:   "#ffff00", // yellow for global actions
		HeaderActionGlobalLabelColor: "#ffffff", // white for global action labels
		HeaderActionViewKeyColor:     "#5fafff", // cyan for view-specific actions
		HeaderActionViewLabelColor:   "#808080", // gray for view-specific labels
	}
}

// Global color config instance
var globalColors *ColorConfig
var colorsInitialized bool

// GetColors returns the global color configuration with theme-aware overrides
func GetColors() *ColorConfig {
	if !colorsInitialized {
		globalColors = DefaultColors()
		// Apply theme-aware overrides for critical text colors
		if GetEffectiveTheme() == "light" {
			globalColors.SearchBoxLabelColor = tcell.ColorBlack
			globalColors.SearchBoxTextColor = tcell.ColorBlack
			globalColors.InputFieldTextColor = tcell.ColorBlack
			globalColors.RowText = tcell.NewRGBColor(40, 40, 40)
			globalColors.HeaderKeyText = "[black]"
			globalColors.HeaderActionGlobalLabelColor = "#000000"
		}
		colorsInitialized = true
	}
	return globalColors
}

// SetColors sets a custom color configuration
func SetColors(colors *ColorConfig) {
	globalColors = colors
	colorsInitialized = colors != nil
}

// Layout constants
const (
	CaptionHeight    = 1
	SearchRowHeight  = 1
	AddRowHeight     = 1
	AddButtonWidth   = 5
	CheckboxColWidth = 4
)
