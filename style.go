package gui

import (
	"fmt"
	"strings"
)

// Sizing constants shared by all widgets.
const (
	Padding      float32 = 10  // Space between a widget's edge and its text
	CheckboxSize float32 = 12  // Side of the checkbox square
	RadioSize    float32 = 14  // Diameter of a radio button circle
	SliderWidth  float32 = 256 // Length of a slider track
)

// Theme is the set of colors every widget is drawn with.
type Theme struct {
	Foreground Color // Text, outlines, check marks
	Background Color // Painted over the whole surface at Begin
	Accent     Color // Hover and press feedback
}

// Solarized palette entries used by the built-in themes.
var (
	solarizedBase3  = RGB(0xfd, 0xf6, 0xe3)
	solarizedBase01 = RGB(0x58, 0x6e, 0x75)
	solarizedBase02 = RGB(0x07, 0x36, 0x42)
	solarizedBase1  = RGB(0x93, 0xa1, 0xa1)
	solarizedBlue   = RGB(0x26, 0x8b, 0xd2)
)

// LightTheme returns the light theme: dark grey text on cream.
func LightTheme() Theme {
	return Theme{
		Foreground: solarizedBase01,
		Background: solarizedBase3,
		Accent:     solarizedBlue,
	}
}

// DarkTheme returns the dark theme: light grey text on dark teal.
func DarkTheme() Theme {
	return Theme{
		Foreground: solarizedBase1,
		Background: solarizedBase02,
		Accent:     solarizedBlue,
	}
}

// ApplyLight overwrites all three colors with the light palette.
func (t *Theme) ApplyLight() {
	*t = LightTheme()
}

// ApplyDark overwrites all three colors with the dark palette.
func (t *Theme) ApplyDark() {
	*t = DarkTheme()
}

// ThemeByName returns the built-in theme called "light" or "dark".
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light":
		return LightTheme(), nil
	case "dark":
		return DarkTheme(), nil
	default:
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
}
