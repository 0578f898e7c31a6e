package inputprompt

import (
	"fmt"
	"strings"
)

// ColorScheme defines the colors of each part of the prompt.
type ColorScheme struct {
	Name   string `json:"name" yaml:"name"`
	Prompt Color  `json:"prompt" yaml:"prompt"` // "?" symbol in front of the message
	Hint   Color  `json:"hint" yaml:"hint"`     // default value hint and placeholder
	Input  Color  `json:"input" yaml:"input"`
	Error  Color  `json:"error" yaml:"error"`
	Done   Color  `json:"done" yaml:"done"` // symbol in front of a resolved message
	Answer Color  `json:"answer" yaml:"answer"`
}

// Color represents an RGB color with optional formatting.
type Color struct {
	R    uint8 `json:"r" yaml:"r"`
	G    uint8 `json:"g" yaml:"g"`
	B    uint8 `json:"b" yaml:"b"`
	Bold bool  `json:"bold" yaml:"bold"`
}

// ThemeDefault is the default color scheme
var ThemeDefault = &ColorScheme{
	Name:   "default",
	Prompt: Color{R: 0, G: 255, B: 0, Bold: true},
	Hint:   Color{R: 128, G: 128, B: 128},
	Input:  Color{R: 255, G: 255, B: 255},
	Error:  Color{R: 255, G: 85, B: 85, Bold: true},
	Done:   Color{R: 0, G: 255, B: 0, Bold: true},
	Answer: Color{R: 0, G: 255, B: 255},
}

// ThemeDark is a dark theme with light blue prompt and off-white text
var ThemeDark = &ColorScheme{
	Name:   "Dark",
	Prompt: Color{R: 102, G: 217, B: 239, Bold: true},
	Hint:   Color{R: 98, G: 114, B: 164},
	Input:  Color{R: 248, G: 248, B: 242},
	Error:  Color{R: 255, G: 85, B: 85, Bold: true},
	Done:   Color{R: 80, G: 250, B: 123, Bold: true},
	Answer: Color{R: 189, G: 147, B: 249},
}

// ThemeLight is a light theme with blue prompt and dark gray text
var ThemeLight = &ColorScheme{
	Name:   "Light",
	Prompt: Color{R: 0, G: 119, B: 187, Bold: true},
	Hint:   Color{R: 149, G: 157, B: 165},
	Input:  Color{R: 36, G: 41, B: 46},
	Error:  Color{R: 215, G: 58, B: 73, Bold: true},
	Done:   Color{R: 40, G: 167, B: 69, Bold: true},
	Answer: Color{R: 0, G: 119, B: 187},
}

// ThemeAccessible is a colorblind-safe theme with high contrast
var ThemeAccessible = &ColorScheme{
	Name:   "Accessible",
	Prompt: Color{R: 0, G: 114, B: 178, Bold: true},
	Hint:   Color{R: 204, G: 204, B: 204},
	Input:  Color{R: 255, G: 255, B: 255},
	Error:  Color{R: 230, G: 159, B: 0, Bold: true},
	Done:   Color{R: 0, G: 158, B: 115, Bold: true},
	Answer: Color{R: 240, G: 228, B: 66},
}

// Themes lists the built-in color schemes by name.
var Themes = map[string]*ColorScheme{
	"default":    ThemeDefault,
	"dark":       ThemeDark,
	"light":      ThemeLight,
	"accessible": ThemeAccessible,
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Bold formatting comes first
	if c.Bold {
		codes = append(codes, "1")
	}

	// RGB color (true color support)
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}
