package model

import "image/color"

// Color is the juice color picked from a closed set of members.
type Color string

const (
	ColorRed     Color = "Red"
	ColorBlue    Color = "Blue"
	ColorGreen   Color = "Green"
	ColorCyan    Color = "Cyan"
	ColorYellow  Color = "Yellow"
	ColorMagenta Color = "Magenta"
)

// colorOrder is the display order of the enumeration; the first member is the default.
var colorOrder = [...]Color{
	ColorRed,
	ColorBlue,
	ColorGreen,
	ColorCyan,
	ColorYellow,
	ColorMagenta,
}

var colorValues = map[Color]color.RGBA{
	ColorRed:     {R: 0xFF, G: 0x00, B: 0x00, A: 0xFF},
	ColorBlue:    {R: 0x00, G: 0x00, B: 0xFF, A: 0xFF},
	ColorGreen:   {R: 0x00, G: 0xFF, B: 0x00, A: 0xFF},
	ColorCyan:    {R: 0x00, G: 0xFF, B: 0xFF, A: 0xFF},
	ColorYellow:  {R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF},
	ColorMagenta: {R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF},
}

// Colors returns the enumeration members in display order.
func Colors() []Color {
	out := make([]Color, len(colorOrder))
	copy(out, colorOrder[:])
	return out
}

// DefaultColor returns the first member of the enumeration.
func DefaultColor() Color {
	return colorOrder[0]
}

// ColorAt returns the member at index, or the default for any index outside the set.
func ColorAt(index int) Color {
	if index < 0 || index >= len(colorOrder) {
		return DefaultColor()
	}
	return colorOrder[index]
}

// ParseColor looks up a member by its exact name.
func ParseColor(name string) (Color, bool) {
	c := Color(name)
	if !c.IsValid() {
		return DefaultColor(), false
	}
	return c, true
}

// String returns the string representation of Color
func (c Color) String() string {
	return string(c)
}

// IsValid reports whether c is a member of the enumeration.
func (c Color) IsValid() bool {
	_, ok := colorValues[c]
	return ok
}

// Index returns the position of c in display order, -1 if c is not a member.
func (c Color) Index() int {
	for i, member := range colorOrder {
		if member == c {
			return i
		}
	}
	return -1
}

// Label returns the text shown for c in selection controls.
// Members are labeled by name; anything else gets the default's label.
func (c Color) Label() string {
	if !c.IsValid() {
		return DefaultColor().String()
	}
	return string(c)
}

// RGBA returns the display color for c. Unknown values map to the default member's color.
func (c Color) RGBA() color.RGBA {
	if v, ok := colorValues[c]; ok {
		return v
	}
	return colorValues[DefaultColor()]
}

// ColorLabels returns the labels of all members in display order.
func ColorLabels() []string {
	labels := make([]string, len(colorOrder))
	for i, c := range colorOrder {
		labels[i] = c.Label()
	}
	return labels
}
