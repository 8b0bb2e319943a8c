package model

import (
	"image/color"
	"testing"
)

func TestColors_Order(t *testing.T) {
	expected := []Color{ColorRed, ColorBlue, ColorGreen, ColorCyan, ColorYellow, ColorMagenta}
	colors := Colors()

	if len(colors) != len(expected) {
		t.Fatalf("Expected %d colors, got %d", len(expected), len(colors))
	}
	for i, c := range expected {
		if colors[i] != c {
			t.Errorf("Color %d: expected %s, got %s", i, c, colors[i])
		}
	}

	// Mutating the returned slice must not affect the enumeration
	colors[0] = ColorMagenta
	if Colors()[0] != ColorRed {
		t.Error("Colors() should return a copy")
	}
}

func TestDefaultColor(t *testing.T) {
	if DefaultColor() != ColorRed {
		t.Errorf("DefaultColor() = %s, expected %s", DefaultColor(), ColorRed)
	}
}

func TestColorAt(t *testing.T) {
	tests := []struct {
		index    int
		expected Color
	}{
		{-1, ColorRed},
		{0, ColorRed},
		{2, ColorGreen},
		{5, ColorMagenta},
		{6, ColorRed},
		{100, ColorRed},
	}

	for _, test := range tests {
		result := ColorAt(test.index)
		if result != test.expected {
			t.Errorf("ColorAt(%d) = %s, expected %s", test.index, result, test.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		ok       bool
	}{
		{"Red", ColorRed, true},
		{"Cyan", ColorCyan, true},
		{"cyan", ColorRed, false},
		{"", ColorRed, false},
		{"Orange", ColorRed, false},
	}

	for _, test := range tests {
		result, ok := ParseColor(test.name)
		if result != test.expected || ok != test.ok {
			t.Errorf("ParseColor(%q) = (%s, %v), expected (%s, %v)", test.name, result, ok, test.expected, test.ok)
		}
	}
}

func TestColor_IndexAndValidity(t *testing.T) {
	for i, c := range Colors() {
		if !c.IsValid() {
			t.Errorf("Color(%s).IsValid() = false", c)
		}
		if c.Index() != i {
			t.Errorf("Color(%s).Index() = %d, expected %d", c, c.Index(), i)
		}
	}

	if Color("Purple").IsValid() {
		t.Error("Color(Purple) should not be valid")
	}
	if Color("Purple").Index() != -1 {
		t.Error("Color(Purple).Index() should be -1")
	}
}

func TestColor_LabelAndRGBA(t *testing.T) {
	if ColorYellow.Label() != "Yellow" {
		t.Errorf("Label() = %s, expected Yellow", ColorYellow.Label())
	}
	if Color("").Label() != "Red" {
		t.Errorf("Label() of invalid color = %s, expected Red", Color("").Label())
	}

	expected := color.RGBA{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF}
	if ColorYellow.RGBA() != expected {
		t.Errorf("RGBA() = %v, expected %v", ColorYellow.RGBA(), expected)
	}
	if Color("bogus").RGBA() != ColorRed.RGBA() {
		t.Error("RGBA() of invalid color should fall back to the default member")
	}

	labels := ColorLabels()
	if len(labels) != len(Colors()) || labels[0] != "Red" || labels[5] != "Magenta" {
		t.Errorf("ColorLabels() = %v", labels)
	}
}
