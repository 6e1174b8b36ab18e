package charts

import (
	"github.com/midbel/svg"
)

type TextStyle struct {
	Size     float64
	Color    string
	Families []string
}

func (t TextStyle) size() float64 {
	if t.Size <= 0 {
		return FontSize
	}
	return t.Size
}

// lineHeight approximates the rendered height of a single text line.
// The svg backend has no text metrics so the usual 1.2em factor is
// used everywhere a measured height is needed.
func (t TextStyle) lineHeight() float64 {
	return t.size() * 1.2
}

type StrokeStyle struct {
	Color   string
	Width   float64
	Opacity float64
}

func (s StrokeStyle) width() float64 {
	if s.Width <= 0 {
		return 1
	}
	return s.Width
}

// newStroke builds a stroke with a fractional width, which the svg
// constructor only accepts as an int.
func newStroke(color string, width float64) svg.Stroke {
	sk := svg.NewStroke(color, 0)
	sk.Width = width
	return sk
}

// The svg text element carries no baseline attribute, vertical
// alignment goes through the dy shift instead.
func shiftMiddle(size float64) float64 {
	return size * 0.35
}

func shiftHanging(size float64) float64 {
	return size * 0.8
}
