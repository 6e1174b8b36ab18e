package charts

import (
	"github.com/midbel/svg"
)

var DefaultMarkerSize float64 = 4

// MarkerFunc draws the marker for one data point of a line or area
// series.
type MarkerFunc func(svg.Pos, float64) svg.Element

func CircleMarker(pos svg.Pos, size float64) svg.Element {
	if size <= 0 {
		size = DefaultMarkerSize
	}
	var el svg.Circle
	el.Pos = pos
	el.Fill = svg.NewFill(currentColour)
	el.Radius = size / 2
	return el.AsElement()
}

func SquareMarker(pos svg.Pos, size float64) svg.Element {
	if size <= 0 {
		size = DefaultMarkerSize
	}
	half := size / 2
	pos.X -= half
	pos.Y -= half

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(size, size)
	el.Fill = svg.NewFill(currentColour)

	return el.AsElement()
}

func DiamondMarker(pos svg.Pos, size float64) svg.Element {
	if size <= 0 {
		size = DefaultMarkerSize
	}
	half := size / 2
	pos.X -= half
	pos.Y -= half

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(size, size)
	el.Fill = svg.NewFill(currentColour)
	el.Transform.RA = 45
	el.Transform.RX = pos.X + half
	el.Transform.RY = pos.Y + half

	return el.AsElement()
}
