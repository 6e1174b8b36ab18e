package charts

import (
	"io"
	"math"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

type AreaStyle struct {
	Colors      Palette
	StartAtZero bool
	FillOpacity float64
	GridLines   int
	Hover       HoverStyle
	Label       TextStyle
	Animation   Animation
}

func DefaultAreaStyle() AreaStyle {
	return AreaStyle{
		Colors:      Category10,
		StartAtZero: true,
		FillOpacity: 0.35,
		GridLines:   5,
		Hover: HoverStyle{
			Dash:  4,
			Gap:   4,
			Color: "#9e9e9e",
		},
		Animation: DefaultAnimation(),
	}
}

type AreaChart struct {
	Chart
	Style  AreaStyle
	Series []LineSeries
	Hover  *HoverState
}

func (c AreaChart) valueRange() (float64, float64) {
	return seriesRange(c.Series, c.Style.StartAtZero)
}

func (c AreaChart) Coordinates(area Bounds, s LineSeries) []svg.Pos {
	min, max := c.valueRange()
	return seriesCoordinates(area, s.Points, min, max)
}

// Layout returns the revealed polyline per series, the same reveal
// the line chart uses.
func (c AreaChart) Layout(area Bounds, progress float64) [][]svg.Pos {
	out := make([][]svg.Pos, 0, len(c.Series))
	for _, s := range c.Series {
		pts := c.Coordinates(area, s)
		out = append(out, revealPath(pts, false, 0, progress))
	}
	return out
}

func (c AreaChart) Nearest(area Bounds, x, y float64) (int, int, bool) {
	var (
		bestSerie = -1
		bestIndex = -1
		bestDist  = math.Inf(1)
	)
	for si, s := range c.Series {
		for pi, pos := range c.Coordinates(area, s) {
			d := math.Abs(pos.X - x)
			if d < bestDist {
				bestDist = d
				bestSerie = si
				bestIndex = pi
			}
		}
	}
	if bestSerie < 0 || bestDist > c.Style.Hover.maxDistance() {
		return -1, -1, false
	}
	return bestSerie, bestIndex, true
}

func (c AreaChart) Render(w io.Writer, progress float64) {
	var (
		area = c.Area()
		grp  = getBaseGroup("", "area")
	)
	if c.Style.GridLines > 0 {
		grp.Append(drawGridLines(area, c.Style.GridLines))
	}
	for i, s := range c.Series {
		grp.Append(c.renderSeries(area, i, s, progress))
	}
	if c.Hover != nil && c.Hover.Index >= 0 {
		si := 0
		if c.Hover.Serie >= 0 && c.Hover.Serie < len(c.Series) {
			si = c.Hover.Serie
		}
		if pts := c.Coordinates(area, c.Series[si]); c.Hover.Index < len(pts) {
			grp.Append(drawHoverLine(area, c.Style.Hover, pts[c.Hover.Index]))
		}
	}
	c.render(w, grp.AsElement())
}

func (c AreaChart) renderSeries(area Bounds, idx int, s LineSeries, progress float64) svg.Element {
	var (
		color = resolveColor(s.Color, nil, 0, c.Style.Colors.At(idx))
		grp   = getBaseGroup(color, "serie")
		pts   = c.Coordinates(area, s)
	)
	grp.Id = s.Title
	if len(pts) == 0 {
		return grp.AsElement()
	}
	revealed := revealPath(pts, false, 0, progress)

	// closed path: baseline up to the first point, along the series
	// and back down, filled with a faded variant of the line color
	fill := getLinePath(s.Width)
	fill.Fill = svg.NewFill(currentColour)
	fill.Fill.Opacity = c.Style.FillOpacity * Clamp(progress)
	fill.Stroke = svg.NewStroke("none", 0)

	first := slices.Fst(revealed)
	last := slices.Lst(revealed)
	fill.AbsMoveTo(svg.NewPos(first.X, area.Bottom()))
	for _, pos := range revealed {
		fill.AbsLineTo(pos)
	}
	fill.AbsLineTo(svg.NewPos(last.X, area.Bottom()))
	fill.ClosePath()
	grp.Append(fill.AsElement())

	line := getLinePath(s.Width)
	line.AbsMoveTo(first)
	for _, pos := range slices.Rest(revealed) {
		line.AbsLineTo(pos)
	}
	grp.Append(line.AsElement())

	if s.ShowMarkers {
		marker := s.Marker
		if marker == nil {
			marker = CircleMarker
		}
		count := countRevealed(pts, progress)
		for i := 0; i < count; i++ {
			grp.Append(marker(pts[i], s.MarkerSize))
		}
	}
	return grp.AsElement()
}
