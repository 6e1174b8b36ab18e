package charts

import (
	"io"
	"math"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

type LinePoint struct {
	Value float64
	Label string
}

type LineSeries struct {
	Title       string
	Color       string
	Width       float64
	ShowMarkers bool
	MarkerSize  float64
	Marker      MarkerFunc
	Points      []LinePoint
}

type HoverStyle struct {
	MaxDistance float64
	Dash        float64
	Gap         float64
	Color       string
}

func (h HoverStyle) maxDistance() float64 {
	if h.MaxDistance <= 0 {
		return 30
	}
	return h.MaxDistance
}

type LineStyle struct {
	Colors      Palette
	Smooth      bool
	Intensity   float64
	StartAtZero bool
	GridLines   int
	Hover       HoverStyle
	Label       TextStyle
	Animation   Animation
}

func DefaultLineStyle() LineStyle {
	return LineStyle{
		Colors:      Category10,
		Intensity:   0.3,
		StartAtZero: true,
		GridLines:   5,
		Hover: HoverStyle{
			Dash:  4,
			Gap:   4,
			Color: "#9e9e9e",
		},
		Animation: DefaultAnimation(),
	}
}

type LineChart struct {
	Chart
	Style  LineStyle
	Series []LineSeries
	Hover  *HoverState
}

// valueRange is the shared vertical scale across all series.
func (c LineChart) valueRange() (float64, float64) {
	return seriesRange(c.Series, c.Style.StartAtZero)
}

func seriesRange(series []LineSeries, startAtZero bool) (float64, float64) {
	var (
		min = math.Inf(1)
		max = math.Inf(-1)
	)
	for _, s := range series {
		for _, pt := range s.Points {
			if pt.Value < min {
				min = pt.Value
			}
			if pt.Value > max {
				max = pt.Value
			}
		}
	}
	if math.IsInf(min, 1) {
		return 0, 0
	}
	if startAtZero && min > 0 {
		min = 0
	}
	return min, max
}

// seriesCoordinates emits one screen position per data point: x
// evenly spaced by index, y inverted into the area. A single point
// sits centered at mid width.
func seriesCoordinates(area Bounds, pts []LinePoint, min, max float64) []svg.Pos {
	if len(pts) == 0 {
		return nil
	}
	var (
		out  = make([]svg.Pos, 0, len(pts))
		span = max - min
		step float64
	)
	if len(pts) > 1 {
		step = area.W / float64(len(pts)-1)
	}
	for i, pt := range pts {
		x := area.X + float64(i)*step
		if len(pts) == 1 {
			x = area.X + area.W/2
		}
		y := area.Y + area.H/2
		if span > 0 {
			y = area.Bottom() - (pt.Value-min)/span*area.H
		}
		out = append(out, svg.NewPos(x, y))
	}
	return out
}

// Coordinates maps one series into the chart area.
func (c LineChart) Coordinates(area Bounds, s LineSeries) []svg.Pos {
	min, max := c.valueRange()
	return seriesCoordinates(area, s.Points, min, max)
}

// revealPath flattens the full (optionally smoothed) path, measures
// it and cuts the prefix whose length matches progress.
func revealPath(pts []svg.Pos, smooth bool, intensity float64, progress float64) []svg.Pos {
	if len(pts) == 0 {
		return nil
	}
	full := pts
	if smooth && len(pts) > 2 {
		full = []svg.Pos{slices.Fst(pts)}
		for _, seg := range smoothSegments(pts, intensity) {
			full = append(full, seg.flatten()...)
		}
	}
	m := MeasurePath(full)
	return m.Prefix(m.Length() * Clamp(progress))
}

// Layout returns the revealed polyline per series at the given
// progress.
func (c LineChart) Layout(area Bounds, progress float64) [][]svg.Pos {
	out := make([][]svg.Pos, 0, len(c.Series))
	for _, s := range c.Series {
		pts := c.Coordinates(area, s)
		out = append(out, revealPath(pts, c.Style.Smooth, c.Style.Intensity, progress))
	}
	return out
}

// Nearest finds the data point closest to the pointer by horizontal
// distance, within the hover cutoff.
func (c LineChart) Nearest(area Bounds, x, y float64) (int, int, bool) {
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

func (c LineChart) Render(w io.Writer, progress float64) {
	var (
		area = c.Area()
		grp  = getBaseGroup("", "line")
	)
	if c.Style.GridLines > 0 {
		grp.Append(drawGridLines(area, c.Style.GridLines))
	}
	for i, s := range c.Series {
		grp.Append(c.renderSeries(area, i, s, progress))
	}
	if c.Hover != nil && c.Hover.Index >= 0 {
		grp.Append(c.renderHoverLine(area))
	}
	c.render(w, grp.AsElement())
}

func (c LineChart) renderSeries(area Bounds, idx int, s LineSeries, progress float64) svg.Element {
	var (
		color = resolveColor(s.Color, nil, 0, c.Style.Colors.At(idx))
		grp   = getBaseGroup(color, "serie")
		pts   = c.Coordinates(area, s)
	)
	grp.Id = s.Title
	if len(pts) == 0 {
		return grp.AsElement()
	}

	// the same flattened polyline is drawn at every progress so the
	// shape does not change between the last animation frame and the
	// final one
	pat := getLinePath(s.Width)
	revealed := revealPath(pts, c.Style.Smooth, c.Style.Intensity, progress)
	pat.AbsMoveTo(slices.Fst(revealed))
	for _, pos := range slices.Rest(revealed) {
		pat.AbsLineTo(pos)
	}
	grp.Append(pat.AsElement())

	if s.ShowMarkers {
		marker := s.Marker
		if marker == nil {
			marker = CircleMarker
		}
		shown := countRevealed(pts, progress)
		for i := 0; i < shown; i++ {
			grp.Append(marker(pts[i], s.MarkerSize))
		}
	}
	return grp.AsElement()
}

// countRevealed tells how many of the points the reveal has passed at
// the given progress. The stroke reveals by drawn length, so markers
// follow the cumulative length of the polyline rather than the point
// index.
func countRevealed(pts []svg.Pos, progress float64) int {
	if len(pts) == 0 {
		return 0
	}
	progr := Clamp(progress)
	if progr >= 1 {
		return len(pts)
	}
	var (
		m     = MeasurePath(pts)
		limit = m.Length() * progr
		n     = 1
	)
	for _, d := range m.lengths {
		limit -= d
		if limit < 0 {
			break
		}
		n++
	}
	return n
}

func (c LineChart) renderHoverLine(area Bounds) svg.Element {
	var (
		grp = getBaseGroup(c.Style.Hover.Color, "hover")
		si  = 0
	)
	if c.Hover.Serie >= 0 && c.Hover.Serie < len(c.Series) {
		si = c.Hover.Serie
	}
	pts := c.Coordinates(area, c.Series[si])
	if c.Hover.Index >= len(pts) {
		return grp.AsElement()
	}
	return drawHoverLine(area, c.Style.Hover, pts[c.Hover.Index])
}

// drawHoverLine draws the dashed vertical guide through the hovered
// point, with an enlarged marker on the point itself.
func drawHoverLine(area Bounds, style HoverStyle, at svg.Pos) svg.Element {
	var (
		grp  = getBaseGroup(style.Color, "hover")
		from = svg.NewPos(at.X, area.Y)
		to   = svg.NewPos(at.X, area.Bottom())
	)
	for _, seg := range dashSegments(from, to, style.Dash, style.Gap) {
		li := svg.NewLine(seg[0], seg[1])
		li.Stroke = svg.NewStroke(style.Color, 1)
		grp.Append(li.AsElement())
	}
	grp.Append(CircleMarker(at, DefaultMarkerSize*1.5))
	return grp.AsElement()
}

func getLinePath(width float64) svg.Path {
	if width <= 0 {
		width = 2
	}
	var pat svg.Path
	pat.Stroke = newStroke(currentColour, width)
	pat.Fill = svg.NewFill("none")
	return pat
}

func drawGridLines(area Bounds, count int) svg.Element {
	var (
		grp  = getBaseGroup("", "grid")
		step = area.H / float64(count)
	)
	for i := 0; i <= count; i++ {
		y := area.Y + float64(i)*step
		li := svg.NewLine(svg.NewPos(area.X, y), svg.NewPos(area.Right(), y))
		li.Stroke = svg.NewStroke("black", 1)
		li.Stroke.Opacity = 0.1
		grp.Append(li.AsElement())
	}
	return grp.AsElement()
}
