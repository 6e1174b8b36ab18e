package charts

import (
	"io"

	"github.com/midbel/svg"
)

type PieSlice struct {
	Value float64
	Label string
	Color string
}

type PieStyle struct {
	Colors         Palette
	StartAngle     float64
	HoleRadius     float64
	MinSizePercent float64
	Align          Alignment
	ShowLabels     bool
	Text           TextStyle
	Animation      Animation
}

func DefaultPieStyle() PieStyle {
	return PieStyle{
		Colors:     Category10,
		StartAngle: -90,
		Align:      Alignment{Horizontal: AlignCenterH, Vertical: AlignMiddle},
		Animation:  DefaultAnimation(),
	}
}

// Wedge is the screen geometry of one slice: angles in degrees from
// the configured start angle, radii in pixels around the center.
type Wedge struct {
	Index int
	Start float64
	Sweep float64
	Inner float64
	Outer float64
	Color string
}

type PieChart struct {
	Chart
	Style  PieStyle
	Slices []PieSlice
}

// NormalizeSlices applies the minimum slice size floor: every value
// below minPercent of the total is raised to it and all values are
// rescaled so the total is preserved. Rescaling can push raised
// values back under the floor, so the pass repeats until the set is
// stable.
func NormalizeSlices(values []float64, minPercent float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)

	var total float64
	for _, v := range values {
		total += v
	}
	if total <= 0 || minPercent <= 0 || minPercent >= 100 {
		return out
	}

	const (
		maxRounds = 100
		epsilon   = 1e-9
	)
	var floor float64
	for round := 0; round < maxRounds; round++ {
		var sum float64
		for _, v := range out {
			sum += v
		}
		floor = sum * minPercent / 100
		changed := false
		for i, v := range out {
			if v < floor-epsilon {
				out[i] = floor
				changed = true
			}
		}
		if !changed {
			break
		}
		sum = 0
		for _, v := range out {
			sum += v
		}
		scale := total / sum
		for i := range out {
			out[i] *= scale
		}
	}
	// the final rescale may leave values a hair under the floor
	for i, v := range out {
		if v < floor && floor-v < epsilon*total {
			out[i] = floor
		}
	}
	return out
}

func (c PieChart) radius(area Bounds) float64 {
	r := area.W
	if area.H < r {
		r = area.H
	}
	return r / 2
}

func (c PieChart) center(area Bounds) svg.Pos {
	return c.Style.Align.Resolve(area, c.radius(area))
}

func (c PieChart) normalized() []float64 {
	values := make([]float64, len(c.Slices))
	for i, s := range c.Slices {
		values[i] = s.Value
	}
	return NormalizeSlices(values, c.Style.MinSizePercent)
}

// Layout computes the wedges at the given progress. The sweep of each
// slice scales with progress so the angles sum to progress*360.
func (c PieChart) Layout(area Bounds, progress float64) []Wedge {
	var total float64
	values := c.normalized()
	for _, v := range values {
		total += v
	}
	if len(values) == 0 || total <= 0 {
		return nil
	}
	var (
		progr  = Clamp(progress)
		outer  = c.radius(area)
		inner  = outer * Clamp(c.Style.HoleRadius)
		angle  = normalizeAngle(c.Style.StartAngle)
		wedges = make([]Wedge, 0, len(values))
	)
	for i, v := range values {
		sweep := (v / total) * fullcircle * progr
		wedges = append(wedges, Wedge{
			Index: i,
			Start: angle,
			Sweep: sweep,
			Inner: inner,
			Outer: outer,
			Color: resolveColor(c.Slices[i].Color, nil, 0, c.Style.Colors.At(i)),
		})
		angle = normalizeAngle(angle + sweep)
	}
	return wedges
}

// Hit resolves a pointer position to the slice containing it. The
// scan walks the cumulative angles of the same normalized sizes the
// renderer uses; the radius must fall between hole and outer radius.
func (c PieChart) Hit(area Bounds, x, y float64) (int, bool) {
	var total float64
	values := c.normalized()
	for _, v := range values {
		total += v
	}
	if len(values) == 0 || total <= 0 {
		return -1, false
	}
	var (
		outer         = c.radius(area)
		inner         = outer * Clamp(c.Style.HoleRadius)
		angle, radius = toPolar(c.center(area), x, y)
	)
	if radius < inner || radius > outer {
		return -1, false
	}
	var (
		rel = normalizeAngle(angle - c.Style.StartAngle)
		cum float64
	)
	for i, v := range values {
		cum += (v / total) * fullcircle
		if rel < cum {
			return i, true
		}
	}
	return len(values) - 1, true
}

func (c PieChart) Render(w io.Writer, progress float64) {
	var (
		area   = c.Area()
		wedges = c.Layout(area, progress)
		center = c.center(area)
		grp    = getBaseGroup("", "pie")
	)
	grp.Transform.Translate(center.X, center.Y)
	for _, wd := range wedges {
		grp.Append(drawWedge(wd))
	}
	if c.Style.HoleRadius > 0 && len(wedges) > 0 {
		// the hole is a background colored circle painted over the
		// slices, not a true arc hole
		var hole svg.Circle
		hole.Radius = wedges[0].Inner
		hole.Fill = svg.NewFill(c.holeColor())
		grp.Append(hole.AsElement())
	}
	if c.Style.ShowLabels {
		for _, wd := range wedges {
			grp.Append(c.drawLabel(wd))
		}
	}
	c.render(w, grp.AsElement())
}

func (c PieChart) holeColor() string {
	if c.Background != "" {
		return c.Background
	}
	return "white"
}

func drawWedge(wd Wedge) svg.Element {
	sweep := wd.Sweep
	if sweep >= fullcircle {
		// a full circle arc collapses in svg, back off a hair
		sweep = fullcircle - 1e-4
	}
	var pat svg.Path
	pat.Fill = svg.NewFill(wd.Color)
	pat.AbsMoveTo(svg.NewPos(0, 0))
	pat.AbsLineTo(getPosFromAngle(wd.Start*deg2rad, wd.Outer))
	arcTo(&pat, svg.NewPos(0, 0), wd.Outer, wd.Start, wd.Start+sweep)
	pat.ClosePath()
	return pat.AsElement()
}

func (c PieChart) drawLabel(wd Wedge) svg.Element {
	var (
		mid = (wd.Start + wd.Sweep/2) * deg2rad
		r   = (wd.Inner + wd.Outer) / 2
		pos = getPosFromAngle(mid, r)
	)
	txt := svg.NewText(c.Slices[wd.Index].Label)
	txt.Pos = pos
	txt.Font = svg.NewFont(c.Style.Text.size())
	txt.Anchor = "middle"
	txt.Shift.Y = shiftMiddle(c.Style.Text.size())
	return txt.AsElement()
}
