package charts

import (
	"io"
	"strconv"

	"github.com/midbel/svg"
)

// BarPoint is one bar: a value, its label under the slot and an
// optional color overriding the style.
type BarPoint struct {
	Value float64
	Label string
	Color string
	Meta  any
}

func NumberBar(label string, value float64) BarPoint {
	return BarPoint{
		Label: label,
		Value: value,
	}
}

type BarStyle struct {
	Color        string
	Gradient     *Gradient
	Spacing      float64
	CornerRadius float64
	MaxValue     float64
	GridLines    int
	ShowValues   bool
	Label        TextStyle
	Value        TextStyle
	Animation    Animation
}

func DefaultBarStyle() BarStyle {
	return BarStyle{
		Color:     Category10.At(0),
		Spacing:   0.2,
		GridLines: 5,
		Animation: DefaultAnimation(),
	}
}

// BarRect is the screen geometry of one bar at a given progress.
type BarRect struct {
	Index int
	Pos   svg.Pos
	Dim   svg.Dim
	Color string
}

type BarChart struct {
	Chart
	Style  BarStyle
	Points []BarPoint
}

func (c BarChart) maxValue() float64 {
	if c.Style.MaxValue > 0 {
		return c.Style.MaxValue
	}
	var max float64
	for _, pt := range c.Points {
		if pt.Value > max {
			max = pt.Value
		}
	}
	return max
}

// Layout converts the data points into bar rectangles inside the
// area. Height scales with progress, an empty dataset yields no
// geometry.
func (c BarChart) Layout(area Bounds, progress float64) []BarRect {
	max := c.maxValue()
	if len(c.Points) == 0 || max <= 0 {
		return nil
	}
	var (
		progr = Clamp(progress)
		slot  = area.W / float64(len(c.Points))
		width = slot * (1 - c.Style.Spacing)
		bars  = make([]BarRect, 0, len(c.Points))
	)
	for i, pt := range c.Points {
		var (
			height = (pt.Value / max) * area.H * progr
			x      = area.X + float64(i)*slot + (slot-width)/2
			t      float64
		)
		if len(c.Points) > 1 {
			t = float64(i) / float64(len(c.Points)-1)
		}
		bars = append(bars, BarRect{
			Index: i,
			Pos:   svg.NewPos(x, area.Bottom()-height),
			Dim:   svg.NewDim(width, height),
			Color: resolveColor(pt.Color, c.Style.Gradient, t, c.Style.Color),
		})
	}
	return bars
}

// Hit maps a pointer position to the slot index under it.
func (c BarChart) Hit(area Bounds, x, y float64) (int, bool) {
	if len(c.Points) == 0 || !area.Contains(x, y) {
		return -1, false
	}
	slot := area.W / float64(len(c.Points))
	i := int((x - area.X) / slot)
	if i < 0 || i >= len(c.Points) {
		return -1, false
	}
	return i, true
}

func (c BarChart) Render(w io.Writer, progress float64) {
	var (
		area = c.Area()
		bars = c.Layout(area, progress)
		grp  = getBaseGroup("", "bar")
	)
	if c.Style.GridLines > 0 {
		grp.Append(drawGridLines(area, c.Style.GridLines))
	}
	for _, b := range bars {
		grp.Append(c.drawBar(b))
		if c.Style.ShowValues {
			grp.Append(c.drawValue(b))
		}
	}
	grp.Append(c.drawLabels(area))
	c.render(w, grp.AsElement())
}

func (c BarChart) drawBar(b BarRect) svg.Element {
	radius := c.Style.CornerRadius
	if radius > b.Dim.W/2 {
		radius = b.Dim.W / 2
	}
	if radius > b.Dim.H {
		radius = b.Dim.H
	}
	if radius <= 0 {
		var el svg.Rect
		el.Pos = b.Pos
		el.Dim = b.Dim
		el.Fill = svg.NewFill(b.Color)
		return el.AsElement()
	}
	// rect with only the top corners rounded
	var pat svg.Path
	pat.Fill = svg.NewFill(b.Color)
	pat.AbsMoveTo(svg.NewPos(b.Pos.X, b.Pos.Y+b.Dim.H))
	pat.AbsLineTo(svg.NewPos(b.Pos.X, b.Pos.Y+radius))
	arcTo(&pat, svg.NewPos(b.Pos.X+radius, b.Pos.Y+radius), radius, halfcircle, halfcircle+90)
	pat.AbsLineTo(svg.NewPos(b.Pos.X+b.Dim.W-radius, b.Pos.Y))
	arcTo(&pat, svg.NewPos(b.Pos.X+b.Dim.W-radius, b.Pos.Y+radius), radius, -90, 0)
	pat.AbsLineTo(svg.NewPos(b.Pos.X+b.Dim.W, b.Pos.Y+b.Dim.H))
	pat.ClosePath()
	return pat.AsElement()
}

func (c BarChart) drawValue(b BarRect) svg.Element {
	txt := svg.NewText(strconv.FormatFloat(c.Points[b.Index].Value, 'f', -1, 64))
	txt.Pos = svg.NewPos(b.Pos.X+b.Dim.W/2, b.Pos.Y-c.Style.Value.size()*0.4)
	txt.Font = svg.NewFont(c.Style.Value.size())
	txt.Anchor = "middle"
	return txt.AsElement()
}

func (c BarChart) drawLabels(area Bounds) svg.Element {
	if len(c.Points) == 0 {
		grp := getBaseGroup("", "labels")
		return grp.AsElement()
	}
	var (
		grp  = getBaseGroup("", "labels")
		slot = area.W / float64(len(c.Points))
		font = svg.NewFont(c.Style.Label.size())
	)
	for i, pt := range c.Points {
		if pt.Label == "" {
			continue
		}
		txt := svg.NewText(pt.Label)
		txt.Pos = svg.NewPos(area.X+float64(i)*slot+slot/2, area.Bottom()+c.Style.Label.lineHeight())
		txt.Font = font
		txt.Anchor = "middle"
		txt.Shift.Y = shiftHanging(c.Style.Label.size())
		grp.Append(txt.AsElement())
	}
	return grp.AsElement()
}
