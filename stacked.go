package charts

import (
	"io"

	"github.com/midbel/svg"
)

// Segment is one slice of a stacked bar. Values are expected to be
// non negative, negative values count as zero in the totals.
type Segment struct {
	Value float64
	Label string
	Color string
}

type StackedBar struct {
	Label    string
	Segments []Segment
}

func (b StackedBar) Total() float64 {
	var total float64
	for _, s := range b.Segments {
		if s.Value > 0 {
			total += s.Value
		}
	}
	return total
}

// YAxisConfig pins the vertical scale instead of deriving it from the
// largest bar total.
type YAxisConfig struct {
	Min       float64
	Max       float64
	Divisions int
	Format    func(float64) string
}

type StackedStyle struct {
	Colors         Palette
	Spacing        float64
	GridLines      int
	Label          TextStyle
	LabelMinFactor float64
	YAxis          *YAxisConfig
	Animation      Animation
}

func DefaultStackedStyle() StackedStyle {
	return StackedStyle{
		Colors:         Tableau10,
		Spacing:        0.2,
		GridLines:      5,
		LabelMinFactor: 1.5,
		Animation:      DefaultAnimation(),
	}
}

// SegmentRect is the screen geometry of one segment of one bar.
type SegmentRect struct {
	Bar     int
	Segment int
	Pos     svg.Pos
	Dim     svg.Dim
	Color   string
}

type StackedBarChart struct {
	Chart
	Style StackedStyle
	Bars  []StackedBar
}

// axisRange is the explicit Y axis range when configured, otherwise
// zero to the largest bar total.
func (c StackedBarChart) axisRange() (float64, float64) {
	if c.Style.YAxis != nil {
		return c.Style.YAxis.Min, c.Style.YAxis.Max
	}
	var max float64
	for _, b := range c.Bars {
		if t := b.Total(); t > max {
			max = t
		}
	}
	return 0, max
}

// Layout stacks the segments of each bar bottom up, every height
// scaled by progress.
func (c StackedBarChart) Layout(area Bounds, progress float64) []SegmentRect {
	min, max := c.axisRange()
	span := max - min
	if len(c.Bars) == 0 || span <= 0 {
		return nil
	}
	var (
		progr = Clamp(progress)
		slot  = area.W / float64(len(c.Bars))
		width = slot * (1 - c.Style.Spacing)
		out   []SegmentRect
	)
	for i, b := range c.Bars {
		var (
			x      = area.X + float64(i)*slot + (slot-width)/2
			bottom = area.Bottom()
		)
		for j, seg := range b.Segments {
			v := seg.Value
			if v < 0 {
				v = 0
			}
			height := (v / span) * area.H * progr
			bottom -= height
			out = append(out, SegmentRect{
				Bar:     i,
				Segment: j,
				Pos:     svg.NewPos(x, bottom),
				Dim:     svg.NewDim(width, height),
				Color:   resolveColor(seg.Color, nil, 0, c.Style.Colors.At(j)),
			})
		}
	}
	return out
}

// Hit resolves a pointer position to the bar and segment under it. A
// pointer in the empty space above a stack touches nothing and
// reports a miss.
func (c StackedBarChart) Hit(area Bounds, x, y float64) (int, int, bool) {
	if len(c.Bars) == 0 || !area.Contains(x, y) {
		return -1, -1, false
	}
	slot := area.W / float64(len(c.Bars))
	bar := int((x - area.X) / slot)
	if bar < 0 || bar >= len(c.Bars) {
		return -1, -1, false
	}
	for _, rec := range c.Layout(area, 1) {
		if rec.Bar != bar {
			continue
		}
		if y >= rec.Pos.Y && y <= rec.Pos.Y+rec.Dim.H {
			return bar, rec.Segment, true
		}
	}
	return -1, -1, false
}

func (c StackedBarChart) Render(w io.Writer, progress float64) {
	var (
		area = c.Area()
		grp  = getBaseGroup("", "stacked")
	)
	if c.Style.GridLines > 0 {
		grp.Append(drawGridLines(area, c.Style.GridLines))
	}
	for _, rec := range c.Layout(area, progress) {
		var el svg.Rect
		el.Title = c.Bars[rec.Bar].Segments[rec.Segment].Label
		el.Pos = rec.Pos
		el.Dim = rec.Dim
		el.Fill = svg.NewFill(rec.Color)
		grp.Append(el.AsElement())

		if lbl := c.segmentLabel(rec); lbl != nil {
			grp.Append(lbl)
		}
	}
	if c.Style.YAxis != nil {
		grp.Append(c.drawAxis(area))
	}
	grp.Append(c.drawLabels(area))
	c.render(w, grp.AsElement())
}

// segmentLabel draws the label inside a segment only when the
// rendered height leaves room for it.
func (c StackedBarChart) segmentLabel(rec SegmentRect) svg.Element {
	seg := c.Bars[rec.Bar].Segments[rec.Segment]
	if seg.Label == "" {
		return nil
	}
	factor := c.Style.LabelMinFactor
	if factor <= 0 {
		factor = 1.5
	}
	if rec.Dim.H < c.Style.Label.lineHeight()*factor {
		return nil
	}
	txt := svg.NewText(seg.Label)
	txt.Pos = svg.NewPos(rec.Pos.X+rec.Dim.W/2, rec.Pos.Y+rec.Dim.H/2)
	txt.Font = svg.NewFont(c.Style.Label.size())
	txt.Anchor = "middle"
	txt.Shift.Y = shiftMiddle(c.Style.Label.size())
	return txt.AsElement()
}

func (c StackedBarChart) drawAxis(area Bounds) svg.Element {
	var (
		cfg      = c.Style.YAxis
		min, max = c.axisRange()
		scaler   = NumberScaler(NumberDomain(max, min), NewRange(0, area.H))
	)
	ticks := cfg.Divisions
	if ticks <= 0 {
		ticks = c.Style.GridLines
	}
	axis := ValueAxis[float64]{
		Orientation:    OrientLeft,
		Ticks:          ticks,
		Scaler:         scaler,
		Format:         cfg.Format,
		WithInnerTicks: true,
		WithLabelTicks: true,
	}
	return axis.Render(area.H, area.W, area.X, area.Y)
}

func (c StackedBarChart) drawLabels(area Bounds) svg.Element {
	if len(c.Bars) == 0 {
		grp := getBaseGroup("", "labels")
		return grp.AsElement()
	}
	var (
		grp  = getBaseGroup("", "labels")
		slot = area.W / float64(len(c.Bars))
		font = svg.NewFont(c.Style.Label.size())
	)
	for i, b := range c.Bars {
		if b.Label == "" {
			continue
		}
		txt := svg.NewText(b.Label)
		txt.Pos = svg.NewPos(area.X+float64(i)*slot+slot/2, area.Bottom()+c.Style.Label.lineHeight())
		txt.Font = font
		txt.Anchor = "middle"
		txt.Shift.Y = shiftHanging(c.Style.Label.size())
		grp.Append(txt.AsElement())
	}
	return grp.AsElement()
}
