package charts

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

var (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func PadAll(v float64) Padding {
	return Padding{
		Top:    v,
		Right:  v,
		Bottom: v,
		Left:   v,
	}
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Bounds is the chart area: the padded rectangle inside the widget
// dimension where data geometry is drawn.
type Bounds struct {
	X float64
	Y float64
	W float64
	H float64
}

func (b Bounds) Right() float64 {
	return b.X + b.W
}

func (b Bounds) Bottom() float64 {
	return b.Y + b.H
}

func (b Bounds) Center() svg.Pos {
	return svg.NewPos(b.X+b.W/2, b.Y+b.H/2)
}

func (b Bounds) Contains(x, y float64) bool {
	return x >= b.X && x <= b.Right() && y >= b.Y && y <= b.Bottom()
}

func (b Bounds) Shrink(p Padding) Bounds {
	return Bounds{
		X: b.X + p.Left,
		Y: b.Y + p.Top,
		W: b.W - p.Horizontal(),
		H: b.H - p.Vertical(),
	}
}

type HorizontalAlign int

const (
	AlignLeft HorizontalAlign = iota
	AlignCenterH
	AlignRight
)

type VerticalAlign int

const (
	AlignTop VerticalAlign = iota
	AlignMiddle
	AlignBottom
)

// Alignment places a point of interest (eg the pie center) inside a
// Bounds, given the radius the drawing needs around that point.
type Alignment struct {
	Horizontal HorizontalAlign
	Vertical   VerticalAlign
}

func (a Alignment) Resolve(area Bounds, radius float64) svg.Pos {
	var pos svg.Pos
	switch a.Horizontal {
	case AlignLeft:
		pos.X = area.X + radius
	case AlignRight:
		pos.X = area.Right() - radius
	default:
		pos.X = area.X + area.W/2
	}
	switch a.Vertical {
	case AlignTop:
		pos.Y = area.Y + radius
	case AlignBottom:
		pos.Y = area.Bottom() - radius
	default:
		pos.Y = area.Y + area.H/2
	}
	return pos
}

// Chart is the shared frame around every chart family: outer
// dimension, padding and an optional title and background.
type Chart struct {
	Title  string
	Width  float64
	Height float64

	Padding

	Background string
}

func (c Chart) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return DimensionError{
			Width:  c.Width,
			Height: c.Height,
		}
	}
	return nil
}

func (c Chart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

// Area returns the chart area in widget coordinates.
func (c Chart) Area() Bounds {
	return Bounds{
		X: c.Padding.Left,
		Y: c.Padding.Top,
		W: c.DrawingWidth(),
		H: c.DrawingHeight(),
	}
}

func (c Chart) render(w io.Writer, els ...svg.Element) {
	doc := svg.NewSVG(svg.WithDimension(c.Width, c.Height))

	if c.Background != "" {
		var bg svg.Rect
		bg.Dim = svg.NewDim(c.Width, c.Height)
		bg.Fill = svg.NewFill(c.Background)
		doc.Append(bg.AsElement())
	}
	if c.Title != "" {
		txt := svg.NewText(c.Title)
		txt.Pos = svg.NewPos(c.Width/2, c.Padding.Top/2)
		txt.Font = svg.NewFont(FontSize * 1.4)
		txt.Anchor = "middle"
		txt.Shift.Y = shiftMiddle(FontSize * 1.4)
		doc.Append(txt.AsElement())
	}
	for _, el := range els {
		doc.Append(el)
	}

	bw := bufio.NewWriter(w)
	defer bw.Flush()
	doc.Render(bw)
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}
