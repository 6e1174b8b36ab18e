package charts

import (
	"io"
	"time"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

// TimelinePadding is the fixed slack added on both sides of the
// derived task range.
const TimelinePadding = 7 * 24 * time.Hour

type Task struct {
	Label string
	Start time.Time
	End   time.Time
	Color string
	Meta  any
}

// NewTask validates the date range at construction time.
func NewTask(label string, start, end time.Time) (Task, error) {
	if end.Before(start) {
		return Task{}, TaskRangeError{
			Label: label,
			Start: start,
			End:   end,
		}
	}
	t := Task{
		Label: label,
		Start: start,
		End:   end,
	}
	return t, nil
}

type GanttStyle struct {
	Colors     Palette
	LineWidth  float64
	RowSpacing float64
	Connectors bool
	Connector  StrokeStyle
	ShowAxis   bool
	Ticks      int
	Label      TextStyle
	Animation  Animation
}

func DefaultGanttStyle() GanttStyle {
	return GanttStyle{
		Colors:     Category10,
		LineWidth:  10,
		Connectors: true,
		Connector:  StrokeStyle{Color: "#9e9e9e"},
		ShowAxis:   true,
		Ticks:      7,
		Animation:  DefaultAnimation(),
	}
}

// TaskBar is the screen geometry of one task row: a horizontal
// segment whose extent scales with progress.
type TaskBar struct {
	Index int
	From  svg.Pos
	To    svg.Pos
	Color string
}

type GanttChart struct {
	Chart
	Style GanttStyle
	Tasks []Task
}

// Timeline derives the shared scale for all tasks: earliest start
// minus seven days to latest end plus seven days.
func (c GanttChart) Timeline() (time.Time, time.Time, error) {
	if len(c.Tasks) == 0 {
		return time.Time{}, time.Time{}, EmptyDataError{Chart: "gantt"}
	}
	var (
		fst = slices.Fst(c.Tasks).Start
		lst = slices.Fst(c.Tasks).End
	)
	for _, t := range slices.Rest(c.Tasks) {
		if t.Start.Before(fst) {
			fst = t.Start
		}
		if t.End.After(lst) {
			lst = t.End
		}
	}
	return fst.Add(-TimelinePadding), lst.Add(TimelinePadding), nil
}

func (c GanttChart) rowPitch(area Bounds) float64 {
	if c.Style.RowSpacing > 0 {
		return c.Style.RowSpacing
	}
	return area.H / float64(len(c.Tasks))
}

// Layout positions each task by linear interpolation of its dates
// into the timeline pixel range.
func (c GanttChart) Layout(area Bounds, progress float64) []TaskBar {
	fst, lst, err := c.Timeline()
	if err != nil {
		return nil
	}
	var (
		progr  = Clamp(progress)
		scaler = TimeScaler(TimeDomain(fst, lst), NewRange(0, area.W))
		pitch  = c.rowPitch(area)
		bars   = make([]TaskBar, 0, len(c.Tasks))
	)
	for i, t := range c.Tasks {
		var (
			y  = area.Y + float64(i)*pitch + pitch/2
			x0 = area.X + scaler.Scale(t.Start)
			x1 = area.X + scaler.Scale(t.End)
		)
		bars = append(bars, TaskBar{
			Index: i,
			From:  svg.NewPos(x0, y),
			To:    svg.NewPos(x0+(x1-x0)*progr, y),
			Color: resolveColor(t.Color, nil, 0, c.Style.Colors.At(i)),
		})
	}
	return bars
}

// Hit resolves a pointer position to the task whose row and extent
// contain it.
func (c GanttChart) Hit(area Bounds, x, y float64) (int, bool) {
	if len(c.Tasks) == 0 || !area.Contains(x, y) {
		return -1, false
	}
	var (
		pitch = c.rowPitch(area)
		row   = int((y - area.Y) / pitch)
	)
	if row < 0 || row >= len(c.Tasks) {
		return -1, false
	}
	bars := c.Layout(area, 1)
	half := c.lineWidth() / 2
	bar := bars[row]
	if x < bar.From.X-half || x > bar.To.X+half {
		return -1, false
	}
	return row, true
}

// TimeAt maps a pointer x offset back to the timeline date under it,
// for tooltips.
func (c GanttChart) TimeAt(area Bounds, x float64) (time.Time, bool) {
	fst, lst, err := c.Timeline()
	if err != nil || x < area.X || x > area.Right() {
		return time.Time{}, false
	}
	scaler := TimeScaler(TimeDomain(fst, lst), NewRange(0, area.W))
	return scaler.Invert(x - area.X), true
}

func (c GanttChart) lineWidth() float64 {
	if c.Style.LineWidth <= 0 {
		return 10
	}
	return c.Style.LineWidth
}

func (c GanttChart) Render(w io.Writer, progress float64) {
	var (
		area = c.Area()
		bars = c.Layout(area, progress)
		grp  = getBaseGroup("", "gantt")
	)
	if c.Style.Connectors {
		grp.Append(c.drawConnectors(bars))
	}
	for _, b := range bars {
		li := svg.NewLine(b.From, b.To)
		li.Stroke = newStroke(b.Color, c.lineWidth())
		grp.Append(li.AsElement())

		if lbl := c.Tasks[b.Index].Label; lbl != "" {
			txt := svg.NewText(lbl)
			txt.Pos = svg.NewPos(b.From.X, b.From.Y-c.lineWidth())
			txt.Font = svg.NewFont(c.Style.Label.size())
			grp.Append(txt.AsElement())
		}
	}
	if c.Style.ShowAxis {
		if el := c.drawAxis(area); el != nil {
			grp.Append(el)
		}
	}
	c.render(w, grp.AsElement())
}

// drawConnectors links the start of each task to the start of the
// next with a cubic curve offset by the row pitch.
func (c GanttChart) drawConnectors(bars []TaskBar) svg.Element {
	grp := getBaseGroup("", "connectors")
	for i := 0; i < len(bars)-1; i++ {
		var (
			from  = bars[i].From
			to    = bars[i+1].From
			pitch = (to.Y - from.Y) / 2
			pat   svg.Path
		)
		pat.Stroke = newStroke(c.Style.Connector.Color, c.Style.Connector.width())
		if o := c.Style.Connector.Opacity; o > 0 {
			pat.Stroke.Opacity = o
		}
		pat.Fill = svg.NewFill("none")
		pat.AbsMoveTo(from)
		ctrl1 := svg.NewPos(from.X, from.Y+pitch)
		ctrl2 := svg.NewPos(to.X, to.Y-pitch)
		pat.AbsCubicCurve(to, ctrl1, ctrl2)
		grp.Append(pat.AsElement())
	}
	return grp.AsElement()
}

func (c GanttChart) drawAxis(area Bounds) svg.Element {
	fst, lst, err := c.Timeline()
	if err != nil {
		return nil
	}
	axis := ValueAxis[time.Time]{
		Orientation:    OrientBottom,
		Ticks:          c.Style.Ticks,
		Scaler:         TimeScaler(TimeDomain(fst, lst), NewRange(0, area.W)),
		WithInnerTicks: true,
		WithLabelTicks: true,
	}
	return axis.Render(area.W, area.H, area.X, area.Bottom())
}
