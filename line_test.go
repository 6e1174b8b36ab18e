package charts

import (
	"math"
	"strings"
	"testing"

	"github.com/midbel/svg"
)

func testLine() LineChart {
	return LineChart{
		Chart: Chart{
			Width:   600,
			Height:  300,
			Padding: PadAll(0),
		},
		Style: DefaultLineStyle(),
		Series: []LineSeries{
			{
				Title:  "cpu",
				Points: []LinePoint{{Value: 0}, {Value: 10}, {Value: 20}, {Value: 30}},
			},
		},
	}
}

func TestLineCoordinates(t *testing.T) {
	chart := testLine()
	area := chart.Area()
	pts := chart.Coordinates(area, chart.Series[0])
	if len(pts) != len(chart.Series[0].Points) {
		t.Fatalf("got %d coordinates, want %d", len(pts), len(chart.Series[0].Points))
	}
	step := area.W / float64(len(pts)-1)
	for i := 1; i < len(pts); i++ {
		if pts[i].X <= pts[i-1].X {
			t.Errorf("x coordinates not increasing at %d", i)
		}
		if math.Abs(pts[i].X-pts[i-1].X-step) > 1e-6 {
			t.Errorf("uneven spacing at %d: %f", i, pts[i].X-pts[i-1].X)
		}
	}
	// higher value, smaller y
	if pts[0].Y <= pts[3].Y {
		t.Error("y axis is not inverted")
	}
	if math.Abs(pts[0].Y-area.Bottom()) > 1e-6 {
		t.Errorf("zero value not on the baseline: %f", pts[0].Y)
	}
}

func TestLineSinglePointCentered(t *testing.T) {
	chart := testLine()
	chart.Series[0].Points = []LinePoint{{Value: 5}}
	area := chart.Area()
	pts := chart.Coordinates(area, chart.Series[0])
	if len(pts) != 1 {
		t.Fatalf("got %d coordinates, want 1", len(pts))
	}
	if math.Abs(pts[0].X-(area.X+area.W/2)) > 1e-6 {
		t.Errorf("single point at x=%f, want centered", pts[0].X)
	}
}

func TestLineFlatSeries(t *testing.T) {
	chart := testLine()
	chart.Style.StartAtZero = false
	chart.Series[0].Points = []LinePoint{{Value: 7}, {Value: 7}, {Value: 7}}
	area := chart.Area()
	for _, pos := range chart.Coordinates(area, chart.Series[0]) {
		if math.Abs(pos.Y-(area.Y+area.H/2)) > 1e-6 {
			t.Errorf("flat series not centered vertically: %f", pos.Y)
		}
	}
}

func TestLineLayoutReveal(t *testing.T) {
	chart := testLine()
	chart.Style.StartAtZero = false
	chart.Series[0].Points = []LinePoint{{Value: 5}, {Value: 5}, {Value: 5}}
	area := chart.Area()

	zero := chart.Layout(area, 0)
	if len(zero[0]) != 1 {
		t.Errorf("progress 0 revealed %d points, want the start only", len(zero[0]))
	}
	half := chart.Layout(area, 0.5)
	last := half[0][len(half[0])-1]
	if math.Abs(last.X-(area.X+area.W/2)) > 1e-6 {
		t.Errorf("half progress revealed up to x=%f, want mid path", last.X)
	}
	full := chart.Layout(area, 1)
	if len(full[0]) != 3 {
		t.Errorf("progress 1 revealed %d points, want all", len(full[0]))
	}
}

func TestLineRevealMatchesStaticLayout(t *testing.T) {
	chart := testLine()
	area := chart.Area()
	var (
		full   = chart.Layout(area, 1)
		static = chart.Coordinates(area, chart.Series[0])
	)
	if len(full[0]) != len(static) {
		t.Fatalf("full reveal has %d points, static layout %d", len(full[0]), len(static))
	}
	for i := range static {
		if distance(full[0][i], static[i]) > 1e-6 {
			t.Errorf("point %d differs between full reveal and static layout", i)
		}
	}
}

func TestLineNearest(t *testing.T) {
	chart := testLine()
	area := chart.Area()

	// points sit at x = 0, 200, 400, 600
	serie, index, ok := chart.Nearest(area, 390, 150)
	if !ok || serie != 0 || index != 2 {
		t.Errorf("got %d/%d (%t), want 0/2", serie, index, ok)
	}
}

func TestLineNearestCutoff(t *testing.T) {
	chart := testLine()
	chart.Style.Hover.MaxDistance = 5
	area := chart.Area()
	if _, _, ok := chart.Nearest(area, 390, 150); ok {
		t.Error("nearest ignored the distance cutoff")
	}
	if _, _, ok := chart.Nearest(area, 398, 150); !ok {
		t.Error("nearest rejected a point inside the cutoff")
	}
}

func TestCountRevealed(t *testing.T) {
	even := []svg.Pos{
		svg.NewPos(0, 0),
		svg.NewPos(100, 0),
		svg.NewPos(200, 0),
		svg.NewPos(300, 0),
	}
	tests := []struct {
		pts      []svg.Pos
		progress float64
		want     int
	}{
		{pts: even, progress: 0, want: 1},
		{pts: even, progress: 0.5, want: 2},
		{pts: even, progress: 1, want: 4},
		{pts: nil, progress: 1, want: 0},
		{pts: even[:1], progress: 0, want: 1},
	}
	for _, tt := range tests {
		if got := countRevealed(tt.pts, tt.progress); got != tt.want {
			t.Errorf("countRevealed(%d points, %f) = %d, want %d", len(tt.pts), tt.progress, got, tt.want)
		}
	}
}

func TestCountRevealedUnevenSpacing(t *testing.T) {
	// the stroke reveals by drawn length: at half length the long
	// first segment is still unfinished, no marker past the start
	pts := []svg.Pos{
		svg.NewPos(0, 0),
		svg.NewPos(90, 0),
		svg.NewPos(100, 0),
	}
	if got := countRevealed(pts, 0.5); got != 1 {
		t.Errorf("countRevealed at half length = %d, want 1", got)
	}
	if got := countRevealed(pts, 0.95); got != 2 {
		t.Errorf("countRevealed at 95%% length = %d, want 2", got)
	}
}

func TestLineSmoothRevealStable(t *testing.T) {
	chart := testLine()
	chart.Style.Smooth = true

	render := func(progress float64) string {
		var buf strings.Builder
		chart.Render(&buf, progress)
		return buf.String()
	}
	// the smoothed stroke is the same flattened polyline at every
	// progress, the last frame must not switch to another path shape
	if out := render(0.5); strings.Contains(out, "C ") {
		t.Error("partial reveal emitted curve commands")
	}
	if out := render(1); strings.Contains(out, "C ") {
		t.Error("full reveal emitted curve commands")
	}
}
