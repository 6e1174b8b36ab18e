package charts

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func testArea() AreaChart {
	return AreaChart{
		Chart: Chart{
			Width:   600,
			Height:  300,
			Padding: PadAll(0),
		},
		Style: DefaultAreaStyle(),
		Series: []LineSeries{
			{
				Title:  "mem",
				Points: []LinePoint{{Value: 10}, {Value: 40}, {Value: 20}, {Value: 30}},
			},
		},
	}
}

func TestAreaCoordinates(t *testing.T) {
	chart := testArea()
	area := chart.Area()
	pts := chart.Coordinates(area, chart.Series[0])
	if len(pts) != len(chart.Series[0].Points) {
		t.Fatalf("got %d coordinates, want %d", len(pts), len(chart.Series[0].Points))
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].X <= pts[i-1].X {
			t.Errorf("x coordinates not increasing at %d", i)
		}
	}
}

func TestAreaLayoutProgress(t *testing.T) {
	chart := testArea()
	area := chart.Area()

	zero := chart.Layout(area, 0)
	if len(zero[0]) != 1 {
		t.Errorf("progress 0 revealed %d points, want the start only", len(zero[0]))
	}
	full := chart.Layout(area, 1)
	if len(full[0]) != len(chart.Series[0].Points) {
		t.Errorf("progress 1 revealed %d points, want all", len(full[0]))
	}
}

func TestAreaRevealPrefixLength(t *testing.T) {
	chart := testArea()
	area := chart.Area()

	full := MeasurePath(chart.Coordinates(area, chart.Series[0]))
	for _, progress := range []float64{0.25, 0.5, 0.75} {
		revealed := chart.Layout(area, progress)[0]
		got := MeasurePath(revealed).Length()
		want := full.Length() * progress
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("progress %f revealed length %f, want %f", progress, got, want)
		}
	}
}

func TestAreaNearest(t *testing.T) {
	chart := testArea()
	area := chart.Area()
	serie, index, ok := chart.Nearest(area, 210, 100)
	if !ok || serie != 0 || index != 1 {
		t.Errorf("got %d/%d (%t), want 0/1", serie, index, ok)
	}
}

func TestAreaRender(t *testing.T) {
	chart := testArea()
	chart.Series[0].ShowMarkers = true

	var buf bytes.Buffer
	chart.Render(&buf, 1)
	out := buf.String()
	if !strings.Contains(out, "path") {
		t.Error("render emitted no path element")
	}
}
