package charts

import (
	"math"
	"testing"
)

func testStacked() StackedBarChart {
	return StackedBarChart{
		Chart: Chart{
			Width:   600,
			Height:  300,
			Padding: PadAll(0),
		},
		Style: DefaultStackedStyle(),
		Bars: []StackedBar{
			{Label: "q1", Segments: []Segment{{Value: 10}, {Value: 20}, {Value: 30}}},
			{Label: "q2", Segments: []Segment{{Value: 30, Label: "big"}, {Value: 30}}},
		},
	}
}

func TestStackedLayoutHeights(t *testing.T) {
	chart := testStacked()
	area := chart.Area()
	recs := chart.Layout(area, 1)

	// auto scale: the largest total (60) spans the full height and
	// every bar scales by the same factor
	sums := make(map[int]float64)
	for _, rec := range recs {
		sums[rec.Bar] += rec.Dim.H
	}
	for i, b := range chart.Bars {
		want := b.Total() / 60 * area.H
		if math.Abs(sums[i]-want) > 1e-6 {
			t.Errorf("bar %d stacks to %f, want %f", i, sums[i], want)
		}
	}
}

func TestStackedLayoutCumulative(t *testing.T) {
	chart := testStacked()
	area := chart.Area()

	var prev *SegmentRect
	for _, rec := range chart.Layout(area, 1) {
		rec := rec
		if rec.Bar != 0 {
			continue
		}
		if prev == nil {
			if math.Abs(rec.Pos.Y+rec.Dim.H-area.Bottom()) > 1e-6 {
				t.Errorf("first segment does not sit on the baseline")
			}
		} else if math.Abs(rec.Pos.Y+rec.Dim.H-prev.Pos.Y) > 1e-6 {
			t.Errorf("segment %d does not stack on the previous one", rec.Segment)
		}
		prev = &rec
	}
}

func TestStackedLayoutProgress(t *testing.T) {
	chart := testStacked()
	area := chart.Area()
	for _, rec := range chart.Layout(area, 0) {
		if rec.Dim.H != 0 {
			t.Errorf("segment %d/%d has height at progress 0", rec.Bar, rec.Segment)
		}
	}
	var (
		half = chart.Layout(area, 0.5)
		full = chart.Layout(area, 1)
	)
	for i := range full {
		if math.Abs(half[i].Dim.H*2-full[i].Dim.H) > 1e-6 {
			t.Errorf("segment %d: progress does not scale height linearly", i)
		}
	}
}

func TestStackedAxisOverride(t *testing.T) {
	chart := testStacked()
	chart.Style.YAxis = &YAxisConfig{Min: 0, Max: 120, Divisions: 4}
	area := chart.Area()

	sums := make(map[int]float64)
	for _, rec := range chart.Layout(area, 1) {
		sums[rec.Bar] += rec.Dim.H
	}
	want := chart.Bars[0].Total() / 120 * area.H
	if math.Abs(sums[0]-want) > 1e-6 {
		t.Errorf("bar 0 stacks to %f with an explicit axis, want %f", sums[0], want)
	}
}

func TestStackedNegativeValues(t *testing.T) {
	chart := testStacked()
	chart.Bars[0].Segments[0].Value = -5
	if got := chart.Bars[0].Total(); got != 50 {
		t.Errorf("total %f, want negative values ignored", got)
	}
	for _, rec := range chart.Layout(chart.Area(), 1) {
		if rec.Dim.H < 0 {
			t.Errorf("segment %d/%d has negative height", rec.Bar, rec.Segment)
		}
	}
}

func TestStackedHit(t *testing.T) {
	chart := testStacked()
	area := chart.Area()

	// bar 1 occupies x in [300,600); its first segment spans the
	// bottom half of the stack
	bar, seg, ok := chart.Hit(area, 450, 250)
	if !ok || bar != 1 || seg != 0 {
		t.Errorf("got bar %d segment %d (%t), want 1/0", bar, seg, ok)
	}
	bar, seg, ok = chart.Hit(area, 450, 50)
	if !ok || bar != 1 || seg != 1 {
		t.Errorf("got bar %d segment %d (%t), want 1/1", bar, seg, ok)
	}
	if _, _, ok = chart.Hit(area, 700, 50); ok {
		t.Error("hit reported outside the area")
	}
}

func TestStackedHitAboveStack(t *testing.T) {
	chart := testStacked()
	chart.Bars[1].Segments = []Segment{{Value: 10}, {Value: 10}}
	area := chart.Area()

	// bar 1 stacks to a third of the height, the space above it
	// belongs to no segment
	if bar, seg, ok := chart.Hit(area, 450, 50); ok {
		t.Errorf("hit above the stack reported %d/%d", bar, seg)
	}
	bar, seg, ok := chart.Hit(area, 450, 210)
	if !ok || bar != 1 || seg != 1 {
		t.Errorf("got bar %d segment %d (%t), want 1/1", bar, seg, ok)
	}
}

func TestStackedSegmentLabelVisibility(t *testing.T) {
	chart := testStacked()
	area := chart.Area()
	for _, rec := range chart.Layout(area, 1) {
		seg := chart.Bars[rec.Bar].Segments[rec.Segment]
		el := chart.segmentLabel(rec)
		if seg.Label == "" {
			if el != nil {
				t.Errorf("segment %d/%d drew a label without text", rec.Bar, rec.Segment)
			}
			continue
		}
		min := chart.Style.Label.lineHeight() * chart.Style.LabelMinFactor
		if rec.Dim.H >= min && el == nil {
			t.Errorf("segment %d/%d suppressed a label that fits", rec.Bar, rec.Segment)
		}
		if rec.Dim.H < min && el != nil {
			t.Errorf("segment %d/%d drew a label that does not fit", rec.Bar, rec.Segment)
		}
	}
}
