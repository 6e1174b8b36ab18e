package plotly

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		doc  string
		want Format
	}{
		{doc: `{"data": [{"type": "bar", "y": [1]}]}`, want: FormatTraces},
		{doc: `{"labels": ["a"], "values": [1]}`, want: FormatSimple},
		{doc: `{"data": [], "labels": ["a"], "values": [1]}`, want: FormatTraces},
	}
	for _, tt := range tests {
		got, err := Detect([]byte(tt.doc))
		if err != nil {
			t.Errorf("detect %s: %s", tt.doc, err)
			continue
		}
		if got != tt.want {
			t.Errorf("detect %s = %d, want %d", tt.doc, got, tt.want)
		}
	}
}

func TestDetectUnknown(t *testing.T) {
	_, err := Detect([]byte(`{"title": "empty"}`))
	var decErr DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("got %v, want DecodeError", err)
	}
	if _, err = Detect([]byte(`not json`)); err == nil {
		t.Error("malformed input accepted")
	}
}

func TestDecodeBar(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{
		"data": [{
			"type": "bar",
			"x": ["a", "b", "c"],
			"y": [10, 20, 30],
			"marker": {"colors": ["red", "green", "blue"]}
		}],
		"layout": {"title": {"text": "sales"}, "width": 640, "height": 480}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	chart, err := doc.BarChart()
	if err != nil {
		t.Fatal(err)
	}
	if chart.Title != "sales" || chart.Width != 640 || chart.Height != 480 {
		t.Errorf("frame not mapped: %s %f x %f", chart.Title, chart.Width, chart.Height)
	}
	if len(chart.Points) != 3 {
		t.Fatalf("got %d points", len(chart.Points))
	}
	if chart.Points[1].Label != "b" || chart.Points[1].Value != 20 || chart.Points[1].Color != "green" {
		t.Errorf("point 1 mapped as %+v", chart.Points[1])
	}
}

func TestDecodeBarMissingY(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"data": [{"type": "bar", "x": ["a"]}]}`))
	if err != nil {
		t.Fatal(err)
	}
	_, err = doc.BarChart()
	var decErr DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("got %v, want DecodeError", err)
	}
}

func TestDecodeBarLengthMismatch(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"data": [{"type": "bar", "x": ["a"], "y": [1, 2]}]}`))
	if err != nil {
		t.Fatal(err)
	}
	_, err = doc.BarChart()
	var lenErr LengthError
	if !errors.As(err, &lenErr) {
		t.Fatalf("got %v, want LengthError", err)
	}
	if lenErr.Want != 2 || lenErr.Got != 1 {
		t.Errorf("lengths %d/%d, want 2/1", lenErr.Want, lenErr.Got)
	}
}

func TestDecodePie(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{
		"data": [{
			"type": "pie",
			"labels": ["x", "y"],
			"values": [30, 70],
			"hole": 0.4
		}]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	chart, err := doc.PieChart()
	if err != nil {
		t.Fatal(err)
	}
	if len(chart.Slices) != 2 || chart.Slices[1].Value != 70 {
		t.Errorf("slices mapped as %+v", chart.Slices)
	}
	if chart.Style.HoleRadius != 0.4 {
		t.Errorf("hole %f, want 0.4", chart.Style.HoleRadius)
	}
}

func TestDecodeLine(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{
		"data": [
			{"type": "scatter", "name": "cpu", "mode": "lines+markers", "y": [1, 2, 3], "line": {"shape": "spline", "color": "teal"}},
			{"type": "scatter", "name": "mem", "y": [4, 5, 6]}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	chart, err := doc.LineChart()
	if err != nil {
		t.Fatal(err)
	}
	if len(chart.Series) != 2 {
		t.Fatalf("got %d series", len(chart.Series))
	}
	if !chart.Style.Smooth {
		t.Error("spline shape did not enable smoothing")
	}
	s := chart.Series[0]
	if s.Title != "cpu" || !s.ShowMarkers || s.Color != "teal" {
		t.Errorf("series 0 mapped as %+v", s)
	}
}

func TestDecodeArea(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{
		"data": [{"type": "scatter", "fill": "tozeroy", "y": [1, 2]}]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if !doc.HasFill() {
		t.Error("fill directive not detected")
	}
	chart, err := doc.AreaChart()
	if err != nil {
		t.Fatal(err)
	}
	if len(chart.Series) != 1 || len(chart.Series[0].Points) != 2 {
		t.Errorf("series mapped as %+v", chart.Series)
	}
}

func TestDecodeSimple(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{
		"title": "usage",
		"labels": ["a", "b"],
		"values": [1, 2],
		"colors": ["red", "blue"]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	chart, err := doc.BarChart()
	if err != nil {
		t.Fatal(err)
	}
	if chart.Title != "usage" {
		t.Errorf("title %q", chart.Title)
	}
	if len(chart.Points) != 2 || chart.Points[0].Label != "a" || chart.Points[1].Color != "blue" {
		t.Errorf("points mapped as %+v", chart.Points)
	}
}

func TestDecodeEmptyData(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"data": []}`))
	var decErr DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("got %v, want DecodeError", err)
	}
}

func TestTitleSpellings(t *testing.T) {
	for _, doc := range []string{
		`{"data": [{"type": "bar", "y": [1]}], "layout": {"title": "plain"}}`,
		`{"data": [{"type": "bar", "y": [1]}], "layout": {"title": {"text": "plain"}}}`,
	} {
		d, err := Decode(strings.NewReader(doc))
		if err != nil {
			t.Fatal(err)
		}
		if d.Layout.Title.Text != "plain" {
			t.Errorf("title %q from %s", d.Layout.Title.Text, doc)
		}
	}
}

func TestExportBarRoundTrip(t *testing.T) {
	orig, err := mustDecode(t, `{
		"data": [{"type": "bar", "x": ["a", "b"], "y": [1, 2], "marker": {"colors": ["red", "blue"]}}],
		"layout": {"title": "t", "width": 400, "height": 300}
	}`).BarChart()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, ExportBar(*orig)); err != nil {
		t.Fatal(err)
	}
	back, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	chart, err := back.BarChart()
	if err != nil {
		t.Fatal(err)
	}
	if chart.Title != orig.Title || chart.Width != orig.Width {
		t.Errorf("frame lost in the round trip: %+v", chart.Chart)
	}
	if len(chart.Points) != len(orig.Points) {
		t.Fatalf("got %d points, want %d", len(chart.Points), len(orig.Points))
	}
	for i := range orig.Points {
		if chart.Points[i] != orig.Points[i] {
			t.Errorf("point %d differs: %+v vs %+v", i, chart.Points[i], orig.Points[i])
		}
	}
}

func TestExportLineRoundTrip(t *testing.T) {
	orig, err := mustDecode(t, `{
		"data": [{"type": "scatter", "name": "cpu", "mode": "lines+markers", "y": [1, 2, 3], "line": {"shape": "spline"}}]
	}`).LineChart()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, ExportLine(*orig)); err != nil {
		t.Fatal(err)
	}
	back, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	chart, err := back.LineChart()
	if err != nil {
		t.Fatal(err)
	}
	if !chart.Style.Smooth {
		t.Error("smoothing lost in the round trip")
	}
	if len(chart.Series) != 1 || chart.Series[0].Title != "cpu" || !chart.Series[0].ShowMarkers {
		t.Errorf("series lost in the round trip: %+v", chart.Series)
	}
}

func mustDecode(t *testing.T, doc string) *Document {
	t.Helper()
	d, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	return d
}
