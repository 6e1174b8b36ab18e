package plotly

import (
	"encoding/json"
	"io"
	"strings"

	charts "github.com/vishnudas-bluefox/material-charts-sub001"
)

// Detect classifies a raw document by its discriminator: a data array
// means the trace/layout format, labels next to values mean the
// simple format. Anything else is a structural error.
func Detect(raw []byte) (Format, error) {
	var probe struct {
		Data   json.RawMessage `json:"data"`
		Labels json.RawMessage `json:"labels"`
		Values json.RawMessage `json:"values"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return FormatUnknown, decodeError("malformed document: %s", err)
	}
	switch {
	case probe.Data != nil:
		return FormatTraces, nil
	case probe.Labels != nil && probe.Values != nil:
		return FormatSimple, nil
	default:
		return FormatUnknown, decodeError("document has neither a data array nor labels/values")
	}
}

// Decode reads a trace/layout document. A simple document is lifted
// into a single bar trace so both shapes come out as a Document.
func Decode(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	format, err := Detect(raw)
	if err != nil {
		return nil, err
	}
	if format == FormatSimple {
		var s Simple
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, decodeError("malformed document: %s", err)
		}
		return s.Document(), nil
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, decodeError("malformed document: %s", err)
	}
	if len(doc.Data) == 0 {
		return nil, decodeError("document has an empty data array")
	}
	return &doc, nil
}

// Document lifts a simple labels/values document into the trace
// format.
func (s Simple) Document() *Document {
	tr := Trace{
		Type:   TraceBar,
		Y:      s.Values,
		Marker: &Marker{Colors: s.Colors},
	}
	for _, l := range s.Labels {
		tr.X = append(tr.X, l)
	}
	doc := Document{
		Data: []Trace{tr},
	}
	if s.Title != "" {
		doc.Layout = &Layout{Title: Title{Text: s.Title}}
	}
	return &doc
}

func (d *Document) trace(kind string) (Trace, bool) {
	for _, tr := range d.Data {
		if tr.Type == kind {
			return tr, true
		}
	}
	return Trace{}, false
}

// frame maps the layout onto the shared chart frame, falling back to
// the package defaults for anything absent.
func (d *Document) frame() charts.Chart {
	c := charts.Chart{
		Width:   charts.DefaultWidth,
		Height:  charts.DefaultHeight,
		Padding: charts.PadAll(40),
	}
	if d.Layout == nil {
		return c
	}
	c.Title = d.Layout.Title.Text
	if d.Layout.Width > 0 {
		c.Width = d.Layout.Width
	}
	if d.Layout.Height > 0 {
		c.Height = d.Layout.Height
	}
	if m := d.Layout.Margin; m != nil {
		c.Padding = charts.Padding{
			Top:    m.T,
			Right:  m.R,
			Bottom: m.B,
			Left:   m.L,
		}
	}
	return c
}

// BarChart builds the native bar model from the first bar trace.
func (d *Document) BarChart() (*charts.BarChart, error) {
	tr, ok := d.trace(TraceBar)
	if !ok {
		return nil, decodeError("document has no bar trace")
	}
	if len(tr.Y) == 0 {
		return nil, decodeError("bar trace is missing its y array")
	}
	labels := tr.xLabels()
	if len(labels) > 0 && len(labels) != len(tr.Y) {
		return nil, LengthError{Field: "x", Want: len(tr.Y), Got: len(labels)}
	}
	chart := charts.BarChart{
		Chart: d.frame(),
		Style: charts.DefaultBarStyle(),
	}
	if m := tr.Marker; m != nil && m.Color != "" {
		chart.Style.Color = m.Color
	}
	for i, v := range tr.Y {
		pt := charts.BarPoint{Value: v}
		if i < len(labels) {
			pt.Label = labels[i]
		}
		if m := tr.Marker; m != nil && i < len(m.Colors) {
			pt.Color = m.Colors[i]
		}
		chart.Points = append(chart.Points, pt)
	}
	return &chart, nil
}

// PieChart builds the native pie model from the first pie trace.
func (d *Document) PieChart() (*charts.PieChart, error) {
	tr, ok := d.trace(TracePie)
	if !ok {
		return nil, decodeError("document has no pie trace")
	}
	if len(tr.Values) == 0 {
		return nil, decodeError("pie trace is missing its values array")
	}
	if len(tr.Labels) > 0 && len(tr.Labels) != len(tr.Values) {
		return nil, LengthError{Field: "labels", Want: len(tr.Values), Got: len(tr.Labels)}
	}
	chart := charts.PieChart{
		Chart: d.frame(),
		Style: charts.DefaultPieStyle(),
	}
	chart.Style.HoleRadius = tr.Hole
	for i, v := range tr.Values {
		sl := charts.PieSlice{Value: v}
		if i < len(tr.Labels) {
			sl.Label = tr.Labels[i]
		}
		if m := tr.Marker; m != nil && i < len(m.Colors) {
			sl.Color = m.Colors[i]
		}
		chart.Slices = append(chart.Slices, sl)
	}
	return &chart, nil
}

// LineChart builds the native line model from every scatter trace
// drawn in lines mode.
func (d *Document) LineChart() (*charts.LineChart, error) {
	chart := charts.LineChart{
		Chart: d.frame(),
		Style: charts.DefaultLineStyle(),
	}
	for _, tr := range d.Data {
		if tr.Type != TraceScatter {
			continue
		}
		if len(tr.Y) == 0 {
			return nil, decodeError("scatter trace is missing its y array")
		}
		if len(tr.X) > 0 && len(tr.X) != len(tr.Y) {
			return nil, LengthError{Field: "x", Want: len(tr.Y), Got: len(tr.X)}
		}
		s := traceSeries(tr)
		if tr.Line != nil && tr.Line.Shape == "spline" {
			chart.Style.Smooth = true
		}
		chart.Series = append(chart.Series, s)
	}
	if len(chart.Series) == 0 {
		return nil, decodeError("document has no scatter trace")
	}
	return &chart, nil
}

// AreaChart is the scatter mapping again, chosen when traces carry a
// fill directive.
func (d *Document) AreaChart() (*charts.AreaChart, error) {
	chart := charts.AreaChart{
		Chart: d.frame(),
		Style: charts.DefaultAreaStyle(),
	}
	for _, tr := range d.Data {
		if tr.Type != TraceScatter {
			continue
		}
		if len(tr.Y) == 0 {
			return nil, decodeError("scatter trace is missing its y array")
		}
		chart.Series = append(chart.Series, traceSeries(tr))
	}
	if len(chart.Series) == 0 {
		return nil, decodeError("document has no scatter trace")
	}
	return &chart, nil
}

// HasFill reports whether any scatter trace asks for an area fill.
func (d *Document) HasFill() bool {
	for _, tr := range d.Data {
		if tr.Type == TraceScatter && strings.HasPrefix(tr.Fill, "tozero") {
			return true
		}
	}
	return false
}

func traceSeries(tr Trace) charts.LineSeries {
	s := charts.LineSeries{
		Title:       tr.Name,
		ShowMarkers: strings.Contains(tr.Mode, "markers"),
	}
	if tr.Line != nil {
		s.Color = tr.Line.Color
		s.Width = tr.Line.Width
	}
	if tr.Marker != nil {
		if s.Color == "" {
			s.Color = tr.Marker.Color
		}
		s.MarkerSize = tr.Marker.Size
	}
	labels := tr.xLabels()
	for i, v := range tr.Y {
		pt := charts.LinePoint{Value: v}
		if i < len(labels) {
			pt.Label = labels[i]
		}
		s.Points = append(s.Points, pt)
	}
	return s
}
