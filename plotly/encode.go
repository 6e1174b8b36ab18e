package plotly

import (
	"encoding/json"
	"io"

	charts "github.com/vishnudas-bluefox/material-charts-sub001"
)

// Encode writes a document back out as JSON.
func Encode(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func exportFrame(c charts.Chart) *Layout {
	return &Layout{
		Title:  Title{Text: c.Title},
		Width:  c.Width,
		Height: c.Height,
		Margin: &Margin{
			L: c.Padding.Left,
			R: c.Padding.Right,
			T: c.Padding.Top,
			B: c.Padding.Bottom,
		},
	}
}

// ExportBar renders the native bar model as an interchange document.
// Decoding the result yields an equivalent chart for the fields the
// schema can carry.
func ExportBar(c charts.BarChart) *Document {
	tr := Trace{
		Type:   TraceBar,
		Marker: &Marker{Color: c.Style.Color},
	}
	for _, pt := range c.Points {
		tr.X = append(tr.X, pt.Label)
		tr.Y = append(tr.Y, pt.Value)
		tr.Marker.Colors = append(tr.Marker.Colors, pt.Color)
	}
	return &Document{
		Data:   []Trace{tr},
		Layout: exportFrame(c.Chart),
	}
}

func ExportPie(c charts.PieChart) *Document {
	tr := Trace{
		Type:   TracePie,
		Hole:   c.Style.HoleRadius,
		Marker: &Marker{},
	}
	for _, sl := range c.Slices {
		tr.Labels = append(tr.Labels, sl.Label)
		tr.Values = append(tr.Values, sl.Value)
		tr.Marker.Colors = append(tr.Marker.Colors, sl.Color)
	}
	return &Document{
		Data:   []Trace{tr},
		Layout: exportFrame(c.Chart),
	}
}

func ExportLine(c charts.LineChart) *Document {
	doc := Document{
		Layout: exportFrame(c.Chart),
	}
	for _, s := range c.Series {
		tr := Trace{
			Type: TraceScatter,
			Name: s.Title,
			Mode: "lines",
			Line: &Line{
				Color: s.Color,
				Width: s.Width,
			},
		}
		if c.Style.Smooth {
			tr.Line.Shape = "spline"
		}
		if s.ShowMarkers {
			tr.Mode = "lines+markers"
			tr.Marker = &Marker{Size: s.MarkerSize}
		}
		for _, pt := range s.Points {
			tr.X = append(tr.X, pt.Label)
			tr.Y = append(tr.Y, pt.Value)
		}
		doc.Data = append(doc.Data, tr)
	}
	return &doc
}
