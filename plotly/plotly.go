// Package plotly translates a subset of the plotly trace/layout JSON
// schema, and a flat labels/values document, into the native chart
// models. Detection between the two shapes goes through an explicit
// discriminator instead of ad hoc field probing.
package plotly

import (
	"encoding/json"
	"strconv"
)

type Format int

const (
	FormatUnknown Format = iota
	FormatTraces
	FormatSimple
)

const (
	TraceBar     = "bar"
	TracePie     = "pie"
	TraceScatter = "scatter"
)

type Document struct {
	Data   []Trace `json:"data"`
	Layout *Layout `json:"layout,omitempty"`
}

type Trace struct {
	Type   string    `json:"type"`
	Name   string    `json:"name,omitempty"`
	X      []any     `json:"x,omitempty"`
	Y      []float64 `json:"y,omitempty"`
	Labels []string  `json:"labels,omitempty"`
	Values []float64 `json:"values,omitempty"`
	Hole   float64   `json:"hole,omitempty"`
	Mode   string    `json:"mode,omitempty"`
	Fill   string    `json:"fill,omitempty"`
	Marker *Marker   `json:"marker,omitempty"`
	Line   *Line     `json:"line,omitempty"`
}

// xLabels renders the x array as strings, numbers included, since the
// native categorical models label their slots with text.
func (t Trace) xLabels() []string {
	out := make([]string, 0, len(t.X))
	for _, v := range t.X {
		switch x := v.(type) {
		case string:
			out = append(out, x)
		case float64:
			out = append(out, strconv.FormatFloat(x, 'f', -1, 64))
		default:
			out = append(out, "")
		}
	}
	return out
}

type Marker struct {
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`
	Size   float64  `json:"size,omitempty"`
}

type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Shape string  `json:"shape,omitempty"`
}

type Layout struct {
	Title      Title   `json:"title,omitempty"`
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
	ShowLegend *bool   `json:"showlegend,omitempty"`
	Margin     *Margin `json:"margin,omitempty"`
	XAxis      *Axis   `json:"xaxis,omitempty"`
	YAxis      *Axis   `json:"yaxis,omitempty"`
}

type Margin struct {
	L float64 `json:"l"`
	R float64 `json:"r"`
	T float64 `json:"t"`
	B float64 `json:"b"`
}

type Axis struct {
	Title Title `json:"title,omitempty"`
	Range []float64 `json:"range,omitempty"`
}

// Title accepts both spellings the schema allows: a bare string or an
// object with a text field.
type Title struct {
	Text string `json:"text,omitempty"`
}

func (t *Title) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		t.Text = str
		return nil
	}
	type title Title
	var obj title
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	t.Text = obj.Text
	return nil
}

// Simple is the flat document shape: labels and values side by side.
type Simple struct {
	Title  string    `json:"title,omitempty"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Colors []string  `json:"colors,omitempty"`
}
