package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	charts "github.com/vishnudas-bluefox/material-charts-sub001"
	"github.com/vishnudas-bluefox/material-charts-sub001/plotly"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

var defaultPad = charts.PadAll(60)

func main() {
	var (
		kind     = flag.String("type", "bar", "chart type (bar, pie, line, area, stacked, gantt)")
		title    = flag.String("title", "", "chart title")
		width    = flag.Float64("width", defaultWidth, "chart width")
		height   = flag.Float64("height", defaultHeight, "chart height")
		progress = flag.Float64("progress", 1, "animation progress in [0,1]")
		useJSON  = flag.Bool("json", false, "input files are plotly documents instead of csv")
		outdir   = flag.String("out", ".", "output directory")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "no input file given")
		os.Exit(2)
	}

	var grp errgroup.Group
	for _, file := range flag.Args() {
		file := file
		grp.Go(func() error {
			frame := charts.Chart{
				Title:   *title,
				Width:   *width,
				Height:  *height,
				Padding: defaultPad,
			}
			if err := frame.Validate(); err != nil {
				return err
			}
			return renderFile(file, *outdir, *kind, *useJSON, frame, *progress)
		})
	}
	if err := grp.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func renderFile(file, outdir, kind string, useJSON bool, frame charts.Chart, progress float64) error {
	r, err := os.Open(file)
	if err != nil {
		return err
	}
	defer r.Close()

	out := filepath.Join(outdir, outputName(file))
	w, err := os.Create(out)
	if err != nil {
		return err
	}
	defer w.Close()

	if useJSON {
		return renderDocument(w, r, kind, progress)
	}
	return renderCSV(w, r, kind, frame, progress)
}

func outputName(file string) string {
	base := filepath.Base(file)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".svg"
}

func renderDocument(w io.Writer, r io.Reader, kind string, progress float64) error {
	doc, err := plotly.Decode(r)
	if err != nil {
		return err
	}
	switch kind {
	case "bar":
		c, err := doc.BarChart()
		if err != nil {
			return err
		}
		c.Render(w, progress)
	case "pie":
		c, err := doc.PieChart()
		if err != nil {
			return err
		}
		c.Render(w, progress)
	case "line":
		c, err := doc.LineChart()
		if err != nil {
			return err
		}
		c.Render(w, progress)
	case "area":
		c, err := doc.AreaChart()
		if err != nil {
			return err
		}
		c.Render(w, progress)
	default:
		return fmt.Errorf("%s: unsupported type for plotly input", kind)
	}
	return nil
}

func renderCSV(w io.Writer, r io.Reader, kind string, frame charts.Chart, progress float64) error {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return err
	}
	switch kind {
	case "bar":
		return renderBar(w, rows, frame, progress)
	case "pie":
		return renderPie(w, rows, frame, progress)
	case "line":
		return renderLine(w, rows, frame, progress, false)
	case "area":
		return renderLine(w, rows, frame, progress, true)
	case "stacked":
		return renderStacked(w, rows, frame, progress)
	case "gantt":
		return renderGantt(w, rows, frame, progress)
	default:
		return fmt.Errorf("%s: unsupported chart type", kind)
	}
}

func renderBar(w io.Writer, rows [][]string, frame charts.Chart, progress float64) error {
	chart := charts.BarChart{
		Chart: frame,
		Style: charts.DefaultBarStyle(),
	}
	for _, row := range rows {
		if len(row) < 2 {
			return errors.New("bar rows need a label and a value")
		}
		v, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return err
		}
		pt := charts.NumberBar(row[0], v)
		if len(row) > 2 {
			pt.Color = row[2]
		}
		chart.Points = append(chart.Points, pt)
	}
	chart.Render(w, progress)
	return nil
}

func renderPie(w io.Writer, rows [][]string, frame charts.Chart, progress float64) error {
	chart := charts.PieChart{
		Chart: frame,
		Style: charts.DefaultPieStyle(),
	}
	for _, row := range rows {
		if len(row) < 2 {
			return errors.New("pie rows need a label and a value")
		}
		v, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return err
		}
		sl := charts.PieSlice{Label: row[0], Value: v}
		if len(row) > 2 {
			sl.Color = row[2]
		}
		chart.Slices = append(chart.Slices, sl)
	}
	chart.Render(w, progress)
	return nil
}

func renderLine(w io.Writer, rows [][]string, frame charts.Chart, progress float64, fill bool) error {
	var serie charts.LineSeries
	for _, row := range rows {
		if len(row) < 2 {
			return errors.New("line rows need a label and a value")
		}
		v, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return err
		}
		serie.Points = append(serie.Points, charts.LinePoint{
			Label: row[0],
			Value: v,
		})
	}
	if fill {
		chart := charts.AreaChart{
			Chart:  frame,
			Style:  charts.DefaultAreaStyle(),
			Series: []charts.LineSeries{serie},
		}
		chart.Render(w, progress)
		return nil
	}
	chart := charts.LineChart{
		Chart:  frame,
		Style:  charts.DefaultLineStyle(),
		Series: []charts.LineSeries{serie},
	}
	chart.Render(w, progress)
	return nil
}

func renderStacked(w io.Writer, rows [][]string, frame charts.Chart, progress float64) error {
	chart := charts.StackedBarChart{
		Chart: frame,
		Style: charts.DefaultStackedStyle(),
	}
	for _, row := range rows {
		if len(row) < 2 {
			return errors.New("stacked rows need a label and at least one value")
		}
		bar := charts.StackedBar{Label: row[0]}
		for _, col := range row[1:] {
			v, err := strconv.ParseFloat(col, 64)
			if err != nil {
				return err
			}
			bar.Segments = append(bar.Segments, charts.Segment{Value: v})
		}
		chart.Bars = append(chart.Bars, bar)
	}
	chart.Render(w, progress)
	return nil
}

func renderGantt(w io.Writer, rows [][]string, frame charts.Chart, progress float64) error {
	chart := charts.GanttChart{
		Chart: frame,
		Style: charts.DefaultGanttStyle(),
	}
	for _, row := range rows {
		if len(row) < 3 {
			return errors.New("gantt rows need a label, a start date and an end date")
		}
		start, err := time.Parse("2006-01-02", row[1])
		if err != nil {
			return err
		}
		end, err := time.Parse("2006-01-02", row[2])
		if err != nil {
			return err
		}
		task, err := charts.NewTask(row[0], start, end)
		if err != nil {
			return err
		}
		chart.Tasks = append(chart.Tasks, task)
	}
	chart.Render(w, progress)
	return nil
}
