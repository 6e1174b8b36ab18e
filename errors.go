package charts

import (
	"fmt"
	"time"
)

// EmptyDataError reports a chart operation that needs at least one
// data point to be meaningful.
type EmptyDataError struct {
	Chart string
}

func (e EmptyDataError) Error() string {
	return fmt.Sprintf("%s: no data points given", e.Chart)
}

// TaskRangeError reports a gantt task whose end date lies before its
// start date.
type TaskRangeError struct {
	Label string
	Start time.Time
	End   time.Time
}

func (e TaskRangeError) Error() string {
	return fmt.Sprintf("task %s: end date %s before start date %s",
		e.Label, e.End.Format("2006-01-02"), e.Start.Format("2006-01-02"))
}

// DimensionError reports a chart constructed with a non positive
// width or height.
type DimensionError struct {
	Width  float64
	Height float64
}

func (e DimensionError) Error() string {
	return fmt.Sprintf("invalid chart dimension %gx%g", e.Width, e.Height)
}
