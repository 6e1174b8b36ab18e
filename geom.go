package charts

import (
	"math"

	"github.com/midbel/svg"
)

const currentColour = "currentColour"

const (
	fullcircle = 360.0
	halfcircle = 180.0
	deg2rad    = math.Pi / halfcircle
)

func getPosFromAngle(angle, radius float64) svg.Pos {
	var (
		x1 = radius * math.Cos(angle)
		y1 = radius * math.Sin(angle)
	)
	return svg.NewPos(x1, y1)
}

// normalizeAngle brings an angle in degrees into [0,360).
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, fullcircle)
	if deg < 0 {
		deg += fullcircle
	}
	return deg
}

// toPolar converts a point to polar coordinates around a center. The
// returned angle is in degrees, normalized to [0,360).
func toPolar(center svg.Pos, x, y float64) (float64, float64) {
	var (
		dx     = x - center.X
		dy     = y - center.Y
		radius = math.Hypot(dx, dy)
		angle  = math.Atan2(dy, dx) / deg2rad
	)
	return normalizeAngle(angle), radius
}

func distance(a, b svg.Pos) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// curveSegment is a quadratic bezier. The svg path builder only
// offers cubic curves so cubic() elevates the degree, which keeps the
// curve identical.
type curveSegment struct {
	From svg.Pos
	Ctrl svg.Pos
	To   svg.Pos
}

func (c curveSegment) cubic() (svg.Pos, svg.Pos) {
	two3 := 2.0 / 3.0
	ctrl1 := svg.NewPos(c.From.X+two3*(c.Ctrl.X-c.From.X), c.From.Y+two3*(c.Ctrl.Y-c.From.Y))
	ctrl2 := svg.NewPos(c.To.X+two3*(c.Ctrl.X-c.To.X), c.To.Y+two3*(c.Ctrl.Y-c.To.Y))
	return ctrl1, ctrl2
}

func (c curveSegment) at(t float64) svg.Pos {
	u := 1 - t
	x := u*u*c.From.X + 2*u*t*c.Ctrl.X + t*t*c.To.X
	y := u*u*c.From.Y + 2*u*t*c.Ctrl.Y + t*t*c.To.Y
	return svg.NewPos(x, y)
}

const curveSteps = 16

func (c curveSegment) flatten() []svg.Pos {
	pts := make([]svg.Pos, 0, curveSteps)
	for i := 1; i <= curveSteps; i++ {
		pts = append(pts, c.at(float64(i)/curveSteps))
	}
	return pts
}

// smoothSegments derives one quadratic segment per pair of adjacent
// points. The control point follows the direction of the neighboring
// segments: one sided at the ends, averaged in the middle, weighted
// by the intensity factor.
func smoothSegments(pts []svg.Pos, intensity float64) []curveSegment {
	if len(pts) < 2 {
		return nil
	}
	dir := func(a, b svg.Pos) svg.Pos {
		d := distance(a, b)
		if d == 0 {
			return svg.NewPos(0, 0)
		}
		return svg.NewPos((b.X-a.X)/d, (b.Y-a.Y)/d)
	}
	segs := make([]curveSegment, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		var (
			from = pts[i]
			to   = pts[i+1]
			d    svg.Pos
		)
		switch {
		case len(pts) == 2:
			d = dir(from, to)
		case i == 0:
			d = dir(from, pts[i+2])
		case i == len(pts)-2:
			d = dir(pts[i-1], to)
		default:
			a := dir(pts[i-1], to)
			b := dir(from, pts[i+2])
			d = svg.NewPos((a.X+b.X)/2, (a.Y+b.Y)/2)
		}
		step := distance(from, to) * intensity
		ctrl := svg.NewPos(from.X+d.X*step, from.Y+d.Y*step)
		segs = append(segs, curveSegment{From: from, Ctrl: ctrl, To: to})
	}
	return segs
}

// PathMeasure computes lengths over a polyline and extracts prefixes
// of it, which is what drives the animated reveal of line and area
// charts.
type PathMeasure struct {
	points  []svg.Pos
	lengths []float64
	total   float64
}

func MeasurePath(pts []svg.Pos) *PathMeasure {
	m := PathMeasure{
		points: pts,
	}
	for i := 1; i < len(pts); i++ {
		d := distance(pts[i-1], pts[i])
		m.lengths = append(m.lengths, d)
		m.total += d
	}
	return &m
}

func (m *PathMeasure) Length() float64 {
	return m.total
}

// Prefix returns the leading part of the path whose length is l. The
// final point is interpolated inside the segment the cut falls into.
func (m *PathMeasure) Prefix(l float64) []svg.Pos {
	if len(m.points) == 0 {
		return nil
	}
	if l <= 0 {
		return m.points[:1]
	}
	if l >= m.total {
		return m.points
	}
	out := []svg.Pos{m.points[0]}
	for i, d := range m.lengths {
		if l < d {
			var (
				t    = l / d
				from = m.points[i]
				to   = m.points[i+1]
			)
			out = append(out, svg.NewPos(from.X+(to.X-from.X)*t, from.Y+(to.Y-from.Y)*t))
			return out
		}
		out = append(out, m.points[i+1])
		l -= d
	}
	return out
}

// arcTo approximates a circular arc around a center with cubic
// curves, one per quarter turn at most. The path must already sit on
// the arc start. Angles are in degrees, increasing clockwise in
// screen coordinates.
func arcTo(pat *svg.Path, center svg.Pos, radius, fromDeg, toDeg float64) {
	span := toDeg - fromDeg
	steps := int(math.Ceil(math.Abs(span) / 90))
	if steps == 0 {
		return
	}
	step := span / float64(steps)
	for i := 0; i < steps; i++ {
		var (
			a1 = (fromDeg + float64(i)*step) * deg2rad
			a2 = (fromDeg + float64(i+1)*step) * deg2rad
			k  = 4.0 / 3.0 * math.Tan((a2-a1)/4) * radius
			p0 = svg.NewPos(center.X+radius*math.Cos(a1), center.Y+radius*math.Sin(a1))
			p3 = svg.NewPos(center.X+radius*math.Cos(a2), center.Y+radius*math.Sin(a2))
			c1 = svg.NewPos(p0.X-k*math.Sin(a1), p0.Y+k*math.Cos(a1))
			c2 = svg.NewPos(p3.X+k*math.Sin(a2), p3.Y-k*math.Cos(a2))
		)
		pat.AbsCubicCurve(p3, c1, c2)
	}
}

// dashSegments cuts the line from one point to another into dash/gap
// pairs along its direction vector.
func dashSegments(from, to svg.Pos, dash, gap float64) [][2]svg.Pos {
	total := distance(from, to)
	if total == 0 || dash <= 0 {
		return nil
	}
	if gap < 0 {
		gap = 0
	}
	var (
		dx   = (to.X - from.X) / total
		dy   = (to.Y - from.Y) / total
		out  [][2]svg.Pos
		dist float64
	)
	for dist < total {
		end := dist + dash
		if end > total {
			end = total
		}
		out = append(out, [2]svg.Pos{
			svg.NewPos(from.X+dx*dist, from.Y+dy*dist),
			svg.NewPos(from.X+dx*end, from.Y+dy*end),
		})
		dist = end + gap
	}
	return out
}
