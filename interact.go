package charts

// HoverState is the interaction state a host widget feeds back into
// the painters: which element the pointer sits on and where.
type HoverState struct {
	Serie int
	Index int
	X     float64
	Y     float64
}

func NoHover() HoverState {
	return HoverState{
		Serie: -1,
		Index: -1,
	}
}

// Interaction collects the callback surface of a chart widget. All
// callbacks are fire and forget, no return value is consumed.
type Interaction struct {
	OnTap          func(index int)
	OnHover        func(index int)
	OnAnimationEnd func()

	hover HoverState
}

func (i *Interaction) Hover() HoverState {
	return i.hover
}

// SetHover records a new hover target and reports whether it changed,
// firing the hover callback on a fresh index.
func (i *Interaction) SetHover(serie, index int, x, y float64) bool {
	next := HoverState{
		Serie: serie,
		Index: index,
		X:     x,
		Y:     y,
	}
	if next == i.hover {
		return false
	}
	changed := next.Index != i.hover.Index || next.Serie != i.hover.Serie
	i.hover = next
	if changed && index >= 0 && i.OnHover != nil {
		i.OnHover(index)
	}
	return true
}

func (i *Interaction) ClearHover() bool {
	return i.SetHover(-1, -1, 0, 0)
}

// Tap fires the tap callback for the element at the given index.
func (i *Interaction) Tap(index int) {
	if index >= 0 && i.OnTap != nil {
		i.OnTap(index)
	}
}

// AnimationEnd fires the completion callback. The host calls it once
// when Animation.Done flips to true.
func (i *Interaction) AnimationEnd() {
	if i.OnAnimationEnd != nil {
		i.OnAnimationEnd()
	}
}

// Snapshot is the property set a repaint decision compares. Data and
// Style hold pointers to the immutable objects the widget was built
// with: two snapshots are equal when those pointers are identical,
// not when the pointed-to values are. Rebuilding a widget with a
// fresh but value-equal dataset therefore repaints, while advancing
// only the clock does not.
type Snapshot struct {
	Progress float64
	Data     any
	Style    any
	Hover    HoverState
}

// ShouldRepaint compares the previous and next property sets field by
// field.
func ShouldRepaint(prev, next Snapshot) bool {
	return prev != next
}
