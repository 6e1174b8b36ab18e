package charts

import (
	"fmt"
	"strconv"
)

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func (p Palette) At(i int) string {
	if len(p) == 0 {
		return currentColour
	}
	return p[i%len(p)]
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// Gradient interpolates between two hex colors. A nil Gradient on a
// style means gradient coloring is disabled.
type Gradient struct {
	From string
	To   string
}

func (g Gradient) At(t float64) string {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	fr, fg, fb, ok1 := parseHexColor(g.From)
	tr, tg, tb, ok2 := parseHexColor(g.To)
	if !ok1 || !ok2 {
		return g.From
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return fmt.Sprintf("#%02x%02x%02x", lerp(fr, tr), lerp(fg, tg), lerp(fb, tb))
}

func parseHexColor(str string) (uint8, uint8, uint8, bool) {
	if len(str) != 7 || str[0] != '#' {
		return 0, 0, 0, false
	}
	var arr [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(str[1+i*2:3+i*2], 16, 8)
		if err != nil {
			return 0, 0, 0, false
		}
		arr[i] = uint8(v)
	}
	return arr[0], arr[1], arr[2], true
}

// resolveColor applies the per point override first, the gradient next
// and the style default last.
func resolveColor(override string, grad *Gradient, t float64, fallback string) string {
	if override != "" {
		return override
	}
	if grad != nil {
		return grad.At(t)
	}
	return fallback
}
