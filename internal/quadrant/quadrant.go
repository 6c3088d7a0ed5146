// Package quadrant maps a (value, complexity) pair onto one of four
// strategic quadrants and onto the [0,10] display plane. Everything here is
// pure; callers recompute on demand.
package quadrant

import "github.com/idilsaglam/quadrant/internal/model"

// Threshold splits both axes. Points on the threshold count as "high".
const Threshold = 5

// Display domain of both axes.
const (
	AxisMin = 0.0
	AxisMax = 10.0
)

// Quadrant is one of the four strategic categories.
type Quadrant int

const (
	HighValueLowComplexity Quadrant = iota
	HighValueHighComplexity
	LowValueLowComplexity
	LowValueHighComplexity
)

type meta struct {
	label, short, advice string
	center               Point
}

var quadrants = [...]meta{
	HighValueLowComplexity:  {"High Value, Low Complexity", "HVLC", "Quick win: do first", Point{X: 2.5, Y: 7.5}},
	HighValueHighComplexity: {"High Value, High Complexity", "HVHC", "Major project: plan carefully", Point{X: 7.5, Y: 7.5}},
	LowValueLowComplexity:   {"Low Value, Low Complexity", "LVLC", "Fill-in: do when idle", Point{X: 2.5, Y: 2.5}},
	LowValueHighComplexity:  {"Low Value, High Complexity", "LVHC", "Money pit: avoid", Point{X: 7.5, Y: 2.5}},
}

// All returns the quadrants in display order.
func All() []Quadrant {
	return []Quadrant{
		HighValueLowComplexity,
		HighValueHighComplexity,
		LowValueLowComplexity,
		LowValueHighComplexity,
	}
}

func (q Quadrant) valid() bool { return q >= 0 && int(q) < len(quadrants) }

// Label is the human readable name, e.g. "High Value, Low Complexity".
func (q Quadrant) Label() string {
	if !q.valid() {
		return "Unknown"
	}
	return quadrants[q].label
}

// Short is a four letter code.
func (q Quadrant) Short() string {
	if !q.valid() {
		return "????"
	}
	return quadrants[q].short
}

// Advice is a one-line recommendation for work in this quadrant.
func (q Quadrant) Advice() string {
	if !q.valid() {
		return ""
	}
	return quadrants[q].advice
}

// Center is where the quadrant label sits on the display plane.
func (q Quadrant) Center() Point {
	if !q.valid() {
		return Point{}
	}
	return quadrants[q].center
}

// HighValue reports whether q is above the value threshold.
func (q Quadrant) HighValue() bool {
	return q == HighValueLowComplexity || q == HighValueHighComplexity
}

// HighComplexity reports whether q is right of the complexity threshold.
func (q Quadrant) HighComplexity() bool {
	return q == HighValueHighComplexity || q == LowValueHighComplexity
}

func (q Quadrant) String() string { return q.Label() }

// MarshalText encodes the quadrant as its label.
func (q Quadrant) MarshalText() ([]byte, error) { return []byte(q.Label()), nil }

// Classify places a score pair in its quadrant. Both axes use >= against
// Threshold.
func Classify(value, complexity int) Quadrant {
	highValue := value >= Threshold
	highComplexity := complexity >= Threshold
	switch {
	case highValue && !highComplexity:
		return HighValueLowComplexity
	case highValue && highComplexity:
		return HighValueHighComplexity
	case !highValue && !highComplexity:
		return LowValueLowComplexity
	default:
		return LowValueHighComplexity
	}
}

// Point is a position on the display plane. X is complexity, Y is value.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Project maps scores onto the display plane. The score domain already sits
// inside [AxisMin, AxisMax], so no rescaling happens.
func Project(value, complexity int) Point {
	return Point{X: float64(complexity), Y: float64(value)}
}

// View is the read-only record handed to renderers.
type View struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Value      int      `json:"value"`
	Complexity int      `json:"complexity"`
	Quadrant   Quadrant `json:"quadrantLabel"`
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
}

// Label returns the quadrant label of the view.
func (v View) Label() string { return v.Quadrant.Label() }

// ViewOf derives the view record of a single initiative.
func ViewOf(in model.Initiative) View {
	p := Project(in.Value, in.Complexity)
	return View{
		ID:         in.ID,
		Name:       in.Name,
		Value:      in.Value,
		Complexity: in.Complexity,
		Quadrant:   Classify(in.Value, in.Complexity),
		X:          p.X,
		Y:          p.Y,
	}
}

// Views derives view records in collection order.
func Views(items []model.Initiative) []View {
	out := make([]View, 0, len(items))
	for _, it := range items {
		out = append(out, ViewOf(it))
	}
	return out
}

// Group buckets views by quadrant, keeping their relative order.
func Group(views []View) map[Quadrant][]View {
	out := make(map[Quadrant][]View, len(quadrants))
	for _, v := range views {
		out[v.Quadrant] = append(out[v.Quadrant], v)
	}
	return out
}
