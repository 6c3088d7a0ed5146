package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/idilsaglam/quadrant/internal/quadrant"
)

// Marker returns the plot glyph of the i-th row (0-based): 1-9, then a-z.
// Table uses the same glyphs in its first column.
func Marker(i int) string {
	switch {
	case i < 9:
		return string(rune('1' + i))
	case i < 9+26:
		return string(rune('a' + i - 9))
	}
	return "•"
}

type cell struct {
	text  string
	views []int
}

// Plot draws the value/complexity plane as a width x height character
// canvas. Complexity runs left to right, value bottom to top, both over
// [0,10], with dividers at the threshold. Each point is drawn with its row
// marker; cells holding several points show the theme's Crowded glyph.
func Plot(views []quadrant.View, width, height int) string {
	t := Current()
	width = max(width, 11)
	height = max(height, 7)

	grid := make([][]cell, height)
	for r := range grid {
		grid[r] = make([]cell, width)
	}

	divCol := toCol(quadrant.Threshold, width)
	divRow := toRow(quadrant.Threshold, height)
	for r := 0; r < height; r++ {
		grid[r][divCol].text = t.Muted.Render(t.Divider)
	}
	for c := 0; c < width; c++ {
		grid[divRow][c].text = t.Muted.Render(t.Divider)
	}
	grid[divRow][divCol].text = t.Muted.Render(t.Cross)

	for _, q := range quadrant.All() {
		center := q.Center()
		label := q.Short()
		r := toRow(center.Y, height)
		c0 := toCol(center.X, width) - len(label)/2
		for i, ch := range label {
			c := c0 + i
			if c < 0 || c >= width || c == divCol || r == divRow {
				continue
			}
			grid[r][c].text = t.QuadrantStyle(q).Faint(true).Render(string(ch))
		}
	}

	for i, v := range views {
		r, c := toRow(v.Y, height), toCol(v.X, width)
		grid[r][c].views = append(grid[r][c].views, i)
	}

	var b strings.Builder
	b.WriteString(t.Muted.Render("Value ↑") + "\n")
	for r := 0; r < height; r++ {
		b.WriteString(yTick(r, height))
		b.WriteString(t.Muted.Render(t.AxisV))
		for c := 0; c < width; c++ {
			b.WriteString(renderCell(t, grid[r][c], views))
		}
		b.WriteByte('\n')
	}
	b.WriteString("   " + t.Muted.Render("└"+strings.Repeat(t.AxisH, width)) + "\n")
	b.WriteString("    " + xTicks(width) + "\n")
	b.WriteString(t.Muted.Render(centerText("Complexity →", width+4)))
	return b.String()
}

func renderCell(t Theme, c cell, views []quadrant.View) string {
	switch len(c.views) {
	case 0:
		if c.text == "" {
			return " "
		}
		return c.text
	case 1:
		i := c.views[0]
		return t.QuadrantStyle(views[i].Quadrant).Render(Marker(i))
	default:
		return t.QuadrantStyle(views[c.views[0]].Quadrant).Render(t.Crowded)
	}
}

// toCol maps an x in [0,10] onto a column.
func toCol(x float64, width int) int {
	c := int(math.Round((x - quadrant.AxisMin) / (quadrant.AxisMax - quadrant.AxisMin) * float64(width-1)))
	return clamp(c, 0, width-1)
}

// toRow maps a y in [0,10] onto a row; row 0 is the top.
func toRow(y float64, height int) int {
	r := int(math.Round((quadrant.AxisMax - y) / (quadrant.AxisMax - quadrant.AxisMin) * float64(height-1)))
	return clamp(r, 0, height-1)
}

func clamp(v, lo, hi int) int { return max(lo, min(hi, v)) }

func yTick(r, height int) string {
	switch r {
	case toRow(quadrant.AxisMax, height):
		return fmt.Sprintf("%2.0f ", quadrant.AxisMax)
	case toRow(quadrant.Threshold, height):
		return fmt.Sprintf("%2d ", quadrant.Threshold)
	case toRow(quadrant.AxisMin, height):
		return fmt.Sprintf("%2.0f ", quadrant.AxisMin)
	}
	return "   "
}

func xTicks(width int) string {
	line := []rune(strings.Repeat(" ", width+2))
	put := func(col int, s string) {
		for i, ch := range s {
			if col+i < len(line) {
				line[col+i] = ch
			}
		}
	}
	put(toCol(quadrant.AxisMin, width), "0")
	put(toCol(quadrant.Threshold, width), "5")
	put(toCol(quadrant.AxisMax, width), "10")
	return strings.TrimRight(string(line), " ")
}

func centerText(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}
