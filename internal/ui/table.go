package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/quadrant/internal/quadrant"
)

const maxNameWidth = 32

// Table lists view records in collection order, one row each.
func Table(views []quadrant.View) string {
	t := Current()
	if len(views) == 0 {
		return t.Muted.Render("no initiatives")
	}

	nameW := len("Name")
	for _, v := range views {
		nameW = max(nameW, lipgloss.Width(truncate(v.Name, maxNameWidth)))
	}

	var lines []string
	header := fmt.Sprintf("%-3s %-*s %5s %10s  %s", "#", nameW, "Name", "Value", "Complexity", "Quadrant")
	lines = append(lines, t.Title.Render(header))
	for i, v := range views {
		name := truncate(v.Name, maxNameWidth)
		pad := strings.Repeat(" ", nameW-lipgloss.Width(name))
		style := t.QuadrantStyle(v.Quadrant)
		lines = append(lines, fmt.Sprintf("%s %s%s %5d %10d  %s",
			style.Render(fmt.Sprintf("%-3s", Marker(i))), name, pad, v.Value, v.Complexity, style.Render(v.Label())))
	}
	return strings.Join(lines, "\n")
}

// Summary renders per-quadrant counts with share bars.
func Summary(views []quadrant.View) string {
	t := Current()
	groups := quadrant.Group(views)
	lines := []string{
		fmt.Sprintf("%s  %s %d", t.Title.Render("Initiatives"), t.Accent.Render("Total"), len(views)),
	}
	for _, q := range quadrant.All() {
		n := len(groups[q])
		lines = append(lines, fmt.Sprintf("%s %-28s %s",
			t.QuadrantStyle(q).Render(q.Short()), q.Label(), t.Muted.Render(ShareBar(n, len(views), 16))))
	}
	return strings.Join(lines, "\n")
}

// Badge is a short colored quadrant tag for list rows.
func Badge(q quadrant.Quadrant) string {
	return Current().QuadrantStyle(q).Render("[" + q.Short() + "]")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n-3]) + "..."
	}
	return s
}
