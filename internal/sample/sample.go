// Package sample holds static demonstration data sets that can be handed
// wholesale to store.LoadAll.
package sample

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/idilsaglam/quadrant/internal/model"
)

// ErrUnknownSample is returned by Lookup for a name with no data set.
var ErrUnknownSample = errors.New("unknown sample")

// Set is a named list of drafts.
type Set struct {
	Name   string
	Drafts []model.Draft
}

var sets = []Set{
	{
		Name: "Example",
		Drafts: []model.Draft{
			{Name: "Example 1", Value: 7, Complexity: 3},
			{Name: "Example 2", Value: 5, Complexity: 5},
			{Name: "Example 3", Value: 3, Complexity: 7},
		},
	},
	{
		Name: "Online Retail",
		Drafts: []model.Draft{
			{Name: "One-click checkout", Value: 9, Complexity: 4},
			{Name: "Product recommendations", Value: 8, Complexity: 7},
			{Name: "Abandoned cart emails", Value: 7, Complexity: 2},
			{Name: "Mobile app", Value: 6, Complexity: 9},
			{Name: "Gift wrapping option", Value: 3, Complexity: 2},
			{Name: "AR try-on", Value: 4, Complexity: 9},
			{Name: "Loyalty points", Value: 6, Complexity: 5},
			{Name: "Dark mode", Value: 2, Complexity: 3},
		},
	},
	{
		Name: "Language School",
		Drafts: []model.Draft{
			{Name: "Online booking", Value: 8, Complexity: 3},
			{Name: "Placement test", Value: 7, Complexity: 4},
			{Name: "Video lessons", Value: 8, Complexity: 8},
			{Name: "Teacher scheduling tool", Value: 6, Complexity: 6},
			{Name: "Newsletter", Value: 3, Complexity: 1},
			{Name: "Custom LMS", Value: 4, Complexity: 9},
			{Name: "Student referral program", Value: 5, Complexity: 2},
		},
	},
}

// Names returns the data set names in definition order.
func Names() []string {
	out := make([]string, len(sets))
	for i, s := range sets {
		out[i] = s.Name
	}
	return out
}

// Lookup finds a data set by case-insensitive name and returns a copy of its
// drafts.
func Lookup(name string) ([]model.Draft, error) {
	key := strings.TrimSpace(name)
	for _, s := range sets {
		if strings.EqualFold(s.Name, key) {
			return copyDrafts(s.Drafts), nil
		}
	}
	known := Names()
	sort.Strings(known)
	return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownSample, name, strings.Join(known, ", "))
}

// Next returns the name that follows current in definition order, wrapping
// around. An unknown or empty current yields the first name.
func Next(current string) string {
	for i, s := range sets {
		if strings.EqualFold(s.Name, current) {
			return sets[(i+1)%len(sets)].Name
		}
	}
	return sets[0].Name
}

func copyDrafts(in []model.Draft) []model.Draft {
	out := make([]model.Draft, len(in))
	copy(out, in)
	return out
}
