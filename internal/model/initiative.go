package model

import "strings"

// Score bounds shared by value and complexity.
const (
	MinScore = 1
	MaxScore = 9
)

// Field names used in validation errors.
const (
	FieldValue      = "value"
	FieldComplexity = "complexity"
)

// Initiative is a candidate unit of work scored by business value and
// implementation complexity. ID is assigned by the store and never changes.
type Initiative struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Value      int    `json:"value" yaml:"value"`
	Complexity int    `json:"complexity" yaml:"complexity"`
}

// Draft is a proposed initiative before it has an id.
type Draft struct {
	Name       string `json:"name" yaml:"name"`
	Value      int    `json:"value" yaml:"value"`
	Complexity int    `json:"complexity" yaml:"complexity"`
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Name       *string
	Value      *int
	Complexity *int
}

// Empty reports whether the patch carries no fields.
func (p Patch) Empty() bool {
	return p.Name == nil && p.Value == nil && p.Complexity == nil
}

// NamePatch builds a patch that only renames.
func NamePatch(name string) Patch { return Patch{Name: &name} }

// ValuePatch builds a patch that only rescores value.
func ValuePatch(v int) Patch { return Patch{Value: &v} }

// ComplexityPatch builds a patch that only rescores complexity.
func ComplexityPatch(c int) Patch { return Patch{Complexity: &c} }

// Validate checks the draft and returns a normalized copy with the name trimmed.
// Scores are checked before the name, so a range error wins.
func (d Draft) Validate() (Draft, error) {
	if err := CheckScore(FieldValue, d.Value); err != nil {
		return Draft{}, err
	}
	if err := CheckScore(FieldComplexity, d.Complexity); err != nil {
		return Draft{}, err
	}
	name, err := checkName(d.Name)
	if err != nil {
		return Draft{}, err
	}
	d.Name = name
	return d, nil
}

// Apply merges p into a copy of in and validates every field the patch
// touches, scores first. in is never modified.
func (p Patch) Apply(in Initiative) (Initiative, error) {
	out := in
	if p.Value != nil {
		if err := CheckScore(FieldValue, *p.Value); err != nil {
			return in, err
		}
		out.Value = *p.Value
	}
	if p.Complexity != nil {
		if err := CheckScore(FieldComplexity, *p.Complexity); err != nil {
			return in, err
		}
		out.Complexity = *p.Complexity
	}
	if p.Name != nil {
		name, err := checkName(*p.Name)
		if err != nil {
			return in, err
		}
		out.Name = name
	}
	return out, nil
}

// CheckScore returns a *RangeError when v falls outside [MinScore, MaxScore].
func CheckScore(field string, v int) error {
	if v < MinScore || v > MaxScore {
		return &RangeError{Field: field, Value: v}
	}
	return nil
}

func checkName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", &NameError{Name: name}
	}
	return trimmed, nil
}
