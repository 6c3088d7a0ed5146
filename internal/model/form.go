package model

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Form defaults and limits for the creation path.
const (
	DefaultScore  = 5
	MinNameLength = 2
	MaxNameLength = 120
)

// FormError carries one message per invalid form field.
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	var parts []string
	for _, f := range []string{"name", FieldValue, FieldComplexity} {
		if msg, ok := e.Fields[f]; ok {
			parts = append(parts, f+": "+msg)
		}
	}
	return strings.Join(parts, "; ")
}

// ParseDraft validates raw form input. It is stricter than the store: names
// need at least MinNameLength characters. Every invalid field is reported.
func ParseDraft(name, value, complexity string) (Draft, error) {
	fields := map[string]string{}

	name = strings.TrimSpace(name)
	switch n := utf8.RuneCountInString(name); {
	case n < MinNameLength:
		fields["name"] = fmt.Sprintf("must be at least %d characters", MinNameLength)
	case n > MaxNameLength:
		fields["name"] = fmt.Sprintf("must be at most %d characters", MaxNameLength)
	}

	v, msg := parseScore(value)
	if msg != "" {
		fields[FieldValue] = msg
	}
	c, msg := parseScore(complexity)
	if msg != "" {
		fields[FieldComplexity] = msg
	}

	if len(fields) > 0 {
		return Draft{}, &FormError{Fields: fields}
	}
	return Draft{Name: name, Value: v, Complexity: c}, nil
}

func parseScore(raw string) (int, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, "required"
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, "not a number: " + raw
	}
	if CheckScore("", n) != nil {
		return 0, fmt.Sprintf("must be between %d and %d", MinScore, MaxScore)
	}
	return n, ""
}
