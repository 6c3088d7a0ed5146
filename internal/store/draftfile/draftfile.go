// Package draftfile reads draft lists from JSON or YAML files. Input only:
// nothing is ever written back, the session lives in memory.
package draftfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/quadrant/internal/model"
)

// ErrUnsupportedFormat is returned for file extensions other than
// .json, .yaml and .yml.
var ErrUnsupportedFormat = errors.New("unsupported draft file format")

// Load reads a list of drafts from path. The format follows the extension.
// Ranges are not checked here; store.LoadAll validates every draft.
func Load(path string) ([]model.Draft, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Decode(formatOf(path), b)
}

// Decode parses b as a draft list in the given format ("json" or "yaml").
func Decode(format string, b []byte) ([]model.Draft, error) {
	var drafts []model.Draft
	switch format {
	case "json":
		if err := json.Unmarshal(b, &drafts); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(b, &drafts); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if drafts == nil {
		drafts = []model.Draft{}
	}
	return drafts, nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	}
	return strings.TrimPrefix(filepath.Ext(path), ".")
}
