package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/quadrant/internal/model"
	"github.com/idilsaglam/quadrant/internal/quadrant"
	"github.com/idilsaglam/quadrant/internal/store"
	"github.com/idilsaglam/quadrant/internal/tui"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	base := []string{"--config-dir", t.TempDir(), "--color", "never"}
	code := Run(append(base, args...), Options{Stdout: &stdout, Stderr: &stderr})
	return code, stdout.String(), stderr.String()
}

func TestClassify(t *testing.T) {
	code, out, _ := run(t, "classify", "7", "3")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "[HVLC] High Value, Low Complexity")
	assert.Contains(t, out, "x=3, y=7")

	code, out, _ = run(t, "classify", "5", "5", "--json")
	require.Equal(t, exitOK, code)
	var res classifyResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "High Value, High Complexity", res.Quadrant)
	assert.True(t, res.HighValue)
	assert.True(t, res.HighComplexity)
	assert.Equal(t, 5.0, res.X)

	code, out, _ = run(t, "classify", "4", "5", "--json")
	require.Equal(t, exitOK, code)
	res = classifyResult{}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.HighValue)
	assert.True(t, res.HighComplexity)
}

func TestClassifyErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"out of range", []string{"classify", "10", "5"}, "value 10 out of range"},
		{"not a number", []string{"classify", "seven", "5"}, "not a number"},
		{"missing arg", []string{"classify", "7"}, "usage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := run(t, tt.args...)
			assert.Equal(t, exitUsage, code)
			assert.Contains(t, errOut, tt.want)
		})
	}
}

func TestPlotWithAdds(t *testing.T) {
	code, out, errOut := run(t, "plot", "--add", "A:7:3", "--add", "B:3:7")
	require.Equal(t, exitOK, code, errOut)
	assert.Contains(t, out, "High Value, Low Complexity")
	assert.Contains(t, out, "Low Value, High Complexity")
	assert.Contains(t, out, "Total 2")
	assert.Contains(t, errOut, "plotted 2 initiatives")
}

func TestPlotJSON(t *testing.T) {
	code, out, _ := run(t, "plot", "--sample", "example", "--add", "Late: addition:2:2", "--json")
	require.Equal(t, exitOK, code)

	var views []struct {
		ID    string  `json:"id"`
		Name  string  `json:"name"`
		Label string  `json:"quadrantLabel"`
		X     float64 `json:"x"`
		Y     float64 `json:"y"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 4)
	assert.Equal(t, "Example 1", views[0].Name)
	assert.Equal(t, "High Value, High Complexity", views[1].Label)
	assert.Equal(t, "Late: addition", views[3].Name)
	assert.Equal(t, quadrant.LowValueLowComplexity.Label(), views[3].Label)
	assert.Equal(t, 2.0, views[3].X)
	assert.NotEmpty(t, views[3].ID)
}

func TestPlotRejectsInvalidInput(t *testing.T) {
	code, _, errOut := run(t, "plot", "--add", "X:10:5")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "out of range")

	code, _, errOut = run(t, "plot", "--add", "no-scores")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "NAME:VALUE:COMPLEXITY")

	code, _, _ = run(t, "plot", "--sample", "Bakery")
	assert.Equal(t, exitUsage, code)

	code, _, errOut = run(t, "plot", "--sample", "Example", "--file", "x.json")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "mutually exclusive")

	code, _, _ = run(t, "plot", "--file", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, exitError, code)
}

func TestPlotFromFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "drafts.yaml")
	require.NoError(t, os.WriteFile(p, []byte("- name: Checkout\n  value: 8\n  complexity: 2\n"), 0o644))

	code, out, _ := run(t, "plot", "--file", p)
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Checkout")
}

func TestSamplesAndVersion(t *testing.T) {
	code, out, _ := run(t, "samples")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Online Retail")
	assert.Contains(t, out, "Language School")

	code, out, _ = run(t, "version")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "quadrant v"+Version+"\n", out)
}

func TestUnknownCommandAndFlag(t *testing.T) {
	code, _, _ := run(t, "frobnicate")
	assert.Equal(t, exitUsage, code)

	code, _, _ = run(t, "plot", "--nope")
	assert.Equal(t, exitUsage, code)

	code, _, _ = run(t, "--theme", "rainbow", "samples")
	assert.Equal(t, exitUsage, code)

	code, _, errOut := run(t, "--log-level", "chatty", "samples")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "unknown log level")
}

func TestTUIUsesConfiguredSample(t *testing.T) {
	var got *store.Store
	var gotOpt tui.Options
	orig := runTUI
	t.Cleanup(func() { runTUI = orig })
	runTUI = func(s *store.Store, opt tui.Options) error {
		got, gotOpt = s, opt
		return nil
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("sample: Language School\n"), 0o644))

	var stdout, stderr bytes.Buffer
	code := Run([]string{"--config-dir", dir}, Options{Stdout: &stdout, Stderr: &stderr})
	require.Equal(t, exitOK, code, stderr.String())
	require.NotNil(t, got)
	assert.Equal(t, "Language School", gotOpt.Sample)
	assert.Equal(t, 7, got.Len())

	code = Run([]string{"--config-dir", dir, "tui", "--sample", "Example"}, Options{Stdout: &stdout, Stderr: &stderr})
	require.Equal(t, exitOK, code, stderr.String())
	assert.Equal(t, 3, got.Len())
}

func TestParseAdd(t *testing.T) {
	d, err := parseAdd("Ratio 3:1 split:6:4")
	require.NoError(t, err)
	assert.Equal(t, model.Draft{Name: "Ratio 3:1 split", Value: 6, Complexity: 4}, d)

	_, err = parseAdd("A:x:4")
	assert.Error(t, err)
	_, err = parseAdd("A:4")
	assert.Error(t, err)
}
