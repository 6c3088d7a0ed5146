package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/quadrant/internal/model"
	"github.com/idilsaglam/quadrant/internal/quadrant"
	"github.com/idilsaglam/quadrant/internal/sample"
	"github.com/idilsaglam/quadrant/internal/store"
	"github.com/idilsaglam/quadrant/internal/tui"
	"github.com/idilsaglam/quadrant/internal/ui"
)

// runTUI is swapped in tests; the real one needs a terminal.
var runTUI = tui.Run

func (a *app) newStore() *store.Store {
	return store.New(store.WithLogger(a.log))
}

func (a *app) tuiCmd() *cobra.Command {
	var sampleName, file string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sampleName == "" && file == "" {
				sampleName = a.cfg.Sample
			}
			drafts, loaded, err := loadDrafts(sampleName, file)
			if err != nil {
				return err
			}
			s := a.newStore()
			if drafts != nil {
				if _, err := s.LoadAll(drafts); err != nil {
					return err
				}
			}
			a.log.Debug("starting session", zap.Int("initiatives", s.Len()), zap.String("sample", loaded))
			return runTUI(s, tui.Options{
				Sample:     loaded,
				PlotWidth:  a.cfg.PlotWidth,
				PlotHeight: a.cfg.PlotHeight,
				Logger:     a.log,
			})
		},
	}
	cmd.Flags().StringVar(&sampleName, "sample", "", "start from a named sample (see `quadrant samples`)")
	cmd.Flags().StringVar(&file, "file", "", "start from a JSON or YAML draft list")
	return cmd
}

func (a *app) plotCmd() *cobra.Command {
	var (
		sampleName, file string
		adds             []string
		asJSON           bool
	)
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Print the quadrant plot and table for a set of initiatives",
		Example: `  quadrant plot --sample "Online Retail"
  quadrant plot --add "Checkout:8:3" --add "Rewrite:4:9"
  quadrant plot --file drafts.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			drafts, _, err := loadDrafts(sampleName, file)
			if err != nil {
				return err
			}
			for _, raw := range adds {
				d, err := parseAdd(raw)
				if err != nil {
					return err
				}
				drafts = append(drafts, d)
			}

			s := a.newStore()
			if _, err := s.LoadAll(drafts); err != nil {
				return err
			}
			views := s.Views()

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}
			fmt.Fprintln(out, ui.Panel([]string{ui.Plot(views, a.cfg.PlotWidth, a.cfg.PlotHeight)}))
			fmt.Fprintln(out, ui.Panel([]string{ui.Table(views), "", ui.Summary(views)}))
			ui.OK(cmd.ErrOrStderr(), fmt.Sprintf("plotted %d initiatives", len(views)))
			return nil
		},
	}
	cmd.Flags().StringVar(&sampleName, "sample", "", "plot a named sample")
	cmd.Flags().StringVar(&file, "file", "", "plot a JSON or YAML draft list")
	cmd.Flags().StringArrayVar(&adds, "add", nil, "add an initiative as NAME:VALUE:COMPLEXITY (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print view records as JSON")
	return cmd
}

// parseAdd reads NAME:VALUE:COMPLEXITY. The name may itself contain colons.
func parseAdd(raw string) (model.Draft, error) {
	j := strings.LastIndex(raw, ":")
	if j < 0 {
		return model.Draft{}, usagef("--add %q: want NAME:VALUE:COMPLEXITY", raw)
	}
	i := strings.LastIndex(raw[:j], ":")
	if i < 0 {
		return model.Draft{}, usagef("--add %q: want NAME:VALUE:COMPLEXITY", raw)
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw[i+1 : j]))
	if err != nil {
		return model.Draft{}, usagef("--add %q: value is not a number", raw)
	}
	complexity, err := strconv.Atoi(strings.TrimSpace(raw[j+1:]))
	if err != nil {
		return model.Draft{}, usagef("--add %q: complexity is not a number", raw)
	}
	return model.Draft{Name: raw[:i], Value: value, Complexity: complexity}, nil
}

type classifyResult struct {
	Value          int     `json:"value"`
	Complexity     int     `json:"complexity"`
	Quadrant       string  `json:"quadrantLabel"`
	Short          string  `json:"short"`
	Advice         string  `json:"advice"`
	HighValue      bool    `json:"highValue"`
	HighComplexity bool    `json:"highComplexity"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
}

func (a *app) classifyCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "classify VALUE COMPLEXITY",
		Short: "Show the quadrant and plot point of a score pair",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return usagef("usage: quadrant classify VALUE COMPLEXITY")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.Atoi(args[0])
			if err != nil {
				return usagef("classify: not a number: %s", args[0])
			}
			complexity, err := strconv.Atoi(args[1])
			if err != nil {
				return usagef("classify: not a number: %s", args[1])
			}
			if err := model.CheckScore(model.FieldValue, value); err != nil {
				return err
			}
			if err := model.CheckScore(model.FieldComplexity, complexity); err != nil {
				return err
			}

			q := quadrant.Classify(value, complexity)
			p := quadrant.Project(value, complexity)
			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(classifyResult{
					Value:          value,
					Complexity:     complexity,
					Quadrant:       q.Label(),
					Short:          q.Short(),
					Advice:         q.Advice(),
					HighValue:      q.HighValue(),
					HighComplexity: q.HighComplexity(),
					X:              p.X,
					Y:              p.Y,
				})
			}
			t := ui.Current()
			fmt.Fprintf(out, "%s %s\n", ui.Badge(q), t.QuadrantStyle(q).Render(q.Label()))
			fmt.Fprintln(out, t.Muted.Render(fmt.Sprintf("point (x=%g, y=%g) • %s", p.X, p.Y, q.Advice())))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func (a *app) samplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "List the built-in sample data sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := ui.Current()
			var lines []string
			for _, name := range sample.Names() {
				drafts, err := sample.Lookup(name)
				if err != nil {
					return err
				}
				s := store.New()
				if _, err := s.LoadAll(drafts); err != nil {
					return fmt.Errorf("sample %s: %w", name, err)
				}
				groups := quadrant.Group(s.Views())
				lines = append(lines, fmt.Sprintf("%s %s  %s",
					t.Title.Render(fmt.Sprintf("%-18s", name)),
					t.Muted.Render(fmt.Sprintf("%2d initiatives", len(drafts))),
					t.Success.Render(fmt.Sprintf("%d quick wins", len(groups[quadrant.HighValueLowComplexity])))))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel(lines))
			return nil
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "quadrant v"+Version)
		},
	}
}
