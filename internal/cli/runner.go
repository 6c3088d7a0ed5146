package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/quadrant/internal/config"
	"github.com/idilsaglam/quadrant/internal/logging"
	"github.com/idilsaglam/quadrant/internal/model"
	"github.com/idilsaglam/quadrant/internal/sample"
	"github.com/idilsaglam/quadrant/internal/store/draftfile"
	"github.com/idilsaglam/quadrant/internal/ui"
)

// Version is the CLI version string.
const Version = "0.3.0"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Options carry the process streams; zero values mean os.Stdout/os.Stderr.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
}

// usageError marks bad invocations (exit code 2).
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// app is the state shared by commands within one invocation.
type app struct {
	opt Options
	cfg config.Config
	log *zap.Logger

	configDir string
	theme     string
	color     string
	logLevel  string
	logFile   string
	verbose   bool
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	a := &app{opt: opt, log: zap.NewNop()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(opt.Stdout)
	root.SetErr(opt.Stderr)

	err := root.Execute()
	_ = a.log.Sync()
	if err == nil {
		return exitOK
	}
	ui.Fail(opt.Stderr, err.Error())
	return exitCode(err)
}

func exitCode(err error) int {
	var ue *usageError
	switch {
	case errors.As(err, &ue),
		errors.Is(err, model.ErrInvalidRange),
		errors.Is(err, model.ErrInvalidName),
		errors.Is(err, sample.ErrUnknownSample),
		errors.Is(err, draftfile.ErrUnsupportedFormat),
		errors.Is(err, config.ErrUnknownTheme),
		errors.Is(err, config.ErrUnknownColorMode),
		errors.Is(err, config.ErrPlotSize),
		errors.Is(err, config.ErrUnknownLogLevel):
		return exitUsage
	}
	return exitError
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quadrant",
		Short: "Prioritize initiatives on a value/complexity matrix",
		Long: `quadrant plots initiatives by business value (1-9) against complexity (1-9)
and sorts them into four quadrants. Nothing is saved: every session starts
empty or from a sample or draft file.

Run without a subcommand to start the interactive session.`,
		Version: Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usagef("%s", err.Error())
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/quadrant)")
	pf.StringVar(&a.theme, "theme", "", "color theme: classic, neon or mono")
	pf.StringVar(&a.color, "color", "", "color output: auto, always or never")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&a.logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	tui := a.tuiCmd()
	root.RunE = tui.RunE
	root.Flags().AddFlagSet(tui.Flags())

	root.AddCommand(tui)
	root.AddCommand(a.plotCmd())
	root.AddCommand(a.classifyCmd())
	root.AddCommand(a.samplesCmd())
	root.AddCommand(a.versionCmd())
	return root
}

// setup resolves configuration, theme and logger before any command runs.
func (a *app) setup(cmd *cobra.Command) error {
	overrides := map[string]any{}
	flags := cmd.Flags()
	for flag, key := range map[string]string{
		"theme":     config.KeyTheme,
		"color":     config.KeyColor,
		"log-level": config.KeyLogLevel,
		"log-file":  config.KeyLogFile,
	} {
		if f := flags.Lookup(flag); f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}

	cfg, err := config.Load(a.configDir, overrides)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	ui.SetTheme(cfg.Theme)
	if err := ui.SetColorMode(cfg.Color); err != nil {
		return err
	}

	logOpt := logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, Verbose: a.verbose}
	build := logging.New
	if isInteractive(cmd) {
		build = logging.ForTUI
	}
	l, err := build(logOpt)
	if err != nil {
		return err
	}
	a.log = l.With(zap.String("command", cmd.Name()))
	return nil
}

func isInteractive(cmd *cobra.Command) bool {
	return cmd.Name() == "tui" || !cmd.HasParent()
}

// loadDrafts returns the drafts named by --sample or --file. Both set is a
// usage error; neither set returns nil.
func loadDrafts(sampleName, file string) ([]model.Draft, string, error) {
	switch {
	case sampleName != "" && file != "":
		return nil, "", usagef("--sample and --file are mutually exclusive")
	case sampleName != "":
		drafts, err := sample.Lookup(sampleName)
		return drafts, sampleName, err
	case file != "":
		drafts, err := draftfile.Load(file)
		if err != nil {
			return nil, "", fmt.Errorf("load %s: %w", file, err)
		}
		return drafts, "", nil
	}
	return nil, "", nil
}
