package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/VedantPanchal23/Web-IDE/cmd/demos/ui"
	"github.com/VedantPanchal23/Web-IDE/internal/config"
	"github.com/VedantPanchal23/Web-IDE/internal/demo"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Populated in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger

	registry = demo.DefaultRegistry()
)

// rootCmd represents the base command. With no arguments it runs the
// default fixture, which is what the IDE's execution pipeline exercises.
var rootCmd = &cobra.Command{
	Use:   "demos",
	Short: "Web-IDE demo fixtures runner",
	Long: `demos reproduces the Web-IDE example script transcripts.

Each fixture is a canned program transcript (Python, Go, C++, Rust, Java)
that the IDE uses to exercise its execution pipeline. Transcripts are
deterministic: the same fixture always produces the same bytes.

Run without arguments to emit the default (Python) fixture transcript.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		// Transcripts must stay byte-stable on stdout, so logging is
		// opt-in and goes to stderr only.
		if verbose || cfg.Logging.Level == "debug" {
			zcfg := zap.NewDevelopmentConfig()
			zcfg.OutputPaths = []string{"stderr"}
			if cfg.Logging.Format == "json" {
				zcfg.Encoding = "json"
			}
			logger, err = zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
		} else {
			logger = zap.NewNop()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFixture(cmd, nil)
	},
}

// runCmd runs a single named fixture.
var runCmd = &cobra.Command{
	Use:   "run [fixture]",
	Short: "Run a demo fixture and print its transcript",
	Long: `Runs the named fixture and writes its transcript to stdout.
Without an argument the configured default fixture runs.

Example:
  demos run rust`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFixture,
}

// listCmd lists the registered fixtures.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available demo fixtures",
	RunE:  runList,
}

// verifyCmd checks every fixture for run-to-run determinism.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify that every fixture produces byte-identical output across runs",
	RunE:  runVerify,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "demos.yaml", "Config file path")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(verifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runFixture resolves the fixture name and writes its transcript.
func runFixture(cmd *cobra.Command, args []string) error {
	name := cfg.Demos.Default
	if len(args) > 0 {
		name = args[0]
	}

	logger.Debug("running fixture", zap.String("fixture", name))

	runner := demo.NewRunner(cmd.OutOrStdout(), logger)
	return runner.RunNamed(context.Background(), registry, name)
}

// runList renders the fixture table.
func runList(cmd *cobra.Command, args []string) error {
	table := ui.NewTable("Available demo fixtures", "Name", "Language", "Description")
	for _, f := range registry.Fixtures() {
		table.AddRow(f.Name, f.Language, f.Description)
	}
	fmt.Fprint(cmd.OutOrStdout(), table.View(ui.DefaultStyles()))
	return nil
}

// runVerify runs every fixture twice into scratch buffers and reports.
func runVerify(cmd *cobra.Command, args []string) error {
	runner := demo.NewRunner(io.Discard, logger)
	checked, err := runner.Verify(context.Background(), registry)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %d fixtures verified deterministic\n", checked)
	return nil
}
