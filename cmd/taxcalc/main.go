package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"taxcalc/cmd/taxcalc/ui"
	"taxcalc/internal/gateway"
	"taxcalc/internal/usecase"
)

const appVersion = "1.0.5"

var (
	verbose bool
	logger  *zap.Logger
)

// app bundles the wired components every command needs.
type app struct {
	registry *gateway.TaxTableRegistry
	states   *gateway.StateTaxTable
	assessor *usecase.AssessmentUseCase
	styles   ui.Styles
}

// newApp loads the embedded tax tables and wires the usecase. Table
// validation failures abort here, before any command logic runs.
func newApp(logger *zap.Logger) (*app, error) {
	registry, err := gateway.NewTaxTableRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load federal tax tables: %w", err)
	}

	states, err := gateway.NewStateTaxTable()
	if err != nil {
		return nil, fmt.Errorf("failed to load state tax table: %w", err)
	}

	return &app{
		registry: registry,
		states:   states,
		assessor: usecase.NewAssessmentUseCase(registry, states, logger),
		styles:   ui.DefaultStyles(),
	}, nil
}

var rootCmd = &cobra.Command{
	Use:   "taxcalc",
	Short: "Simplified U.S. federal income tax estimator",
	Long: `taxcalc estimates U.S. federal income tax from gross income, filing
status, and deduction choice, using the 2025 bracket schedules. It reports
the per-bracket breakdown, total tax, marginal and effective rates, and the
state income tax treatment for the state of residence.

Run without arguments for the interactive interview, or use "taxcalc calc"
for a one-shot, flag-driven calculation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(logger)
		if err != nil {
			return err
		}
		return runInterview(app, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version and embedded tax year",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "taxcalc %s (%d tax tables)\n", appVersion, app.registry.Year())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(calcCmd, bracketsCmd, statesCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
