package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taxcalc/cmd/taxcalc/ui"
	"taxcalc/internal/domain"
)

var bracketsStatus string

var bracketsCmd = &cobra.Command{
	Use:   "brackets",
	Short: "Show the federal bracket schedule for a filing status",
	RunE:  runBrackets,
}

func init() {
	bracketsCmd.Flags().StringVar(&bracketsStatus, "status", "single", "filing status: single or mfj")
}

func runBrackets(cmd *cobra.Command, args []string) error {
	status, ok := domain.ParseFilingStatus(bracketsStatus)
	if !ok {
		return fmt.Errorf("unknown filing status %q (expected single or mfj)", bracketsStatus)
	}

	app, err := newApp(logger)
	if err != nil {
		return err
	}

	schedule := app.registry.Schedule(status)
	title := fmt.Sprintf("%d Federal Brackets (%s)", app.registry.Year(), strings.ToUpper(string(status)))
	table := ui.NewTable(title, "Rate", "Range", "Width")
	for _, bracket := range schedule {
		width := "-"
		if !bracket.Unbounded() {
			width = ui.MoneyWhole(bracket.Upper.Sub(bracket.Lower))
		}
		table.AddRow(
			ui.PercentWhole(bracket.Rate),
			ui.BracketRange(bracket.Lower, bracket.Upper),
			width,
		)
	}

	fmt.Fprint(cmd.OutOrStdout(), table.Render(app.styles))
	return nil
}
