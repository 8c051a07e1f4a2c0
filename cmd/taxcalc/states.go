package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"taxcalc/cmd/taxcalc/ui"
	"taxcalc/internal/domain"
)

var statesFilter string

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "List states and their income tax treatment",
	RunE:  runStates,
}

func init() {
	statesCmd.Flags().StringVar(&statesFilter, "type", "", "filter by tax system: none, flat, or graduated")
}

func runStates(cmd *cobra.Command, args []string) error {
	var filter domain.StateTaxSystem
	switch domain.StateTaxSystem(statesFilter) {
	case "", domain.StateTaxNone, domain.StateTaxFlat, domain.StateTaxGraduated:
		filter = domain.StateTaxSystem(statesFilter)
	default:
		return fmt.Errorf("unknown tax system %q (expected none, flat, or graduated)", statesFilter)
	}

	app, err := newApp(logger)
	if err != nil {
		return err
	}

	table := ui.NewTable("State Income Tax Treatment (2025)", "Code", "State", "System", "Treatment")
	for _, state := range app.states.States() {
		if filter != "" && state.System != filter {
			continue
		}
		treatment := "Not implemented"
		if state.System == domain.StateTaxNone {
			treatment = "No state income tax"
		}
		table.AddRow(state.Code, state.Name, string(state.System), treatment)
	}

	fmt.Fprint(cmd.OutOrStdout(), table.Render(app.styles))
	return nil
}
