package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"taxcalc/cmd/taxcalc/ui"
	"taxcalc/internal/domain"
	"taxcalc/internal/usecase"
)

var (
	calcIncome    string
	calcStatus    string
	calcState     string
	calcDeduction string
	calcJSON      bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute a tax estimate from flags",
	Long: `Computes one tax estimate without the interactive interview.

Examples:
  taxcalc calc --income 65,750 --state TX
  taxcalc calc --income 120000 --status mfj --deduction 20000 --json`,
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringVar(&calcIncome, "income", "", "gross income (required)")
	calcCmd.Flags().StringVar(&calcStatus, "status", "single", "filing status: single or mfj")
	calcCmd.Flags().StringVar(&calcState, "state", "", "state of residence, code or name (omit to skip the state line)")
	calcCmd.Flags().StringVar(&calcDeduction, "deduction", "", "custom deduction amount (default: the standard deduction)")
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "emit the full assessment as indented JSON")
	_ = calcCmd.MarkFlagRequired("income")
}

func runCalc(cmd *cobra.Command, args []string) error {
	status, ok := domain.ParseFilingStatus(calcStatus)
	if !ok {
		return fmt.Errorf("unknown filing status %q (expected single or mfj)", calcStatus)
	}

	income, err := parseAmountFlag("income", calcIncome)
	if err != nil {
		return err
	}

	var custom *decimal.Decimal
	if calcDeduction != "" {
		amount, err := parseAmountFlag("deduction", calcDeduction)
		if err != nil {
			return err
		}
		custom = &amount
	}

	app, err := newApp(logger)
	if err != nil {
		return err
	}

	stateCode := ""
	if calcState != "" {
		stateCode = app.states.Normalize(calcState)
	}

	assessment := app.assessor.Assess(usecase.AssessmentInput{
		FilingStatus:    status,
		GrossIncome:     income,
		CustomDeduction: custom,
		StateCode:       stateCode,
	})

	out := cmd.OutOrStdout()
	if calcJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(assessment)
	}

	fmt.Fprint(out, ui.RenderBreakdown(assessment.Breakdown, app.styles))
	fmt.Fprintf(out, "\nTotal federal income tax owed: %s\n\n", ui.Money(assessment.FederalTax))
	fmt.Fprint(out, ui.RenderSummary(assessment, app.styles))
	return nil
}

// parseAmountFlag parses a monetary flag value, accepting thousands
// separators and rejecting negatives.
func parseAmountFlag(name, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.ReplaceAll(value, ",", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("--%s must not be negative", name)
	}
	return amount, nil
}
