package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"taxcalc/cmd/taxcalc/ui"
	"taxcalc/internal/domain"
	"taxcalc/internal/gateway"
	"taxcalc/internal/usecase"
)

// runInterview drives the interactive calculation loop: filing status,
// income with confirmation, deduction choice, state, results, repeat. It
// returns when the user declines another run, or with an error once a
// prompt's retry budget is exhausted.
func runInterview(app *app, in io.Reader, out io.Writer) error {
	console := gateway.NewConsole(in, out)

	for {
		status, err := promptFilingStatus(console)
		if err != nil {
			return err
		}

		income, err := promptConfirmedIncome(console, out, status)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Income confirmed. Moving on...")
		fmt.Fprintln(out)

		custom, err := promptDeduction(console, out)
		if err != nil {
			return err
		}

		// Echo the deduction and taxable income before asking for the
		// state; the assessment below re-derives the same figures.
		label := "Standard Deduction (Single)"
		if status == domain.FilingStatusMarriedJoint {
			label = "Standard Deduction (MFJ)"
		}
		amount := app.registry.StandardDeduction(status)
		if custom != nil {
			label = "Custom Deduction"
			amount = *custom
		}
		taxable := income.Sub(amount)
		if taxable.IsNegative() {
			taxable = decimal.Zero
		}
		fmt.Fprintf(out, "%s applied: %s\n", label, ui.Money(amount))
		fmt.Fprintf(out, "Your taxable income is: %s\n", ui.Money(taxable))
		fmt.Fprintln(out)

		stateInput, err := console.ReadLine("Please indicate your state (e.g., TX): ")
		if err != nil {
			return err
		}

		assessment := app.assessor.Assess(usecase.AssessmentInput{
			FilingStatus:    status,
			GrossIncome:     income,
			CustomDeduction: custom,
			StateCode:       app.states.Normalize(stateInput),
		})

		fmt.Fprintln(out)
		fmt.Fprint(out, ui.RenderBreakdown(assessment.Breakdown, app.styles))
		fmt.Fprintf(out, "\nTotal federal income tax owed: %s\n\n", ui.Money(assessment.FederalTax))
		fmt.Fprint(out, ui.RenderSummary(assessment, app.styles))
		fmt.Fprintln(out)

		again, err := console.ReadLine("Run another calculation? (Y/N): ")
		if err != nil {
			return err
		}
		if !strings.EqualFold(again, "y") {
			fmt.Fprintln(out, "Thank you for using the Tax Calculator. Goodbye!")
			return nil
		}
		fmt.Fprintln(out)
	}
}

func promptFilingStatus(console *gateway.Console) (domain.FilingStatus, error) {
	line, err := console.PromptValidated(
		"Please enter your filing status (single/mfj): ",
		"Please enter 'single' or 'mfj'.",
		func(s string) bool {
			_, ok := domain.ParseFilingStatus(s)
			return ok
		})
	if err != nil {
		return "", err
	}
	status, _ := domain.ParseFilingStatus(line)
	return status, nil
}

// promptConfirmedIncome asks for gross income and echoes it back for
// confirmation. Answering N re-enters the amount; this user-driven loop is
// unbounded, unlike the invalid-input retries inside the prompts.
func promptConfirmedIncome(console *gateway.Console, out io.Writer, status domain.FilingStatus) (decimal.Decimal, error) {
	label := "Enter your gross income: "
	if status == domain.FilingStatusMarriedJoint {
		label = "Enter your household gross income: "
	}

	for {
		income, err := console.PromptAmount(label)
		if err != nil {
			return decimal.Zero, err
		}
		fmt.Fprintf(out, "Income entered: %s\n", ui.Money(income))

		ok, err := console.Confirm("Is this correct? (Y/N): ")
		if err != nil {
			return decimal.Zero, err
		}
		if ok {
			return income, nil
		}
		fmt.Fprintln(out, "Okay, let's re-enter your income.")
		fmt.Fprintln(out)
	}
}

// promptDeduction returns nil for the standard deduction or a pointer to
// the entered custom amount. Any answer other than y or n falls back to the
// standard deduction with a notice.
func promptDeduction(console *gateway.Console, out io.Writer) (*decimal.Decimal, error) {
	choice, err := console.ReadLine("Do you want to use the standard deduction? (Y/N): ")
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(choice) {
	case "y":
		return nil, nil
	case "n":
		amount, err := console.PromptAmount("Enter your total custom deduction: ")
		if err != nil {
			return nil, err
		}
		return &amount, nil
	default:
		fmt.Fprintln(out, "Invalid choice. Defaulting to standard deduction.")
		return nil, nil
	}
}
