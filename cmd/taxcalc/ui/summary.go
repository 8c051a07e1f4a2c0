package ui

import (
	"fmt"
	"strings"

	"taxcalc/internal/domain"
)

// RenderBreakdown draws the per-bracket table for one assessment. Only
// brackets that taxed a positive amount appear; income below the first
// bracket produces an explanatory line instead of an empty table.
func RenderBreakdown(entries []domain.BreakdownEntry, styles Styles) string {
	if len(entries) == 0 {
		return styles.Muted.Render("No federal tax owed: taxable income does not reach the first bracket.") + "\n"
	}

	table := NewTable("Federal Tax Bracket Breakdown", "Rate", "Bracket", "Taxed", "Tax")
	for _, e := range entries {
		table.AddRow(
			PercentWhole(e.Rate),
			BracketRange(e.Lower, e.Upper),
			Money(e.Taxed),
			Money(e.Tax),
		)
	}
	return table.Render(styles)
}

// RenderSummary draws the bordered summary card for one assessment,
// mirroring the classic "Federal Tax Summary (Simplified)" layout.
func RenderSummary(a *domain.Assessment, styles Styles) string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(fmt.Sprintf("Federal Tax Summary (Simplified, %d)", a.TaxYear)))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Filing status: %s\n", strings.ToUpper(string(a.FilingStatus)))
	fmt.Fprintf(&sb, "Gross income: %s\n", Money(a.GrossIncome))
	fmt.Fprintf(&sb, "Deduction used: %s - %s\n", a.Deduction.Label, Money(a.Deduction.Amount))
	fmt.Fprintf(&sb, "Taxable income: %s\n", Money(a.TaxableIncome))
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", 38)))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Total federal income tax: %s\n", Money(a.FederalTax))
	if a.State != nil {
		sb.WriteString(StateLine(a.State))
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", 38)))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Marginal tax rate: %s\n", PercentWhole(a.MarginalRate))
	fmt.Fprintf(&sb, "Effective tax rate: %s\n", Percent(a.EffectiveRate))
	fmt.Fprintf(&sb, "After-tax income (federal only): %s", Money(a.AfterTaxIncome))

	return styles.Card.Render(sb.String()) + "\n"
}

// StateLine formats the state tax line: an amount plus label when one was
// computed, the bare label otherwise.
func StateLine(s *domain.StateTaxResult) string {
	if s.Amount == nil {
		return fmt.Sprintf("State income tax (%s): %s", s.Code, s.Label)
	}
	return fmt.Sprintf("State income tax (%s): %s (%s)", s.Code, Money(*s.Amount), s.Label)
}
