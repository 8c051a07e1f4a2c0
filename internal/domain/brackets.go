package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FilingStatus selects which bracket schedule and standard deduction apply.
type FilingStatus string

const (
	FilingStatusSingle       FilingStatus = "single"
	FilingStatusMarriedJoint FilingStatus = "married-filing-jointly"
)

// ParseFilingStatus maps free-text user input to a canonical FilingStatus.
// The short form "mfj" and the plain "married" are accepted as aliases.
// ok is false for input that matches no known status.
func ParseFilingStatus(input string) (FilingStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "single":
		return FilingStatusSingle, true
	case "mfj", "married", "married-filing-jointly":
		return FilingStatusMarriedJoint, true
	default:
		return "", false
	}
}

// Bracket represents one marginal tax-rate tier. Lower is inclusive, Upper
// is the exclusive cap; a nil Upper marks the unbounded top bracket.
type Bracket struct {
	Rate  decimal.Decimal  `json:"rate"`
	Lower decimal.Decimal  `json:"lower"`
	Upper *decimal.Decimal `json:"upper,omitempty"`
}

// Unbounded reports whether the bracket has no upper cap.
func (b Bracket) Unbounded() bool {
	return b.Upper == nil
}

// BracketSchedule is the ordered bracket sequence for one filing status.
// Schedules are built once at startup and treated as read-only; the
// computation methods below rely on the load-time invariants (ascending,
// contiguous, single unbounded top bracket) and do not re-validate them.
type BracketSchedule []Bracket

// TotalTax computes the total tax owed on taxableIncome by accumulating the
// taxed amount in each bracket the income reaches. Brackets the income does
// not reach are skipped via early termination, which the ascending-bound
// invariant makes safe. An empty schedule yields zero.
func (s BracketSchedule) TotalTax(taxableIncome decimal.Decimal) decimal.Decimal {
	total := decimal.Zero

	for _, b := range s {
		if taxableIncome.LessThanOrEqual(b.Lower) {
			break
		}

		// A nil Upper means "no cap".
		reach := taxableIncome
		if b.Upper != nil && b.Upper.LessThan(taxableIncome) {
			reach = *b.Upper
		}

		total = total.Add(reach.Sub(b.Lower).Mul(b.Rate))
	}

	return total
}

// Breakdown computes the total tax along with one entry per bracket that
// taxed a strictly positive amount. Entries preserve bracket order and
// their Tax fields sum exactly to the returned total; both run over the
// same decimal accumulation, so there is no rounding drift between them.
func (s BracketSchedule) Breakdown(taxableIncome decimal.Decimal) (decimal.Decimal, []BreakdownEntry) {
	total := decimal.Zero
	var entries []BreakdownEntry

	for _, b := range s {
		if taxableIncome.LessThanOrEqual(b.Lower) {
			break
		}

		reach := taxableIncome
		if b.Upper != nil && b.Upper.LessThan(taxableIncome) {
			reach = *b.Upper
		}

		taxed := reach.Sub(b.Lower)
		if taxed.IsPositive() {
			tax := taxed.Mul(b.Rate)
			total = total.Add(tax)
			entries = append(entries, BreakdownEntry{
				Rate:  b.Rate,
				Taxed: taxed,
				Tax:   tax,
				Lower: b.Lower,
				Upper: b.Upper,
			})
		}
	}

	return total, entries
}

// MarginalRate returns the rate of the highest bracket whose lower bound the
// income exceeds, i.e. the rate applied to the next dollar earned. Income at
// or below the first bracket's lower bound has a marginal rate of zero.
func (s BracketSchedule) MarginalRate(taxableIncome decimal.Decimal) decimal.Decimal {
	rate := decimal.Zero

	for _, b := range s {
		if !taxableIncome.GreaterThan(b.Lower) {
			break
		}
		rate = b.Rate
	}

	return rate
}

// EffectiveRate expresses totalTax as a fraction of gross (pre-deduction)
// income, or zero when grossIncome is not positive. Gross income is the
// deliberate denominator here: the result measures the burden on overall
// earnings, not on the taxable base.
func EffectiveRate(totalTax, grossIncome decimal.Decimal) decimal.Decimal {
	if !grossIncome.IsPositive() {
		return decimal.Zero
	}
	return totalTax.Div(grossIncome)
}
