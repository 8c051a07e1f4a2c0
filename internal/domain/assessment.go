package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeductionKind distinguishes the standard deduction from a user-supplied
// custom amount.
type DeductionKind string

const (
	DeductionStandard DeductionKind = "standard"
	DeductionCustom   DeductionKind = "custom"
)

// Deduction records the amount subtracted from gross income and how it was
// chosen.
type Deduction struct {
	Kind   DeductionKind   `json:"kind"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// BreakdownEntry describes the tax contribution of a single bracket that a
// given taxable income reached. A nil Upper marks the unbounded top bracket.
type BreakdownEntry struct {
	Rate  decimal.Decimal  `json:"rate"`
	Taxed decimal.Decimal  `json:"taxed"`
	Tax   decimal.Decimal  `json:"tax"`
	Lower decimal.Decimal  `json:"lower"`
	Upper *decimal.Decimal `json:"upper,omitempty"`
}

// StateTaxResult is the outcome of the state income tax lookup. Amount is
// nil when no figure applies: states with flat or graduated systems are not
// implemented and unknown codes cannot be computed; Label explains which.
type StateTaxResult struct {
	Code   string           `json:"code"`
	Amount *decimal.Decimal `json:"amount"`
	Label  string           `json:"label"`
}

// Assessment is the complete result of one tax calculation. It is assembled
// fresh per invocation, owned by the caller, and never persisted.
type Assessment struct {
	ID             string           `json:"id"`
	TaxYear        int              `json:"tax_year"`
	FilingStatus   FilingStatus     `json:"filing_status"`
	GrossIncome    decimal.Decimal  `json:"gross_income"`
	Deduction      Deduction        `json:"deduction"`
	TaxableIncome  decimal.Decimal  `json:"taxable_income"`
	FederalTax     decimal.Decimal  `json:"federal_tax"`
	Breakdown      []BreakdownEntry `json:"breakdown"`
	MarginalRate   decimal.Decimal  `json:"marginal_rate"`
	EffectiveRate  decimal.Decimal  `json:"effective_rate"`
	AfterTaxIncome decimal.Decimal  `json:"after_tax_income"`
	State          *StateTaxResult  `json:"state,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}
