package usecase

import (
	"github.com/shopspring/decimal"

	"taxcalc/internal/domain"
)

// ScheduleRegistry provides the bracket schedules and standard deductions
// for one tax year. The usecase layer depends on this interface, not on a
// concrete implementation. Lookups never fail: an unrecognized filing
// status yields an empty schedule and a zero deduction, which the engine
// treats as "no tax owed".
//
//go:generate mockgen -destination=mocks/mock_providers.go -source=interface.go ScheduleRegistry,StateTaxLookup
type ScheduleRegistry interface {
	Schedule(status domain.FilingStatus) domain.BracketSchedule
	StandardDeduction(status domain.FilingStatus) decimal.Decimal
	Year() int
}

// StateTaxLookup resolves free-text state input to a two-letter code and
// reports the state income tax treatment for that code.
type StateTaxLookup interface {
	Normalize(input string) string
	Calculate(taxableIncome decimal.Decimal, code string) domain.StateTaxResult
}
