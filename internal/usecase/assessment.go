package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"taxcalc/internal/domain"
)

// AssessmentInput carries one calculation request. The caller is
// responsible for all user-facing validation: GrossIncome must already be
// parsed, StateCode normalized (empty skips the state lookup), and a nil
// CustomDeduction selects the standard deduction for the filing status.
type AssessmentInput struct {
	FilingStatus    domain.FilingStatus
	GrossIncome     decimal.Decimal
	CustomDeduction *decimal.Decimal
	StateCode       string
}

// AssessmentUseCase orchestrates one tax calculation: deduction
// resolution, taxable-income clamping, the bracket engine, and the state
// lookup.
type AssessmentUseCase struct {
	registry ScheduleRegistry
	states   StateTaxLookup
	logger   *zap.Logger
}

// NewAssessmentUseCase creates a new instance of the usecase.
func NewAssessmentUseCase(registry ScheduleRegistry, states StateTaxLookup, logger *zap.Logger) *AssessmentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentUseCase{registry: registry, states: states, logger: logger}
}

// Assess performs the calculation and assembles the full result. Every
// degenerate input has a defined outcome (unknown status computes zero tax
// over the empty schedule, non-positive gross income yields zero rates), so
// there is no error path.
func (uc *AssessmentUseCase) Assess(input AssessmentInput) *domain.Assessment {
	deduction := uc.resolveDeduction(input)

	// Deductions larger than income clamp the taxable base to zero.
	taxable := input.GrossIncome.Sub(deduction.Amount)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	schedule := uc.registry.Schedule(input.FilingStatus)
	totalTax, breakdown := schedule.Breakdown(taxable)
	if breakdown == nil {
		breakdown = make([]domain.BreakdownEntry, 0)
	}

	assessment := &domain.Assessment{
		ID:             uuid.NewString(),
		TaxYear:        uc.registry.Year(),
		FilingStatus:   input.FilingStatus,
		GrossIncome:    input.GrossIncome,
		Deduction:      deduction,
		TaxableIncome:  taxable,
		FederalTax:     totalTax,
		Breakdown:      breakdown,
		MarginalRate:   schedule.MarginalRate(taxable),
		EffectiveRate:  domain.EffectiveRate(totalTax, input.GrossIncome),
		AfterTaxIncome: input.GrossIncome.Sub(totalTax),
		CreatedAt:      time.Now().UTC(),
	}

	if input.StateCode != "" {
		result := uc.states.Calculate(taxable, input.StateCode)
		assessment.State = &result
	}

	uc.logger.Debug("assessment computed",
		zap.String("assessment_id", assessment.ID),
		zap.String("filing_status", string(assessment.FilingStatus)),
		zap.String("gross_income", assessment.GrossIncome.String()),
		zap.String("taxable_income", assessment.TaxableIncome.String()),
		zap.String("federal_tax", assessment.FederalTax.String()),
		zap.Int("brackets_reached", len(assessment.Breakdown)),
	)

	return assessment
}

// resolveDeduction picks the custom amount when one was supplied and the
// status-appropriate standard deduction otherwise.
func (uc *AssessmentUseCase) resolveDeduction(input AssessmentInput) domain.Deduction {
	if input.CustomDeduction != nil {
		return domain.Deduction{
			Kind:   domain.DeductionCustom,
			Label:  "Custom Deduction",
			Amount: *input.CustomDeduction,
		}
	}

	label := "Standard Deduction (Single)"
	if input.FilingStatus == domain.FilingStatusMarriedJoint {
		label = "Standard Deduction (MFJ)"
	}

	return domain.Deduction{
		Kind:   domain.DeductionStandard,
		Label:  label,
		Amount: uc.registry.StandardDeduction(input.FilingStatus),
	}
}
