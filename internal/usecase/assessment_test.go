package usecase_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taxcalc/internal/domain"
	"taxcalc/internal/usecase"
	mock_usecase "taxcalc/internal/usecase/mocks"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// single2025 is the 2025 federal schedule for single filers.
func single2025() domain.BracketSchedule {
	return domain.BracketSchedule{
		{Rate: dec("0.10"), Lower: dec("0"), Upper: decPtr("11925")},
		{Rate: dec("0.12"), Lower: dec("11925"), Upper: decPtr("48475")},
		{Rate: dec("0.22"), Lower: dec("48475"), Upper: decPtr("103350")},
		{Rate: dec("0.24"), Lower: dec("103350"), Upper: decPtr("197300")},
		{Rate: dec("0.32"), Lower: dec("197300"), Upper: decPtr("250525")},
		{Rate: dec("0.35"), Lower: dec("250525"), Upper: decPtr("626350")},
		{Rate: dec("0.37"), Lower: dec("626350")},
	}
}

// mfj2025 is the 2025 federal schedule for married-filing-jointly.
func mfj2025() domain.BracketSchedule {
	return domain.BracketSchedule{
		{Rate: dec("0.10"), Lower: dec("0"), Upper: decPtr("23850")},
		{Rate: dec("0.12"), Lower: dec("23850"), Upper: decPtr("96950")},
		{Rate: dec("0.22"), Lower: dec("96950"), Upper: decPtr("206700")},
		{Rate: dec("0.24"), Lower: dec("206700"), Upper: decPtr("394600")},
		{Rate: dec("0.32"), Lower: dec("394600"), Upper: decPtr("501050")},
		{Rate: dec("0.35"), Lower: dec("501050"), Upper: decPtr("751600")},
		{Rate: dec("0.37"), Lower: dec("751600")},
	}
}

func TestAssessmentUseCase_Assess(t *testing.T) {
	tests := []struct {
		name              string
		input             usecase.AssessmentInput
		schedule          domain.BracketSchedule
		standardDeduction decimal.Decimal
		stateResult       *domain.StateTaxResult
		wantDeduction     domain.Deduction
		wantTaxable       decimal.Decimal
		wantFederalTax    decimal.Decimal
		wantBreakdownLen  int
		wantMarginalRate  decimal.Decimal
		wantEffectiveRate decimal.Decimal
		wantAfterTax      decimal.Decimal
	}{
		{
			name: "single filer with standard deduction",
			input: usecase.AssessmentInput{
				FilingStatus: domain.FilingStatusSingle,
				GrossIncome:  dec("65750"),
				StateCode:    "TX",
			},
			schedule:          single2025(),
			standardDeduction: dec("15750"),
			stateResult: &domain.StateTaxResult{
				Code: "TX", Amount: &decimal.Zero, Label: "No state income tax",
			},
			wantDeduction: domain.Deduction{
				Kind: domain.DeductionStandard, Label: "Standard Deduction (Single)", Amount: dec("15750"),
			},
			wantTaxable:       dec("50000"),
			wantFederalTax:    dec("5914.00"),
			wantBreakdownLen:  3,
			wantMarginalRate:  dec("0.22"),
			wantEffectiveRate: dec("5914").Div(dec("65750")),
			wantAfterTax:      dec("59836.00"),
		},
		{
			name: "married filing jointly reaching the top bracket",
			input: usecase.AssessmentInput{
				FilingStatus:    domain.FilingStatusMarriedJoint,
				GrossIncome:     dec("1000000"),
				CustomDeduction: decPtr("0"),
			},
			schedule: mfj2025(),
			wantDeduction: domain.Deduction{
				Kind: domain.DeductionCustom, Label: "Custom Deduction", Amount: dec("0"),
			},
			wantTaxable:       dec("1000000"),
			wantFederalTax:    dec("294062.50"),
			wantBreakdownLen:  7,
			wantMarginalRate:  dec("0.37"),
			wantEffectiveRate: dec("294062.50").Div(dec("1000000")),
			wantAfterTax:      dec("705937.50"),
		},
		{
			name: "deduction exceeding income clamps taxable to zero",
			input: usecase.AssessmentInput{
				FilingStatus: domain.FilingStatusSingle,
				GrossIncome:  dec("12000"),
			},
			schedule:          single2025(),
			standardDeduction: dec("15750"),
			wantDeduction: domain.Deduction{
				Kind: domain.DeductionStandard, Label: "Standard Deduction (Single)", Amount: dec("15750"),
			},
			wantTaxable:       dec("0"),
			wantFederalTax:    dec("0"),
			wantBreakdownLen:  0,
			wantMarginalRate:  dec("0"),
			wantEffectiveRate: dec("0"),
			wantAfterTax:      dec("12000"),
		},
		{
			name: "unknown filing status computes zero over the empty schedule",
			input: usecase.AssessmentInput{
				FilingStatus: domain.FilingStatus("head-of-household"),
				GrossIncome:  dec("80000"),
			},
			schedule:          domain.BracketSchedule{},
			standardDeduction: dec("0"),
			wantDeduction: domain.Deduction{
				Kind: domain.DeductionStandard, Label: "Standard Deduction (Single)", Amount: dec("0"),
			},
			wantTaxable:       dec("80000"),
			wantFederalTax:    dec("0"),
			wantBreakdownLen:  0,
			wantMarginalRate:  dec("0"),
			wantEffectiveRate: dec("0"),
			wantAfterTax:      dec("80000"),
		},
		{
			name: "zero gross income",
			input: usecase.AssessmentInput{
				FilingStatus:    domain.FilingStatusSingle,
				GrossIncome:     dec("0"),
				CustomDeduction: decPtr("0"),
			},
			schedule: single2025(),
			wantDeduction: domain.Deduction{
				Kind: domain.DeductionCustom, Label: "Custom Deduction", Amount: dec("0"),
			},
			wantTaxable:       dec("0"),
			wantFederalTax:    dec("0"),
			wantBreakdownLen:  0,
			wantMarginalRate:  dec("0"),
			wantEffectiveRate: dec("0"),
			wantAfterTax:      dec("0"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			registry := mock_usecase.NewMockScheduleRegistry(ctrl)
			states := mock_usecase.NewMockStateTaxLookup(ctrl)

			registry.EXPECT().Schedule(tt.input.FilingStatus).Return(tt.schedule)
			registry.EXPECT().Year().Return(2025)
			if tt.input.CustomDeduction == nil {
				registry.EXPECT().StandardDeduction(tt.input.FilingStatus).Return(tt.standardDeduction)
			}
			if tt.input.StateCode != "" {
				states.EXPECT().Calculate(gomock.Any(), tt.input.StateCode).Return(*tt.stateResult)
			}

			uc := usecase.NewAssessmentUseCase(registry, states, zap.NewNop())
			got := uc.Assess(tt.input)

			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, 2025, got.TaxYear)
			assert.Equal(t, tt.input.FilingStatus, got.FilingStatus)
			assert.Equal(t, tt.wantDeduction.Kind, got.Deduction.Kind)
			assert.Equal(t, tt.wantDeduction.Label, got.Deduction.Label)
			assert.True(t, got.Deduction.Amount.Equal(tt.wantDeduction.Amount))
			assert.True(t, got.TaxableIncome.Equal(tt.wantTaxable),
				"taxable = %s, want %s", got.TaxableIncome, tt.wantTaxable)
			assert.True(t, got.FederalTax.Equal(tt.wantFederalTax),
				"federal tax = %s, want %s", got.FederalTax, tt.wantFederalTax)
			assert.Len(t, got.Breakdown, tt.wantBreakdownLen)
			assert.True(t, got.MarginalRate.Equal(tt.wantMarginalRate))
			assert.True(t, got.EffectiveRate.Equal(tt.wantEffectiveRate))
			assert.True(t, got.AfterTaxIncome.Equal(tt.wantAfterTax))
			assert.False(t, got.CreatedAt.IsZero())

			if tt.input.StateCode == "" {
				assert.Nil(t, got.State)
			} else {
				require.NotNil(t, got.State)
				assert.Equal(t, *tt.stateResult, *got.State)
			}
		})
	}
}

func TestAssessmentUseCase_Assess_TopBracketEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mock_usecase.NewMockScheduleRegistry(ctrl)
	states := mock_usecase.NewMockStateTaxLookup(ctrl)

	registry.EXPECT().Schedule(domain.FilingStatusMarriedJoint).Return(mfj2025())
	registry.EXPECT().Year().Return(2025)

	uc := usecase.NewAssessmentUseCase(registry, states, zap.NewNop())
	got := uc.Assess(usecase.AssessmentInput{
		FilingStatus:    domain.FilingStatusMarriedJoint,
		GrossIncome:     dec("1000000"),
		CustomDeduction: decPtr("0"),
	})

	require.NotEmpty(t, got.Breakdown)
	top := got.Breakdown[len(got.Breakdown)-1]
	assert.Nil(t, top.Upper, "top entry must be unbounded")
	assert.True(t, top.Rate.Equal(dec("0.37")))
	assert.True(t, top.Taxed.Equal(dec("248400")),
		"taxed in top bracket = %s, want 248400", top.Taxed)
}
