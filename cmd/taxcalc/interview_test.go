package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taxcalc/internal/gateway"
)

func testApp(t *testing.T) *app {
	t.Helper()
	a, err := newApp(zap.NewNop())
	require.NoError(t, err)
	return a
}

// script joins interview answers into an input stream, one per line.
func script(answers ...string) string {
	return strings.Join(answers, "\n") + "\n"
}

func TestRunInterview_StandardDeduction(t *testing.T) {
	in := strings.NewReader(script(
		"single", // filing status
		"65,750", // gross income
		"y",      // confirm income
		"y",      // standard deduction
		"TX",     // state
		"n",      // no second run
	))
	var out bytes.Buffer

	err := runInterview(testApp(t), in, &out)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Income entered: $65,750.00")
	assert.Contains(t, got, "Income confirmed. Moving on...")
	assert.Contains(t, got, "Standard Deduction (Single) applied: $15,750.00")
	assert.Contains(t, got, "Your taxable income is: $50,000.00")
	assert.Contains(t, got, "Total federal income tax owed: $5,914.00")
	assert.Contains(t, got, "State income tax (TX): $0.00 (No state income tax)")
	assert.Contains(t, got, "Marginal tax rate: 22%")
	assert.Contains(t, got, "After-tax income (federal only): $59,836.00")
	assert.Contains(t, got, "Thank you for using the Tax Calculator. Goodbye!")
}

func TestRunInterview_ReentryAndCustomDeduction(t *testing.T) {
	in := strings.NewReader(script(
		"mfj",     // filing status
		"100000",  // first income attempt
		"n",       // reject it
		"150,000", // second income attempt
		"y",       // confirm
		"n",       // decline standard deduction
		"20000",   // custom amount
		"zz",      // unknown state
		"n",       // no second run
	))
	var out bytes.Buffer

	err := runInterview(testApp(t), in, &out)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Enter your household gross income: ")
	assert.Contains(t, got, "Okay, let's re-enter your income.")
	assert.Contains(t, got, "Income entered: $150,000.00")
	assert.Contains(t, got, "Custom Deduction applied: $20,000.00")
	assert.Contains(t, got, "Your taxable income is: $130,000.00")
	assert.Contains(t, got, "State income tax (ZZ): N/A (unknown/unsupported state)")
	assert.Contains(t, got, "Thank you for using the Tax Calculator. Goodbye!")
}

func TestRunInterview_InvalidDeductionChoiceDefaultsToStandard(t *testing.T) {
	in := strings.NewReader(script(
		"single",
		"50000",
		"y",
		"maybe", // neither y nor n
		"texas",
		"n",
	))
	var out bytes.Buffer

	err := runInterview(testApp(t), in, &out)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Invalid choice. Defaulting to standard deduction.")
	assert.Contains(t, got, "Standard Deduction (Single) applied: $15,750.00")
	// Free-text state name resolves to its code.
	assert.Contains(t, got, "State income tax (TX):")
}

func TestRunInterview_RunAgainLoop(t *testing.T) {
	in := strings.NewReader(script(
		"single", "50000", "y", "y", "TX", "y", // first run, then again
		"single", "0", "y", "y", "TX", "n", // second run with zero income
	))
	var out bytes.Buffer

	err := runInterview(testApp(t), in, &out)
	require.NoError(t, err)

	got := out.String()
	assert.Equal(t, 2, strings.Count(got, "Run another calculation? (Y/N): "))
	assert.Contains(t, got, "No federal tax owed")
	assert.Contains(t, got, "Thank you for using the Tax Calculator. Goodbye!")
}

func TestRunInterview_ExhaustedIncomeRetries(t *testing.T) {
	in := strings.NewReader(script(
		"single",
		"abc", "def", "ghi", // three invalid income entries
	))
	var out bytes.Buffer

	err := runInterview(testApp(t), in, &out)
	require.ErrorIs(t, err, gateway.ErrAttemptsExhausted)
}
