package gateway

import (
	"embed"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"taxcalc/internal/domain"
)

// tableFS holds the tax-year data files baked into the binary, so the tool
// needs no filesystem access at runtime.
//
//go:embed tables/federal_2025.yaml tables/states_2025.yaml
var tableFS embed.FS

const federalTablePath = "tables/federal_2025.yaml"

// federalTableFile mirrors the YAML layout of the embedded federal table.
// Amounts are decimal strings so parsing stays exact.
type federalTableFile struct {
	Year               int                        `yaml:"year"`
	StandardDeductions map[string]string          `yaml:"standard_deductions"`
	Schedules          map[string][]bracketRecord `yaml:"schedules"`
}

type bracketRecord struct {
	Rate  string `yaml:"rate"`
	Lower string `yaml:"lower"`
	Upper string `yaml:"upper"` // empty marks the unbounded top bracket
}

// TaxTableRegistry implements the usecase.ScheduleRegistry interface over
// the embedded federal table. All schedule invariants are enforced once
// here, at load time; the domain engine never re-checks them.
type TaxTableRegistry struct {
	year       int
	deductions map[domain.FilingStatus]decimal.Decimal
	schedules  map[domain.FilingStatus]domain.BracketSchedule
}

// NewTaxTableRegistry parses and validates the embedded federal table. An
// invalid table is a build defect, so the error is expected to abort
// startup.
func NewTaxTableRegistry() (*TaxTableRegistry, error) {
	raw, err := tableFS.ReadFile(federalTablePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded table %s: %w", federalTablePath, err)
	}

	var file federalTableFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", federalTablePath, err)
	}
	if file.Year == 0 {
		return nil, fmt.Errorf("%s: missing tax year", federalTablePath)
	}

	registry := &TaxTableRegistry{
		year:       file.Year,
		deductions: make(map[domain.FilingStatus]decimal.Decimal, len(file.StandardDeductions)),
		schedules:  make(map[domain.FilingStatus]domain.BracketSchedule, len(file.Schedules)),
	}

	for status, amount := range file.StandardDeductions {
		deduction, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("invalid standard deduction for %q: %w", status, err)
		}
		if deduction.IsNegative() {
			return nil, fmt.Errorf("negative standard deduction for %q", status)
		}
		registry.deductions[domain.FilingStatus(status)] = deduction
	}

	for status, records := range file.Schedules {
		schedule, err := buildSchedule(records)
		if err != nil {
			return nil, fmt.Errorf("invalid schedule for %q: %w", status, err)
		}
		registry.schedules[domain.FilingStatus(status)] = schedule
	}

	return registry, nil
}

// Schedule returns the bracket schedule for the filing status, or an empty
// schedule for an unrecognized status. The engine computes zero tax over an
// empty schedule, so no error is needed.
func (r *TaxTableRegistry) Schedule(status domain.FilingStatus) domain.BracketSchedule {
	return r.schedules[status]
}

// StandardDeduction returns the deduction amount for the filing status, or
// zero for an unrecognized status.
func (r *TaxTableRegistry) StandardDeduction(status domain.FilingStatus) decimal.Decimal {
	return r.deductions[status]
}

// Year reports the tax year of the embedded table.
func (r *TaxTableRegistry) Year() int {
	return r.year
}

// buildSchedule converts the raw records into a BracketSchedule, enforcing
// every structural invariant the engine relies on.
func buildSchedule(records []bracketRecord) (domain.BracketSchedule, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("schedule has no brackets")
	}

	schedule := make(domain.BracketSchedule, 0, len(records))
	for i, record := range records {
		rate, err := decimal.NewFromString(record.Rate)
		if err != nil {
			return nil, fmt.Errorf("bracket %d: invalid rate %q: %w", i, record.Rate, err)
		}
		if !rate.IsPositive() || rate.GreaterThan(decimal.NewFromInt(1)) {
			return nil, fmt.Errorf("bracket %d: rate %s outside (0, 1]", i, rate)
		}

		lower, err := decimal.NewFromString(record.Lower)
		if err != nil {
			return nil, fmt.Errorf("bracket %d: invalid lower bound %q: %w", i, record.Lower, err)
		}
		if lower.IsNegative() {
			return nil, fmt.Errorf("bracket %d: negative lower bound %s", i, lower)
		}

		bracket := domain.Bracket{Rate: rate, Lower: lower}
		if record.Upper != "" {
			upper, err := decimal.NewFromString(record.Upper)
			if err != nil {
				return nil, fmt.Errorf("bracket %d: invalid upper bound %q: %w", i, record.Upper, err)
			}
			bracket.Upper = &upper
		}
		schedule = append(schedule, bracket)
	}

	return schedule, validateSchedule(schedule)
}

// validateSchedule checks ordering, contiguity, and top-bracket shape:
// rates and lower bounds strictly ascending, each lower bound equal to the
// previous upper bound, and exactly the last bracket unbounded.
func validateSchedule(schedule domain.BracketSchedule) error {
	for i, bracket := range schedule {
		last := i == len(schedule)-1

		if bracket.Unbounded() != last {
			if last {
				return fmt.Errorf("bracket %d: top bracket must be unbounded", i)
			}
			return fmt.Errorf("bracket %d: only the top bracket may be unbounded", i)
		}

		if !bracket.Unbounded() && !bracket.Upper.GreaterThan(bracket.Lower) {
			return fmt.Errorf("bracket %d: upper bound %s not above lower bound %s", i, bracket.Upper, bracket.Lower)
		}

		if i == 0 {
			continue
		}
		prev := schedule[i-1]
		if !bracket.Rate.GreaterThan(prev.Rate) {
			return fmt.Errorf("bracket %d: rate %s not above previous rate %s", i, bracket.Rate, prev.Rate)
		}
		if !bracket.Lower.GreaterThan(prev.Lower) {
			return fmt.Errorf("bracket %d: lower bound %s not above previous lower bound %s", i, bracket.Lower, prev.Lower)
		}
		if !bracket.Lower.Equal(*prev.Upper) {
			return fmt.Errorf("bracket %d: lower bound %s leaves a gap after previous upper bound %s", i, bracket.Lower, prev.Upper)
		}
	}
	return nil
}
