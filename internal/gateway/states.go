package gateway

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"taxcalc/internal/domain"
)

const stateTablePath = "tables/states_2025.yaml"

// Labels reported alongside the state tax amount. Flat and graduated
// systems are deliberate placeholders, not missing features.
const (
	labelNoStateTax     = "No state income tax"
	labelNotImplemented = "N/A (not implemented yet)"
	labelUnknownState   = "N/A (unknown/unsupported state)"
)

type stateTableFile struct {
	States []stateRecord `yaml:"states"`
}

type stateRecord struct {
	Code   string `yaml:"code"`
	Name   string `yaml:"name"`
	System string `yaml:"system"`
}

// StateTaxTable implements the usecase.StateTaxLookup interface over the
// embedded state table. It also resolves full state names to two-letter
// codes for free-text input.
type StateTaxTable struct {
	states  map[string]domain.State
	byName  map[string]string
	ordered []domain.State
}

// NewStateTaxTable parses and validates the embedded state table.
func NewStateTaxTable() (*StateTaxTable, error) {
	raw, err := tableFS.ReadFile(stateTablePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded table %s: %w", stateTablePath, err)
	}

	var file stateTableFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", stateTablePath, err)
	}
	if len(file.States) == 0 {
		return nil, fmt.Errorf("%s: no states defined", stateTablePath)
	}

	table := &StateTaxTable{
		states:  make(map[string]domain.State, len(file.States)),
		byName:  make(map[string]string, len(file.States)),
		ordered: make([]domain.State, 0, len(file.States)),
	}

	for i, record := range file.States {
		system := domain.StateTaxSystem(record.System)
		switch system {
		case domain.StateTaxNone, domain.StateTaxFlat, domain.StateTaxGraduated:
		default:
			return nil, fmt.Errorf("state %d (%s): unknown tax system %q", i, record.Code, record.System)
		}
		if len(record.Code) != 2 || record.Name == "" {
			return nil, fmt.Errorf("state %d: malformed entry %q/%q", i, record.Code, record.Name)
		}
		if _, dup := table.states[record.Code]; dup {
			return nil, fmt.Errorf("state %d: duplicate code %s", i, record.Code)
		}

		state := domain.State{Code: record.Code, Name: record.Name, System: system}
		table.states[state.Code] = state
		table.byName[strings.ToUpper(state.Name)] = state.Code
		table.ordered = append(table.ordered, state)
	}

	sort.Slice(table.ordered, func(i, j int) bool {
		return table.ordered[i].Code < table.ordered[j].Code
	})

	return table, nil
}

// Normalize maps free-text state input to a two-letter code: trimmed,
// uppercased, with full state names resolved via the table. Input that
// matches no known name is returned uppercased as-is, to be reported as
// unknown by Calculate.
func (t *StateTaxTable) Normalize(input string) string {
	s := strings.ToUpper(strings.TrimSpace(input))
	if code, ok := t.byName[s]; ok {
		return code
	}
	return s
}

// Calculate reports the state income tax treatment for the code. States
// without an income tax owe zero; flat and graduated systems return a nil
// amount with a placeholder label, as does an unrecognized code.
func (t *StateTaxTable) Calculate(taxableIncome decimal.Decimal, code string) domain.StateTaxResult {
	state, ok := t.states[code]
	if !ok {
		return domain.StateTaxResult{Code: code, Label: labelUnknownState}
	}

	if state.System == domain.StateTaxNone {
		zero := decimal.Zero
		return domain.StateTaxResult{Code: code, Amount: &zero, Label: labelNoStateTax}
	}

	return domain.StateTaxResult{Code: code, Label: labelNotImplemented}
}

// States returns every jurisdiction in the table, ordered by code.
func (t *StateTaxTable) States() []domain.State {
	out := make([]domain.State, len(t.ordered))
	copy(out, t.ordered)
	return out
}
