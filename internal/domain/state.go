package domain

// StateTaxSystem classifies how a state taxes income.
type StateTaxSystem string

const (
	StateTaxNone      StateTaxSystem = "none"
	StateTaxFlat      StateTaxSystem = "flat"
	StateTaxGraduated StateTaxSystem = "graduated"
)

// State is one jurisdiction in the state tax table.
type State struct {
	Code   string         `json:"code"`
	Name   string         `json:"name"`
	System StateTaxSystem `json:"system"`
}
