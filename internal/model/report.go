package model

import "time"

// CaseReport is the persisted outcome of one test case.
type CaseReport struct {
	Index        int       `yaml:"index"`
	Input        string    `yaml:"input"`
	Variants     []string  `yaml:"variants"`
	Similarities []float64 `yaml:"similarities"`
	Average      float64   `yaml:"average"`
}

// Mutated reports whether at least one variant was produced.
func (c CaseReport) Mutated() bool {
	return len(c.Variants) > 0
}

// SuiteSummary aggregates similarities across the mutated cases of a suite.
type SuiteSummary struct {
	Cases      int     `yaml:"cases"`
	NonMutated int     `yaml:"non_mutated"`
	Average    float64 `yaml:"average"`
	Median     float64 `yaml:"median"`
	Min        float64 `yaml:"min"`
	Max        float64 `yaml:"max"`
}

// SuiteReport is the persisted outcome of a suite run.
type SuiteReport struct {
	ID         string        `yaml:"id"`
	CreatedAt  time.Time     `yaml:"created_at"`
	Mutator    MutatorConfig `yaml:"mutator"`
	Model      string        `yaml:"model"`
	Similarity string        `yaml:"similarity"`
	Summary    SuiteSummary  `yaml:"summary"`
	Cases      []CaseReport  `yaml:"cases"`
}
