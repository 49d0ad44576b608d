package paradigm

import (
	"errors"
	"fmt"
)

var (
	ErrParadigmConflict = errors.New("paradigm conflict")
	ErrTooManyParadigms = errors.New("too many paradigms")
)

// Conflict records one incompatible pair found in an active set.
type Conflict struct {
	ParadigmA    string
	ParadigmB    string
	Relationship Relationship
}

// StabilityReport lists every conflicting pair in an active set.
type StabilityReport struct {
	Stable    bool
	Conflicts []Conflict
}

// Stability scans every pair in the active set and collects each exclusive
// or parasitic pairing. All C(n,2) pairs are checked, not just the first
// match: the report must surface every conflict. Sets of 0 or 1 paradigms
// are vacuously stable.
func (t *Table) Stability(ids []string) StabilityReport {
	report := StabilityReport{Stable: true}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			rel := t.Relationship(ids[i], ids[j])
			if rel.Relationship == RelExclusive || rel.Relationship == RelParasitic {
				report.Conflicts = append(report.Conflicts, Conflict{
					ParadigmA:    ids[i],
					ParadigmB:    ids[j],
					Relationship: rel.Relationship,
				})
			}
		}
	}
	report.Stable = len(report.Conflicts) == 0
	return report
}

// ValidateCombination rejects active sets a practitioner must never enter.
// Any mutually-exclusive pair fails with ErrParadigmConflict. When the
// universe opts into multi-class limits, exceeding the count fails with
// ErrTooManyParadigms; without that opt-in no count check applies.
// Parasitic pairs degrade power but do not forbid the combination.
func (t *Table) ValidateCombination(ids []string, u *Universe) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			rel := t.Relationship(ids[i], ids[j])
			if rel.Relationship == RelExclusive {
				return fmt.Errorf("%w: %s and %s are mutually exclusive",
					ErrParadigmConflict, ids[i], ids[j])
			}
		}
	}
	if u != nil && u.AllowsMultiClass && len(ids) > u.MaxParadigms {
		return fmt.Errorf("%w: maximum %d paradigms allowed, have %d",
			ErrTooManyParadigms, u.MaxParadigms, len(ids))
	}
	return nil
}
