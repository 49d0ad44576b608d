package paradigm

import (
	"errors"
	"strings"
	"testing"
)

func TestStabilityVacuouslyStable(t *testing.T) {
	table := NewTable()
	for _, ids := range [][]string{nil, {"divine"}} {
		report := table.Stability(ids)
		if !report.Stable || len(report.Conflicts) != 0 {
			t.Fatalf("set %v: report = %+v, want stable with no conflicts", ids, report)
		}
	}
}

func TestStabilityFindsEveryConflict(t *testing.T) {
	table := NewTable()
	report := table.Stability([]string{"divine", "pact", "academic"})
	if report.Stable {
		t.Fatal("divine+pact set reported stable")
	}
	found := false
	for _, c := range report.Conflicts {
		pair := map[string]bool{c.ParadigmA: true, c.ParadigmB: true}
		if pair["divine"] && pair["pact"] {
			found = true
			if c.Relationship != RelExclusive {
				t.Fatalf("divine/pact conflict flagged %v, want exclusive", c.Relationship)
			}
		}
	}
	if !found {
		t.Fatalf("divine/pact conflict missing from %+v", report.Conflicts)
	}
}

func TestStabilityCountsMultipleConflicts(t *testing.T) {
	table := NewTable()
	// divine×pact and blood×divine are both exclusive; blood×pact is a synergy
	report := table.Stability([]string{"divine", "pact", "blood"})
	if len(report.Conflicts) != 2 {
		t.Fatalf("conflicts = %+v, want exactly 2", report.Conflicts)
	}
}

func TestStabilityFlagsParasiticPairs(t *testing.T) {
	table := NewTable()
	report := table.Stability([]string{"blood", "wild"})
	if report.Stable {
		t.Fatal("parasitic pair reported stable")
	}
	if len(report.Conflicts) != 1 || report.Conflicts[0].Relationship != RelParasitic {
		t.Fatalf("conflicts = %+v, want one parasitic record", report.Conflicts)
	}
}

func TestValidateCombinationExclusivePair(t *testing.T) {
	table := NewTable()
	err := table.ValidateCombination([]string{"divine", "pact"}, nil)
	if !errors.Is(err, ErrParadigmConflict) {
		t.Fatalf("expected ErrParadigmConflict, got %v", err)
	}
	if !strings.Contains(err.Error(), "divine") || !strings.Contains(err.Error(), "pact") {
		t.Fatalf("conflict message %q should name both paradigms", err.Error())
	}
}

func TestValidateCombinationParasiticAllowed(t *testing.T) {
	table := NewTable()
	if err := table.ValidateCombination([]string{"blood", "wild"}, nil); err != nil {
		t.Fatalf("parasitic pair should validate (degraded, not forbidden): %v", err)
	}
}

func TestValidateCombinationMaxParadigms(t *testing.T) {
	table := NewTable()
	u := &Universe{AllowsMultiClass: true, MaxParadigms: 2}
	err := table.ValidateCombination([]string{"academic", "names", "rune"}, u)
	if !errors.Is(err, ErrTooManyParadigms) {
		t.Fatalf("expected ErrTooManyParadigms, got %v", err)
	}
	if !strings.Contains(err.Error(), "maximum 2 paradigms allowed") {
		t.Fatalf("message = %q, want the limit spelled out", err.Error())
	}
}

func TestValidateCombinationCountCheckIsOptIn(t *testing.T) {
	table := NewTable()
	ids := []string{"academic", "names", "rune"}
	if err := table.ValidateCombination(ids, nil); err != nil {
		t.Fatalf("no universe: %v", err)
	}
	u := &Universe{AllowsMultiClass: false, MaxParadigms: 1}
	if err := table.ValidateCombination(ids, u); err != nil {
		t.Fatalf("multi-class disabled means no count check: %v", err)
	}
}
