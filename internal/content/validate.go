package content

import (
	"fmt"
	"math"
	"strings"

	"github.com/annhoward/arcana/internal/paradigm"
)

// ValidateRaw checks the semantic constraints of a pack before it is
// materialized: enum values, modifier sanity, hybrid arity. Reference
// resolution is CheckRefs' job.
func ValidateRaw(pack RawPack) error {
	var errs []string

	if pack.Universe != nil && pack.Universe.MaxParadigms != nil && *pack.Universe.MaxParadigms < 1 {
		errs = append(errs, "universe.max_paradigms must be >= 1")
	}

	for i, p := range pack.Paradigms {
		if strings.TrimSpace(p.ID) == "" {
			errs = append(errs, fmt.Sprintf("paradigms[%d].id must be non-empty", i))
		}
	}

	for i, r := range pack.Relationships {
		if r.A == "" || r.B == "" {
			errs = append(errs, fmt.Sprintf("relationships[%d] must name both paradigms", i))
		}
		if r.A == r.B {
			errs = append(errs, fmt.Sprintf("relationships[%d] pairs %q with itself", i, r.A))
		}
		switch paradigm.Relationship(r.Relationship) {
		case paradigm.RelExclusive, paradigm.RelSynergistic, paradigm.RelCoexistent,
			paradigm.RelParasitic, paradigm.RelIsolated:
		default:
			errs = append(errs, fmt.Sprintf("relationships[%d].relationship %q is not one of: exclusive, synergistic, coexistent, parasitic, isolated", i, r.Relationship))
		}
		if r.PowerModifier != nil {
			m := *r.PowerModifier
			if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
				errs = append(errs, fmt.Sprintf("relationships[%d].power_modifier must be a finite positive number", i))
			}
		}
	}

	for i, h := range pack.Hybrids {
		if strings.TrimSpace(h.ID) == "" {
			errs = append(errs, fmt.Sprintf("hybrids[%d].id must be non-empty", i))
		}
		if len(h.SourceParadigms) < 2 {
			errs = append(errs, fmt.Sprintf("hybrids[%d] needs at least 2 source_paradigms", i))
		}
		if len(h.EmergentProperties) == 0 {
			errs = append(errs, fmt.Sprintf("hybrids[%d].emergent_properties must be non-empty", i))
		}
		switch paradigm.HybridStability(h.Stability) {
		case paradigm.HybridStable, paradigm.HybridVolatile, paradigm.HybridUnstable:
		default:
			errs = append(errs, fmt.Sprintf("hybrids[%d].stability %q is not one of: stable, volatile, unstable", i, h.Stability))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("pack validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// CheckRefs verifies cross-references: every hybrid source paradigm and every
// relationship endpoint must resolve to a builtin or pack-defined paradigm id.
// This is the authoring-time integrity check the runtime rule lookups assume.
func CheckRefs(pack RawPack) error {
	known := make(map[string]bool)
	for id := range paradigm.Builtin() {
		known[id] = true
	}
	for _, p := range pack.Paradigms {
		known[p.ID] = true
	}

	var errs []string
	for i, r := range pack.Relationships {
		for _, id := range []string{r.A, r.B} {
			if id != "" && !known[id] {
				errs = append(errs, fmt.Sprintf("relationships[%d] references unknown paradigm %q", i, id))
			}
		}
	}
	for i, h := range pack.Hybrids {
		for _, id := range h.SourceParadigms {
			if !known[id] {
				errs = append(errs, fmt.Sprintf("hybrids[%d] (%s) references unknown paradigm %q", i, h.ID, id))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("pack reference check failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
