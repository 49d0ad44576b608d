package paradigm

import "sort"

// HybridStability rates how well an emergent paradigm holds together.
type HybridStability string

const (
	HybridStable   HybridStability = "stable"
	HybridVolatile HybridStability = "volatile"
	HybridUnstable HybridStability = "unstable"
)

// Hybrid is an emergent paradigm unlocked by practicing all of its source
// paradigms at once. EmergentProperties and Stability are narrative-layer
// data; nothing here computes with them.
type Hybrid struct {
	ID                 string
	Name               string
	SourceParadigms    []string // 2+ base paradigm ids
	EmergentProperties []string
	Stability          HybridStability
}

// Registry maps hybrid id to its recipe.
type Registry map[string]Hybrid

// Get looks a hybrid up by exact id.
func (r Registry) Get(id string) (Hybrid, bool) {
	h, ok := r[id]
	return h, ok
}

// Available returns every hybrid whose full source set is covered by the
// active paradigms. Extra active paradigms never disqualify a recipe, and
// several recipes can unlock at once. Results are id-sorted so callers see a
// deterministic order.
func (r Registry) Available(activeIDs []string) []Hybrid {
	active := make(map[string]bool, len(activeIDs))
	for _, id := range activeIDs {
		active[id] = true
	}

	var out []Hybrid
	for _, h := range r {
		satisfied := len(h.SourceParadigms) > 0
		for _, src := range h.SourceParadigms {
			if !active[src] {
				satisfied = false
				break
			}
		}
		if satisfied {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
