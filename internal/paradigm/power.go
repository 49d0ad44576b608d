package paradigm

// CombineMode selects how per-paradigm contributions reduce to one multiplier.
type CombineMode string

const (
	CombineAdditive       CombineMode = "additive"
	CombineMultiplicative CombineMode = "multiplicative"
	CombineHighest        CombineMode = "highest"
	CombineAverage        CombineMode = "average" // default
)

// powerFloor keeps heavily conflicted additive blends positive.
const powerFloor = 0.05

// CombinedPower computes the effective power multiplier for a set of active
// paradigms. Solo and empty sets are the neutral baseline 1.0. For larger
// sets, each paradigm contributes 1.0 scaled by the modifier of every pair it
// participates in, and the contributions reduce per mode. Exclusive pairs
// carry modifiers below 1.0 and synergies above, so conflicted sets always
// come out at or below clean ones of the same size under every mode.
func (t *Table) CombinedPower(ids []string, mode CombineMode) float64 {
	if len(ids) < 2 {
		return 1.0
	}

	contribs := make([]float64, len(ids))
	for i := range contribs {
		contribs[i] = 1.0
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			m := t.Relationship(ids[i], ids[j]).PowerModifier
			contribs[i] *= m
			contribs[j] *= m
		}
	}

	switch mode {
	case CombineAdditive:
		// Baseline 1 plus stacked deviations, floored to stay positive.
		out := 1.0
		for _, c := range contribs {
			out += c - 1.0
		}
		if out < powerFloor {
			out = powerFloor
		}
		return out
	case CombineMultiplicative:
		out := 1.0
		for _, c := range contribs {
			out *= c
		}
		return out
	case CombineHighest:
		out := contribs[0]
		for _, c := range contribs[1:] {
			if c > out {
				out = c
			}
		}
		return out
	default: // CombineAverage and anything unrecognized
		sum := 0.0
		for _, c := range contribs {
			sum += c
		}
		return sum / float64(len(contribs))
	}
}
