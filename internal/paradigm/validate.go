package paradigm

import (
	"fmt"
	"strings"
)

// Validate checks that a paradigm record is complete enough to simulate.
// A usable paradigm needs an id, a name, and non-empty sources, costs, and
// acquisition methods; everything else is flavor the engine can live without.
func Validate(p Paradigm) error {
	var errs []string

	if strings.TrimSpace(p.ID) == "" {
		errs = append(errs, "id must be non-empty")
	}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, "name must be non-empty")
	}
	if len(p.Sources) == 0 {
		errs = append(errs, "sources must be non-empty")
	}
	if len(p.Costs) == 0 {
		errs = append(errs, "costs must be non-empty")
	}
	if len(p.AcquisitionMethods) == 0 {
		errs = append(errs, "acquisitionMethods must be non-empty")
	}

	switch p.Scaling {
	case "", ScalingLinear, ScalingExponential, ScalingPlateau, ScalingThreshold:
	default:
		errs = append(errs, fmt.Sprintf("scaling %q is not a known mode", p.Scaling))
	}

	for i, l := range p.Laws {
		if l.Strictness < 0 || l.Strictness > 1 {
			errs = append(errs, fmt.Sprintf("laws[%d].strictness must be in [0,1]", i))
		}
	}
	for i, a := range p.AcquisitionMethods {
		if a.StartingProficiency < 0 || a.StartingProficiency > 100 {
			errs = append(errs, fmt.Sprintf("acquisitionMethods[%d].startingProficiency must be in [0,100]", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("paradigm %q validation failed: %s", p.ID, strings.Join(errs, "; "))
	}
	return nil
}
