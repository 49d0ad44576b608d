package resource

import (
	"errors"
	"fmt"
	"math"
)

// Spell proficiency is tracked on a 0..100 scale.
const (
	ProficiencyMin = 0.0
	ProficiencyMax = 100.0
)

var (
	ErrProficiencyNaN      = errors.New("proficiency must be a valid number")
	ErrProficiencyInfinite = errors.New("proficiency must be finite")
)

// ClampProficiency bounds a proficiency score to [0, 100].
func ClampProficiency(v float64) float64 {
	if !(v > ProficiencyMin) { // catches NaN and negatives
		return ProficiencyMin
	}
	if v > ProficiencyMax {
		return ProficiencyMax
	}
	return v
}

// ValidateProficiency rejects non-finite scores. NaN and infinity fail with
// distinct errors so upstream arithmetic bugs log apart from overflow.
func ValidateProficiency(v float64) error {
	if math.IsNaN(v) {
		return ErrProficiencyNaN
	}
	if math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v", ErrProficiencyInfinite, v)
	}
	return nil
}
