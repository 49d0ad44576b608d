// Package spirit validates faith and prayer statistics on a character's
// spiritual component. Callers own the component; setters here are the
// strict path, adjusters the saturating one.
package spirit

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrFaithNaN        = errors.New("faith must be a valid number")
	ErrFaithInfinite   = errors.New("faith must be finite")
	ErrFaithOutOfRange = errors.New("faith must be between 0 and 1")
)

// Belief is one deity relationship.
type Belief struct {
	Faith    float64 // [0,1]
	Devotion float64
}

// Spiritual holds a character's beliefs and prayer bookkeeping.
type Spiritual struct {
	Beliefs         map[string]*Belief // keyed by deity id
	TotalPrayers    int
	AnsweredPrayers int
}

func NewSpiritual() *Spiritual {
	return &Spiritual{Beliefs: make(map[string]*Belief)}
}

// ClampFaith bounds any input to [0,1]. NaN collapses to 0 so the bound
// holds unconditionally.
func ClampFaith(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SetFaith writes an exact faith value for a deity, creating the belief
// record if needed. Direct assignment is strict: NaN, infinity, and
// out-of-range values each fail with their own error so authoring mistakes
// and arithmetic bugs log apart. Nothing is created on failure.
func (s *Spiritual) SetFaith(deityID string, value float64) error {
	if math.IsNaN(value) {
		return ErrFaithNaN
	}
	if math.IsInf(value, 0) {
		return fmt.Errorf("%w: %v", ErrFaithInfinite, value)
	}
	if value < 0 || value > 1 {
		return fmt.Errorf("%w: %v", ErrFaithOutOfRange, value)
	}
	b := s.belief(deityID)
	b.Faith = value
	return nil
}

// AdjustFaith applies a gameplay delta. It never fails: the result saturates
// into [0,1] via ClampFaith, and a NaN delta leaves faith at the clamp floor
// rather than poisoning the record.
func (s *Spiritual) AdjustFaith(deityID string, delta float64) {
	b := s.belief(deityID)
	b.Faith = ClampFaith(b.Faith + delta)
}

// Faith reads a deity's faith without creating a record for unknown ids.
func (s *Spiritual) Faith(deityID string) float64 {
	if b, ok := s.Beliefs[deityID]; ok {
		return b.Faith
	}
	return 0
}

// AnswerRate reports answered/total prayers. A prayerless record reports 0;
// the division-by-zero guard is part of the contract, not an accident.
func (s *Spiritual) AnswerRate() float64 {
	if s.TotalPrayers == 0 {
		return 0
	}
	return float64(s.AnsweredPrayers) / float64(s.TotalPrayers)
}

// belief lazily initializes the record for a deity. Write paths only.
func (s *Spiritual) belief(deityID string) *Belief {
	if s.Beliefs == nil {
		s.Beliefs = make(map[string]*Belief)
	}
	b, ok := s.Beliefs[deityID]
	if !ok {
		b = &Belief{}
		s.Beliefs[deityID] = b
	}
	return b
}
