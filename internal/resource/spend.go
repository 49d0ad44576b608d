package resource

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInsufficient  = errors.New("insufficient available resource")
	ErrInvalidAmount = errors.New("spend amount must be a non-negative finite number")
)

// Spend deducts a cast cost from the pool's available (unlocked) portion and
// returns the updated copy. The locked reserve is untouchable.
func Spend(p Pool, amount float64) (Pool, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Pool{}, fmt.Errorf("%w: amount=%v", ErrInvalidAmount, amount)
	}
	if amount > Available(p) {
		return Pool{}, fmt.Errorf("%w: amount=%v available=%v", ErrInsufficient, amount, Available(p))
	}
	out := p
	out.Current -= amount
	return out, nil
}

// Regen advances the pool by ticks regeneration steps, clamped to Maximum.
// Non-positive tick counts are a no-op.
func Regen(p Pool, ticks int) Pool {
	out := p
	if ticks <= 0 {
		return out
	}
	out.Current += out.RegenRate * float64(ticks)
	if out.Current > out.Maximum {
		out.Current = out.Maximum
	}
	return out
}
