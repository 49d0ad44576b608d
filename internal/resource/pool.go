package resource

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNegativeLocked = errors.New("locked resource cannot be negative")
	ErrNotFinite      = errors.New("resource field must be finite")
)

// PoolType names the kind of power a pool holds.
type PoolType string

const (
	PoolMana      PoolType = "mana"
	PoolStamina   PoolType = "stamina"
	PoolFavor     PoolType = "favor"
	PoolBreath    PoolType = "breath"
	PoolLifeforce PoolType = "lifeforce"
)

// Pool is a caster's power reservoir. The engine owns the instance and
// mutates it on every cast and regen tick; this package only checks and
// repairs it.
type Pool struct {
	Type      PoolType
	Current   float64
	Maximum   float64
	Locked    float64 // reserved for standing effects, unavailable for spending
	RegenRate float64 // per tick
}

// Validate is the admission check for freshly built or deserialized pools.
// A negative lock or any non-finite field is rejected outright; drifted but
// finite values belong to Reconcile instead.
func Validate(p Pool) error {
	if p.Locked < 0 {
		return fmt.Errorf("%w: locked=%v", ErrNegativeLocked, p.Locked)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"current", p.Current},
		{"maximum", p.Maximum},
		{"locked", p.Locked},
		{"regen_rate", p.RegenRate},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s=%v", ErrNotFinite, f.name, f.value)
		}
	}
	return nil
}

// ClampLocked bounds a proposed lock value to [0, p.Current]. Pure; the
// caller decides whether to write the result back.
func ClampLocked(p Pool, proposed float64) float64 {
	if proposed < 0 {
		return 0
	}
	if proposed > p.Current {
		return p.Current
	}
	return proposed
}

// Available returns the spendable portion of the pool. Never negative, even
// while Locked transiently exceeds Current.
func Available(p Pool) float64 {
	avail := p.Current - p.Locked
	if avail < 0 {
		return 0
	}
	return avail
}

// Reconcile returns a copy of the pool with bounds repaired: Current is
// clamped to [0, Maximum] first, then Locked to [0, corrected Current].
// It never fails and is idempotent; use it for periodic drift correction,
// not admission checks.
func Reconcile(p Pool) Pool {
	out := p
	if out.Current > out.Maximum {
		out.Current = out.Maximum
	}
	if out.Current < 0 {
		out.Current = 0
	}
	if out.Locked > out.Current {
		out.Locked = out.Current
	}
	if out.Locked < 0 {
		out.Locked = 0
	}
	return out
}
