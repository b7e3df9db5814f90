// Package equipment holds the static weapon catalog entries
package equipment

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/chpatton013/dnd-tools/internal/entities/damage"
	"github.com/chpatton013/dnd-tools/internal/errors"
)

const (
	// EntityTypeWeapon is the core.Entity type reported by weapons
	EntityTypeWeapon = "weapon"

	// DefaultCritDiceMultiplier applies when a weapon does not set its own
	DefaultCritDiceMultiplier = 2
)

// Weapon is an immutable catalog entry
type Weapon struct {
	name               string
	damages            []*damage.Damage
	critDiceMultiplier int
}

var _ core.Entity = (*Weapon)(nil)

// NewWeapon validates and builds a weapon. The damage templates are copied,
// so later changes to the arguments do not leak into the catalog.
// A critDiceMultiplier of 0 selects DefaultCritDiceMultiplier.
func NewWeapon(name string, critDiceMultiplier int, damages ...*damage.Damage) (*Weapon, error) {
	if critDiceMultiplier == 0 {
		critDiceMultiplier = DefaultCritDiceMultiplier
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", name, vb)
	if critDiceMultiplier < DefaultCritDiceMultiplier {
		vb.Fieldf("crit_dice_multiplier", "must be at least %d", DefaultCritDiceMultiplier)
	}
	for i, d := range damages {
		if d == nil {
			vb.Fieldf("damages", "entry %d is nil", i)
			continue
		}
		if !d.Type.IsValid() {
			vb.Fieldf("damages", "entry %d has unknown damage type %q", i, d.Type)
		}
		for die := range d.Dice {
			if !die.IsValid() {
				vb.Fieldf("damages", "entry %d has unsupported die %s", i, die)
			}
		}
	}
	if err := vb.Build(); err != nil {
		return nil, errors.Wrapf(err, "invalid weapon %q", name)
	}

	copies := make([]*damage.Damage, len(damages))
	for i, d := range damages {
		copies[i] = d.Clone()
	}

	return &Weapon{
		name:               name,
		damages:            copies,
		critDiceMultiplier: critDiceMultiplier,
	}, nil
}

// GetID implements core.Entity
func (w *Weapon) GetID() string {
	return w.name
}

// GetType implements core.Entity
func (w *Weapon) GetType() string {
	return EntityTypeWeapon
}

// Name returns the catalog key of the weapon
func (w *Weapon) Name() string {
	return w.name
}

// CritDiceMultiplier returns the factor applied to dice counts on a critical hit
func (w *Weapon) CritDiceMultiplier() int {
	return w.critDiceMultiplier
}

// Damages returns copies of the weapon's damage templates in catalog order
func (w *Weapon) Damages() []*damage.Damage {
	out := make([]*damage.Damage, len(w.damages))
	for i, d := range w.damages {
		out[i] = d.Clone()
	}
	return out
}

// Damage builds a fresh per-type breakdown for one strike.
// On a crit only dice counts are multiplied; flat bonuses stay as they are.
func (w *Weapon) Damage(crit bool) (*damage.Breakdown, error) {
	breakdown := damage.NewBreakdown()
	for _, d := range w.damages {
		if err := breakdown.Add(d); err != nil {
			return nil, errors.Wrapf(err, "failed to accumulate %s damage for %s", d.Type, w.name)
		}
	}

	if crit {
		breakdown.ScaleDice(w.critDiceMultiplier)
	}

	return breakdown, nil
}
