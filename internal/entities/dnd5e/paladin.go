// Package dnd5e holds the character rules used to resolve a strike
package dnd5e

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/chpatton013/dnd-tools/internal/entities/damage"
	"github.com/chpatton013/dnd-tools/internal/entities/equipment"
	"github.com/chpatton013/dnd-tools/internal/errors"
)

// Paladin is a character with a weapon catalog and a level
type Paladin struct {
	name        string
	level       int
	weapons     map[string]*equipment.Weapon
	weaponOrder []string
}

var _ core.Entity = (*Paladin)(nil)

// Strike describes one attack
type Strike struct {
	WeaponName string
	Crit       bool
	// SmiteLevel is the spell slot spent on Divine Smite; 0 means no smite
	SmiteLevel int
}

// NewPaladin builds a paladin. A weapon whose name repeats an earlier one
// replaces it, keeping the earlier position in WeaponNames.
func NewPaladin(name string, level int, weapons ...*equipment.Weapon) (*Paladin, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", name, vb)
	if level < 0 {
		vb.Field("level", "must not be negative")
	}
	for i, w := range weapons {
		if w == nil {
			vb.Fieldf("weapons", "entry %d is nil", i)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, errors.Wrapf(err, "invalid paladin %q", name)
	}

	p := &Paladin{
		name:    name,
		level:   level,
		weapons: make(map[string]*equipment.Weapon, len(weapons)),
	}
	for _, w := range weapons {
		if _, seen := p.weapons[w.Name()]; !seen {
			p.weaponOrder = append(p.weaponOrder, w.Name())
		}
		p.weapons[w.Name()] = w
	}
	return p, nil
}

// GetID implements core.Entity
func (p *Paladin) GetID() string {
	return p.name
}

// GetType implements core.Entity
func (p *Paladin) GetType() string {
	return EntityTypeCharacter
}

// Name returns the character name
func (p *Paladin) Name() string {
	return p.name
}

// Level returns the character level
func (p *Paladin) Level() int {
	return p.level
}

// WithLevel returns a copy of the paladin at a different level.
// The weapon catalog is shared since weapons are immutable.
func (p *Paladin) WithLevel(level int) (*Paladin, error) {
	if level < 0 {
		return nil, errors.InvalidArgumentf("level must not be negative: %d", level)
	}
	out := *p
	out.level = level
	return &out, nil
}

// WeaponNames returns the catalog names in first-seen order
func (p *Paladin) WeaponNames() []string {
	out := make([]string, len(p.weaponOrder))
	copy(out, p.weaponOrder)
	return out
}

// Weapon looks up a weapon by name
func (p *Paladin) Weapon(name string) (*equipment.Weapon, error) {
	w, ok := p.weapons[name]
	if !ok {
		return nil, errors.NotFoundf("weapon %s not found", name).
			WithMeta("weapon_name", name).
			WithMeta("character", p.name)
	}
	return w, nil
}

// Damage resolves a strike into damage per type. Weapon damage comes first,
// already crit-adjusted by the weapon's own multiplier; bonus damage is
// summed from every contributor and doubled once on a crit.
func (p *Paladin) Damage(strike Strike) (*damage.Breakdown, error) {
	weapon, err := p.Weapon(strike.WeaponName)
	if err != nil {
		return nil, err
	}

	weaponDamage, err := weapon.Damage(strike.Crit)
	if err != nil {
		return nil, err
	}

	bonusDamage, err := p.bonusDamage(strike)
	if err != nil {
		return nil, err
	}

	total := damage.NewBreakdown()
	if err := total.Merge(weaponDamage); err != nil {
		return nil, errors.Wrap(err, "failed to merge weapon damage")
	}
	if err := total.Merge(bonusDamage); err != nil {
		return nil, errors.Wrap(err, "failed to merge bonus damage")
	}
	return total, nil
}

func (p *Paladin) bonusDamage(strike Strike) (*damage.Breakdown, error) {
	bonus := damage.NewBreakdown()
	for _, contribute := range bonusContributors {
		d := contribute(p, strike)
		if d == nil {
			continue
		}
		if err := bonus.Add(d); err != nil {
			return nil, errors.Wrap(err, "failed to accumulate bonus damage")
		}
	}

	if strike.Crit {
		bonus.ScaleDice(BonusCritMultiplier)
	}
	return bonus, nil
}
