package srd

import (
	"strings"

	"github.com/chpatton013/dnd-tools/internal/entities/damage"
	"github.com/chpatton013/dnd-tools/internal/entities/equipment"
	"github.com/chpatton013/dnd-tools/internal/errors"
)

// ToWeapon builds a weapon from SRD data, adding a flat bonus to its damage.
// SRD weapons use the standard critical hit, so crit dice double.
func ToWeapon(data *WeaponData, bonus int) (*equipment.Weapon, error) {
	if data == nil {
		return nil, errors.InvalidArgument("weapon data is required")
	}
	if data.DamageDice == "" {
		return nil, errors.InvalidArgumentf("%s deals no damage", data.Name).
			WithMeta("weapon_id", data.ID)
	}

	damageType, ok := damage.TypeFromString(strings.ToLower(data.DamageType))
	if !ok {
		return nil, errors.InvalidArgumentf("unknown damage type %q", data.DamageType).
			WithMeta("weapon_id", data.ID)
	}

	d, err := damage.Parse(damageType, data.DamageDice)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s damage", data.Name)
	}
	d.Base += bonus

	return equipment.NewWeapon(data.Name, 0, d)
}
