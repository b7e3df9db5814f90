package testutils

import (
	"github.com/chpatton013/dnd-tools/internal/entities/damage"
	"github.com/chpatton013/dnd-tools/internal/entities/dnd5e"
	"github.com/chpatton013/dnd-tools/internal/entities/equipment"
)

const (
	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Thursday"

	// TestCharacterLevel is past the Improved Divine Smite threshold
	TestCharacterLevel = 12
)

// Weapon names used by the fixtures
const (
	WeaponMjolnir1H      = "Mjolnir-1H"
	WeaponMjolnir2H      = "Mjolnir-2H"
	WeaponStormbreaker1H = "Stormbreaker-1H"
	WeaponStormbreaker2H = "Stormbreaker-2H"
)

// CreateTestWeapons returns the four test weapons in catalog order
func CreateTestWeapons() []*equipment.Weapon {
	return []*equipment.Weapon{
		mustWeapon(WeaponMjolnir1H, 0,
			damage.New(damage.TypeBludgeoning, 7, map[damage.Die]int{damage.D8: 1}),
		),
		mustWeapon(WeaponMjolnir2H, 0,
			damage.New(damage.TypeBludgeoning, 5, map[damage.Die]int{damage.D10: 1}),
		),
		mustWeapon(WeaponStormbreaker1H, 3,
			damage.New(damage.TypeSlashing, 7, map[damage.Die]int{damage.D8: 1}),
			damage.New(damage.TypeLightning, 0, map[damage.Die]int{damage.D4: 1}),
		),
		mustWeapon(WeaponStormbreaker2H, 3,
			damage.New(damage.TypeSlashing, 5, map[damage.Die]int{damage.D10: 1}),
			damage.New(damage.TypeLightning, 0, map[damage.Die]int{damage.D4: 1}),
		),
	}
}

// CreateTestPaladin creates the level 12 test paladin carrying every test weapon
func CreateTestPaladin() *dnd5e.Paladin {
	return CreateTestPaladinAtLevel(TestCharacterLevel)
}

// CreateTestPaladinAtLevel creates the test paladin at the given level
func CreateTestPaladinAtLevel(level int) *dnd5e.Paladin {
	p, err := dnd5e.NewPaladin(TestCharacterName, level, CreateTestWeapons()...)
	if err != nil {
		panic(err)
	}
	return p
}

func mustWeapon(name string, critDiceMultiplier int, damages ...*damage.Damage) *equipment.Weapon {
	w, err := equipment.NewWeapon(name, critDiceMultiplier, damages...)
	if err != nil {
		panic(err)
	}
	return w
}
