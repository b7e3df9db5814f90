package dnd5e

import "github.com/chpatton013/dnd-tools/internal/entities/damage"

// EntityTypeCharacter is the core.Entity type reported by characters
const EntityTypeCharacter = "character"

// Class constants
const (
	ClassPaladin = "paladin"
)

// SupportedClasses lists the classes a catalog character may have
var SupportedClasses = []string{ClassPaladin}

// Smite constants
const (
	// ImprovedDivineSmiteLevel is the level at which every hit gains a bonus die
	ImprovedDivineSmiteLevel = 11

	// SmiteDie is the die rolled by both smite features
	SmiteDie = damage.D8

	// SmiteDamageType is the damage type of both smite features
	SmiteDamageType = damage.TypeRadiant

	// MinSmiteLevel and MaxSmiteLevel bound the spell slot spent on Divine Smite
	MinSmiteLevel = 1
	MaxSmiteLevel = 3

	// BonusCritMultiplier doubles bonus dice on a crit regardless of the weapon
	BonusCritMultiplier = 2
)
