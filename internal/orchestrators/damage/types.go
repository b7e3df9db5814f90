package damage

import (
	"time"

	"github.com/chpatton013/dnd-tools/internal/entities/damage"
)

// CalculateDamageInput defines the request for resolving one strike
type CalculateDamageInput struct {
	CharacterName string
	WeaponName    string
	Crit          bool
	SmiteLevel    int // 0 means no smite
	Roll          bool
	Level         *int // overrides the catalog level when set
}

// Line is the result for a single damage type
type Line struct {
	Type       damage.Type
	Expression string
	Expected   float64
	Rolled     int
}

// CalculateDamageOutput defines the response for resolving one strike
type CalculateDamageOutput struct {
	RollID        string
	CalculatedAt  time.Time
	CharacterName string
	WeaponName    string
	Level         int
	Lines         []Line
	TotalExpected float64
	// TotalRolled and Line.Rolled are only meaningful when Rolled is true
	TotalRolled int
	Rolled      bool
	Breakdown   *damage.Breakdown
}

// ListWeaponsInput defines the request for listing a character's weapons
type ListWeaponsInput struct {
	CharacterName string
}

// WeaponSummary describes one catalog weapon
type WeaponSummary struct {
	Name               string
	Damage             []Line
	CritDiceMultiplier int
	Expected           float64
}

// ListWeaponsOutput defines the response for listing a character's weapons
type ListWeaponsOutput struct {
	CharacterName string
	Level         int
	Weapons       []WeaponSummary
}

// ListCharactersInput defines the request for listing catalog characters
type ListCharactersInput struct{}

// CharacterSummary describes one catalog character
type CharacterSummary struct {
	Name        string
	Level       int
	WeaponNames []string
}

// ListCharactersOutput defines the response for listing catalog characters
type ListCharactersOutput struct {
	Characters []CharacterSummary
}
