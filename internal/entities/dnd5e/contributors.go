package dnd5e

import "github.com/chpatton013/dnd-tools/internal/entities/damage"

// bonusContributor returns the extra damage a feature adds to a strike, or nil
type bonusContributor func(p *Paladin, strike Strike) *damage.Damage

// bonusContributors are evaluated in order for every strike
var bonusContributors = []bonusContributor{
	improvedDivineSmite,
	divineSmite,
}

// improvedDivineSmite adds 1d8 radiant to every hit once the paladin reaches level 11
func improvedDivineSmite(p *Paladin, _ Strike) *damage.Damage {
	if p.level < ImprovedDivineSmiteLevel {
		return nil
	}
	return damage.New(SmiteDamageType, 0, map[damage.Die]int{SmiteDie: 1})
}

// divineSmite adds 1d8 radiant plus 1d8 per slot level spent
func divineSmite(_ *Paladin, strike Strike) *damage.Damage {
	if strike.SmiteLevel <= 0 {
		return nil
	}
	return damage.New(SmiteDamageType, 0, map[damage.Die]int{SmiteDie: 1 + strike.SmiteLevel})
}
