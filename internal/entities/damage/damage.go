// Package damage models typed dice pools: one Damage holds the dice and flat
// bonus for a single damage type, and a Breakdown groups them per type.
package damage

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/chpatton013/dnd-tools/internal/errors"
)

const reasonTypeMismatch = "damage_type_mismatch"

// Damage is one contribution of damage of exactly one type
type Damage struct {
	Type Type
	Dice map[Die]int
	Base int
}

// New creates a damage contribution, copying the dice counts
func New(t Type, base int, counts map[Die]int) *Damage {
	d := Zero(t)
	d.Base = base
	for die, count := range counts {
		d.Dice[die] = count
	}
	return d
}

// Zero returns the merge identity for the type
func Zero(t Type) *Damage {
	return &Damage{
		Type: t,
		Dice: make(map[Die]int),
	}
}

// Merge adds other's flat bonus and dice counts into d.
// Merging across types is a broken invariant and leaves both operands untouched.
func (d *Damage) Merge(other *Damage) error {
	if other == nil {
		return errors.InvalidArgument("cannot merge nil damage")
	}
	if d.Type != other.Type {
		return errors.Internalf("cannot merge %s damage into %s damage", other.Type, d.Type).
			WithMetaMap(map[string]interface{}{
				"reason":        reasonTypeMismatch,
				"expected_type": d.Type.String(),
				"actual_type":   other.Type.String(),
			})
	}

	if d.Dice == nil {
		d.Dice = make(map[Die]int)
	}
	d.Base += other.Base
	for die, count := range other.Dice {
		d.Dice[die] += count
	}
	return nil
}

// ScaleDice multiplies every die count. The flat bonus never scales.
func (d *Damage) ScaleDice(multiplier int) {
	for die := range d.Dice {
		d.Dice[die] *= multiplier
	}
}

// Expected returns base plus the mean of every die
func (d *Damage) Expected() float64 {
	total := float64(d.Base)
	for die, count := range d.Dice {
		total += float64(count) * die.Expected()
	}
	return total
}

// Roll returns base plus a fresh roll of every die.
// Dice with a zero count never touch the roller.
func (d *Damage) Roll(roller dice.Roller) (int, error) {
	if roller == nil {
		return 0, errors.InvalidArgument("dice roller is required")
	}

	total := d.Base
	for _, die := range d.sortedDice() {
		count := d.Dice[die]
		if count <= 0 {
			continue
		}
		values, err := roller.RollN(count, die.Sides())
		if err != nil {
			return 0, errors.Wrapf(err, "failed to roll %d%s", count, die)
		}
		for _, v := range values {
			total += v
		}
	}
	return total, nil
}

// DiceCount returns the number of dice of the given size
func (d *Damage) DiceCount(die Die) int {
	return d.Dice[die]
}

// IsZero reports whether the damage has no dice and no flat bonus
func (d *Damage) IsZero() bool {
	if d.Base != 0 {
		return false
	}
	for _, count := range d.Dice {
		if count != 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy
func (d *Damage) Clone() *Damage {
	return New(d.Type, d.Base, d.Dice)
}

// String renders dice terms largest die first, e.g. "2d8+1d4+7".
// A damage with no dice and no positive base renders as "".
func (d *Damage) String() string {
	terms := make([]string, 0, len(d.Dice))
	for _, die := range d.sortedDice() {
		count := d.Dice[die]
		if count == 0 {
			continue
		}
		terms = append(terms, fmt.Sprintf("%d%s", count, die))
	}

	out := strings.Join(terms, "+")
	if d.Base > 0 {
		out += fmt.Sprintf("+%d", d.Base)
	}
	return strings.TrimPrefix(out, "+")
}

func (d *Damage) sortedDice() []Die {
	faces := make([]Die, 0, len(d.Dice))
	for die := range d.Dice {
		faces = append(faces, die)
	}
	sort.Slice(faces, func(i, j int) bool { return faces[i] > faces[j] })
	return faces
}

// IsTypeMismatch reports whether err came from merging damage of different types
func IsTypeMismatch(err error) bool {
	if !errors.IsInternal(err) {
		return false
	}
	return errors.GetMeta(err)["reason"] == reasonTypeMismatch
}
