package damage

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/chpatton013/dnd-tools/internal/errors"
)

// Die is a fixed-sided die, identified by its number of sides
type Die int

// Supported dice
const (
	D4   Die = 4
	D6   Die = 6
	D8   Die = 8
	D10  Die = 10
	D12  Die = 12
	D20  Die = 20
	D100 Die = 100
)

// Sides returns the number of faces on the die
func (d Die) Sides() int {
	return int(d)
}

// String returns the die face notation, e.g. "d8"
func (d Die) String() string {
	return fmt.Sprintf("d%d", int(d))
}

// IsValid checks if the die is one of the supported dice
func (d Die) IsValid() bool {
	switch d {
	case D4, D6, D8, D10, D12, D20, D100:
		return true
	default:
		return false
	}
}

// Expected returns the mean of a single roll, (sides+1)/2
func (d Die) Expected() float64 {
	return float64(d.Sides()+1) / 2
}

// Roll draws a single value in [1, sides] from the roller
func (d Die) Roll(roller dice.Roller) (int, error) {
	if roller == nil {
		return 0, errors.InvalidArgument("dice roller is required")
	}

	value, err := roller.Roll(d.Sides())
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll %s", d)
	}
	return value, nil
}

// AllDice returns every supported die, smallest first
func AllDice() []Die {
	return []Die{D4, D6, D8, D10, D12, D20, D100}
}

// DieFromString parses face notation such as "d8" or "D8"
// Returns the die and true if valid, zero and false otherwise
func DieFromString(s string) (Die, bool) {
	face := strings.ToLower(strings.TrimSpace(s))
	for _, d := range AllDice() {
		if d.String() == face {
			return d, true
		}
	}
	return 0, false
}
