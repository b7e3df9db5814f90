package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chpatton013/dnd-tools/internal/orchestrators/damage"
)

func printDamage(w io.Writer, out *damage.CalculateDamageOutput) {
	for _, line := range out.Lines {
		fmt.Fprintf(w, "%s (%.1f) %s damage%s\n",
			expression(line.Expression), line.Expected, line.Type, rolled(out.Rolled, line.Rolled))
	}
	fmt.Fprintf(w, "TOTAL (%.1f) damage%s\n", out.TotalExpected, rolled(out.Rolled, out.TotalRolled))
}

func printWeapons(w io.Writer, out *damage.ListWeaponsOutput) {
	fmt.Fprintf(w, "%s, level %d\n", out.CharacterName, out.Level)
	for _, weapon := range out.Weapons {
		parts := make([]string, 0, len(weapon.Damage))
		for _, line := range weapon.Damage {
			parts = append(parts, fmt.Sprintf("%s %s", expression(line.Expression), line.Type))
		}
		fmt.Fprintf(w, "  %s: %s (%.1f), crit dice x%d\n",
			weapon.Name, strings.Join(parts, " + "), weapon.Expected, weapon.CritDiceMultiplier)
	}
}

func printCharacters(w io.Writer, out *damage.ListCharactersOutput) {
	for _, character := range out.Characters {
		fmt.Fprintf(w, "%s, level %d: %s\n",
			character.Name, character.Level, strings.Join(character.WeaponNames, ", "))
	}
}

func expression(expr string) string {
	if expr == "" {
		return "0"
	}
	return expr
}

func rolled(ok bool, value int) string {
	if !ok {
		return ""
	}
	return fmt.Sprintf(" = %d", value)
}
