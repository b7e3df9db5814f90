package main

import (
	"context"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chpatton013/dnd-tools/internal/entities/dnd5e"
	"github.com/chpatton013/dnd-tools/internal/errors"
	"github.com/chpatton013/dnd-tools/internal/orchestrators/damage"
)

var (
	damageCrit  bool
	damageSmite int
	damageRoll  bool
	damageLevel int
)

var damageCmd = &cobra.Command{
	Use:   "damage <weapon>",
	Short: "Calculate damage for a weapon strike",
	Long: `Calculate the expected damage of one strike, broken down by damage type.

Examples:
  dnd-tools damage Mjolnir-1H
  dnd-tools damage Mjolnir-1H --crit --smite 2
  dnd-tools damage Stormbreaker-2H --roll`,
	Args: exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := damageOptions{
			CharacterName: viper.GetString(keyCharacter),
			WeaponName:    args[0],
			Crit:          damageCrit,
			Roll:          damageRoll,
		}
		if cmd.Flags().Changed("smite") {
			opts.SmiteLevel = damageSmite
			opts.Smite = true
		}
		if cmd.Flags().Changed("level") {
			level := damageLevel
			opts.Level = &level
		}

		svc, err := newService()
		if err != nil {
			return err
		}
		return runDamage(cmd.Context(), svc, cmd.OutOrStdout(), opts)
	},
}

func init() {
	damageCmd.Flags().BoolVar(&damageCrit, "crit", false, "the strike is a critical hit")
	damageCmd.Flags().IntVar(&damageSmite, "smite", 0, "expend a spell slot of level 1, 2 or 3 on Divine Smite")
	damageCmd.Flags().BoolVar(&damageRoll, "roll", false, "roll the dice as well as computing the expected value")
	damageCmd.Flags().IntVar(&damageLevel, "level", 0, "override the character level")
}

type damageOptions struct {
	CharacterName string
	WeaponName    string
	Crit          bool
	Smite         bool
	SmiteLevel    int
	Roll          bool
	Level         *int
}

func runDamage(ctx context.Context, svc damage.Service, w io.Writer, opts damageOptions) error {
	if opts.Smite && (opts.SmiteLevel < dnd5e.MinSmiteLevel || opts.SmiteLevel > dnd5e.MaxSmiteLevel) {
		return errors.InvalidArgumentf("smite level must be between %d and %d, got %d",
			dnd5e.MinSmiteLevel, dnd5e.MaxSmiteLevel, opts.SmiteLevel)
	}

	weapons, err := svc.ListWeapons(ctx, &damage.ListWeaponsInput{CharacterName: opts.CharacterName})
	if err != nil {
		return err
	}
	names := make([]string, 0, len(weapons.Weapons))
	for _, weapon := range weapons.Weapons {
		names = append(names, weapon.Name)
	}
	if !slices.Contains(names, opts.WeaponName) {
		return errors.InvalidArgumentf("unknown weapon %q, choose one of: %s",
			opts.WeaponName, strings.Join(names, ", ")).
			WithMeta("weapon_name", opts.WeaponName)
	}

	out, err := svc.CalculateDamage(ctx, &damage.CalculateDamageInput{
		CharacterName: opts.CharacterName,
		WeaponName:    opts.WeaponName,
		Crit:          opts.Crit,
		SmiteLevel:    opts.SmiteLevel,
		Roll:          opts.Roll,
		Level:         opts.Level,
	})
	if err != nil {
		return err
	}

	printDamage(w, out)
	return nil
}

// exactArgs reports a wrong argument count as a usage error
func exactArgs(n int) cobra.PositionalArgs {
	return usageArgs(cobra.ExactArgs(n))
}

func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(cmd, err)
		}
		return nil
	}
}
