package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chpatton013/dnd-tools/internal/clients/srd"
	"github.com/chpatton013/dnd-tools/internal/errors"
)

const keySRDURL = "srd-url"

var (
	srdBonus    int
	srdCategory string
)

var srdCmd = &cobra.Command{
	Use:   "srd [weapon]",
	Short: "Show SRD weapon damage",
	Long: `Look up weapon damage in the D&D 5e SRD. With a weapon index such as
"warhammer" the one weapon is shown, otherwise the whole category is listed.`,
	Args: usageArgs(cobra.MaximumNArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := srd.New(&srd.Config{BaseURL: viper.GetString(keySRDURL)})
		if err != nil {
			return err
		}

		weaponID := ""
		if len(args) == 1 {
			weaponID = args[0]
		}
		return runSRD(cmd.Context(), client, cmd.OutOrStdout(), weaponID, srdCategory, srdBonus)
	},
}

func init() {
	srdCmd.Flags().IntVar(&srdBonus, "bonus", 0, "flat damage bonus added to each weapon")
	srdCmd.Flags().StringVar(&srdCategory, "category", srd.CategoryMartialWeapons, "equipment category to list")
	srdCmd.Flags().String(keySRDURL, "", "D&D 5e API base URL")
	if err := viper.BindPFlag(keySRDURL, srdCmd.Flags().Lookup(keySRDURL)); err != nil {
		panic(err)
	}
}

func runSRD(ctx context.Context, client srd.Client, w io.Writer, weaponID, category string, bonus int) error {
	if bonus < 0 {
		return errors.InvalidArgumentf("bonus must not be negative, got %d", bonus)
	}

	var weapons []*srd.WeaponData
	if weaponID != "" {
		weapon, err := client.GetWeapon(ctx, weaponID)
		if err != nil {
			return err
		}
		weapons = append(weapons, weapon)
	} else {
		listed, err := client.ListWeapons(ctx, category)
		if err != nil {
			return err
		}
		weapons = listed
	}

	for _, data := range weapons {
		if data.DamageDice == "" {
			fmt.Fprintf(w, "%s: no damage\n", data.Name)
			continue
		}

		weapon, err := srd.ToWeapon(data, bonus)
		if err != nil {
			return err
		}
		breakdown, err := weapon.Damage(false)
		if err != nil {
			return err
		}

		parts := make([]string, 0, breakdown.Len())
		for _, t := range breakdown.Types() {
			parts = append(parts, fmt.Sprintf("%s %s", expression(breakdown.Get(t).String()), t))
		}
		fmt.Fprintf(w, "%s: %s (%.1f), crit dice x%d\n",
			weapon.Name(), strings.Join(parts, " + "), breakdown.Expected(), weapon.CritDiceMultiplier())
	}
	return nil
}
