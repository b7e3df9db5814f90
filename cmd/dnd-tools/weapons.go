package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chpatton013/dnd-tools/internal/orchestrators/damage"
)

var weaponsCmd = &cobra.Command{
	Use:   "weapons",
	Short: "List the character's weapons",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		return runWeapons(cmd.Context(), svc, cmd.OutOrStdout(), viper.GetString(keyCharacter))
	},
}

func runWeapons(ctx context.Context, svc damage.Service, w io.Writer, characterName string) error {
	out, err := svc.ListWeapons(ctx, &damage.ListWeaponsInput{CharacterName: characterName})
	if err != nil {
		return err
	}

	printWeapons(w, out)
	return nil
}
