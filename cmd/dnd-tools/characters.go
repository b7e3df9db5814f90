package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/chpatton013/dnd-tools/internal/orchestrators/damage"
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List the catalog characters",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		return runCharacters(cmd.Context(), svc, cmd.OutOrStdout())
	},
}

func runCharacters(ctx context.Context, svc damage.Service, w io.Writer) error {
	out, err := svc.ListCharacters(ctx, &damage.ListCharactersInput{})
	if err != nil {
		return err
	}

	printCharacters(w, out)
	return nil
}
