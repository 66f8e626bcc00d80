package commands

import (
	"github.com/spf13/cobra"

	"github.com/cory-johannsen/handodds/internal/game/deck"
)

func newProfileCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile <file.yaml>",
		Short: "Calculate the odds for a deck profile file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := deck.LoadFile(args[0])
			if err != nil {
				return err
			}
			breakdown, _ := cmd.Flags().GetBool(flagBreakdown)
			return e.report(cmd.OutOrStdout(), p, breakdown)
		},
	}
	cmd.Flags().Bool(flagBreakdown, false, "list every card-count combination that satisfies the requirements")
	return cmd
}

func newProfilesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles <dir> [name...]",
		Short: "Calculate the odds for every *.yaml deck profile in a directory, or only the named ones",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := deck.LoadDirectory(args[0])
			if err != nil {
				return err
			}
			profiles, err := reg.Select(args[1:]...)
			if err != nil {
				return err
			}
			for _, p := range profiles {
				if err := e.report(cmd.OutOrStdout(), p, false); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
