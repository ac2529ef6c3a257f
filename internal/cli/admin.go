package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Privileged maintenance commands",
	}

	cmd.AddCommand(newAdminResetCmd())

	return cmd
}

func newAdminResetCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all player data and re-seed the exercise catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				return fmt.Errorf("refusing to wipe all data without --yes")
			}

			if err := client.Post("/api/v1/admin/reset", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("All player data wiped, catalog re-seeded")
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "yes", false, "Confirm the wipe")

	return cmd
}
