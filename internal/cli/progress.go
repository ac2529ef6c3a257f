package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	var playerID int64
	var firstName, username string

	cmd := &cobra.Command{
		Use:   "log <alias> <amount>",
		Short: "Log exercise progress for a player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var amount int64
			if _, err := fmt.Sscanf(args[1], "%d", &amount); err != nil {
				return fmt.Errorf("amount must be an integer")
			}

			req := map[string]any{
				"player_id":  playerID,
				"first_name": firstName,
				"username":   username,
				"alias":      args[0],
				"amount":     amount,
			}
			var result Progress

			if err := client.Post("/api/v1/progress", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&playerID, "player", 0, "Player id (required)")
	cmd.Flags().StringVar(&firstName, "name", "", "Player first name")
	cmd.Flags().StringVar(&username, "user", "", "Player username")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newResetCmd() *cobra.Command {
	var playerID int64
	var firstName, username string

	cmd := &cobra.Command{
		Use:   "reset <alias>",
		Short: "Reset a player's total for one exercise to zero",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"first_name": firstName,
				"username":   username,
				"alias":      args[0],
			}

			path := fmt.Sprintf("/api/v1/players/%d/reset", playerID)
			if err := client.Post(path, req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Reset %s for player %d", args[0], playerID))
			return nil
		},
	}

	cmd.Flags().Int64Var(&playerID, "player", 0, "Player id (required)")
	cmd.Flags().StringVar(&firstName, "name", "", "Player first name")
	cmd.Flags().StringVar(&username, "user", "", "Player username")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}
