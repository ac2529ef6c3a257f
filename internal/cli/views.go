package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSummaryCmd() *cobra.Command {
	var playerID int64

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show a player's progress across all exercises",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Summary

			path := fmt.Sprintf("/api/v1/players/%d/summary", playerID)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&playerID, "player", 0, "Player id (required)")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the group leaderboard across all players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Leaderboard

			if err := client.Get("/api/v1/leaderboard", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newExercisesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exercises",
		Short: "List the seeded exercise catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Exercise

			if err := client.Get("/api/v1/exercises", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
