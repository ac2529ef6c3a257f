package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "wsb",
		Short: "CLI tool for the workout streak API",
		Long: `wsb is a CLI tool for interacting with the workout streak JSON API.

It supports logging exercise progress, resetting totals, and reading the
per-player summary and group leaderboard views.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL, cfg.AdminToken)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: WSB_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.AdminToken, "token", cfg.AdminToken, "Admin token (env: WSB_ADMIN_TOKEN)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newSummaryCmd())
	rootCmd.AddCommand(newLeaderboardCmd())
	rootCmd.AddCommand(newExercisesCmd())
	rootCmd.AddCommand(newAdminCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
