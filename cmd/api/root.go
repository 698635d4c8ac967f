package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// newRootCmd serves by default; subcommands cover the rest.
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "task-manager-api",
		Short:         "Task management HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env is optional; real environment variables win
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default $CONFIG_PATH or ./configs/config.local.yaml)")

	root.AddCommand(newServeCmd(&configPath), newRoutesCmd())
	return root
}
