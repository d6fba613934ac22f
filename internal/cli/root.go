// Package cli wires the portfolio commands: the API server, the web
// frontend, content seeding and the live message feed.
package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Each call returns a fresh tree so tests
// can run commands in isolation.
func NewRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Personal portfolio site with an admin content panel",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if len(envFiles) == 0 {
				// .env is optional in production
				_ = godotenv.Load()
				return nil
			}
			if err := godotenv.Load(envFiles...); err != nil {
				return fmt.Errorf("load env files: %w", err)
			}
			return nil
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "env files to load instead of .env")

	root.AddCommand(
		newServeCmd(),
		newWebCmd(),
		newSeedCmd(),
		newMessagesCmd(),
	)
	return root
}
