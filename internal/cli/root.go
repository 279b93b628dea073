package cli

import (
	"github.com/danieljhkim/davos/internal/cli/profile"
	"github.com/danieljhkim/davos/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Each call has its own flag state, so
// tests can execute commands in isolation.
func NewRootCmd() *cobra.Command {
	var (
		basePath string
		env      *config.Env
	)

	// getEnv resolves the working directory once per invocation.
	// This is passed to subcommands as a getter function
	getEnv := func() (*config.Env, error) {
		if env != nil {
			return env, nil
		}
		loaded, err := config.LoadEnv(basePath)
		if err != nil {
			return nil, err
		}
		env = loaded
		return env, nil
	}

	rootCmd := &cobra.Command{
		Use:   "davos",
		Short: "Manage sandbox connection profiles",
		Long: `davos: manage sandbox connection profiles for cartridge deployment.

Profiles live in dw.json in the working directory. Exactly one profile is
active; its settings are what the upload, sync and watch engine uses.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&basePath, "base-path", "", "Working directory holding cartridges and the configuration (default: current directory)")

	rootCmd.AddCommand(profile.NewCommands(getEnv)...)

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() error {
	return NewRootCmd().Execute()
}
