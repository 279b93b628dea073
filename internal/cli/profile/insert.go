package profile

import (
	"github.com/danieljhkim/davos/internal/util"
	"github.com/spf13/cobra"
)

func newInsertCmd(envGetter EnvGetter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Add a new profile to the configuration file",
		Long: `Add a new profile to the configuration file.

The profile name is the hostname up to its first '-'. The new profile is
inactive unless no other profile is active.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envGetter()
			if err != nil {
				return err
			}

			p, err := newEditor(cmd, env).Insert(cmd.Context())
			if err != nil {
				return report(cmd, env, "", err)
			}

			util.Success("%s inserted successfully.", p.Name)
			return nil
		},
	}

	return cmd
}
