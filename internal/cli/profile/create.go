package profile

import (
	"github.com/danieljhkim/davos/internal/util"
	"github.com/spf13/cobra"
)

func newCreateCmd(envGetter EnvGetter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the configuration file",
		Long: `Create the configuration file with a first, active profile.

Cartridges are discovered by looking for .project descriptors below the
working directory. The command refuses to overwrite an existing file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envGetter()
			if err != nil {
				return err
			}

			p, err := newEditor(cmd, env).Create(cmd.Context())
			if err != nil {
				return report(cmd, env, "", err)
			}

			util.Success("Created %s with profile %s (%d cartridges).", env.Paths.ConfigFile(), p.Name, len(p.Settings.Cartridges))
			return nil
		},
	}

	return cmd
}
