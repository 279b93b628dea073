package profile

import (
	"github.com/danieljhkim/davos/internal/util"
	"github.com/spf13/cobra"
)

func newEditCmd(envGetter EnvGetter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [profile-name]",
		Short: "Edit a profile in the configuration file",
		Long: `Edit a profile in the configuration file.

All fields are asked again and cartridges are rediscovered. The profile
is renamed after the new hostname and keeps its active flag.

Examples:
  davos edit --profile acme
  davos edit -P acme`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envGetter()
			if err != nil {
				return err
			}

			name, err := profileArg(cmd, args)
			if err != nil {
				return report(cmd, env, name, err)
			}
			p, err := newEditor(cmd, env).Edit(cmd.Context(), name)
			if err != nil {
				return report(cmd, env, name, err)
			}

			util.Success("Successfully updated profile %s.", p.Name)
			return nil
		},
	}

	addProfileFlag(cmd)
	return cmd
}
