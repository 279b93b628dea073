package profile

import (
	"github.com/danieljhkim/davos/internal/util"
	"github.com/spf13/cobra"
)

func newSwitchCmd(envGetter EnvGetter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "switch [profile-name]",
		Short: "Switch to a specified profile",
		Long: `Make a profile the active one.

Examples:
  davos switch --profile beta
  davos switch beta`,
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
			p, err := newEditor(cmd, env).Switch(name)
			if err != nil {
				return report(cmd, env, name, err)
			}

			util.Success("Switched to %s. It is now your active profile.", p.Name)
			return nil
		},
	}

	addProfileFlag(cmd)
	return cmd
}
