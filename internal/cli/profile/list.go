package profile

import (
	"fmt"

	"github.com/danieljhkim/davos/internal/util"
	"github.com/spf13/cobra"
)

func newListCmd(envGetter EnvGetter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all profiles",
		Long:  `List all profiles in the configuration file, marking the active one.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envGetter()
			if err != nil {
				return err
			}

			entries, err := newEditor(cmd, env).List()
			if err != nil {
				return report(cmd, env, "", err)
			}

			out := cmd.OutOrStdout()
			for _, entry := range entries {
				line := util.Colorf(out, util.StyleProfile, "%s", entry.Name)
				if entry.Active {
					line += util.Colorf(out, util.StyleActive, " <--- active")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	return cmd
}
