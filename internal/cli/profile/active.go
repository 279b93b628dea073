package profile

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newActiveCmd(envGetter EnvGetter) *cobra.Command {
	var showPassword bool

	cmd := &cobra.Command{
		Use:   "active",
		Short: "Print the active profile's settings as JSON",
		Long: `Print the config block of the active profile.

This is what the upload, sync and watch engine reads. The password is
masked unless --show-password is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envGetter()
			if err != nil {
				return err
			}

			p, err := newEditor(cmd, env).Active()
			if err != nil {
				return report(cmd, env, "", err)
			}

			settings := p.Settings
			if !showPassword {
				settings.Password = maskedPassword(settings.Password)
			}
			data, err := json.MarshalIndent(settings, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal profile %s: %w", p.Name, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showPassword, "show-password", false, "Print the password in clear text")
	return cmd
}

func maskedPassword(value string) string {
	if value == "" {
		return ""
	}
	return "********"
}
