package profile

import (
	"errors"

	"github.com/danieljhkim/davos/internal/cartridge"
	"github.com/danieljhkim/davos/internal/config"
	"github.com/danieljhkim/davos/internal/editor"
	"github.com/danieljhkim/davos/internal/prompt"
	"github.com/danieljhkim/davos/internal/util"
	"github.com/spf13/cobra"
)

// EnvGetter is a function that returns the resolved environment
type EnvGetter func() (*config.Env, error)

// NewCommands creates the profile commands, registered at the top level
func NewCommands(envGetter EnvGetter) []*cobra.Command {
	return []*cobra.Command{
		newCreateCmd(envGetter),
		newInsertCmd(envGetter),
		newListCmd(envGetter),
		newEditCmd(envGetter),
		newSwitchCmd(envGetter),
		newActiveCmd(envGetter),
	}
}

func newEditor(cmd *cobra.Command, env *config.Env) *editor.Editor {
	return editor.New(editor.Options{
		Store:    env.Store(),
		Scanner:  cartridge.NewScanner(env.Settings.CartridgeMarker),
		Prompter: prompt.NewTerminal(cmd.InOrStdin(), cmd.ErrOrStderr()),
		WorkDir:  env.Paths.WorkDir,
		Defaults: env.Settings.Defaults,
	})
}

// profileFlagNoValue is what --profile holds when given without a value.
// "-P acme" then leaves acme as the first argument.
const profileFlagNoValue = "<none>"

var errEmptyProfileFlag = errors.New("no profile given to --profile")

// profileArg returns the profile named by --profile, or else the first argument.
func profileArg(cmd *cobra.Command, args []string) (string, error) {
	name, _ := cmd.Flags().GetString("profile")
	if name == profileFlagNoValue {
		if len(args) == 0 {
			return "", errEmptyProfileFlag
		}
		return args[0], nil
	}
	if name != "" {
		return name, nil
	}
	if len(args) > 0 {
		return args[0], nil
	}
	return "", nil
}

func addProfileFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("profile", "P", "", "Name of the profile")
	cmd.Flags().Lookup("profile").NoOptDefVal = profileFlagNoValue
}

// report turns user-level failures into a message and a clean exit.
// Anything else is returned to cobra.
func report(cmd *cobra.Command, env *config.Env, name string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, editor.ErrConfigAlreadyExists):
		util.Warn("Configuration already exists.")
	case errors.Is(err, editor.ErrNoCartridgesFound):
		util.Warn("No cartridges found in %s and its subdirectories.", env.Paths.WorkDir)
	case errors.Is(err, editor.ErrDuplicateProfile):
		util.Warn("%v. Profile names are taken from the hostname up to the first '-'.", err)
	case errors.Is(err, errEmptyProfileFlag):
		util.Warn("Please specify a profile.")
	case errors.Is(err, editor.ErrMissingProfileArgument):
		util.Warn("Use %s --profile or -P [profile name].", cmd.Name())
	case errors.Is(err, editor.ErrProfileNotFound):
		util.Error("Cannot find %s profile.", name)
	case errors.Is(err, config.ErrConfigNotFound):
		util.Error("Cannot find configuration in [%s].", env.Paths.WorkDir)
		return err
	default:
		return err
	}
	return nil
}
