package profile

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danieljhkim/davos/internal/config"
	"github.com/danieljhkim/davos/internal/util"
	"github.com/spf13/cobra"
)

type result struct {
	out string // command stdout
	log string // util log lines
	err error
}

func executeCommand(t *testing.T, workDir, input string, cmdArgs ...string) result {
	t.Helper()

	env, err := config.LoadEnv(workDir)
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}

	root := &cobra.Command{Use: "davos", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(NewCommands(func() (*config.Env, error) { return env, nil })...)

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	restore := util.SetOutput(logs)
	defer restore()

	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(input))
	root.SetArgs(cmdArgs)

	err = root.Execute()
	return result{out: out.String(), log: logs.String(), err: err}
}

func withCartridges(t *testing.T, dirs ...string) string {
	t.Helper()
	workDir := t.TempDir()
	for _, dir := range dirs {
		full := filepath.Join(workDir, dir)
		if err := os.MkdirAll(full, 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(full, ".project"), nil, 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return workDir
}

func loadProfiles(t *testing.T, workDir string) config.Collection {
	t.Helper()
	profiles, err := config.NewStore(filepath.Join(workDir, config.DefaultConfigName)).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return profiles
}

func TestCreateCommand_WritesConfiguration(t *testing.T) {
	workDir := withCartridges(t, "app_core")

	res := executeCommand(t, workDir, "acme-dev\nu\np\n\n\n", "create")
	if res.err != nil {
		t.Fatalf("create returned error: %v", res.err)
	}
	if !strings.Contains(res.log, "with profile acme") {
		t.Fatalf("missing success message:\n%s", res.log)
	}

	profiles := loadProfiles(t, workDir)
	if len(profiles) != 1 || !profiles[0].Active || profiles[0].Name != "acme" {
		t.Fatalf("profiles = %+v", profiles)
	}
	if got := profiles[0].Settings.Exclude; len(got) != 1 || got[0] != "**/node_modules/**" {
		t.Fatalf("exclude = %q", got)
	}
}

func TestCreateCommand_NoCartridges(t *testing.T) {
	workDir := t.TempDir()

	res := executeCommand(t, workDir, "", "create")
	if res.err != nil {
		t.Fatalf("create returned error: %v", res.err)
	}
	if !strings.Contains(res.log, "No cartridges found") {
		t.Fatalf("missing notice:\n%s", res.log)
	}
	if _, err := os.Stat(filepath.Join(workDir, config.DefaultConfigName)); !os.IsNotExist(err) {
		t.Fatalf("configuration should not be created")
	}
}

func TestCreateCommand_AlreadyExists(t *testing.T) {
	workDir := withCartridges(t, "app")
	if res := executeCommand(t, workDir, "acme-dev\nu\np\n\n\n", "create"); res.err != nil {
		t.Fatalf("first create: %v", res.err)
	}

	res := executeCommand(t, workDir, "", "create")
	if res.err != nil {
		t.Fatalf("create returned error: %v", res.err)
	}
	if !strings.Contains(res.log, "Configuration already exists.") {
		t.Fatalf("missing notice:\n%s", res.log)
	}
}

func TestCreateCommand_CancelledPromptFails(t *testing.T) {
	workDir := withCartridges(t, "app")

	res := executeCommand(t, workDir, "acme-dev\n", "create")
	if res.err == nil {
		t.Fatalf("expected prompt error")
	}
	if _, err := os.Stat(filepath.Join(workDir, config.DefaultConfigName)); !os.IsNotExist(err) {
		t.Fatalf("configuration should not be created")
	}
}

func TestInsertAndSwitchCommands(t *testing.T) {
	workDir := withCartridges(t, "app")
	if res := executeCommand(t, workDir, "acme-dev\nu\np\n\n\n", "create"); res.err != nil {
		t.Fatalf("create: %v", res.err)
	}

	res := executeCommand(t, workDir, "beta-dev\nu\np\n\n\n", "insert")
	if res.err != nil {
		t.Fatalf("insert: %v", res.err)
	}
	if !strings.Contains(res.log, "beta inserted successfully.") {
		t.Fatalf("missing insert message:\n%s", res.log)
	}

	res = executeCommand(t, workDir, "", "switch", "--profile", "beta")
	if res.err != nil {
		t.Fatalf("switch: %v", res.err)
	}
	if !strings.Contains(res.log, "Switched to beta.") {
		t.Fatalf("missing switch message:\n%s", res.log)
	}

	profiles := loadProfiles(t, workDir)
	if profiles[0].Active || !profiles[1].Active {
		t.Fatalf("profiles = %+v", profiles)
	}
}

func TestInsertCommand_Duplicate(t *testing.T) {
	workDir := withCartridges(t, "app")
	executeCommand(t, workDir, "acme-dev\nu\np\n\n\n", "create")

	res := executeCommand(t, workDir, "acme-prod\nu\np\n\n\n", "insert")
	if res.err != nil {
		t.Fatalf("insert returned error: %v", res.err)
	}
	if !strings.Contains(res.log, "profile already exists: acme") {
		t.Fatalf("missing duplicate notice:\n%s", res.log)
	}
	if n := len(loadProfiles(t, workDir)); n != 1 {
		t.Fatalf("profiles = %d, want 1", n)
	}
}

func TestListCommand(t *testing.T) {
	workDir := withCartridges(t, "app")
	executeCommand(t, workDir, "acme-dev\nu\np\n\n\n", "create")
	executeCommand(t, workDir, "beta-dev\nu\np\n\n\n", "insert")

	res := executeCommand(t, workDir, "", "list")
	if res.err != nil {
		t.Fatalf("list: %v", res.err)
	}
	want := "acme <--- active\nbeta\n"
	if res.out != want {
		t.Fatalf("list output = %q, want %q", res.out, want)
	}
}

func TestListCommand_MissingConfiguration(t *testing.T) {
	workDir := t.TempDir()

	res := executeCommand(t, workDir, "", "list")
	if res.err == nil {
		t.Fatalf("expected error for missing configuration")
	}
	if !strings.Contains(res.log, "Cannot find configuration in") {
		t.Fatalf("missing notice:\n%s", res.log)
	}
}

func TestEditCommand(t *testing.T) {
	workDir := withCartridges(t, "app")
	executeCommand(t, workDir, "acme-dev\nu\np\n\n\n", "create")

	res := executeCommand(t, workDir, "acme2-dev\nu2\np2\nversion2\n\n", "edit", "-P", "acme")
	if res.err != nil {
		t.Fatalf("edit: %v", res.err)
	}

	profiles := loadProfiles(t, workDir)
	if profiles[0].Name != "acme2" || !profiles[0].Active || profiles[0].Settings.CodeVersion != "version2" {
		t.Fatalf("profiles = %+v", profiles)
	}
}

func TestEditAndSwitchCommands_ProfileErrors(t *testing.T) {
	workDir := withCartridges(t, "app")
	executeCommand(t, workDir, "acme-dev\nu\np\n\n\n", "create")
	before, err := os.ReadFile(filepath.Join(workDir, config.DefaultConfigName))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"edit"}, "Use edit --profile or -P [profile name]."},
		{[]string{"switch"}, "Use switch --profile or -P [profile name]."},
		{[]string{"edit", "--profile", "delta"}, "Cannot find delta profile."},
		{[]string{"switch", "delta"}, "Cannot find delta profile."},
		{[]string{"edit", "-P"}, "Please specify a profile."},
		{[]string{"switch", "--profile"}, "Please specify a profile."},
		{[]string{"switch", "-P", "delta"}, "Cannot find delta profile."},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			res := executeCommand(t, workDir, "", tt.args...)
			if res.err != nil {
				t.Fatalf("returned error: %v", res.err)
			}
			if !strings.Contains(res.log, tt.want) {
				t.Fatalf("missing %q:\n%s", tt.want, res.log)
			}

			after, err := os.ReadFile(filepath.Join(workDir, config.DefaultConfigName))
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if !bytes.Equal(before, after) {
				t.Fatalf("document changed")
			}
		})
	}
}

func TestActiveCommand(t *testing.T) {
	workDir := withCartridges(t, "app")
	executeCommand(t, workDir, "acme-dev\nu\nsecret\n\n\n", "create")

	tests := []struct {
		name     string
		args     []string
		password string
	}{
		{"masked", []string{"active"}, "********"},
		{"clear text", []string{"active", "--show-password"}, "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := executeCommand(t, workDir, "", tt.args...)
			if res.err != nil {
				t.Fatalf("active: %v", res.err)
			}

			var settings config.Settings
			if err := json.Unmarshal([]byte(res.out), &settings); err != nil {
				t.Fatalf("output is not JSON: %v\n%s", err, res.out)
			}
			if settings.Hostname != "acme-dev" || settings.Password != tt.password {
				t.Fatalf("settings = %+v", settings)
			}
			if len(settings.Cartridges) != 1 || settings.Cartridges[0] != "app" {
				t.Fatalf("cartridges = %q", settings.Cartridges)
			}
		})
	}
}
