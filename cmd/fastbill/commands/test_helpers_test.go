package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/fastbill-client/internal/client"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func subcommandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}

	return names
}

// setupCLI resets viper, points it at a fake FastBill and a temporary
// config file, and selects JSON output.
func setupCLI(t *testing.T, respond func(map[string]any) string) *client.FakeFastBill {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	fake := client.NewFakeFastBill(t, respond)

	viper.SetConfigFile(filepath.Join(t.TempDir(), "config.yml"))
	viper.Set("email", client.TestEmail)
	viper.Set("api_key", client.TestAPIKey)
	viper.Set("endpoint", fake.Server.URL)
	viper.Set("output", "json")

	return fake
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	return executeWithInput(t, "", args...)
}

func executeWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand("1.2.3", "abc", "today")

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(bytes.NewBufferString(input))
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}
