package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/fastbill-client/internal/constants"
)

// flagKeys binds persistent flags to their viper keys.
var flagKeys = map[string]string{
	"email":    "email",
	"api-key":  "api_key",
	"endpoint": "endpoint",
	"output":   "output",
	"timeout":  "timeout",
	"verbose":  "verbose",
	"debug":    "debug",
	"nats-url": "nats_url",
}

// NewRootCommand creates the fastbill command with every subcommand attached.
func NewRootCommand(version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fastbill",
		Short: "FastBill API CLI",
		Long: `A command-line interface for the FastBill accounting API.

Manage customers, projects and invoices, complete, sign and send invoices,
and list invoice templates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.fastbill/config.yml)")
	flags.String("email", "", "account e-mail address")
	flags.String("api-key", "", "account API key")
	flags.String("endpoint", "", "FastBill API URL (default "+constants.DefaultEndpoint+")")
	flags.StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.String("timeout", "", "timeout for a single API call, e.g. 30s")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.Bool("debug", false, "log HTTP requests and responses")
	flags.String("nats-url", "", "publish mutation events to this NATS server")

	for flag, key := range flagKeys {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	cmd.AddCommand(NewVersionCommand(version, commit, date))
	cmd.AddCommand(NewLoginCommand())
	cmd.AddCommand(NewLogoutCommand())
	cmd.AddCommand(NewConfigCommand())
	cmd.AddCommand(NewCustomersCommand())
	cmd.AddCommand(NewInvoicesCommand())
	cmd.AddCommand(NewProjectsCommand())
	cmd.AddCommand(NewTemplatesCommand())

	return cmd
}
