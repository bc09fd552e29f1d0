package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/fastbill-client/internal/constants"
)

// Config represents the CLI configuration stored in ~/.fastbill/config.yml.
type Config struct {
	Email    string `json:"email,omitempty"    yaml:"email,omitempty"`
	APIKey   string `json:"api_key,omitempty"  yaml:"api_key,omitempty"`
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// Global settings
	Output   string `json:"output"              yaml:"output"`
	Timeout  string `json:"timeout,omitempty"   yaml:"timeout,omitempty"`
	RetryMax int    `json:"retry_max,omitempty" yaml:"retry_max,omitempty"`
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty"`

	// Event publishing
	NATSURL           string `json:"nats_url,omitempty"            yaml:"nats_url,omitempty"`
	NATSSubjectPrefix string `json:"nats_subject_prefix,omitempty" yaml:"nats_subject_prefix,omitempty"`
}

// configKeys maps config keys to their setters. Keys match the viper keys,
// the FASTBILL_* environment variables and the YAML field names.
var configKeys = map[string]func(*Config, string) error{
	"email":    func(c *Config, v string) error { c.Email = v; return nil },
	"api_key":  func(c *Config, v string) error { c.APIKey = v; return nil },
	"endpoint": func(c *Config, v string) error { c.Endpoint = v; return nil },
	"output": func(c *Config, v string) error {
		switch v {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML, "":
			c.Output = v

			return nil
		default:
			return fmt.Errorf("%w: output must be table, json or yaml", constants.ErrUnknownConfigKey)
		}
	},
	"timeout":   func(c *Config, v string) error { c.Timeout = v; return nil },
	"log_level": func(c *Config, v string) error { c.LogLevel = v; return nil },
	"retry_max": func(c *Config, v string) error {
		if v == "" {
			c.RetryMax = 0

			return nil
		}

		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("retry_max must be a number: %w", err)
		}

		c.RetryMax = n

		return nil
	},
	"nats_url":            func(c *Config, v string) error { c.NATSURL = v; return nil },
	"nats_subject_prefix": func(c *Config, v string) error { c.NATSSubjectPrefix = v; return nil },
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage FastBill CLI configuration including credentials and settings",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with the API key masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.APIKey = maskSecret(config.APIKey)

			switch viper.GetString("output") {
			case constants.FormatJSON:
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")

				return encoder.Encode(config)
			case constants.FormatYAML:
				return yaml.NewEncoder(cmd.OutOrStdout()).Encode(config)
			default:
				return displayConfigTable(cmd, config)
			}
		},
	}
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Get a configuration value",
		Long:  "Print a single configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			if _, ok := configKeys[key]; !ok {
				return fmt.Errorf("%w: '%s'", constants.ErrUnknownConfigKey, key)
			}

			if key == "api_key" {
				return constants.ErrSecretsNotVisible
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), viper.GetString(key))

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(configKeyNames(), ", "),
		Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfigValue(cmd, args[0], args[1], "Set")
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a specific configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfigValue(cmd, args[0], "", "Unset")
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove all configuration settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(configFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			for key := range configKeys {
				viper.Set(key, "")
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cleared all configuration")

			return nil
		},
	}
}

func updateConfigValue(cmd *cobra.Command, key, value, verb string) error {
	setter, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("%w: '%s' (valid keys: %s)", constants.ErrUnknownConfigKey, key, strings.Join(configKeyNames(), ", "))
	}

	config := loadConfig()

	err := setter(config, value)
	if err != nil {
		return err
	}

	err = saveConfigStruct(config)
	if err != nil {
		return err
	}

	viper.Set(key, value)

	if key == "api_key" {
		value = maskSecret(value)
	}

	if verb == "Unset" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", key)
	} else {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	}

	return nil
}

func configKeyNames() []string {
	names := make([]string, 0, len(configKeys))
	for key := range configKeys {
		names = append(names, key)
	}

	sort.Strings(names)

	return names
}

func displayConfigTable(cmd *cobra.Command, config *Config) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Property", "Value")

	_ = table.Append("Email", config.Email)
	_ = table.Append("API Key", config.APIKey)
	_ = table.Append("Endpoint", valueOr(config.Endpoint, constants.DefaultEndpoint))
	_ = table.Append("Output", valueOr(config.Output, constants.FormatTable))
	_ = table.Append("Timeout", valueOr(config.Timeout, constants.DefaultHTTPTimeout.String()))
	_ = table.Append("Retry Max", strconv.Itoa(config.RetryMax))
	_ = table.Append("Log Level", valueOr(config.LogLevel, "info"))
	_ = table.Append("NATS URL", config.NATSURL)
	_ = table.Append("NATS Subject Prefix", valueOr(config.NATSSubjectPrefix, constants.DefaultEventSubjectPrefix))

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func loadConfig() *Config {
	return &Config{
		Email:             viper.GetString("email"),
		APIKey:            viper.GetString("api_key"),
		Endpoint:          viper.GetString("endpoint"),
		Output:            viper.GetString("output"),
		Timeout:           viper.GetString("timeout"),
		RetryMax:          viper.GetInt("retry_max"),
		LogLevel:          viper.GetString("log_level"),
		NATSURL:           viper.GetString("nats_url"),
		NATSSubjectPrefix: viper.GetString("nats_subject_prefix"),
	}
}

func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".fastbill", "config.yml"), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func maskSecret(secret string) string {
	const visible = 4

	if len(secret) <= visible {
		return strings.Repeat("*", len(secret))
	}

	return strings.Repeat("*", len(secret)-visible) + secret[len(secret)-visible:]
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
