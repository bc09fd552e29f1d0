package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
	"github.com/fivetwenty-io/fastbill-client/pkg/fbclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var noVerify bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to FastBill",
		Long:  "Store FastBill credentials after checking them against the API. Missing --email and --api-key values are prompted for.",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			email := viper.GetString("email")
			if email == "" {
				_, _ = fmt.Fprint(out, "E-mail: ")
				email = readLine(reader)
			}

			apiKey := viper.GetString("api_key")
			if apiKey == "" {
				_, _ = fmt.Fprint(out, "API key: ")

				key, err := readSecret(reader)
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = key

				_, _ = fmt.Fprintln(out)
			}

			endpoint := viper.GetString("endpoint")

			clientConfig := &fastbill.Config{
				Email:        email,
				APIKey:       apiKey,
				Endpoint:     endpoint,
				VerifyOnInit: !noVerify,
			}

			_, err := fbclient.New(commandContext(cmd), clientConfig)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			config := loadConfig()
			config.Email = email
			config.APIKey = apiKey
			config.Endpoint = endpoint

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			viper.Set("email", email)
			viper.Set("api_key", apiKey)
			viper.Set("endpoint", endpoint)

			_, _ = fmt.Fprintf(out, "Logged in as %s\n", email)

			return nil
		},
	}

	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "store the credentials without checking them")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from FastBill",
		Long:  "Remove the stored FastBill credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Email = ""
			config.APIKey = ""

			err := saveConfigStruct(config)
			if err != nil {
				return err
			}

			viper.Set("email", "")
			viper.Set("api_key", "")

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')

	return strings.TrimSpace(line)
}

// readSecret reads without echo from a terminal and falls back to a plain
// line read when stdin is piped.
func readSecret(reader *bufio.Reader) (string, error) {
	fd := int(syscall.Stdin) //nolint:unconvert // syscall.Stdin is not an int on every platform

	if term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		if err != nil {
			return "", err
		}

		return strings.TrimSpace(string(secret)), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	return strings.TrimSpace(line), nil
}
