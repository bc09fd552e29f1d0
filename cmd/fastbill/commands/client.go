package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/fastbill-client/internal/constants"
	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
	"github.com/fivetwenty-io/fastbill-client/pkg/fbclient"
)

// CreateClient builds a FastBill client from the CLI configuration. The
// returned cleanup closes the event publisher, if any, and is never nil.
func CreateClient(ctx context.Context) (fastbill.Client, func(), error) {
	config := loadConfig()

	if config.Email == "" || config.APIKey == "" {
		return nil, func() {}, constants.ErrNoCredentials
	}

	clientConfig, err := buildClientConfig(config)
	if err != nil {
		return nil, func() {}, err
	}

	cleanup := func() {}

	if config.NATSURL != "" {
		publisher, err := fbclient.NewNATSPublisher(config.NATSURL, config.NATSSubjectPrefix)
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to connect to NATS: %w", err)
		}

		clientConfig.EventPublisher = publisher
		cleanup = publisher.Close
	}

	client, err := fbclient.New(ctx, clientConfig)
	if err != nil {
		cleanup()

		return nil, func() {}, err
	}

	return client, cleanup, nil
}

func buildClientConfig(config *Config) (*fastbill.Config, error) {
	timeout := constants.DefaultHTTPTimeout

	if config.Timeout != "" {
		parsed, err := time.ParseDuration(config.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", config.Timeout, err)
		}

		timeout = parsed
	}

	clientConfig := &fastbill.Config{
		Email:       config.Email,
		APIKey:      config.APIKey,
		Endpoint:    config.Endpoint,
		HTTPTimeout: timeout,
		RetryMax:    config.RetryMax,
		UserAgent:   constants.DefaultUserAgent + "-cli",
	}

	if viper.GetBool("verbose") || viper.GetBool("debug") {
		level := ParseLevel(config.LogLevel)
		if viper.GetBool("debug") {
			level = zerolog.DebugLevel
		}

		clientConfig.Logger = NewLogger(os.Stderr, level, true)
		clientConfig.Debug = viper.GetBool("debug")
	}

	return clientConfig, nil
}
