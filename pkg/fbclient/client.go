package fbclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/fivetwenty-io/fastbill-client/internal/client"
	"github.com/fivetwenty-io/fastbill-client/internal/events"
	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

// EnvPrefix is the prefix of the environment variables read by ConfigFromEnv.
const EnvPrefix = "FASTBILL"

// New creates a new FastBill API client.
func New(ctx context.Context, config *fastbill.Config) (fastbill.Client, error) {
	if config == nil {
		return nil, fastbill.NewTypeError("config: expected object, got undefined", fastbill.ErrConfigRequired)
	}

	normalized := *config

	// Normalize endpoint
	if normalized.Endpoint != "" {
		endpoint := strings.TrimSpace(normalized.Endpoint)
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}

		normalized.Endpoint = endpoint
	}

	// Use the internal client implementation
	c, err := client.New(ctx, &normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithCredentials creates a new client for the default endpoint.
func NewWithCredentials(ctx context.Context, email, apiKey string) (fastbill.Client, error) {
	return New(ctx, &fastbill.Config{
		Email:  email,
		APIKey: apiKey,
	})
}

// ConfigFromEnv reads a Config from FASTBILL_* environment variables, e.g.
// FASTBILL_EMAIL, FASTBILL_API_KEY, FASTBILL_ENDPOINT and FASTBILL_RETRY_MAX.
func ConfigFromEnv() (*fastbill.Config, error) {
	var config fastbill.Config

	err := envconfig.Process(EnvPrefix, &config)
	if err != nil {
		return nil, fastbill.NewValueError("reading environment", err)
	}

	return &config, nil
}

// NewFromEnv creates a client configured from the environment.
func NewFromEnv(ctx context.Context) (fastbill.Client, error) {
	config, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}

	return New(ctx, config)
}

// NATSPublisher publishes mutation events to NATS. Close it when done.
type NATSPublisher = events.NATSPublisher

// NewNATSPublisher connects to the NATS server at url. Events are published
// on "<prefix>.<service>"; an empty prefix means "fastbill".
func NewNATSPublisher(url, prefix string) (*NATSPublisher, error) {
	return events.Connect(&events.NATSConfig{URL: url, SubjectPrefix: prefix})
}
