package fbclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
	"github.com/fivetwenty-io/fastbill-client/pkg/fbclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := fbclient.New(context.Background(), &fastbill.Config{
			Email:  "test@test.com",
			APIKey: "abc123",
		})
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.NotNil(t, client.Invoices())
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := fbclient.New(context.Background(), nil)
		require.Error(t, err)
		assert.True(t, fastbill.IsTypeError(err))
	})

	t.Run("missing api key", func(t *testing.T) {
		t.Parallel()

		_, err := fbclient.New(context.Background(), &fastbill.Config{Email: "test@test.com"})
		require.Error(t, err)
		assert.True(t, fastbill.IsValueError(err))
	})

	t.Run("talks to the configured endpoint", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "test@test.com", user)
			assert.Equal(t, "abc123", pass)

			_, _ = w.Write([]byte(`{"RESPONSE":{"CUSTOMER_ID":42}}`))
		}))
		defer server.Close()

		client, err := fbclient.New(context.Background(), &fastbill.Config{
			Email:    "test@test.com",
			APIKey:   "abc123",
			Endpoint: server.URL,
		})
		require.NoError(t, err)

		id, err := client.Customers().Create(context.Background(), &fastbill.Customer{CustomerNumber: "id-1"})
		require.NoError(t, err)
		assert.Equal(t, fastbill.ID(42), id)
	})

	t.Run("caller config is not modified", func(t *testing.T) {
		t.Parallel()

		config := &fastbill.Config{Email: "test@test.com", APIKey: "abc123", Endpoint: "fastbill.example.com/api.php"}

		_, err := fbclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.Equal(t, "fastbill.example.com/api.php", config.Endpoint)
	})
}

func TestNewWithCredentials(t *testing.T) {
	t.Parallel()

	client, err := fbclient.NewWithCredentials(context.Background(), "test@test.com", "abc123")
	require.NoError(t, err)
	assert.NotNil(t, client)

	_, err = fbclient.NewWithCredentials(context.Background(), "not-an-address", "abc123")
	require.Error(t, err)
	assert.True(t, fastbill.IsValueError(err))
}

//nolint:paralleltest // t.Setenv
func TestConfigFromEnv(t *testing.T) {
	t.Setenv("FASTBILL_EMAIL", "env@test.com")
	t.Setenv("FASTBILL_API_KEY", "env-key")
	t.Setenv("FASTBILL_ENDPOINT", "https://sandbox.example.com/api.php")
	t.Setenv("FASTBILL_HTTP_TIMEOUT", "15s")
	t.Setenv("FASTBILL_RETRY_MAX", "2")
	t.Setenv("FASTBILL_DEBUG", "true")

	config, err := fbclient.ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "env@test.com", config.Email)
	assert.Equal(t, "env-key", config.APIKey)
	assert.Equal(t, "https://sandbox.example.com/api.php", config.Endpoint)
	assert.Equal(t, 15*time.Second, config.HTTPTimeout)
	assert.Equal(t, 2, config.RetryMax)
	assert.True(t, config.Debug)

	client, err := fbclient.NewFromEnv(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, client)
}

//nolint:paralleltest // t.Setenv
func TestConfigFromEnv_Invalid(t *testing.T) {
	t.Setenv("FASTBILL_RETRY_MAX", "many")

	_, err := fbclient.ConfigFromEnv()
	require.Error(t, err)
	assert.True(t, fastbill.IsValueError(err))
}

func TestNewNATSPublisher_RequiresURL(t *testing.T) {
	t.Parallel()

	_, err := fbclient.NewNATSPublisher("", "")
	require.ErrorIs(t, err, fastbill.ErrPublisherUnavailable)
}
