package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

// Test static errors.
var (
	ErrTestSomeError = errors.New("some error")
)

// Test credentials; "test@test.com:abc123" in Basic auth.
const (
	TestEmail      = "test@test.com"
	TestAPIKey     = "abc123"
	TestAuthHeader = "Basic dGVzdEB0ZXN0LmNvbTphYmMxMjM="
)

// FakeFastBill is an httptest server that plays the FastBill endpoint. It
// records every payload and answers with the body returned by Respond.
type FakeFastBill struct {
	Server *httptest.Server

	mu       sync.Mutex
	payloads []map[string]any
	raw      []string
	headers  []http.Header
}

// NewFakeFastBill starts a fake endpoint. respond gets the decoded payload
// (nil for an empty body) and returns the raw response body.
func NewFakeFastBill(t *testing.T, respond func(payload map[string]any) string) *FakeFastBill {
	t.Helper()

	fake := &FakeFastBill{}
	fake.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var payload map[string]any
		if len(body) > 0 {
			assert.NoError(t, json.Unmarshal(body, &payload))
		}

		fake.mu.Lock()
		fake.payloads = append(fake.payloads, payload)
		fake.raw = append(fake.raw, string(body))
		fake.headers = append(fake.headers, r.Header.Clone())
		fake.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(respond(payload)))
	}))
	t.Cleanup(fake.Server.Close)

	return fake
}

// Respond returns a fixed response body for every request.
func Respond(body string) func(map[string]any) string {
	return func(map[string]any) string {
		return body
	}
}

// Requests returns the number of requests received.
func (f *FakeFastBill) Requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.payloads)
}

// LastPayload returns the last decoded payload.
func (f *FakeFastBill) LastPayload(t *testing.T) map[string]any {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()

	require.NotEmpty(t, f.payloads, "no request received")

	return f.payloads[len(f.payloads)-1]
}

// LastRawBody returns the last request body as sent.
func (f *FakeFastBill) LastRawBody(t *testing.T) string {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()

	require.NotEmpty(t, f.raw, "no request received")

	return f.raw[len(f.raw)-1]
}

// LastHeaders returns the headers of the last request.
func (f *FakeFastBill) LastHeaders(t *testing.T) http.Header {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()

	require.NotEmpty(t, f.headers, "no request received")

	return f.headers[len(f.headers)-1]
}

// LastData returns the data object of the last payload.
func (f *FakeFastBill) LastData(t *testing.T) map[string]any {
	t.Helper()

	data, ok := f.LastPayload(t)["data"].(map[string]any)
	require.True(t, ok, "payload has no data object")

	return data
}

// NewTestClient creates a client with test credentials posting to endpoint.
func NewTestClient(t *testing.T, endpoint string, publisher fastbill.EventPublisher) *Client {
	t.Helper()

	client, err := New(context.Background(), &fastbill.Config{
		Email:          TestEmail,
		APIKey:         TestAPIKey,
		Endpoint:       endpoint,
		EventPublisher: publisher,
	})
	require.NoError(t, err)

	return client
}

// RecordingPublisher collects published events. Err, when set, is returned
// from every Publish.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []fastbill.Event
	Err    error
}

// Publish implements fastbill.EventPublisher.
func (p *RecordingPublisher) Publish(_ context.Context, event *fastbill.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, *event)

	return p.Err
}

// Events returns the published events.
func (p *RecordingPublisher) Events() []fastbill.Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]fastbill.Event(nil), p.events...)
}

// RecordingLogger collects log messages by level.
type RecordingLogger struct {
	mu      sync.Mutex
	entries []string
}

func (l *RecordingLogger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, level+": "+msg)
}

// Debug implements fastbill.Logger.
func (l *RecordingLogger) Debug(msg string, _ map[string]interface{}) { l.record("debug", msg) }

// Info implements fastbill.Logger.
func (l *RecordingLogger) Info(msg string, _ map[string]interface{}) { l.record("info", msg) }

// Warn implements fastbill.Logger.
func (l *RecordingLogger) Warn(msg string, _ map[string]interface{}) { l.record("warn", msg) }

// Error implements fastbill.Logger.
func (l *RecordingLogger) Error(msg string, _ map[string]interface{}) { l.record("error", msg) }

// Entries returns "level: message" strings in order.
func (l *RecordingLogger) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.entries...)
}
