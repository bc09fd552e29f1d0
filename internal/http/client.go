// Package http is the transport used by the FastBill client: one POST per
// call, response body fully buffered.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fivetwenty-io/fastbill-client/internal/constants"
	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
	"github.com/hashicorp/go-retryablehttp"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client posts request bodies to a single URI.
type Client struct {
	uri        string
	httpClient *retryablehttp.Client
	logger     Logger
	debug      bool
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// Request is a single POST.
type Request struct {
	Headers map[string]string
	Body    []byte
}

// Response is the buffered answer to a Request.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
		c.httpClient.Logger = &leveledLogger{logger: logger}
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds every attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables retries on connection errors, 429 and 5xx.
// Without it every call makes exactly one attempt.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// NewClient creates a transport posting to uri.
func NewClient(uri string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	// Hand back the last response instead of a "giving up" error.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		uri:        uri,
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// URI returns the endpoint the client posts to.
func (c *Client) URI() string {
	return c.uri
}

// Post sends body with headers.
func (c *Client) Post(ctx context.Context, headers map[string]string, body []byte) (*Response, error) {
	return c.Do(ctx, &Request{Headers: headers, Body: body})
}

// Do performs req. Any failure to get a response is a connection error; the
// status code is not interpreted here.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	body := req.Body
	if body == nil {
		body = []byte{}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.uri, body)
	if err != nil {
		return nil, fastbill.NewConnectionError(constants.MsgCommunicationError, fmt.Errorf("creating request: %w", err))
	}

	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": http.MethodPost,
			"uri":    c.uri,
			"bytes":  len(body),
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("HTTP request failed", map[string]interface{}{
				"uri":   c.uri,
				"error": err.Error(),
			})
		}

		return nil, fastbill.NewConnectionError(constants.MsgCommunicationError, err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fastbill.NewConnectionError(constants.MsgCommunicationError, fmt.Errorf("reading response body: %w", err))
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.logger != nil {
		fields := map[string]interface{}{
			"status_code": resp.StatusCode,
			"bytes":       len(respBody),
			"duration":    time.Since(start).String(),
		}

		switch {
		case resp.StatusCode >= http.StatusBadRequest:
			c.logger.Warn("HTTP Response", fields)
		case c.debug:
			c.logger.Debug("HTTP Response", fields)
		}
	}

	return resp, nil
}

// leveledLogger adapts Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, toFields(keysAndValues))
}

func toFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}

var _ retryablehttp.LeveledLogger = (*leveledLogger)(nil)
