package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/fastbill-client/internal/constants"
	"github.com/fivetwenty-io/fastbill-client/internal/http"
	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

// Client implements the fastbill.Client interface.
type Client struct {
	api    *API
	events *Emitter
	logger fastbill.Logger

	// Resource clients
	customers *CustomersClient
	invoices  *InvoicesClient
	projects  *ProjectsClient
	templates *TemplatesClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *fastbill.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a FastBill client. The config is checked before anything is
// built: a nil config is a type error, missing or malformed credentials are
// value errors.
func New(ctx context.Context, config *fastbill.Config) (*Client, error) {
	if config == nil {
		return nil, fastbill.NewTypeError("config: expected object, got undefined", fastbill.ErrConfigRequired)
	}

	credentials := config.Credentials()

	err := fastbill.ValidateStruct(credentials)
	if err != nil {
		return nil, err
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = constants.DefaultEndpoint
	}

	httpClient := http.NewClient(endpoint, createHTTPClientOptions(config)...)

	client := &Client{
		api:    NewAPI(httpClient, credentials),
		events: NewEmitter(config.EventPublisher, config.Logger),
		logger: config.Logger,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	if config.VerifyOnInit {
		_, err = client.templates.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("verifying credentials: %w", err)
		}
	}

	return client, nil
}

// NewWithRequester creates a client whose resource clients all send through
// requester. Used to put a fake FastBill behind the resource clients.
func NewWithRequester(requester Requester, publisher fastbill.EventPublisher, logger fastbill.Logger) *Client {
	client := &Client{
		events: NewEmitter(publisher, logger),
		logger: logger,
	}

	client.initializeWith(requester)

	return client
}

func (c *Client) initializeResourceClients() {
	c.initializeWith(c.api)
}

func (c *Client) initializeWith(requester Requester) {
	c.customers = NewCustomersClient(requester, c.events)
	c.invoices = NewInvoicesClient(requester, c.events)
	c.projects = NewProjectsClient(requester, c.events)
	c.templates = NewTemplatesClient(requester)
}

// Endpoint returns the URI every request is posted to.
func (c *Client) Endpoint() string {
	if c.api == nil {
		return ""
	}

	return c.api.URI()
}

// Resource client accessors

// Customers implements fastbill.Client.Customers.
func (c *Client) Customers() fastbill.CustomersClient {
	return c.customers
}

// Invoices implements fastbill.Client.Invoices.
func (c *Client) Invoices() fastbill.InvoicesClient {
	return c.invoices
}

// Projects implements fastbill.Client.Projects.
func (c *Client) Projects() fastbill.ProjectsClient {
	return c.projects
}

// Templates implements fastbill.Client.Templates.
func (c *Client) Templates() fastbill.TemplatesClient {
	return c.templates
}

// loggerAdapter adapts fastbill.Logger to http.Logger.
type loggerAdapter struct {
	logger fastbill.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}

var _ fastbill.Client = (*Client)(nil)
