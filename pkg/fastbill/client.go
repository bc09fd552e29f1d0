package fastbill

import (
	"context"
	"time"
)

// CustomersClient maps the customer.* services.
type CustomersClient interface {
	Get(ctx context.Context, opts *QueryOptions) ([]Record, error)
	Create(ctx context.Context, customer any) (ID, error)
	Update(ctx context.Context, id ID, modification any) (bool, error)
	Remove(ctx context.Context, id ID) (bool, error)
}

// InvoicesClient maps the invoice.* services.
type InvoicesClient interface {
	Get(ctx context.Context, opts *QueryOptions) ([]Record, error)
	Create(ctx context.Context, invoice any) (ID, error)
	Update(ctx context.Context, id ID, invoice any) (bool, error)
	Remove(ctx context.Context, id ID) (bool, error)
	Complete(ctx context.Context, id ID) (string, error)
	Cancel(ctx context.Context, id ID) (string, error)
	Sign(ctx context.Context, id ID) (int64, error)
	SetPaid(ctx context.Context, id ID, paidDate string) (string, error)
	SendByEmail(ctx context.Context, id ID, message any) (string, error)
}

// ProjectsClient maps the project.* services.
type ProjectsClient interface {
	Get(ctx context.Context, opts *QueryOptions) ([]Record, error)
	Create(ctx context.Context, project any) (ID, error)
	Update(ctx context.Context, id ID, project any) (bool, error)
	Remove(ctx context.Context, id ID) (bool, error)
}

// TemplatesClient maps the template.* services.
type TemplatesClient interface {
	Get(ctx context.Context) ([]Record, error)
}

// Client gives access to every resource client. All of them share the
// credentials the client was built with.
type Client interface {
	Customers() CustomersClient
	Invoices() InvoicesClient
	Projects() ProjectsClient
	Templates() TemplatesClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Credentials identify a FastBill account.
type Credentials struct {
	Email  string `json:"email"  validate:"required,email"`
	APIKey string `json:"apikey" validate:"required"`
}

// Event describes a successful mutation.
type Event struct {
	// Service is the remote operation, e.g. "invoice.complete".
	Service    string    `json:"service"`
	ID         ID        `json:"id,omitempty"`
	Result     any       `json:"result,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher receives an Event after every successful mutation.
type EventPublisher interface {
	Publish(ctx context.Context, event *Event) error
}

// Config represents client configuration for building a Client.
//
// Only Email and APIKey are required. Every call makes exactly one attempt
// unless RetryMax is set; per-call deadlines come from the context passed to
// each method, HTTPTimeout bounds every request regardless.
type Config struct {
	// Email is the account e-mail address used for Basic auth.
	Email string `envconfig:"EMAIL"`
	// APIKey is the account API key used for Basic auth.
	APIKey string `envconfig:"API_KEY"`
	// Endpoint overrides the FastBill API URL.
	Endpoint string `envconfig:"ENDPOINT"`

	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT"`
	RetryMax     int           `envconfig:"RETRY_MAX"`
	RetryWaitMin time.Duration `envconfig:"RETRY_WAIT_MIN"`
	RetryWaitMax time.Duration `envconfig:"RETRY_WAIT_MAX"`
	// Debug enables request/response logging when a Logger is provided.
	Debug     bool   `envconfig:"DEBUG"`
	UserAgent string `envconfig:"USER_AGENT"`
	// VerifyOnInit issues a template.get while building the client so bad
	// credentials fail early.
	VerifyOnInit bool `envconfig:"VERIFY_ON_INIT"`

	Logger         Logger         `ignored:"true"`
	EventPublisher EventPublisher `ignored:"true"`
}

// Credentials returns the credentials part of the config.
func (c *Config) Credentials() Credentials {
	return Credentials{Email: c.Email, APIKey: c.APIKey}
}
