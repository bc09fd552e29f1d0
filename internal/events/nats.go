// Package events publishes FastBill mutation events to NATS.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/fastbill-client/internal/constants"
	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

// Conn is the part of *nats.Conn the publisher needs.
type Conn interface {
	Publish(subject string, data []byte) error
	FlushWithContext(ctx context.Context) error
}

// NATSConfig configures a NATS publisher.
type NATSConfig struct {
	// URL of the NATS server, e.g. nats://localhost:4222.
	URL string
	// SubjectPrefix is prepended to the service name. Defaults to "fastbill".
	SubjectPrefix string
	// Name identifies the connection on the server.
	Name string
	// Flush waits for the server to acknowledge each publish.
	Flush bool
}

// NATSPublisher implements fastbill.EventPublisher on a NATS connection.
type NATSPublisher struct {
	conn   Conn
	prefix string
	flush  bool
	closer func()
}

// Connect dials NATS and returns a publisher owning the connection.
func Connect(config *NATSConfig) (*NATSPublisher, error) {
	if config == nil || config.URL == "" {
		return nil, fastbill.ErrPublisherUnavailable
	}

	name := config.Name
	if name == "" {
		name = constants.DefaultUserAgent
	}

	conn, err := nats.Connect(config.URL,
		nats.Name(name),
		nats.Timeout(constants.NATSConnectTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", config.URL, err)
	}

	publisher := NewNATSPublisher(conn, config.SubjectPrefix, config.Flush)
	publisher.closer = func() {
		_ = conn.Drain()
	}

	return publisher, nil
}

// NewNATSPublisher wraps an existing connection. The caller keeps ownership
// of conn.
func NewNATSPublisher(conn Conn, prefix string, flush bool) *NATSPublisher {
	if prefix == "" {
		prefix = constants.DefaultEventSubjectPrefix
	}

	return &NATSPublisher{
		conn:   conn,
		prefix: strings.TrimSuffix(prefix, "."),
		flush:  flush,
	}
}

// Subject returns the subject an event for service is published on, e.g.
// "fastbill.invoice.complete".
func (p *NATSPublisher) Subject(service string) string {
	return p.prefix + "." + service
}

// Publish implements fastbill.EventPublisher.
func (p *NATSPublisher) Publish(ctx context.Context, event *fastbill.Event) error {
	if event == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", event.Service, err)
	}

	err = p.conn.Publish(p.Subject(event.Service), data)
	if err != nil {
		return fmt.Errorf("publishing %s event: %w", event.Service, err)
	}

	if p.flush {
		err = p.conn.FlushWithContext(ctx)
		if err != nil {
			return fmt.Errorf("flushing %s event: %w", event.Service, err)
		}
	}

	return nil
}

// Close drains the connection if the publisher owns it.
func (p *NATSPublisher) Close() {
	if p.closer != nil {
		p.closer()
	}
}

var _ fastbill.EventPublisher = (*NATSPublisher)(nil)
