// Package fbclient provides the primary entry point for constructing a
// FastBill API client that implements the fastbill.Client interface.
//
// It layers configuration and the HTTP transport on top of the resource
// interfaces and types defined in the fastbill package. Most applications
// import fbclient to build a client, then use the returned fastbill.Client to
// reach Customers(), Invoices(), Projects() and Templates().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
//	  "github.com/fivetwenty-io/fastbill-client/pkg/fbclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := fbclient.NewWithCredentials(ctx, "me@example.com", "api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or from FASTBILL_EMAIL / FASTBILL_API_KEY:
//	  cli, err = fbclient.NewFromEnv(ctx)
//	  if err != nil { log.Fatal(err) }
//
//	  invoices, err := cli.Invoices().Get(ctx, &fastbill.QueryOptions{Limit: 10})
//	  if err != nil { log.Fatal(err) }
//	  _ = invoices
//	}
//
// Events
//
// Set Config.EventPublisher to be told about every successful mutation.
// NewNATSPublisher returns a publisher that sends each event as JSON to
// NATS on "fastbill.<service>", e.g. "fastbill.invoice.complete".
package fbclient
