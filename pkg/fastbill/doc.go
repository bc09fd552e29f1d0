// Package fastbill provides types, interfaces, and helpers for working with the
// FastBill API.
//
// # Overview
//
// FastBill exposes a single endpoint that accepts a JSON payload naming a
// service (e.g. "customer.get") and answers with an envelope of the form
// {"RESPONSE": {..., "ERRORS": [...]}}. This package defines the resource
// client interfaces (CustomersClient, InvoicesClient, ProjectsClient,
// TemplatesClient), the request bodies, and the error taxonomy. A concrete
// implementation is provided by the fbclient package.
//
// Getting a client
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
//	  cli, err := fbclient.New(ctx, &fastbill.Config{Email: "me@example.com", APIKey: "..."})
//	  if err != nil { log.Fatal(err) }
//
//	  id, err := cli.Customers().Create(ctx, &fastbill.Customer{CustomerNumber: "id-1"})
//	  if err != nil { log.Fatal(err) }
//	  _ = id
//	}
//
// # Errors
//
// Every failure is an *Error with one of four kinds: connection (transport),
// invalid request (FastBill reported ERRORS or the response could not be
// parsed), type (an argument has the wrong shape) and value (an argument has
// the right shape but an unacceptable value). Type and value errors are raised
// before any request is sent. Use IsConnectionError, IsInvalidRequestError,
// IsTypeError and IsValueError to branch, and RemoteErrors to read the ERRORS
// list FastBill returned.
//
// # Bodies
//
// Create and update accept either the typed bodies of this package or a
// map[string]any using FastBill's upper-case field names. Both are checked
// with the same type guard (see TypeOf).
package fastbill
