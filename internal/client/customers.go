package client

import (
	"github.com/fivetwenty-io/fastbill-client/internal/constants"
	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

// CustomersClient implements fastbill.CustomersClient.
type CustomersClient struct {
	*ResourceClient
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(api Requester, events *Emitter) *CustomersClient {
	return &CustomersClient{
		ResourceClient: newResourceClient(api, events,
			constants.ScopeCustomer, "customer", constants.FieldCustomers, constants.FieldCustomerID),
	}
}

var _ fastbill.CustomersClient = (*CustomersClient)(nil)
