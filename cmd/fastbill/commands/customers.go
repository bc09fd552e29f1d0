package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	return newResourceCommand(ResourceCommandConfig{
		Use:     "customers",
		Aliases: []string{"customer", "cust"},
		Short:   "Manage customers",
		Long:    "List, create, update and delete FastBill customers",
		Noun:    "customer",
		IDField: "CUSTOMER_ID",
		Columns: []string{"CUSTOMER_ID", "CUSTOMER_NUMBER", "ORGANIZATION", "FIRST_NAME", "LAST_NAME", "EMAIL"},
		Select: func(client fastbill.Client) recordClient {
			return client.Customers()
		},
	})
}
