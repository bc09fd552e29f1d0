package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	return newResourceCommand(ResourceCommandConfig{
		Use:     "projects",
		Aliases: []string{"project", "proj"},
		Short:   "Manage projects",
		Long:    "List, create, update and delete FastBill projects",
		Noun:    "project",
		IDField: "PROJECT_ID",
		Columns: []string{"PROJECT_ID", "PROJECT_NUMBER", "PROJECT_NAME", "CUSTOMER_ID", "HOUR_PRICE"},
		Select: func(client fastbill.Client) recordClient {
			return client.Projects()
		},
	})
}
