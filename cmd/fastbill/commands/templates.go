package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

// NewTemplatesCommand creates the templates command group.
func NewTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"template"},
		Short:   "List invoice templates",
		Long:    "List the invoice templates of the FastBill account",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List templates",
		Long:    "List the invoice templates of the FastBill account",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client fastbill.Client) error {
				templates, err := client.Templates().Get(ctx)
				if err != nil {
					return fmt.Errorf("failed to list templates: %w", err)
				}

				return renderRecords(cmd, templates, []string{"TEMPLATE_ID", "TEMPLATE_NAME"})
			})
		},
	})

	return cmd
}
