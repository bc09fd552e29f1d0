package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/fastbill-client/internal/constants"
	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

// NewInvoicesCommand creates the invoices command group.
func NewInvoicesCommand() *cobra.Command {
	cmd := newResourceCommand(ResourceCommandConfig{
		Use:     "invoices",
		Aliases: []string{"invoice", "inv"},
		Short:   "Manage invoices",
		Long:    "List, create, update, complete, sign, send and delete FastBill invoices",
		Noun:    "invoice",
		IDField: "INVOICE_ID",
		Columns: []string{"INVOICE_ID", "INVOICE_NUMBER", "TYPE", "CUSTOMER_ID", "INVOICE_DATE", "TOTAL", "PAID_DATE"},
		Select: func(client fastbill.Client) recordClient {
			return client.Invoices()
		},
	})

	cmd.AddCommand(newInvoiceNumberCommand("complete", "Complete a draft invoice",
		"Turn a draft invoice into a final invoice and print its invoice number",
		func(ctx context.Context, invoices fastbill.InvoicesClient, id fastbill.ID) (string, error) {
			return invoices.Complete(ctx, id)
		}))
	cmd.AddCommand(newInvoiceNumberCommand("cancel", "Cancel an invoice",
		"Cancel a completed invoice and print its invoice number",
		func(ctx context.Context, invoices fastbill.InvoicesClient, id fastbill.ID) (string, error) {
			return invoices.Cancel(ctx, id)
		}))
	cmd.AddCommand(newInvoicesSignCommand())
	cmd.AddCommand(newInvoicesSetPaidCommand())
	cmd.AddCommand(newInvoicesSendCommand())

	return cmd
}

type invoiceNumberFunc func(context.Context, fastbill.InvoicesClient, fastbill.ID) (string, error)

func newInvoiceNumberCommand(use, short, long string, action invoiceNumberFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " INVOICE_ID",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(constants.IDArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, client fastbill.Client) error {
				number, err := action(ctx, client.Invoices(), id)
				if err != nil {
					return fmt.Errorf("failed to %s invoice %d: %w", use, id, err)
				}

				return renderFields(cmd,
					Field{Name: "INVOICE_ID", Value: id},
					Field{Name: "INVOICE_NUMBER", Value: number},
				)
			})
		},
	}
}

func newInvoicesSignCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sign INVOICE_ID",
		Short: "Sign an invoice",
		Long:  "Digitally sign an invoice and print the remaining signature credits",
		Args:  cobra.ExactArgs(constants.IDArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, client fastbill.Client) error {
				credits, err := client.Invoices().Sign(ctx, id)
				if err != nil {
					return fmt.Errorf("failed to sign invoice %d: %w", id, err)
				}

				return renderFields(cmd,
					Field{Name: "INVOICE_ID", Value: id},
					Field{Name: "REMAINING_CREDITS", Value: credits},
				)
			})
		},
	}
}

func newInvoicesSetPaidCommand() *cobra.Command {
	var paidDate string

	cmd := &cobra.Command{
		Use:   "set-paid INVOICE_ID",
		Short: "Mark an invoice as paid",
		Long:  "Mark an invoice as paid, on --date (YYYY-MM-DD) or today when omitted",
		Args:  cobra.ExactArgs(constants.IDArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, client fastbill.Client) error {
				number, err := client.Invoices().SetPaid(ctx, id, paidDate)
				if err != nil {
					return fmt.Errorf("failed to mark invoice %d as paid: %w", id, err)
				}

				return renderFields(cmd,
					Field{Name: "INVOICE_ID", Value: id},
					Field{Name: "INVOICE_NUMBER", Value: number},
				)
			})
		},
	}

	cmd.Flags().StringVar(&paidDate, "date", "", "payment date (YYYY-MM-DD)")

	return cmd
}

func newInvoicesSendCommand() *cobra.Command {
	var (
		recipient fastbill.Recipient
		message   fastbill.EmailMessage
		confirm   bool
	)

	cmd := &cobra.Command{
		Use:   "send INVOICE_ID",
		Short: "Send an invoice by e-mail",
		Long:  "Send an invoice by e-mail through FastBill",
		Args:  cobra.ExactArgs(constants.IDArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if recipient.To == "" {
				return constants.ErrRecipientNeeded
			}

			message.Recipient = &recipient
			if confirm {
				message.ReceiptConfirmation = 1
			}

			return withClient(cmd, func(ctx context.Context, client fastbill.Client) error {
				number, err := client.Invoices().SendByEmail(ctx, id, &message)
				if err != nil {
					return fmt.Errorf("failed to send invoice %d: %w", id, err)
				}

				return renderFields(cmd,
					Field{Name: "INVOICE_ID", Value: id},
					Field{Name: "INVOICE_NUMBER", Value: number},
					Field{Name: "TO", Value: recipient.To},
				)
			})
		},
	}

	cmd.Flags().StringVar(&recipient.To, "to", "", "recipient address (required)")
	cmd.Flags().StringVar(&recipient.Cc, "cc", "", "carbon copy address")
	cmd.Flags().StringVar(&recipient.Bcc, "bcc", "", "blind carbon copy address")
	cmd.Flags().StringVar(&message.Subject, "subject", "", "e-mail subject")
	cmd.Flags().StringVar(&message.Text, "message", "", "e-mail text")
	cmd.Flags().BoolVar(&confirm, "receipt-confirmation", false, "request a read receipt")

	return cmd
}
