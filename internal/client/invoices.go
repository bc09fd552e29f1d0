package client

import (
	"context"
	"strings"

	"github.com/fivetwenty-io/fastbill-client/internal/constants"
	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

// InvoicesClient implements fastbill.InvoicesClient.
type InvoicesClient struct {
	*ResourceClient
}

// NewInvoicesClient creates a new invoices client.
func NewInvoicesClient(api Requester, events *Emitter) *InvoicesClient {
	return &InvoicesClient{
		ResourceClient: newResourceClient(api, events,
			constants.ScopeInvoice, "invoice", constants.FieldInvoices, constants.FieldInvoiceID),
	}
}

// Create implements fastbill.InvoicesClient.Create. The invoice needs ITEMS
// and a numeric CUSTOMER_ID; a nil invoice counts as an empty object.
func (c *InvoicesClient) Create(ctx context.Context, invoice any) (fastbill.ID, error) {
	data, err := toObject(c.noun, bodyOrEmpty(invoice))
	if err != nil {
		return 0, err
	}

	_, err = field(data, constants.FieldItems, constants.FieldItems, fastbill.KindObject)
	if err != nil {
		return 0, err
	}

	_, err = field(data, constants.FieldCustomerID, constants.FieldCustomerID, fastbill.KindNumber)
	if err != nil {
		return 0, err
	}

	return c.create(ctx, data)
}

// Complete implements fastbill.InvoicesClient.Complete and returns the
// assigned invoice number.
func (c *InvoicesClient) Complete(ctx context.Context, id fastbill.ID) (string, error) {
	return c.numbered(ctx, constants.OpComplete, id, c.idData(id))
}

// Cancel implements fastbill.InvoicesClient.Cancel.
func (c *InvoicesClient) Cancel(ctx context.Context, id fastbill.ID) (string, error) {
	return c.numbered(ctx, constants.OpCancel, id, c.idData(id))
}

// Sign implements fastbill.InvoicesClient.Sign and returns the remaining
// signature credits.
func (c *InvoicesClient) Sign(ctx context.Context, id fastbill.ID) (int64, error) {
	service := c.Service(constants.OpSign)

	resp, err := c.call(ctx, &Payload{Service: service, Data: c.idData(id)})
	if err != nil {
		return 0, err
	}

	credits, err := resp.Int64(constants.FieldRemainingCredits)
	if err != nil {
		return 0, fastbill.NewInvalidRequestError(constants.MsgInvalidRequest, err)
	}

	c.events.emit(ctx, service, id, credits)

	return credits, nil
}

// SetPaid implements fastbill.InvoicesClient.SetPaid. An empty paidDate is
// sent as null and FastBill uses the current date.
func (c *InvoicesClient) SetPaid(ctx context.Context, id fastbill.ID, paidDate string) (string, error) {
	var paid any
	if paidDate != "" {
		paid = paidDate
	}

	data := c.idData(id)
	data[constants.FieldPaidDate] = paid

	return c.numbered(ctx, constants.OpSetPaid, id, data)
}

// SendByEmail implements fastbill.InvoicesClient.SendByEmail. message uses
// the keys recipient, subject, text and receipt_confirmation; recipient must
// be an object whose to is an e-mail address. They are sent as RECIPIENT,
// SUBJECT, MESSAGE and RECEIPT_CONFIRMATION.
func (c *InvoicesClient) SendByEmail(ctx context.Context, id fastbill.ID, message any) (string, error) {
	object, err := toObject("message", message)
	if err != nil {
		return "", err
	}

	label := "message." + constants.MessageRecipient

	recipientValue, err := field(object, constants.MessageRecipient, label, fastbill.KindObject)
	if err != nil {
		return "", err
	}

	recipient, err := toObject(label, recipientValue)
	if err != nil {
		return "", err
	}

	label += "." + constants.MessageRecipientTo

	to, err := stringField(recipient, constants.MessageRecipientTo, label)
	if err != nil {
		return "", err
	}

	err = fastbill.ValidateEmail(label, to)
	if err != nil {
		return "", err
	}

	data := c.idData(id)
	data[constants.FieldRecipient] = wireRecipient(recipient)

	for key, wireKey := range messageKeys {
		if value, ok := object[key]; ok {
			data[wireKey] = value
		}
	}

	return c.numbered(ctx, constants.OpSendByEmail, id, data)
}

// messageKeys maps optional message keys to their wire names.
var messageKeys = map[string]string{
	constants.MessageSubject:             constants.FieldSubject,
	constants.MessageText:                constants.FieldMessage,
	constants.MessageReceiptConfirmation: constants.FieldReceiptConfirm,
}

// wireRecipient upper-cases the recipient keys, e.g. to becomes TO.
func wireRecipient(recipient map[string]any) map[string]any {
	wire := make(map[string]any, len(recipient))
	for key, value := range recipient {
		wire[strings.ToUpper(key)] = value
	}

	return wire
}

func (c *InvoicesClient) idData(id fastbill.ID) map[string]any {
	return map[string]any{constants.FieldInvoiceID: id}
}

// numbered runs an invoice action that answers with INVOICE_NUMBER.
func (c *InvoicesClient) numbered(ctx context.Context, op string, id fastbill.ID, data map[string]any) (string, error) {
	service := c.Service(op)

	resp, err := c.call(ctx, &Payload{Service: service, Data: data})
	if err != nil {
		return "", err
	}

	number, err := resp.String(constants.FieldInvoiceNumber)
	if err != nil {
		return "", fastbill.NewInvalidRequestError(constants.MsgInvalidRequest, err)
	}

	c.events.emit(ctx, service, id, number)

	return number, nil
}

var _ fastbill.InvoicesClient = (*InvoicesClient)(nil)
