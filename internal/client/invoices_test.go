package client

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

func TestInvoicesClient_Get(t *testing.T) {
	t.Parallel()

	fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"INVOICES":[{"INVOICE_ID":"5","TOTAL":"119.00"}]}}`))
	client := NewTestClient(t, fake.Server.URL, nil)

	invoices, err := client.Invoices().Get(context.Background(), &fastbill.QueryOptions{
		Filter: map[string]any{"CUSTOMER_ID": 12},
	})
	require.NoError(t, err)
	require.Len(t, invoices, 1)

	total, err := invoices[0].Decimal("TOTAL")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("119").Equal(total))

	assert.JSONEq(t, `{"service":"invoice.get","filter":{"CUSTOMER_ID":12}}`, fake.LastRawBody(t))
}

func TestInvoicesClient_Create(t *testing.T) {
	t.Parallel()

	t.Run("typed invoice", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"STATUS":"success","INVOICE_ID":77}}`))
		client := NewTestClient(t, fake.Server.URL, nil)

		id, err := client.Invoices().Create(context.Background(), &fastbill.Invoice{
			CustomerID: 12,
			Items: []fastbill.InvoiceItem{{
				Description: "Fancy sweater",
				Quantity:    1,
				UnitPrice:   decimal.RequireFromString("12.50"),
				VATPercent:  decimal.RequireFromString("19"),
			}},
		})
		require.NoError(t, err)
		assert.Equal(t, fastbill.ID(77), id)

		data := fake.LastData(t)
		assert.InDelta(t, 12, data["CUSTOMER_ID"], 0)
		items, ok := data["ITEMS"].([]any)
		require.True(t, ok)
		require.Len(t, items, 1)
		assert.Equal(t, "12.5", items[0].(map[string]any)["UNIT_PRICE"])
	})

	tests := []struct {
		name    string
		invoice any
	}{
		{name: "not an object", invoice: "invoice"},
		{name: "nil invoice lacks items", invoice: nil},
		{name: "missing items", invoice: map[string]any{"CUSTOMER_ID": 1}},
		{name: "missing customer", invoice: map[string]any{"ITEMS": []any{}}},
		{name: "customer id is a string", invoice: map[string]any{"CUSTOMER_ID": "1", "ITEMS": []any{}}},
		{name: "items is a string", invoice: map[string]any{"CUSTOMER_ID": 1, "ITEMS": "x"}},
		{name: "typed without items", invoice: &fastbill.Invoice{CustomerID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"INVOICE_ID":77}}`))
			client := NewTestClient(t, fake.Server.URL, nil)

			_, err := client.Invoices().Create(context.Background(), tt.invoice)
			require.Error(t, err)
			assert.True(t, fastbill.IsTypeError(err))
			assert.Zero(t, fake.Requests())
		})
	}
}

func TestInvoicesClient_Update(t *testing.T) {
	t.Parallel()

	fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"STATUS":"success"}}`))
	client := NewTestClient(t, fake.Server.URL, nil)

	ok, err := client.Invoices().Update(context.Background(), 5, &fastbill.Invoice{InvoiceTitle: "Q3"})
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, map[string]any{"INVOICE_ID": float64(5), "INVOICE_TITLE": "Q3"}, fake.LastData(t))
}

func TestInvoicesClient_Actions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		service string
		call    func(context.Context, fastbill.InvoicesClient) (any, error)
		want    any
	}{
		{
			name:    "complete",
			service: "invoice.complete",
			call: func(ctx context.Context, c fastbill.InvoicesClient) (any, error) {
				return c.Complete(ctx, 5)
			},
			want: "2024-17",
		},
		{
			name:    "cancel",
			service: "invoice.cancel",
			call: func(ctx context.Context, c fastbill.InvoicesClient) (any, error) {
				return c.Cancel(ctx, 5)
			},
			want: "2024-17",
		},
		{
			name:    "sign",
			service: "invoice.sign",
			call: func(ctx context.Context, c fastbill.InvoicesClient) (any, error) {
				return c.Sign(ctx, 5)
			},
			want: int64(8),
		},
		{
			name:    "remove",
			service: "invoice.delete",
			call: func(ctx context.Context, c fastbill.InvoicesClient) (any, error) {
				return c.Remove(ctx, 5)
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"INVOICE_NUMBER":"2024-17","REMAINING_CREDITS":8}}`))
			client := NewTestClient(t, fake.Server.URL, nil)

			got, err := tt.call(context.Background(), client.Invoices())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			assert.Equal(t, tt.service, fake.LastPayload(t)["service"])
			assert.Equal(t, map[string]any{"INVOICE_ID": float64(5)}, fake.LastData(t))
		})
	}
}

func TestInvoicesClient_SetPaid(t *testing.T) {
	t.Parallel()

	t.Run("with date", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"INVOICE_NUMBER":18}}`))
		client := NewTestClient(t, fake.Server.URL, nil)

		number, err := client.Invoices().SetPaid(context.Background(), 5, "2024-10-01")
		require.NoError(t, err)
		assert.Equal(t, "18", number)
		assert.Equal(t, map[string]any{"INVOICE_ID": float64(5), "PAID_DATE": "2024-10-01"}, fake.LastData(t))
	})

	t.Run("without date sends null", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"INVOICE_NUMBER":"18"}}`))
		client := NewTestClient(t, fake.Server.URL, nil)

		_, err := client.Invoices().SetPaid(context.Background(), 5, "")
		require.NoError(t, err)
		assert.JSONEq(t, `{"service":"invoice.setpaid","data":{"INVOICE_ID":5,"PAID_DATE":null}}`, fake.LastRawBody(t))
	})
}

func TestInvoicesClient_SendByEmail(t *testing.T) {
	t.Parallel()

	t.Run("typed message", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"INVOICE_NUMBER":"2024-17"}}`))
		publisher := &RecordingPublisher{}
		client := NewTestClient(t, fake.Server.URL, publisher)

		number, err := client.Invoices().SendByEmail(context.Background(), 5, &fastbill.EmailMessage{
			Recipient: &fastbill.Recipient{To: "a@b.com", Cc: "c@d.com"},
			Subject:   "Your invoice",
			Text:      "Please find attached",
		})
		require.NoError(t, err)
		assert.Equal(t, "2024-17", number)

		assert.Equal(t, map[string]any{
			"INVOICE_ID": float64(5),
			"RECIPIENT":  map[string]any{"TO": "a@b.com", "CC": "c@d.com"},
			"SUBJECT":    "Your invoice",
			"MESSAGE":    "Please find attached",
		}, fake.LastData(t))

		events := publisher.Events()
		require.Len(t, events, 1)
		assert.Equal(t, "invoice.sendbyemail", events[0].Service)
		assert.Equal(t, "2024-17", events[0].Result)
	})

	t.Run("map message", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"INVOICE_NUMBER":"2024-18"}}`))
		client := NewTestClient(t, fake.Server.URL, nil)

		number, err := client.Invoices().SendByEmail(context.Background(), 1, map[string]any{
			"recipient":            map[string]any{"to": "a@b.com", "bcc": "x@y.com"},
			"subject":              "s",
			"text":                 "hi",
			"receipt_confirmation": 1,
		})
		require.NoError(t, err)
		assert.Equal(t, "2024-18", number)

		assert.Equal(t, map[string]any{
			"INVOICE_ID":           float64(1),
			"RECIPIENT":            map[string]any{"TO": "a@b.com", "BCC": "x@y.com"},
			"SUBJECT":              "s",
			"MESSAGE":              "hi",
			"RECEIPT_CONFIRMATION": float64(1),
		}, fake.LastData(t))
	})

	t.Run("recipient only", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"INVOICE_NUMBER":"2024-18"}}`))
		client := NewTestClient(t, fake.Server.URL, nil)

		_, err := client.Invoices().SendByEmail(context.Background(), 1, map[string]any{
			"recipient": map[string]any{"to": "a@b.com"},
		})
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"service":"invoice.sendbyemail","data":{"INVOICE_ID":1,"RECIPIENT":{"TO":"a@b.com"}}}`,
			fake.LastRawBody(t))
	})

	t.Run("named string address", func(t *testing.T) {
		t.Parallel()

		type address string

		to := address("a@b.com")
		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"INVOICE_NUMBER":"2024-18"}}`))
		client := NewTestClient(t, fake.Server.URL, nil)

		_, err := client.Invoices().SendByEmail(context.Background(), 1, map[string]any{
			"recipient": map[string]any{"to": &to},
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"TO": "a@b.com"}, fake.LastData(t)["RECIPIENT"])
	})

	tests := []struct {
		name      string
		message   any
		typeError bool
	}{
		{name: "message not an object", message: "hello", typeError: true},
		{name: "nil message", message: nil, typeError: true},
		{name: "missing recipient", message: map[string]any{"subject": "x"}, typeError: true},
		{name: "upper-case recipient", message: map[string]any{"RECIPIENT": map[string]any{"TO": "a@b.com"}}, typeError: true},
		{name: "recipient not an object", message: map[string]any{"recipient": "a@b.com"}, typeError: true},
		{name: "missing to", message: map[string]any{"recipient": map[string]any{"cc": "a@b.com"}}, typeError: true},
		{name: "to not a string", message: map[string]any{"recipient": map[string]any{"to": 1}}, typeError: true},
		{name: "typed without to", message: &fastbill.EmailMessage{Recipient: &fastbill.Recipient{}}, typeError: true},
		{name: "to not an address", message: map[string]any{"recipient": map[string]any{"to": "nobody"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"INVOICE_NUMBER":"1"}}`))
			client := NewTestClient(t, fake.Server.URL, nil)

			_, err := client.Invoices().SendByEmail(context.Background(), 5, tt.message)
			require.Error(t, err)

			if tt.typeError {
				assert.True(t, fastbill.IsTypeError(err))
			} else {
				assert.True(t, fastbill.IsValueError(err))
				assert.Contains(t, err.Error(), "message.recipient.to")
			}

			assert.Zero(t, fake.Requests())
		})
	}
}
