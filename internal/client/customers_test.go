package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

func TestCustomersClient_Get(t *testing.T) {
	t.Parallel()

	t.Run("nil options send no filter limit or offset", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"CUSTOMERS":[{"CUSTOMER_ID":"1","ORGANIZATION":"ACME"}]}}`))
		client := NewTestClient(t, fake.Server.URL, nil)

		customers, err := client.Customers().Get(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, "ACME", customers[0].String("ORGANIZATION"))

		assert.JSONEq(t, `{"service":"customer.get"}`, fake.LastRawBody(t))
	})

	t.Run("options are passed through", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"CUSTOMERS":[]}}`))
		client := NewTestClient(t, fake.Server.URL, nil)

		customers, err := client.Customers().Get(context.Background(), &fastbill.QueryOptions{
			Filter: map[string]any{"CUSTOMER_NUMBER": "id-1"},
			Limit:  5,
			Offset: 10,
		})
		require.NoError(t, err)
		assert.Empty(t, customers)

		payload := fake.LastPayload(t)
		assert.Equal(t, "customer.get", payload["service"])
		assert.Equal(t, map[string]any{"CUSTOMER_NUMBER": "id-1"}, payload["filter"])
		assert.InDelta(t, 5, payload["limit"], 0)
		assert.InDelta(t, 10, payload["offset"], 0)
	})

	t.Run("zero limit and offset are omitted", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"CUSTOMERS":[]}}`))
		client := NewTestClient(t, fake.Server.URL, nil)

		_, err := client.Customers().Get(context.Background(), &fastbill.QueryOptions{Limit: 0, Offset: 0})
		require.NoError(t, err)
		assert.JSONEq(t, `{"service":"customer.get"}`, fake.LastRawBody(t))
	})

	t.Run("negative limit is a value error", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{}}`))
		client := NewTestClient(t, fake.Server.URL, nil)

		_, err := client.Customers().Get(context.Background(), &fastbill.QueryOptions{Limit: -1})
		require.Error(t, err)
		assert.True(t, fastbill.IsValueError(err))
		assert.Zero(t, fake.Requests())
	})
}

func TestCustomersClient_Create(t *testing.T) {
	t.Parallel()

	t.Run("map body", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"STATUS":"success","CUSTOMER_ID":42}}`))
		client := NewTestClient(t, fake.Server.URL, nil)

		body := map[string]any{"CUSTOMER_NUMBER": "id-1", "CUSTOMER_TYPE": "business"}

		id, err := client.Customers().Create(context.Background(), body)
		require.NoError(t, err)
		assert.Equal(t, fastbill.ID(42), id)

		payload := fake.LastPayload(t)
		assert.Equal(t, "customer.create", payload["service"])
		assert.Equal(t, map[string]any{"CUSTOMER_NUMBER": "id-1", "CUSTOMER_TYPE": "business"}, payload["data"])
	})

	t.Run("typed body", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"CUSTOMER_ID":"7"}}`))
		client := NewTestClient(t, fake.Server.URL, nil)

		id, err := client.Customers().Create(context.Background(), &fastbill.Customer{
			CustomerNumber: "id-7",
			Organization:   "ACME",
		})
		require.NoError(t, err)
		assert.Equal(t, fastbill.ID(7), id)
		assert.Equal(t, map[string]any{"CUSTOMER_NUMBER": "id-7", "ORGANIZATION": "ACME"}, fake.LastData(t))
	})

	t.Run("nil body sends an empty object", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"CUSTOMER_ID":42}}`))
		client := NewTestClient(t, fake.Server.URL, nil)

		id, err := client.Customers().Create(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, fastbill.ID(42), id)
		assert.JSONEq(t, `{"service":"customer.create","data":{}}`, fake.LastRawBody(t))

		var customer *fastbill.Customer

		_, err = client.Customers().Create(context.Background(), customer)
		require.NoError(t, err)
		assert.JSONEq(t, `{"service":"customer.create","data":{}}`, fake.LastRawBody(t))
	})

	t.Run("non-object body issues no request", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"CUSTOMER_ID":42}}`))
		client := NewTestClient(t, fake.Server.URL, nil)

		for _, body := range []any{"customer", 42, true, []string{"a"}} {
			_, err := client.Customers().Create(context.Background(), body)
			require.Error(t, err)
			assert.True(t, fastbill.IsTypeError(err), "body %#v", body)
		}

		assert.Zero(t, fake.Requests())
	})
}

func TestCustomersClient_Update(t *testing.T) {
	t.Parallel()

	fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"STATUS":"success","CUSTOMER_ID":"3"}}`))
	publisher := &RecordingPublisher{}
	client := NewTestClient(t, fake.Server.URL, publisher)

	modification := map[string]any{"ORGANIZATION": "ACME GmbH"}

	ok, err := client.Customers().Update(context.Background(), 3, modification)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, "customer.update", fake.LastPayload(t)["service"])
	data := fake.LastData(t)
	assert.InDelta(t, 3, data["CUSTOMER_ID"], 0)
	assert.Equal(t, "ACME GmbH", data["ORGANIZATION"])

	// The caller's map is left alone.
	assert.NotContains(t, modification, "CUSTOMER_ID")

	events := publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "customer.update", events[0].Service)
	assert.Equal(t, fastbill.ID(3), events[0].ID)
}

func TestCustomersClient_Remove(t *testing.T) {
	t.Parallel()

	fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"STATUS":"success"}}`))
	client := NewTestClient(t, fake.Server.URL, nil)

	ok, err := client.Customers().Remove(context.Background(), 9)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, "customer.delete", fake.LastPayload(t)["service"])
	assert.Equal(t, map[string]any{"CUSTOMER_ID": float64(9)}, fake.LastData(t))
}
