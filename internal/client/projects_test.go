package client

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

func TestProjectsClient(t *testing.T) {
	t.Parallel()

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"PROJECTS":[{"PROJECT_ID":"3","PROJECT_NAME":"Website"}]}}`))
		client := NewTestClient(t, fake.Server.URL, nil)

		projects, err := client.Projects().Get(context.Background(), &fastbill.QueryOptions{Limit: 1})
		require.NoError(t, err)
		require.Len(t, projects, 1)

		id, ok := projects[0].Int64("PROJECT_ID")
		assert.True(t, ok)
		assert.Equal(t, int64(3), id)
	})

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"PROJECT_ID":3}}`))
		client := NewTestClient(t, fake.Server.URL, nil)

		id, err := client.Projects().Create(context.Background(), &fastbill.Project{
			ProjectName: "Website",
			CustomerID:  12,
			HourPrice:   decimal.RequireFromString("95.5"),
		})
		require.NoError(t, err)
		assert.Equal(t, fastbill.ID(3), id)

		assert.Equal(t, map[string]any{
			"PROJECT_NAME": "Website",
			"CUSTOMER_ID":  float64(12),
			"HOUR_PRICE":   "95.5",
		}, fake.LastData(t))
	})

	t.Run("create without body", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"PROJECT_ID":4}}`))
		client := NewTestClient(t, fake.Server.URL, nil)

		id, err := client.Projects().Create(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, fastbill.ID(4), id)
		assert.JSONEq(t, `{"service":"project.create","data":{}}`, fake.LastRawBody(t))
	})

	t.Run("update sets PROJECT_ID", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"STATUS":"success"}}`))
		client := NewTestClient(t, fake.Server.URL, nil)

		ok, err := client.Projects().Update(context.Background(), 1, map[string]any{"PROJECT_NAME": "Shop"})
		require.NoError(t, err)
		assert.True(t, ok)

		assert.Equal(t, "project.update", fake.LastPayload(t)["service"])
		assert.InDelta(t, 1, fake.LastData(t)["PROJECT_ID"], 0)
	})

	t.Run("update rejects non-object", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{}}`))
		client := NewTestClient(t, fake.Server.URL, nil)

		_, err := client.Projects().Update(context.Background(), 1, 17)
		require.Error(t, err)
		assert.True(t, fastbill.IsTypeError(err))
		assert.Zero(t, fake.Requests())
	})

	t.Run("remove", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"STATUS":"success"}}`))
		client := NewTestClient(t, fake.Server.URL, nil)

		ok, err := client.Projects().Remove(context.Background(), 3)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `{"service":"project.delete","data":{"PROJECT_ID":3}}`, fake.LastRawBody(t))
	})
}

func TestTemplatesClient_Get(t *testing.T) {
	t.Parallel()

	fake := NewFakeFastBill(t, Respond(`{"RESPONSE":{"TEMPLATES":[{"TEMPLATE_ID":"1","TEMPLATE_NAME":"Default"}]}}`))
	client := NewTestClient(t, fake.Server.URL, nil)

	templates, err := client.Templates().Get(context.Background())
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "Default", templates[0].String("TEMPLATE_NAME"))
	assert.JSONEq(t, `{"service":"template.get"}`, fake.LastRawBody(t))
}
