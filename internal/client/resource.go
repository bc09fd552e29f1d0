package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/fastbill-client/internal/constants"
	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

// ResourceClient implements the get/create/update/remove services shared by
// every FastBill scope. Scope specific clients embed it.
type ResourceClient struct {
	api       Requester
	events    *Emitter
	scope     string
	listField string
	idField   string
	noun      string
}

// newResourceClient creates a generic client for scope. listField is the
// response key of get, idField the key carrying the resource id.
func newResourceClient(api Requester, events *Emitter, scope, noun, listField, idField string) *ResourceClient {
	return &ResourceClient{
		api:       api,
		events:    events,
		scope:     scope,
		listField: listField,
		idField:   idField,
		noun:      noun,
	}
}

// Service returns the full service name of op, e.g. "customer.get".
func (c *ResourceClient) Service(op string) string {
	return c.scope + op
}

// call sends payload and wraps any failure with the shared message.
func (c *ResourceClient) call(ctx context.Context, payload *Payload) (*Response, error) {
	resp, err := c.api.Request(ctx, payload)
	if err != nil {
		return nil, fastbill.NewInvalidRequestError(constants.MsgInvalidRequest, err)
	}

	return resp, nil
}

// decode projects key out of resp, wrapping projection failures the same way
// as request failures.
func decode(resp *Response, key string, v any) error {
	err := resp.Decode(key, v)
	if err != nil {
		return fastbill.NewInvalidRequestError(constants.MsgInvalidRequest, err)
	}

	return nil
}

// Get implements the get service. A nil opts sends no filter, limit or offset.
func (c *ResourceClient) Get(ctx context.Context, opts *fastbill.QueryOptions) ([]fastbill.Record, error) {
	if opts == nil {
		opts = &fastbill.QueryOptions{}
	}

	if opts.Limit < 0 || opts.Offset < 0 {
		return nil, fastbill.NewValueError(fmt.Sprintf("%s: limit and offset must not be negative", c.Service(constants.OpGet)), nil)
	}

	resp, err := c.call(ctx, &Payload{
		Service: c.Service(constants.OpGet),
		Filter:  opts.Filter,
		Limit:   opts.Limit,
		Offset:  opts.Offset,
	})
	if err != nil {
		return nil, err
	}

	var records []fastbill.Record

	err = decode(resp, c.listField, &records)
	if err != nil {
		return nil, err
	}

	return records, nil
}

// Create implements the create service and returns the new id. A nil body
// is sent as an empty object.
func (c *ResourceClient) Create(ctx context.Context, body any) (fastbill.ID, error) {
	data, err := toObject(c.noun, bodyOrEmpty(body))
	if err != nil {
		return 0, err
	}

	return c.create(ctx, data)
}

func (c *ResourceClient) create(ctx context.Context, data map[string]any) (fastbill.ID, error) {
	service := c.Service(constants.OpCreate)

	resp, err := c.call(ctx, &Payload{Service: service, Data: data})
	if err != nil {
		return 0, err
	}

	var id fastbill.ID

	err = decode(resp, c.idField, &id)
	if err != nil {
		return 0, err
	}

	c.events.emit(ctx, service, id, nil)

	return id, nil
}

// Update implements the update service. The id is added to a copy of body.
func (c *ResourceClient) Update(ctx context.Context, id fastbill.ID, body any) (bool, error) {
	data, err := toObject(c.noun, body)
	if err != nil {
		return false, err
	}

	data[c.idField] = id
	service := c.Service(constants.OpUpdate)

	_, err = c.call(ctx, &Payload{Service: service, Data: data})
	if err != nil {
		return false, err
	}

	c.events.emit(ctx, service, id, nil)

	return true, nil
}

// Remove implements the delete service.
func (c *ResourceClient) Remove(ctx context.Context, id fastbill.ID) (bool, error) {
	service := c.Service(constants.OpDelete)

	_, err := c.call(ctx, &Payload{Service: service, Data: map[string]any{c.idField: id}})
	if err != nil {
		return false, err
	}

	c.events.emit(ctx, service, id, nil)

	return true, nil
}
