package client

import (
	"context"

	"github.com/fivetwenty-io/fastbill-client/internal/constants"
	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

// TemplatesClient implements fastbill.TemplatesClient.
type TemplatesClient struct {
	resources *ResourceClient
}

// NewTemplatesClient creates a new templates client.
func NewTemplatesClient(api Requester) *TemplatesClient {
	return &TemplatesClient{
		resources: newResourceClient(api, nil, constants.ScopeTemplate, "template", constants.FieldTemplates, ""),
	}
}

// Get implements fastbill.TemplatesClient.Get.
func (c *TemplatesClient) Get(ctx context.Context) ([]fastbill.Record, error) {
	return c.resources.Get(ctx, nil)
}

var _ fastbill.TemplatesClient = (*TemplatesClient)(nil)
