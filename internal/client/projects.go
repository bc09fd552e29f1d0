package client

import (
	"github.com/fivetwenty-io/fastbill-client/internal/constants"
	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

// ProjectsClient implements fastbill.ProjectsClient.
type ProjectsClient struct {
	*ResourceClient
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(api Requester, events *Emitter) *ProjectsClient {
	return &ProjectsClient{
		ResourceClient: newResourceClient(api, events,
			constants.ScopeProject, "project", constants.FieldProjects, constants.FieldProjectID),
	}
}

var _ fastbill.ProjectsClient = (*ProjectsClient)(nil)
