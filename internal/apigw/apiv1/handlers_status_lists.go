package apiv1

import "context"

//	type StatusListsRequestHeaders struct {
//		Accept string `header:"Accept" validate:"required"`
//	}
type StatusListsRequest struct {
	ID string `json:"id" uri:"id" validate:"required"`
}

func (c *Client) StatusLists(ctx context.Context, req *StatusListsRequest) (string, error) {
	ctx, span := c.tracer.Start(ctx, "apiv1:StatusLists")
	defer span.End()

	c.log.Debug("status_lists", "request", req)

	// Implementation goes here

	return "", nil
}
