package apiv1

import (
	"context"
	"github.com/edi-wallet/core/internal/gen/status/apiv1_status"
	"github.com/edi-wallet/core/pkg/model"
)

// Health return health for this service and dependencies
func (c *Client) Health(ctx context.Context, req *apiv1_status.StatusRequest) (*apiv1_status.StatusReply, error) {
	c.log.Info("health handler")
	probes := model.Probes{}
	probes = append(probes, c.kv.Status(ctx))
	probes = append(probes, c.db.Status(ctx))

	status := probes.Check("apigw")

	return status, nil
}
