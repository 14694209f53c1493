package httpserver

import (
	"context"
	"github.com/edi-wallet/core/internal/gen/registry/apiv1_registry"
	"github.com/edi-wallet/core/internal/gen/status/apiv1_status"
	"github.com/edi-wallet/core/internal/registry/apiv1"
)

// Apiv1 interface
type Apiv1 interface {
	Validate(ctx context.Context, req *apiv1_registry.ValidateRequest) (*apiv1.ValidateReply, error)

	Status(ctx context.Context, req *apiv1_status.StatusRequest) (*apiv1_status.StatusReply, error)
}
