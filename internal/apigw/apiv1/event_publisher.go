package apiv1

import (
	"context"
	"github.com/edi-wallet/core/pkg/vcclient"
)

type EventPublisher interface {
	Upload(uploadRequest *vcclient.UploadRequest) error
	Close(ctx context.Context) error
}
