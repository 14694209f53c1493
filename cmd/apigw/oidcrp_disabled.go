//go:build !oidcrp

package main

import (
	"context"
	"github.com/edi-wallet/core/internal/apigw/httpserver"
	"github.com/edi-wallet/core/pkg/logger"
	"github.com/edi-wallet/core/pkg/model"
)

func initOIDCRPService(ctx context.Context, cfg *model.Cfg, log *logger.Log) (httpserver.OIDCRPService, error) {
	if cfg.APIGW.OIDCRP.Enabled {
		log.Info("OIDC RP enabled in config but not compiled in. Rebuild with -tags oidcrp")
	}
	return nil, nil
}
